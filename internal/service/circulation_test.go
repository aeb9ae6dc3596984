package service

import (
	"context"
	"testing"

	"github.com/stacksapp/stacks/internal/domain"
)

type fakeCirculation struct {
	catalog *fakeCatalog
	err     error
}

func (f *fakeCirculation) BorrowBook(_ context.Context, _ domain.Role, _, isbn string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	for i := range f.catalog.books {
		if f.catalog.books[i].ISBN == isbn {
			f.catalog.books[i].AvailableCopies--
			return "Book borrowed successfully.", nil
		}
	}
	return "", &domain.RequestError{StatusCode: 404, Message: "Book not found."}
}

func (f *fakeCirculation) ReturnBook(_ context.Context, _ domain.Role, _, isbn string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	for i := range f.catalog.books {
		if f.catalog.books[i].ISBN == isbn {
			f.catalog.books[i].AvailableCopies++
			return "Book returned successfully.", nil
		}
	}
	return "", &domain.RequestError{StatusCode: 404, Message: "Book not found."}
}

func TestBorrowReloadsCatalog(t *testing.T) {
	catalog := &fakeCatalog{books: twoBooks()}
	circ := &fakeCirculation{catalog: catalog}
	svc := NewCirculationService(circ, catalog, nil)

	books, msg, err := svc.Borrow(context.Background(), domain.RoleStudent, "123456789", "978-1")
	if err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if msg != "Book borrowed successfully." {
		t.Fatalf("message: got %q", msg)
	}
	if books[0].AvailableCopies != 1 {
		t.Fatalf("available after borrow: got %d", books[0].AvailableCopies)
	}
}

func TestReturnReloadsCatalog(t *testing.T) {
	catalog := &fakeCatalog{books: twoBooks()}
	circ := &fakeCirculation{catalog: catalog}
	svc := NewCirculationService(circ, catalog, nil)

	books, _, err := svc.Return(context.Background(), domain.RoleStudent, "123456789", "978-1")
	if err != nil {
		t.Fatalf("return: %v", err)
	}
	if books[0].AvailableCopies != 3 {
		t.Fatalf("available after return: got %d", books[0].AvailableCopies)
	}
}

func TestBorrowFailureStillReloads(t *testing.T) {
	catalog := &fakeCatalog{books: twoBooks()}
	circ := &fakeCirculation{catalog: catalog}
	circ.err = &domain.RequestError{StatusCode: 409, Message: "No copies available."}
	svc := NewCirculationService(circ, catalog, nil)

	books, _, err := svc.Borrow(context.Background(), domain.RoleStudent, "123456789", "978-1")
	if err == nil {
		t.Fatal("expected borrow error")
	}
	if len(books) != 2 {
		t.Fatalf("reload after failed borrow: got %d books", len(books))
	}
}
