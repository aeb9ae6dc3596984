package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stacksapp/stacks/internal/domain"
)

func jsonBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestSignInSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := jsonBody(t, r)
		if body["role_id"] != float64(2) {
			t.Fatalf("role_id: got %v", body["role_id"])
		}
		if body["user_id"] != "123456789" || body["user_name"] != "bob" || body["password"] != "pw" {
			t.Fatalf("credentials: got %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message":        "Welcome back!",
			"user_id":        "123456789",
			"book_checkouts": []string{"978-1", "978-2"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	grant, err := client.SignIn(context.Background(), domain.Credentials{
		Role: domain.RoleStudent, UserID: "123456789", Username: "bob", Password: "pw",
	})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if grant.Message != "Welcome back!" {
		t.Fatalf("message: got %q", grant.Message)
	}
	if len(grant.CheckedOutBooks) != 2 {
		t.Fatalf("checkouts: got %v", grant.CheckedOutBooks)
	}
}

func TestSignInRejectedSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Incorrect password."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.SignIn(context.Background(), domain.Credentials{
		Role: domain.RoleLibrarian, UserID: "1234", Username: "ann", Password: "bad",
	})

	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("want RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusUnauthorized || reqErr.Message != "Incorrect password." {
		t.Fatalf("got %+v", reqErr)
	}
}

func TestUnreachableServerMapsToOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // immediately unreachable

	client := NewClient(srv.URL, nil)
	_, err := client.GetRoles(context.Background())
	if !errors.Is(err, domain.ErrServerOffline) {
		t.Fatalf("want ErrServerOffline, got %v", err)
	}
}

func TestListBooksQueryAndMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("role_id") != "1" || q.Get("table_name") != "books" ||
			q.Get("action") != "SELECT" || q.Get("column_field") != "*" {
			t.Fatalf("query: got %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"books": []map[string]any{
				{
					"book_isbn_id":     "978-1",
					"title":            "Dune",
					"author":           "Herbert",
					"published_year":   1965,
					"total_book_count": 3,
					"available_count":  2,
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	books, err := client.ListBooks(context.Background(), domain.RoleLibrarian)
	if err != nil {
		t.Fatalf("list books: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("want 1 book, got %d", len(books))
	}
	b := books[0]
	if b.ISBN != "978-1" || b.Title != "Dune" || b.PublishedYear != 1965 ||
		b.TotalCopies != 3 || b.AvailableCopies != 2 {
		t.Fatalf("mapping: got %+v", b)
	}
}

func TestDeleteBookSendsPermissionEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/books/978-1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := jsonBody(t, r)
		if body["role_id"] != float64(1) || body["table_name"] != "books" ||
			body["action"] != "DELETE" || body["column_field"] != "N/A" {
			t.Fatalf("envelope: got %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Book deleted successfully."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	msg, err := client.DeleteBook(context.Background(), domain.RoleLibrarian, "978-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if msg != "Book deleted successfully." {
		t.Fatalf("message: got %q", msg)
	}
}

func TestAddBookPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/books" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := jsonBody(t, r)
		if body["action"] != "INSERT" || body["book_isbn_id"] != "978-3" ||
			body["total_book_count"] != float64(2) {
			t.Fatalf("payload: got %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "New book created successfully."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	msg, err := client.AddBook(context.Background(), domain.RoleLibrarian, domain.Book{
		ISBN: "978-3", Title: "Foundation", Author: "Asimov",
		PublishedYear: 1951, TotalCopies: 2, AvailableCopies: 2,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if msg == "" {
		t.Fatal("expected confirmation message")
	}
}

func TestUpdateBookSendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/books/978-1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := jsonBody(t, r)
		if body["title"] != "Dune Messiah" {
			t.Fatalf("title: got %v", body["title"])
		}
		if _, ok := body["author"]; ok {
			t.Fatal("unset fields must not be sent")
		}
		if body["action"] != "UPDATE" {
			t.Fatalf("action: got %v", body["action"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Book updated successfully."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	title := "Dune Messiah"
	if _, err := client.UpdateBook(context.Background(), domain.RoleLibrarian, "978-1", domain.BookUpdate{Title: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestBorrowAndReturnEndpoints(t *testing.T) {
	var gotPath, gotAction string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("method: got %s", r.Method)
		}
		body := jsonBody(t, r)
		if body["table_name"] != "user_book_checkouts" || body["book_isbn_id"] != "978-1" {
			t.Fatalf("payload: got %v", body)
		}
		gotPath = r.URL.Path
		gotAction = body["action"].(string)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	if _, err := client.BorrowBook(context.Background(), domain.RoleStudent, "123456789", "978-1"); err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if gotPath != "/api/users/123456789/borrow-book" || gotAction != "INSERT" {
		t.Fatalf("borrow: %s %s", gotPath, gotAction)
	}

	if _, err := client.ReturnBook(context.Background(), domain.RoleStudent, "123456789", "978-1"); err != nil {
		t.Fatalf("return: %v", err)
	}
	if gotPath != "/api/users/123456789/return-book" || gotAction != "DELETE" {
		t.Fatalf("return: %s %s", gotPath, gotAction)
	}
}

func TestListUsersFilterQuery(t *testing.T) {
	var gotStatus string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStatus = r.URL.Query().Get("status")
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{
					"user_id":           "123456789",
					"role_id":           2,
					"user_name":         "bob",
					"is_active_account": false,
					"books_overdue":     []string{"978-1", "978-2", "978-3"},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	users, err := client.ListUsers(context.Background(), domain.FilterAllUsers)
	if err != nil {
		t.Fatalf("all users: %v", err)
	}
	if gotStatus != "" {
		t.Fatalf("all users sends no status, got %q", gotStatus)
	}
	if users[0].Role != domain.RoleStudent || users[0].Active || len(users[0].OverdueBooks) != 3 {
		t.Fatalf("mapping: got %+v", users[0])
	}

	if _, err := client.ListUsers(context.Background(), domain.FilterNeedsApproval); err != nil {
		t.Fatalf("needs approval: %v", err)
	}
	if gotStatus != "needs-approval" {
		t.Fatalf("status: got %q", gotStatus)
	}

	if _, err := client.ListUsers(context.Background(), domain.FilterExcessiveOverdue); err != nil {
		t.Fatalf("excessive overdue: %v", err)
	}
	if gotStatus != "excessive-overdue" {
		t.Fatalf("status: got %q", gotStatus)
	}
}

func TestSetActiveStatusPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/123456789/update-active-status" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := jsonBody(t, r)
		if body["table_name"] != "users" || body["action"] != "UPDATE" ||
			body["column_field"] != "is_active_account" {
			t.Fatalf("envelope: got %v", body)
		}
		if body["new_active_status"] != true {
			t.Fatalf("new_active_status: got %v", body["new_active_status"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "User activated."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	msg, err := client.SetActiveStatus(context.Background(), domain.RoleLibrarian, "123456789", true)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if msg != "User activated." {
		t.Fatalf("message: got %q", msg)
	}
}

func TestGetRolesMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/roles" {
			t.Fatalf("path: got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"role_name": "librarian", "role_id": 1},
				{"role_name": "student", "role_id": 2},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	roles, err := client.GetRoles(context.Background())
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	if len(roles) != 2 || roles[0].Name != "librarian" || roles[1].ID != 2 {
		t.Fatalf("mapping: got %+v", roles)
	}
}

func TestListUsernames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/usernames" {
			t.Fatalf("path: got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"usernames_list": []string{"ann", "bob"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	names, err := client.ListUsernames(context.Background())
	if err != nil {
		t.Fatalf("usernames: %v", err)
	}
	if len(names) != 2 || names[0] != "ann" {
		t.Fatalf("got %v", names)
	}
}
