package api

import "github.com/stacksapp/stacks/internal/domain"

// Mapping between wire DTOs and domain entities.

func mapRoleOptions(dtos []roleDTO) []domain.RoleOption {
	options := make([]domain.RoleOption, len(dtos))
	for i, dto := range dtos {
		options[i] = domain.RoleOption{
			Name: dto.RoleName,
			ID:   dto.RoleID,
		}
	}
	return options
}

func mapBooks(dtos []bookDTO) []domain.Book {
	books := make([]domain.Book, len(dtos))
	for i, dto := range dtos {
		books[i] = domain.Book{
			ISBN:            dto.ISBN,
			Title:           dto.Title,
			Author:          dto.Author,
			PublishedYear:   dto.PublishedYear,
			TotalCopies:     dto.TotalBookCount,
			AvailableCopies: dto.AvailableCount,
		}
	}
	return books
}

func mapUsers(dtos []userDTO) []domain.User {
	users := make([]domain.User, len(dtos))
	for i, dto := range dtos {
		users[i] = domain.User{
			ID:           dto.UserID,
			Role:         domain.RoleFromID(dto.RoleID),
			Name:         dto.UserName,
			Active:       dto.IsActive,
			OverdueBooks: dto.BooksOverdue,
		}
	}
	return users
}

// bookUpdatePayload builds the PATCH body for a partial book update: the
// permission envelope plus only the fields that are set.
func bookUpdatePayload(role domain.Role, upd domain.BookUpdate) map[string]any {
	payload := map[string]any{
		"role_id":      role.ID(),
		"table_name":   "books",
		"action":       "UPDATE",
		"column_field": "N/A",
	}
	if upd.ISBN != nil {
		payload["book_isbn_id"] = *upd.ISBN
	}
	if upd.Title != nil {
		payload["title"] = *upd.Title
	}
	if upd.Author != nil {
		payload["author"] = *upd.Author
	}
	if upd.PublishedYear != nil {
		payload["published_year"] = *upd.PublishedYear
	}
	if upd.TotalCopies != nil {
		payload["total_book_count"] = *upd.TotalCopies
	}
	if upd.AvailableCopies != nil {
		payload["available_count"] = *upd.AvailableCopies
	}
	return payload
}
