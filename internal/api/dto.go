package api

// Wire shapes for the library backend's JSON API.

type roleDTO struct {
	RoleName string `json:"role_name"`
	RoleID   int    `json:"role_id"`
}

type rolesResponse struct {
	Data []roleDTO `json:"data"`
}

type signInRequest struct {
	RoleID   int    `json:"role_id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type signInResponse struct {
	Message       string   `json:"message"`
	UserID        string   `json:"user_id"`
	IsActive      bool     `json:"is_active_account"`
	BookCheckouts []string `json:"book_checkouts"`
}

type usernamesResponse struct {
	Usernames []string `json:"usernames_list"`
}

type bookDTO struct {
	ISBN           string `json:"book_isbn_id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	PublishedYear  int    `json:"published_year"`
	TotalBookCount int    `json:"total_book_count"`
	AvailableCount int    `json:"available_count"`
}

type booksResponse struct {
	Books []bookDTO `json:"books"`
}

type userDTO struct {
	UserID       string   `json:"user_id"`
	RoleID       int      `json:"role_id"`
	UserName     string   `json:"user_name"`
	IsActive     bool     `json:"is_active_account"`
	BooksOverdue []string `json:"books_overdue"`
}

type usersResponse struct {
	Users []userDTO `json:"users"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// statement is the permission envelope the backend checks on every request:
// the four fields must match a row in its permissions table.
type statement struct {
	RoleID      int    `json:"role_id"`
	TableName   string `json:"table_name"`
	Action      string `json:"action"`
	ColumnField string `json:"column_field"`
}

type addBookRequest struct {
	statement
	ISBN           string `json:"book_isbn_id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	PublishedYear  int    `json:"published_year"`
	TotalBookCount int    `json:"total_book_count"`
	AvailableCount int    `json:"available_count"`
}

type circulationRequest struct {
	statement
	BookISBN string `json:"book_isbn_id"`
}

type activeStatusRequest struct {
	statement
	NewActiveStatus bool `json:"new_active_status"`
}
