package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stacksapp/stacks/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Stacks/1.0"
)

// Client talks to the library backend's REST API. It implements
// domain.AccountRepository, domain.CatalogRepository, and
// domain.CirculationRepository.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend API client for the given origin.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs a JSON request against the backend. Transport failures
// map to domain.ErrServerOffline; any non-2xx status becomes a
// *domain.RequestError carrying the server's "error" field when present.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("backend request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// The backend uses 200 and 201 for success depending on the flow.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		_ = json.Unmarshal(respBody, &errResp)
		c.logger.Error("backend request error", "status", resp.StatusCode, "message", errResp.Error)
		return nil, &domain.RequestError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	return respBody, nil
}

// GetRoles returns the selectable roles.
func (c *Client) GetRoles(ctx context.Context) ([]domain.RoleOption, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/roles", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp rolesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse roles response: %w", err)
	}
	return mapRoleOptions(resp.Data), nil
}

// SignIn authenticates (or registers) a user. The backend decides which
// flow applies; either way a 2xx response grants access.
func (c *Client) SignIn(ctx context.Context, creds domain.Credentials) (*domain.AuthGrant, error) {
	payload := signInRequest{
		RoleID:   creds.Role.ID(),
		UserID:   creds.UserID,
		UserName: creds.Username,
		Password: creds.Password,
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/users", nil, payload)
	if err != nil {
		return nil, err
	}

	var resp signInResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse sign-in response: %w", err)
	}

	userID := resp.UserID
	if userID == "" {
		userID = creds.UserID
	}

	return &domain.AuthGrant{
		Message:         resp.Message,
		UserID:          userID,
		CheckedOutBooks: resp.BookCheckouts,
	}, nil
}

// ListUsernames returns every registered username.
func (c *Client) ListUsernames(ctx context.Context) ([]string, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/users/usernames", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp usernamesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse usernames response: %w", err)
	}
	return resp.Usernames, nil
}

// ListBooks returns the catalog visible to the given role. The backend
// performs the actual authorization and filtering.
func (c *Client) ListBooks(ctx context.Context, role domain.Role) ([]domain.Book, error) {
	query := url.Values{}
	query.Set("role_id", strconv.Itoa(role.ID()))
	query.Set("table_name", "books")
	query.Set("action", "SELECT")
	query.Set("column_field", "*")

	body, err := c.doRequest(ctx, http.MethodGet, "/api/books", query, nil)
	if err != nil {
		return nil, err
	}

	var resp booksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse books response: %w", err)
	}
	return mapBooks(resp.Books), nil
}

// AddBook creates a new catalog entry.
func (c *Client) AddBook(ctx context.Context, role domain.Role, book domain.Book) (string, error) {
	payload := addBookRequest{
		statement:      newStatement(role, "books", "INSERT"),
		ISBN:           book.ISBN,
		Title:          book.Title,
		Author:         book.Author,
		PublishedYear:  book.PublishedYear,
		TotalBookCount: book.TotalCopies,
		AvailableCount: book.AvailableCopies,
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/books", nil, payload)
	if err != nil {
		return "", err
	}
	return parseMessage(body)
}

// UpdateBook patches a catalog entry. Only the fields set in upd are sent.
func (c *Client) UpdateBook(ctx context.Context, role domain.Role, isbn string, upd domain.BookUpdate) (string, error) {
	payload := bookUpdatePayload(role, upd)

	body, err := c.doRequest(ctx, http.MethodPatch, "/api/books/"+url.PathEscape(isbn), nil, payload)
	if err != nil {
		return "", err
	}
	return parseMessage(body)
}

// DeleteBook removes a catalog entry by ISBN.
func (c *Client) DeleteBook(ctx context.Context, role domain.Role, isbn string) (string, error) {
	payload := newStatement(role, "books", "DELETE")

	body, err := c.doRequest(ctx, http.MethodDelete, "/api/books/"+url.PathEscape(isbn), nil, payload)
	if err != nil {
		return "", err
	}
	return parseMessage(body)
}

// BorrowBook checks a book out to the given user.
func (c *Client) BorrowBook(ctx context.Context, role domain.Role, userID, isbn string) (string, error) {
	payload := circulationRequest{
		statement: newStatement(role, "user_book_checkouts", "INSERT"),
		BookISBN:  isbn,
	}

	path := fmt.Sprintf("/api/users/%s/borrow-book", url.PathEscape(userID))
	body, err := c.doRequest(ctx, http.MethodPatch, path, nil, payload)
	if err != nil {
		return "", err
	}
	return parseMessage(body)
}

// ReturnBook returns a checked-out book.
func (c *Client) ReturnBook(ctx context.Context, role domain.Role, userID, isbn string) (string, error) {
	payload := circulationRequest{
		statement: newStatement(role, "user_book_checkouts", "DELETE"),
		BookISBN:  isbn,
	}

	path := fmt.Sprintf("/api/users/%s/return-book", url.PathEscape(userID))
	body, err := c.doRequest(ctx, http.MethodPatch, path, nil, payload)
	if err != nil {
		return "", err
	}
	return parseMessage(body)
}

// ListUsers returns accounts matching the dashboard filter.
func (c *Client) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	var query url.Values
	if status := filter.Status(); status != "" {
		query = url.Values{}
		query.Set("status", status)
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/users", query, nil)
	if err != nil {
		return nil, err
	}

	var resp usersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse users response: %w", err)
	}
	return mapUsers(resp.Users), nil
}

// SetActiveStatus activates or deactivates an account.
func (c *Client) SetActiveStatus(ctx context.Context, actor domain.Role, userID string, active bool) (string, error) {
	payload := activeStatusRequest{
		statement:       newStatement(actor, "users", "UPDATE"),
		NewActiveStatus: active,
	}
	payload.ColumnField = "is_active_account"

	path := fmt.Sprintf("/api/%s/update-active-status", url.PathEscape(userID))
	body, err := c.doRequest(ctx, http.MethodPatch, path, nil, payload)
	if err != nil {
		return "", err
	}
	return parseMessage(body)
}

// newStatement builds the permission envelope for a request.
func newStatement(role domain.Role, table, action string) statement {
	return statement{
		RoleID:      role.ID(),
		TableName:   table,
		Action:      action,
		ColumnField: "N/A",
	}
}

// parseMessage extracts the server's confirmation message from a response.
func parseMessage(body []byte) (string, error) {
	var resp messageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return resp.Message, nil
}
