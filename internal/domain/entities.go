package domain

// Role is the access class of a signed-in user. The numeric values mirror
// the backend's roles table: librarian = 1, student = 2. The zero value
// means no role has been chosen yet.
type Role int

const (
	RoleUnselected Role = 0
	RoleLibrarian  Role = 1
	RoleStudent    Role = 2
)

// RoleFromID maps a backend role identifier to a Role. Unknown identifiers
// map to RoleUnselected; the backend is the authority on valid IDs.
func RoleFromID(id int) Role {
	switch id {
	case 1:
		return RoleLibrarian
	case 2:
		return RoleStudent
	default:
		return RoleUnselected
	}
}

// ID returns the backend's numeric identifier for the role.
func (r Role) ID() int { return int(r) }

// Selected reports whether a role has been chosen.
func (r Role) Selected() bool { return r == RoleLibrarian || r == RoleStudent }

// String returns the display name for the role.
func (r Role) String() string {
	switch r {
	case RoleLibrarian:
		return "Librarian"
	case RoleStudent:
		return "Student"
	default:
		return "Unselected"
	}
}

// RoleOption is a selectable role as served by the backend's role listing.
type RoleOption struct {
	Name string // e.g. "librarian"
	ID   int
}

// Book is one catalog entry. The client holds an ephemeral snapshot per
// fetch; the backend owns the data and the invariant
// 0 <= AvailableCopies <= TotalCopies.
type Book struct {
	ISBN            string
	Title           string
	Author          string
	PublishedYear   int
	TotalCopies     int
	AvailableCopies int
}

// BookUpdate is a partial update for a catalog entry. Only non-nil fields
// are sent to the backend.
type BookUpdate struct {
	ISBN            *string
	Title           *string
	Author          *string
	PublishedYear   *int
	TotalCopies     *int
	AvailableCopies *int
}

// User is a library account as seen by librarians.
type User struct {
	ID           string
	Role         Role
	Name         string
	Active       bool
	OverdueBooks []string
}

// Session is the client-side view of the signed-in user. It starts
// unset/unauthenticated, is mutated only on successful sign-in and on
// borrow/return, and is discarded on exit (no persistence).
type Session struct {
	Role            Role
	Authenticated   bool
	UserID          string
	CheckedOutBooks []string
}

// AuthGrant is the result of a successful sign-in.
type AuthGrant struct {
	Message         string
	UserID          string
	CheckedOutBooks []string
}

// UserFilter selects which accounts the librarian dashboard displays.
type UserFilter int

const (
	FilterAllUsers UserFilter = iota
	FilterNeedsApproval
	FilterExcessiveOverdue
)

// Status returns the backend query value for the filter. All Users uses no
// status parameter.
func (f UserFilter) Status() string {
	switch f {
	case FilterNeedsApproval:
		return "needs-approval"
	case FilterExcessiveOverdue:
		return "excessive-overdue"
	default:
		return ""
	}
}

// String returns the display name for the filter.
func (f UserFilter) String() string {
	switch f {
	case FilterNeedsApproval:
		return "Needs Approval"
	case FilterExcessiveOverdue:
		return "Excessive Overdue"
	default:
		return "All Users"
	}
}
