package domain

import "regexp"

// Field identifies a credential input slot. The numeric order matches the
// sign-in form layout: UserID = 0, Username = 1, Password = 2.
type Field int

const (
	FieldUserID Field = iota
	FieldUsername
	FieldPassword

	FieldCount = 3
)

var (
	librarianIDPattern = regexp.MustCompile(`^\d{4}$`)
	studentIDPattern   = regexp.MustCompile(`^\d{9}$`)
)

// Credentials is the sign-in input. The backend re-validates everything;
// these checks only gate submission client-side.
type Credentials struct {
	Role     Role
	UserID   string
	Username string
	Password string
}

// ValidateField returns the validation message for one credential field.
// An empty string means the field is valid.
func (c Credentials) ValidateField(f Field) string {
	switch f {
	case FieldUserID:
		switch {
		case !c.Role.Selected():
			return "Please select a role first"
		case c.Role == RoleLibrarian && !librarianIDPattern.MatchString(c.UserID):
			return "User ID must be exactly 4 digits for Librarians"
		case c.Role == RoleStudent && !studentIDPattern.MatchString(c.UserID):
			return "User ID must be exactly 9 digits for Students"
		}
	case FieldUsername:
		if c.Username == "" {
			return "Username must not be empty"
		}
	case FieldPassword:
		if c.Password == "" {
			return "Password must not be empty"
		}
	}
	return ""
}

// Validate returns the message for every field, indexed by Field.
func (c Credentials) Validate() [FieldCount]string {
	var msgs [FieldCount]string
	for f := Field(0); f < FieldCount; f++ {
		msgs[f] = c.ValidateField(f)
	}
	return msgs
}

// CanSubmit reports whether a role is selected and every field passes
// validation. A passing user ID is necessarily non-empty (it matched a
// digit pattern), so the non-empty checks are subsumed.
func (c Credentials) CanSubmit() bool {
	if !c.Role.Selected() {
		return false
	}
	for f := Field(0); f < FieldCount; f++ {
		if c.ValidateField(f) != "" {
			return false
		}
	}
	return true
}
