// internal/membership/domain.go
package membership

import "errors"

// Roles a user record can carry. Admins are the only records with login
// credentials attached.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents a library member or administrator.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

var (
	// ErrUserNotFound is returned when an id is absent from the user store.
	ErrUserNotFound = errors.New("user not found")

	// ErrValidation wraps every field-constraint failure on create and update.
	ErrValidation = errors.New("validation failed")
)
