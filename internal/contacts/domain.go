// internal/contacts/domain.go
package contacts

import "errors"

// Contact is one record in the standalone demo service. It shares nothing
// with the library system.
type Contact struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

var (
	// ErrContactNotFound is returned when an id is absent from the store.
	ErrContactNotFound = errors.New("user not found")

	// ErrValidation wraps every field-constraint failure.
	ErrValidation = errors.New("validation failed")
)
