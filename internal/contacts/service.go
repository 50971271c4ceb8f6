// internal/contacts/service.go
package contacts

import "context"

// Service defines the interface for the contact demo service.
type Service interface {
	GetContact(ctx context.Context, id int) (Contact, error)
	CreateContact(ctx context.Context, contact Contact) (int, Contact, error)
}
