// internal/contacts/implementation.go
package contacts

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"bibliotek/internal/store"
)

// service implements the Service interface.
type service struct {
	contacts *store.Table[Contact]
}

// NewService creates a new contact service instance.
func NewService(contacts *store.Table[Contact]) Service {
	return &service{contacts: contacts}
}

// GetContact retrieves a contact by id.
func (s *service) GetContact(ctx context.Context, id int) (Contact, error) {
	contact, ok := s.contacts.Get(id)
	if !ok {
		return Contact{}, fmt.Errorf("User[%d] %w", id, ErrContactNotFound)
	}
	return contact, nil
}

// CreateContact validates and stores a new contact, returning its id.
func (s *service) CreateContact(ctx context.Context, contact Contact) (int, Contact, error) {
	normalized, err := normalizePhone(contact.Phone)
	if err != nil {
		return 0, Contact{}, err
	}
	contact.Phone = normalized

	if contact.Age <= 0 {
		return 0, Contact{}, fmt.Errorf("%w: age must be greater than 0", ErrValidation)
	}
	if contact.Age > 150 {
		return 0, Contact{}, fmt.Errorf("%w: age must be less than or equal to 150", ErrValidation)
	}
	if _, err := mail.ParseAddress(contact.Email); err != nil {
		return 0, Contact{}, fmt.Errorf("%w: malformed email address", ErrValidation)
	}

	var id int
	s.contacts.Insert(func(newID int) Contact {
		id = newID
		return contact
	})
	return id, contact, nil
}

// normalizePhone requires exactly 11 digits and rewrites numbers starting
// with "01" to carry the "+88" country prefix.
func normalizePhone(phone string) (string, error) {
	for _, r := range phone {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: phone number must contain only digits", ErrValidation)
		}
	}
	if len(phone) != 11 {
		return "", fmt.Errorf("%w: phone number must be exactly 11 digits", ErrValidation)
	}
	if strings.HasPrefix(phone, "01") {
		return "+88" + phone, nil
	}
	return phone, nil
}

// SeedSample loads the demo fixture records.
func SeedSample(contacts *store.Table[Contact]) {
	contacts.Seed(map[int]Contact{
		1: {Name: "Alice", Age: 30, Phone: "01355598745", DateOfBirth: "1993-01-15", Email: "alice@example.com", Address: "123 Main St, City, State"},
		2: {Name: "Bob", Age: 25, Phone: "01954621874", DateOfBirth: "1998-05-20", Email: "bob@example.com", Address: "456 Oak Ave, Town, State"},
		3: {Name: "Charlie", Age: 35, Phone: "01921548798", DateOfBirth: "1988-09-10", Email: "charlie@example.com", Address: "789 Pine Rd, Village, State"},
		4: {Name: "Diana", Age: 28, Phone: "0185551234", DateOfBirth: "1995-12-03", Email: "diana@example.com", Address: "321 Elm St, Borough, State"},
		5: {Name: "Edward", Age: 42, Phone: "01721548745", DateOfBirth: "1981-07-22", Email: "edward@example.com", Address: "654 Maple Dr, Township, State"},
		6: {Name: "Fiona", Age: 31, Phone: "0188882229", DateOfBirth: "1992-03-18", Email: "fiona@example.com", Address: "987 Cedar Ln, Hamlet, State"},
		7: {Name: "George", Age: 29, Phone: "0183337778", DateOfBirth: "1994-11-08", Email: "george@example.com", Address: "147 Birch Way, District, State"},
	})
}
