// internal/membership/implementation.go
package membership

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"bibliotek/internal/store"
)

// service implements the Service interface.
type service struct {
	users *store.Table[User]
}

// NewService creates a new membership service instance backed by the given table.
func NewService(users *store.Table[User]) Service {
	return &service{users: users}
}

// validate enforces the field constraints shared by create and update.
// Admin records must carry both username and password; member records get
// their credentials stripped even when supplied.
func validate(user User) (User, error) {
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return User{}, fmt.Errorf("%w: malformed email address", ErrValidation)
	}

	switch user.Role {
	case RoleAdmin:
		if user.Username == "" || user.Password == "" {
			return User{}, fmt.Errorf("%w: admin users must have username and password", ErrValidation)
		}
	case RoleMember:
		user.Username = ""
		user.Password = ""
	default:
		return User{}, fmt.Errorf("%w: role must be %q or %q", ErrValidation, RoleAdmin, RoleMember)
	}

	return user, nil
}

// AddUser validates the record, assigns the next id, and stores it.
func (s *service) AddUser(ctx context.Context, user User) (User, error) {
	user, err := validate(user)
	if err != nil {
		return User{}, err
	}

	created := s.users.Insert(func(id int) User {
		user.ID = id
		return user
	})
	return created, nil
}

// ListUsers returns every user keyed by id.
func (s *service) ListUsers(ctx context.Context) map[int]User {
	return s.users.All()
}

// SearchUsers matches the keyword case-insensitively against the id and the
// string form of every field, admin credentials included, in ascending id order.
func (s *service) SearchUsers(ctx context.Context, keyword string) []User {
	q := strings.ToLower(keyword)
	results := []User{}
	for _, id := range s.users.IDs() {
		user, ok := s.users.Get(id)
		if !ok {
			continue
		}
		if userMatches(id, user, q) {
			results = append(results, user)
		}
	}
	return results
}

func userMatches(id int, user User, q string) bool {
	fields := []string{
		strconv.Itoa(id),
		user.Name,
		user.Email,
		user.Role,
		user.Username,
		user.Password,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// UpdateUser validates and replaces the whole record.
func (s *service) UpdateUser(ctx context.Context, id int, user User) (User, error) {
	user, err := validate(user)
	if err != nil {
		return User{}, err
	}

	user.ID = id
	if !s.users.Replace(id, user) {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// RemoveUser deletes the record. Loans referencing it are left dangling;
// reports resolve missing names to "Unknown".
func (s *service) RemoveUser(ctx context.Context, id int) error {
	if !s.users.Delete(id) {
		return ErrUserNotFound
	}
	return nil
}
