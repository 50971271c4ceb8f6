// internal/membership/service.go
package membership

import "context"

// Service defines the interface for the membership service.
type Service interface {
	AddUser(ctx context.Context, user User) (User, error)
	ListUsers(ctx context.Context) map[int]User
	SearchUsers(ctx context.Context, keyword string) []User
	UpdateUser(ctx context.Context, id int, user User) (User, error)
	RemoveUser(ctx context.Context, id int) error
}
