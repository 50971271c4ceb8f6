// internal/membership/seed.go
package membership

import "bibliotek/internal/store"

// SeedSample loads the demo user fixtures.
func SeedSample(users *store.Table[User]) {
	users.Seed(map[int]User{
		1: {ID: 1, Name: "John Doe", Email: "john@example.com", Role: RoleAdmin, Username: "johndoe", Password: "admin123"},
		2: {ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: RoleMember},
		3: {ID: 3, Name: "Bob Wilson", Email: "bob@example.com", Role: RoleMember},
		4: {ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: RoleMember},
	})
}
