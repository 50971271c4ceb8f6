package membership

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliotek/internal/store"
)

func newTestService(t *testing.T) (Service, *store.Table[User]) {
	t.Helper()
	users := store.NewTable[User]()
	return NewService(users), users
}

func TestAdminRequiresCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddUser(ctx, User{Name: "John", Email: "john@example.com", Role: RoleAdmin, Username: "johndoe"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddUser(ctx, User{Name: "John", Email: "john@example.com", Role: RoleAdmin, Password: "secret"})
	assert.ErrorIs(t, err, ErrValidation)

	created, err := svc.AddUser(ctx, User{Name: "John", Email: "john@example.com", Role: RoleAdmin, Username: "johndoe", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "johndoe", created.Username)
	assert.Equal(t, "secret", created.Password)
}

func TestMemberCredentialsAreStripped(t *testing.T) {
	svc, users := newTestService(t)

	created, err := svc.AddUser(context.Background(), User{
		Name: "Jane", Email: "jane@example.com", Role: RoleMember,
		Username: "jane", Password: "should-be-dropped",
	})
	require.NoError(t, err)
	assert.Empty(t, created.Username)
	assert.Empty(t, created.Password)

	stored, ok := users.Get(created.ID)
	require.True(t, ok)
	assert.Empty(t, stored.Password)
}

func TestEmailAndRoleValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddUser(ctx, User{Name: "x", Email: "not-an-email", Role: RoleMember})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddUser(ctx, User{Name: "x", Email: "x@example.com", Role: "librarian"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateAppliesSameRules(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddUser(ctx, User{Name: "Jane", Email: "jane@example.com", Role: RoleMember})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, created.ID, User{Name: "Jane", Email: "jane@example.com", Role: RoleAdmin})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.UpdateUser(ctx, created.ID, User{Name: "Jane", Email: "jane@example.com", Role: RoleAdmin, Username: "jane", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, updated.Role)

	_, err = svc.UpdateUser(ctx, 42, User{Name: "x", Email: "x@example.com", Role: RoleMember})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchUsers(t *testing.T) {
	svc, users := newTestService(t)
	SeedSample(users)
	ctx := context.Background()

	byName := svc.SearchUsers(ctx, "jane")
	require.Len(t, byName, 1)
	assert.Equal(t, 2, byName[0].ID)

	byRole := svc.SearchUsers(ctx, "member")
	assert.Len(t, byRole, 3)

	byID := svc.SearchUsers(ctx, "4")
	require.NotEmpty(t, byID)
	assert.Equal(t, 4, byID[0].ID)
}

func TestRemoveUser(t *testing.T) {
	svc, users := newTestService(t)
	SeedSample(users)
	ctx := context.Background()

	require.NoError(t, svc.RemoveUser(ctx, 3))
	assert.Equal(t, 3, users.Len())
	assert.ErrorIs(t, svc.RemoveUser(ctx, 3), ErrUserNotFound)
}
