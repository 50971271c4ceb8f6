package membership

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliotek/internal/store"
)

func TestAddUserEndpointValidation(t *testing.T) {
	users := store.NewTable[User]()
	srv := httptest.NewServer(NewHandler(NewService(users)).Routes())
	defer srv.Close()

	body, _ := json.Marshal(User{Name: "John", Email: "john@example.com", Role: RoleAdmin})
	resp, err := http.Post(srv.URL+"/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ = json.Marshal(User{Name: "Jane", Email: "jane@example.com", Role: RoleMember})
	resp, err = http.Post(srv.URL+"/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 1, created.ID)
}
