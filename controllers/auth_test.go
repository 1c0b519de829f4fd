package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisondupain/boulangerie-api/models"
)

func TestRegistrationIgnoresClientSuppliedRole(t *testing.T) {
	// A registration body trying to claim the admin role
	payload := []byte(`{
		"name": "Alice",
		"email": "alice@example.com",
		"password": "secret",
		"phone": "0601020304",
		"role_id": 1,
		"role": {"id": 1, "name": "admin"}
	}`)

	var input RegisterInput
	require.NoError(t, json.Unmarshal(payload, &input))

	clientRole := models.Role{ID: 2, Name: "client"}
	user := newCustomer(input, "hashed-password", clientRole)

	assert.Equal(t, uint(2), user.RoleID, "registration must always yield the client role")
	assert.Equal(t, "client", user.Role.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.Password)
}
