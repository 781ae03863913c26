package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthToken_CreateAndVerify(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	admin := &models.AdminUser{
		ID:    uuid.New(),
		Login: "admin",
	}

	token, err := at.CreateToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := at.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, payload.AdminID)
	assert.Equal(t, admin.Login, payload.Login)
}

func TestAuthToken_VerifyWithWrongKey(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	token, err := at.CreateToken(&models.AdminUser{ID: uuid.New(), Login: "admin"})
	require.NoError(t, err)

	other := NewAuthToken([]byte("fedcba9876543210"))
	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}
