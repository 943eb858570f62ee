package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	manager := NewManager("test-secret", 24)

	tokenString, err := manager.GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := manager.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.True(t, manager.IsAdminToken(tokenString))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewManager("test-secret", 24)
	other := NewManager("other-secret", 24)

	tokenString, err := manager.GenerateAdminToken()
	require.NoError(t, err)

	_, err = other.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.False(t, other.IsAdminToken(tokenString))
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewManager("test-secret", 24)

	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.False(t, manager.IsAdminToken(""))
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewManager("test-secret", -1)

	tokenString, err := manager.GenerateAdminToken()
	require.NoError(t, err)

	assert.False(t, manager.IsAdminToken(tokenString))
}
