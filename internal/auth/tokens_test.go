package auth_test

import (
	"testing"
	"time"

	"RepairService/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-16-chars"

func TestTokenManager_SignAndParse(t *testing.T) {
	m := auth.NewTokenManager(testSecret, time.Hour)

	token, err := m.Sign("owner-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ownerID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-123", ownerID)
}

func TestTokenManager_Parse(t *testing.T) {
	testCases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := auth.NewTokenManager("another-secret-16-chars!", time.Hour)
				token, err := other.Sign("owner-123")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := auth.NewTokenManager(testSecret, -time.Minute)
				token, err := expired.Sign("owner-123")
				require.NoError(t, err)
				return token
			},
		},
	}

	m := auth.NewTokenManager(testSecret, time.Hour)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Parse(tc.token(t))
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestOwnerContext(t *testing.T) {
	ctx := t.Context()

	_, ok := auth.OwnerFromContext(ctx)
	assert.False(t, ok)

	ctx = auth.WithOwner(ctx, "owner-123")
	ownerID, ok := auth.OwnerFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "owner-123", ownerID)
}
