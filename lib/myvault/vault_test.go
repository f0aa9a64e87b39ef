package myvault

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/superapp/lib/mystore"
)

func TestVault(t *testing.T) {
	c := context.TODO()

	store, cleanup, err := mystore.NewFileStore[Token](c, t.TempDir())
	assert.NoError(t, err)
	defer cleanup()

	vault := New(store)
	uid := CreateTokenUID("google")

	t.Run("Absent token is not an error", func(t *testing.T) {
		_, exists, err := vault.Get(c, uid)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Round trip", func(t *testing.T) {
		expiry := time.Date(2023, 2, 28, 0, 58, 59, 0, time.UTC)
		err := vault.Put(c, uid, Token{
			AccessToken:  "abc123",
			RefreshToken: "rst456",
			TokenType:    "Bearer",
			Scopes:       []string{"https://www.googleapis.com/auth/calendar.events"},
			Expiry:       &expiry,
		})
		assert.NoError(t, err)

		token, exists, err := vault.Get(c, uid)
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "abc123", token.AccessToken)
		assert.Equal(t, "rst456", token.RefreshToken)
		assert.Equal(t, expiry, token.Expiry.UTC())
	})

	t.Run("Replace is wholesale", func(t *testing.T) {
		err := vault.Put(c, uid, Token{
			AccessToken: "new-token",
			TokenType:   "Bearer",
		})
		assert.NoError(t, err)

		token, exists, err := vault.Get(c, uid)
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "new-token", token.AccessToken)
		assert.Empty(t, token.RefreshToken)
	})
}
