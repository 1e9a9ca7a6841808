package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("unit-test-secret")

func TestGenerateAndParse(t *testing.T) {
	signed, err := Generate(secret, "admin-1", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(secret, signed)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenIDsAreUnique(t *testing.T) {
	first, err := Generate(secret, "admin-1", time.Hour)
	require.NoError(t, err)
	second, err := Generate(secret, "admin-1", time.Hour)
	require.NoError(t, err)

	a, err := Parse(secret, first)
	require.NoError(t, err)
	b, err := Parse(secret, second)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseRejects(t *testing.T) {
	signed, err := Generate(secret, "admin-1", time.Hour)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := Parse([]byte("other"), signed)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := Generate(secret, "admin-1", -time.Minute)
		require.NoError(t, err)

		_, err = Parse(secret, expired)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := Parse(secret, "not.a.token")
		assert.Error(t, err)
	})
}
