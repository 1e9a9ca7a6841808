package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
	"inkwell/pkg/token"
)

var testSecret = []byte("test-signing-secret")

func newTestAuth() (*Auth, *fakeAdminStore, *fakeSessionStore) {
	admins := newFakeAdminStore()
	sessions := newFakeSessionStore()

	return NewAuth(admins, admins, sessions, testSecret, time.Hour), admins, sessions
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an admin with a hashed password", func(t *testing.T) {
		auth, _, _ := newTestAuth()

		admin, err := auth.Register(ctx, dto.RegisterRequest{
			FullName: "Ada Writer",
			Email:    "  Ada@Example.com ",
			Password: "correct horse",
		})
		require.NoError(t, err)

		assert.False(t, admin.ID.IsZero())
		assert.Equal(t, "ada@example.com", admin.Email)
		assert.NotEqual(t, "correct horse", admin.PasswordHash)
		assert.NotEmpty(t, admin.PasswordHash)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		auth, _, _ := newTestAuth()

		_, err := auth.Register(ctx, dto.RegisterRequest{
			FullName: "Ada", Email: "ada@example.com", Password: "password1",
		})
		require.NoError(t, err)

		_, err = auth.Register(ctx, dto.RegisterRequest{
			FullName: "Imposter", Email: "ADA@example.com", Password: "password2",
		})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a verifiable token", func(t *testing.T) {
		auth, _, _ := newTestAuth()

		registered, err := auth.Register(ctx, dto.RegisterRequest{
			FullName: "Ada", Email: "ada@example.com", Password: "correct horse",
		})
		require.NoError(t, err)

		signed, admin, err := auth.Login(ctx, dto.LoginRequest{
			Email: "ada@example.com", Password: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, admin.ID)

		claims, err := token.Parse(testSecret, signed)
		require.NoError(t, err)
		assert.Equal(t, registered.ID.Hex(), claims.AdminID)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong password is unauthenticated", func(t *testing.T) {
		auth, _, _ := newTestAuth()

		_, err := auth.Register(ctx, dto.RegisterRequest{
			FullName: "Ada", Email: "ada@example.com", Password: "correct horse",
		})
		require.NoError(t, err)

		_, _, err = auth.Login(ctx, dto.LoginRequest{
			Email: "ada@example.com", Password: "wrong",
		})
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthenticated))
	})

	t.Run("unknown email is unauthenticated, not not-found", func(t *testing.T) {
		auth, _, _ := newTestAuth()

		_, _, err := auth.Login(ctx, dto.LoginRequest{
			Email: "ghost@example.com", Password: "anything",
		})
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthenticated))
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the token for its remaining lifetime", func(t *testing.T) {
		auth, _, sessions := newTestAuth()

		require.NoError(t, auth.Logout(ctx, "token-123", time.Now().Add(time.Hour)))

		revoked, err := sessions.IsRevoked(ctx, "token-123")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("expired token is a no-op", func(t *testing.T) {
		auth, _, sessions := newTestAuth()

		require.NoError(t, auth.Logout(ctx, "token-456", time.Now().Add(-time.Minute)))

		revoked, err := sessions.IsRevoked(ctx, "token-456")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("missing token id is unauthenticated", func(t *testing.T) {
		auth, _, _ := newTestAuth()

		err := auth.Logout(ctx, "", time.Now().Add(time.Hour))
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthenticated))
	})
}
