package abstraction

import (
	"context"
	"time"

	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/model"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*model.Admin, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (string, *model.Admin, error)
	// Logout revokes the token with the given ID until it would have expired.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
