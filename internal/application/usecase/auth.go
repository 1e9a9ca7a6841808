package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/database"
	"inkwell/internal/domain/repository/session"
	"inkwell/pkg/token"
)

const bcryptCost = 10

type Auth struct {
	writer    database.AdminWriter
	retriever database.AdminRetriever
	sessions  session.Store
	secret    []byte
	tokenTTL  time.Duration
}

func NewAuth(writer database.AdminWriter, retriever database.AdminRetriever,
	sessions session.Store, secret []byte, tokenTTL time.Duration,
) *Auth {
	return &Auth{
		writer:    writer,
		retriever: retriever,
		sessions:  sessions,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

func (a *Auth) Register(ctx context.Context, req dto.RegisterRequest) (*model.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := a.retriever.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Validation("email already exists")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}

	admin := &model.Admin{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := a.writer.Insert(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (a *Auth) Login(ctx context.Context, req dto.LoginRequest) (string, *model.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := a.retriever.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return "", nil, apperror.Unauthenticated("invalid email or password")
		}

		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, apperror.Unauthenticated("invalid email or password")
	}

	signed, err := token.Generate(a.secret, admin.ID.Hex(), a.tokenTTL)
	if err != nil {
		return "", nil, apperror.Internal("failed to sign token", err)
	}

	return signed, admin, nil
}

// Logout shadows the token in the revocation store for its remaining
// lifetime; the token stays structurally valid but is rejected on arrival.
func (a *Auth) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return apperror.Unauthenticated("missing token")
	}

	return a.sessions.Revoke(ctx, tokenID, time.Until(expiresAt))
}
