package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/repository/database"
	"inkwell/internal/domain/repository/session"
	"inkwell/internal/presentation"
	"inkwell/pkg/token"
)

// AuthMiddleware verifies the Bearer token, rejects revoked tokens, and
// checks the admin still exists before loading its identity into the
// request context.
func AuthMiddleware(secret []byte, sessions session.Store, admins database.AdminRetriever) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if authHeader == "" {
				return unauthorized(ctx, "missing Authorization header")
			}
			if !strings.HasPrefix(authHeader, presentation.AuthScheme+" ") {
				return unauthorized(ctx, "missing Bearer prefix")
			}

			claims, err := token.Parse(secret, strings.TrimPrefix(authHeader, presentation.AuthScheme+" "))
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}

			revoked, err := sessions.IsRevoked(ctx.Request().Context(), claims.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to verify token")
			}
			if revoked {
				return unauthorized(ctx, "token has been revoked")
			}

			adminID, err := primitive.ObjectIDFromHex(claims.AdminID)
			if err != nil {
				return unauthorized(ctx, "invalid token subject")
			}

			if _, err := admins.GetByID(ctx.Request().Context(), adminID); err != nil {
				return unauthorized(ctx, "admin no longer exists")
			}

			ctx.Set(presentation.KeyAdminID, adminID)
			ctx.Set(presentation.KeyTokenID, claims.ID)
			ctx.Set(presentation.KeyTokenExpiry, claims.ExpiresAt.Time)

			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, dto.MutationResponse{
		Success: false,
		Message: message,
	})
}
