package serverutils

import (
	"context"

	"ouderschapsplan-api/internal/auth"
	"ouderschapsplan-api/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

const (
	UserIdKey      = "user_id"
	LegacyIdHeader = "x-user-id"
)

type CredentialResolver interface {
	Resolve(ctx context.Context, creds auth.Credentials) auth.AuthResult
}

// AuthMiddleware resolves the caller and stores the internal user id under
// Locals("user_id"). Unresolved callers get a 401 with the failure reason.
func AuthMiddleware(resolver CredentialResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		result := resolver.Resolve(ctx.UserContext(), auth.Credentials{
			Authorization: ctx.Get(fiber.HeaderAuthorization),
			LegacyUserId:  ctx.Get(LegacyIdHeader),
		})
		if result.Err != nil {
			return apperror.Internal("Authentication failed", result.Err)
		}
		if !result.Authenticated || result.User == nil {
			return apperror.Unauthorized(result.Error)
		}

		ctx.Locals(UserIdKey, result.User.Id)
		if result.Auth0Id != "" {
			ctx.Locals("auth0_id", result.Auth0Id)
		}
		return ctx.Next()
	}
}

// UserId returns the id stored by AuthMiddleware.
func UserId(ctx *fiber.Ctx) (uint, error) {
	id, ok := ctx.Locals(UserIdKey).(uint)
	if !ok || id == 0 {
		return 0, apperror.Unauthorized("Unauthorized")
	}
	return id, nil
}
