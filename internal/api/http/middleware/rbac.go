package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
	pasetotoken "github.com/carlosmariath/painel-clinica-sub001/pkg/paseto"
)

// RequirePermission checks if the authenticated user has the given staff
// permission in the sys domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSelfPermission checks the permission in the user's own domain.
// Used for self-owned resources such as sessions and notifications.
func RequireSelfPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		userID := claims.UserID.String()
		subject := authorize.GroupSubject(userID)
		if err := auth.MustEnforce(c.Context(), subject, authorize.UserDomain(userID), resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
