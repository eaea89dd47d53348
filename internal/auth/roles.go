package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clothes-service/internal/domain"
	apperrors "github.com/spec-kit/clothes-service/pkg/util"
)

// AdminRoles may perform catalog writes.
var AdminRoles = []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}

// RequireRole ensures the authenticated principal holds one of the allowed roles.
// It must be mounted after AuthMiddleware.Handle.
func RequireRole(recorder RejectionRecorder, allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c.UserContext())
		if !ok {
			return apperrors.NewUnauthorized(MsgMissingCredentials)
		}
		if !permits(allowedSet, principal.User.Role) {
			if recorder != nil {
				recorder.RecordAuthRejection("insufficient_role")
			}
			return apperrors.NewForbiddenCause(MsgForbidden, ErrInsufficientRole)
		}
		return c.Next()
	}
}

// RequireAdmin is RequireRole over AdminRoles.
func RequireAdmin(recorder RejectionRecorder) fiber.Handler {
	return RequireRole(recorder, AdminRoles...)
}

func permits(allowed map[domain.Role]struct{}, role domain.Role) bool {
	if !role.Valid() {
		return false
	}
	_, ok := allowed[role]
	return ok
}
