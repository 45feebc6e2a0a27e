package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
)

// permissionChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *usecase.RoleUseCase; el uso de interfaz evita el import circular.
type permissionChecker interface {
	Permissions(ctx context.Context, role string) (permission.Set, error)
}

// RequirePermission verifica que el rol del token tenga alguno de los permisos indicados
// (superAdmin siempre pasa). Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 PERMISSION_DENIED si ningún permiso se cumple.
//   - 503 PERMISSION_CHECK_FAILED ante fallos de infraestructura.
func RequirePermission(checker permissionChecker, keys ...permission.Key) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}

		set, err := checker.Permissions(c.UserContext(), role)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudieron verificar los permisos, intente más tarde",
			})
		}

		if !permission.AnyOf(set, keys...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_DENIED",
				Message: "el rol '" + role + "' no tiene el permiso requerido",
			})
		}

		return c.Next()
	}
}
