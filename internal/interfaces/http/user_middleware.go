package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// RequireActiveUser rechaza a usuarios desactivados cuyo token sigue vigente y tokens cuyo
// restaurant_id no coincide con el del usuario en el directorio.
// Un usuario que no está en el directorio pasa: la identidad la emite un servicio externo.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireActiveUser(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return unauthorized(c)
		}
		u, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "USER_CHECK_FAILED",
				Message: "no se pudo verificar el usuario, intente más tarde",
			})
		}
		if u != nil && u.Status == entity.UserStatusInactive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "USER_INACTIVE",
				Message: "el usuario está desactivado",
			})
		}
		if u != nil && u.RestaurantID != "" && u.RestaurantID != GetRestaurantID(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "RESTAURANT_MISMATCH",
				Message: "el token no corresponde al restaurante del usuario",
			})
		}
		return c.Next()
	}
}
