package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// RoleHandler administra los permisos por rol (protegido con roles_manage).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles y permisos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Permisos de un rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        role  path  string  true  "Nombre del rol"
// @Success      200   {object}  dto.RolePermissionsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{role}/permissions [get]
func (h *RoleHandler) Get(c *fiber.Ctx) error {
	role := c.Params("role")
	if role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "role es requerido"})
	}
	out, err := h.uc.Get(c.UserContext(), role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar permisos de un rol
// @Description  Parche parcial: solo se modifican las claves enviadas. Los menús guardados de los usuarios del rol se resincronizan.
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        role  path  string                            true  "Nombre del rol"
// @Param        body  body  dto.UpdateRolePermissionsRequest  true  "permisos"
// @Success      200   {object}  dto.RolePermissionsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/roles/{role}/permissions [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRolePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Permissions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "permissions es requerido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("role"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
