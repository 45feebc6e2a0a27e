package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/menu"
	"github.com/jhoicas/Restaurante-api/internal/domain/navigation"
)

// NavigationHandler expone el menú resuelto y la configuración editable del usuario.
type NavigationHandler struct {
	svc        *menu.Service
	catalog    *navigation.Catalog
	injections *navigation.InjectionTable
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(svc *menu.Service, catalog *navigation.Catalog, injections *navigation.InjectionTable) *NavigationHandler {
	return &NavigationHandler{svc: svc, catalog: catalog, injections: injections}
}

// identity devuelve el usuario y rol del token; ok=false si falta alguno.
func identity(c *fiber.Ctx) (userID, role string, ok bool) {
	userID, role = GetUserID(c), GetRole(c)
	return userID, role, userID != "" && role != ""
}

// Menu godoc
// @Summary      Menú lateral del usuario
// @Description  Sincroniza la configuración guardada con catálogo y permisos y devuelve la lista ordenada y filtrada.
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/navigation/menu [get]
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	userID, role, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	mode, items := h.svc.Menu(c.UserContext(), userID, role)
	out := dto.MenuResponse{Mode: string(mode), Items: make([]dto.MenuItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, dto.MenuItemResponse{
			ID: it.ID, Label: it.Label, Icon: it.Icon, IsHeader: it.IsHeader, GroupID: it.GroupID,
		})
	}
	return c.JSON(out)
}

// GetConfig godoc
// @Summary      Configuración de menú editable
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MenuConfigResponse
// @Router       /api/navigation/config [get]
func (h *NavigationHandler) GetConfig(c *fiber.Ctx) error {
	userID, role, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	mode, entries := h.svc.Config(c.UserContext(), userID, role)
	return c.JSON(toConfigResponse(mode, entries))
}

// SaveConfig godoc
// @Summary      Guardar configuración de menú completa
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveMenuConfigRequest  true  "Entradas con orden y visibilidad"
// @Success      200   {object}  dto.MenuConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/navigation/config [put]
func (h *NavigationHandler) SaveConfig(c *fiber.Ctx) error {
	userID, role, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.SaveMenuConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entries es requerido"})
	}
	entries := make([]navigation.MenuEntry, 0, len(in.Entries))
	for _, e := range in.Entries {
		entries = append(entries, navigation.MenuEntry{
			ID: e.ID, Label: e.Label, Visible: e.Visible, Order: e.Order, IsHeader: e.IsHeader,
		})
	}
	saved, err := h.svc.Replace(c.UserContext(), userID, role, entries)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toConfigResponse(navigation.ModeForRole(role), saved))
}

// SetVisibility godoc
// @Summary      Mostrar u ocultar una entrada
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la entrada"
// @Param        body  body  dto.SetVisibilityRequest  true  "visible"
// @Success      200   {object}  dto.MenuConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/navigation/config/{id} [patch]
func (h *NavigationHandler) SetVisibility(c *fiber.Ctx) error {
	userID, role, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.SetVisibilityRequest
	if err := c.BodyParser(&in); err != nil || in.Visible == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "visible es requerido"})
	}
	entries, err := h.svc.SetVisible(c.UserContext(), userID, role, c.Params("id"), *in.Visible)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toConfigResponse(navigation.ModeForRole(role), entries))
}

// Move godoc
// @Summary      Reubicar una entrada
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la entrada"
// @Param        body  body  dto.MoveEntryRequest  true  "posición destino (0 = primera)"
// @Success      200   {object}  dto.MenuConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/navigation/config/{id}/move [post]
func (h *NavigationHandler) Move(c *fiber.Ctx) error {
	userID, role, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.MoveEntryRequest
	if err := c.BodyParser(&in); err != nil || in.Position == nil || *in.Position < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "position debe ser un entero >= 0"})
	}
	entries, err := h.svc.Move(c.UserContext(), userID, role, c.Params("id"), *in.Position)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toConfigResponse(navigation.ModeForRole(role), entries))
}

// Reset godoc
// @Summary      Restablecer el menú de fábrica
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MenuConfigResponse
// @Router       /api/navigation/config [delete]
func (h *NavigationHandler) Reset(c *fiber.Ctx) error {
	userID, role, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	entries, err := h.svc.Reset(c.UserContext(), userID, role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toConfigResponse(navigation.ModeForRole(role), entries))
}

// Catalog godoc
// @Summary      Catálogo estático de destinos
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/navigation/catalog [get]
func (h *NavigationHandler) Catalog(c *fiber.Ctx) error {
	out := dto.CatalogResponse{}
	for _, d := range h.catalog.Member() {
		out.Member = append(out.Member, toDestinationDTO(d))
	}
	for _, g := range h.catalog.Groups() {
		group := dto.CatalogGroupDTO{ID: g.ID, Title: g.Title}
		for _, d := range g.Destinations {
			group.Destinations = append(group.Destinations, toDestinationDTO(d))
		}
		out.Admin = append(out.Admin, group)
	}
	for _, r := range h.injections.Rules() {
		inj := dto.InjectableDTO{ID: r.DestinationID}
		for _, cond := range r.Conditions {
			inj.Conditions = append(inj.Conditions, dto.InjectionConditionDTO{Key: string(cond.Key), Legacy: cond.Legacy})
		}
		out.Injectable = append(out.Injectable, inj)
	}
	return c.JSON(out)
}

func toDestinationDTO(d navigation.Destination) dto.CatalogDestinationDTO {
	return dto.CatalogDestinationDTO{
		ID: d.ID, Label: d.Label, Icon: d.Icon, Permission: string(d.Permission), GroupID: d.GroupID,
	}
}

func toConfigResponse(mode navigation.Mode, entries []navigation.MenuEntry) dto.MenuConfigResponse {
	out := dto.MenuConfigResponse{Mode: string(mode), Entries: make([]dto.MenuEntryDTO, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, dto.MenuEntryDTO{
			ID: e.ID, Label: e.Label, Visible: e.Visible, Order: e.Order, IsHeader: e.IsHeader,
		})
	}
	return out
}
