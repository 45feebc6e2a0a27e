package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/Restaurante-api/internal/application/menu"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/navigation"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MenuService *menu.Service
	RoleUC      *usecase.RoleUseCase
	Users       repository.UserRepository
	Catalog     *navigation.Catalog
	Injections  *navigation.InjectionTable
	Metrics     *metrics.NavMetrics
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	if deps.Users != nil {
		protected.Use(RequireActiveUser(deps.Users))
	}

	// Navegación del usuario autenticado
	nav := protected.Group("/navigation")
	navHandler := NewNavigationHandler(deps.MenuService, deps.Catalog, deps.Injections)
	nav.Get("/menu", navHandler.Menu)
	nav.Get("/catalog", navHandler.Catalog)
	nav.Get("/config", navHandler.GetConfig)
	nav.Put("/config", navHandler.SaveConfig)
	nav.Delete("/config", navHandler.Reset)
	nav.Patch("/config/:id", navHandler.SetVisibility)
	nav.Post("/config/:id/move", navHandler.Move)

	// Administración de permisos por rol
	roles := protected.Group("/roles", RequirePermission(deps.RoleUC, permission.RolesManage))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Get("/:role/permissions", roleHandler.Get)
	roles.Put("/:role/permissions", roleHandler.Update)
}
