package dto

// MenuItemResponse elemento de la barra lateral ya filtrado por permisos.
type MenuItemResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon,omitempty"`
	IsHeader bool   `json:"is_header"`
	GroupID  string `json:"group_id,omitempty"`
}

// MenuResponse salida de GET /api/navigation/menu.
type MenuResponse struct {
	Mode  string             `json:"mode"`
	Items []MenuItemResponse `json:"items"`
}

// MenuEntryDTO entrada editable de la configuración del usuario.
type MenuEntryDTO struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Visible  bool   `json:"visible"`
	Order    int    `json:"order"`
	IsHeader bool   `json:"is_header"`
}

// MenuConfigResponse configuración completa, sin filtrar por permisos.
type MenuConfigResponse struct {
	Mode    string         `json:"mode"`
	Entries []MenuEntryDTO `json:"entries"`
}

// SaveMenuConfigRequest entrada de PUT /api/navigation/config.
type SaveMenuConfigRequest struct {
	Entries []MenuEntryDTO `json:"entries" validate:"required,dive"`
}

// SetVisibilityRequest entrada de PATCH /api/navigation/config/:id.
type SetVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// MoveEntryRequest entrada de POST /api/navigation/config/:id/move.
type MoveEntryRequest struct {
	Position *int `json:"position" validate:"required,min=0"`
}

// CatalogDestinationDTO destino del catálogo estático.
type CatalogDestinationDTO struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Icon       string `json:"icon"`
	Permission string `json:"permission"`
	GroupID    string `json:"group_id,omitempty"`
}

// CatalogGroupDTO grupo del catálogo de administración.
type CatalogGroupDTO struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Destinations []CatalogDestinationDTO `json:"destinations"`
}

// InjectionConditionDTO clave que habilita un destino inyectado; legacy marca alias antiguos.
type InjectionConditionDTO struct {
	Key    string `json:"key"`
	Legacy bool   `json:"legacy"`
}

// InjectableDTO destino de administración que puede aparecer en menús de empleado.
type InjectableDTO struct {
	ID         string                  `json:"id"`
	Conditions []InjectionConditionDTO `json:"conditions"`
}

// CatalogResponse salida de GET /api/navigation/catalog.
type CatalogResponse struct {
	Member     []CatalogDestinationDTO `json:"member"`
	Admin      []CatalogGroupDTO       `json:"admin"`
	Injectable []InjectableDTO         `json:"injectable"`
}
