package dto

import "time"

// RolePermissionsResponse salida con los permisos efectivos de un rol.
// Permissions trae todas las claves conocidas, con los valores por defecto aplicados.
type RolePermissionsResponse struct {
	Role        string          `json:"role"`
	Mode        string          `json:"mode"` // member | admin
	BuiltIn     bool            `json:"built_in"`
	Permissions map[string]bool `json:"permissions"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RoleListResponse listado de roles con sus permisos.
type RoleListResponse struct {
	Items []RolePermissionsResponse `json:"items"`
}

// UpdateRolePermissionsRequest parche parcial de permisos: solo se tocan las claves enviadas.
type UpdateRolePermissionsRequest struct {
	Permissions map[string]bool `json:"permissions" validate:"required"`
}
