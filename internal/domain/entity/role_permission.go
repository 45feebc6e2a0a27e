package entity

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
)

// RolePermission es el conjunto de permisos persistido de un rol.
type RolePermission struct {
	ID          string
	Role        string
	Permissions permission.Set
	BuiltIn     bool
	UpdatedAt   time.Time
}
