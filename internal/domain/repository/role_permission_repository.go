package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// RolePermissionRepository persiste los permisos por rol.
// GetByRole devuelve (nil, nil) cuando el rol no existe.
type RolePermissionRepository interface {
	GetByRole(ctx context.Context, role string) (*entity.RolePermission, error)
	// GetForUpdate lee el rol bloqueándolo para un read-modify-write (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, role string) (*entity.RolePermission, error)
	List(ctx context.Context) ([]*entity.RolePermission, error)
	Upsert(ctx context.Context, rp *entity.RolePermission) error
	// EnsureBuiltIn inserta los roles que falten sin tocar los existentes.
	EnsureBuiltIn(ctx context.Context, roles []*entity.RolePermission) error
}
