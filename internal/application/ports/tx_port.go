package ports

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// RoleTxRunner ejecuta una función dentro de una transacción, pasando el repositorio de
// roles atado a esa tx. Garantiza que dos parches simultáneos del mismo rol no se pisen.
type RoleTxRunner interface {
	RunRoles(ctx context.Context, fn func(repo repository.RolePermissionRepository) error) error
}
