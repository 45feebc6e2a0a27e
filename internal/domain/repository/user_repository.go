package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura de usuarios que necesita la navegación.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// ListIDsByRole devuelve los ids de usuarios con estado active cuyo rol, normalizado,
	// coincide con el indicado.
	ListIDsByRole(ctx context.Context, role string) ([]string, error)
}
