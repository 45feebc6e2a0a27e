package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de lectura de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, restaurant_id, email, name, role, status, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.RestaurantID, &u.Email, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// ListIDsByRole lista los ids de los usuarios activos con ese rol.
// La columna role la escribe el servicio de identidad tal cual ("Cocina", "Recepción"),
// así que la comparación se hace sobre el rol normalizado y no en SQL.
func (r *UserRepo) ListIDsByRole(ctx context.Context, role string) ([]string, error) {
	role = permission.NormalizeRole(role)
	query := `SELECT id, role FROM users WHERE status = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, entity.UserStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id, userRole string
		if err := rows.Scan(&id, &userRole); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		if permission.NormalizeRole(userRole) == role {
			ids = append(ids, id)
		}
	}
	return ids, rows.Err()
}
