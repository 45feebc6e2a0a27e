package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.RolePermissionRepository = (*RolePermissionRepo)(nil)

// RolePermissionRepo implementación de RolePermissionRepository sobre PostgreSQL.
// Los permisos se guardan como JSONB {clave: bool}.
type RolePermissionRepo struct {
	q Querier
}

// NewRolePermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRolePermissionRepository(q Querier) *RolePermissionRepo {
	return &RolePermissionRepo{q: q}
}

// GetByRole obtiene los permisos de un rol; (nil, nil) si no existe.
func (r *RolePermissionRepo) GetByRole(ctx context.Context, role string) (*entity.RolePermission, error) {
	query := `
		SELECT id, role, permissions, built_in, updated_at
		FROM role_permissions WHERE role = $1`
	rp, err := scanRolePermission(r.q.QueryRow(ctx, query, role))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role permissions: %w", err)
	}
	return rp, nil
}

// GetForUpdate igual que GetByRole pero bloquea la fila hasta el fin de la transacción.
// Solo tiene efecto si el repositorio se construyó con una tx.
func (r *RolePermissionRepo) GetForUpdate(ctx context.Context, role string) (*entity.RolePermission, error) {
	query := `
		SELECT id, role, permissions, built_in, updated_at
		FROM role_permissions WHERE role = $1
		FOR UPDATE`
	rp, err := scanRolePermission(r.q.QueryRow(ctx, query, role))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role permissions for update: %w", err)
	}
	return rp, nil
}

// List devuelve todos los roles ordenados por nombre.
func (r *RolePermissionRepo) List(ctx context.Context) ([]*entity.RolePermission, error) {
	query := `
		SELECT id, role, permissions, built_in, updated_at
		FROM role_permissions ORDER BY role`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.RolePermission
	for rows.Next() {
		rp, err := scanRolePermission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role permissions: %w", err)
		}
		list = append(list, rp)
	}
	return list, rows.Err()
}

// Upsert inserta o reemplaza los permisos de un rol.
func (r *RolePermissionRepo) Upsert(ctx context.Context, rp *entity.RolePermission) error {
	raw, err := json.Marshal(rp.Permissions)
	if err != nil {
		return fmt.Errorf("marshal permissions: %w", err)
	}
	query := `
		INSERT INTO role_permissions (id, role, permissions, built_in, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (role) DO UPDATE SET permissions = EXCLUDED.permissions, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, rp.ID, rp.Role, raw, rp.BuiltIn, rp.UpdatedAt); err != nil {
		return fmt.Errorf("upsert role permissions: %w", err)
	}
	return nil
}

// EnsureBuiltIn inserta en un solo lote los roles que falten; los existentes no se tocan.
func (r *RolePermissionRepo) EnsureBuiltIn(ctx context.Context, roles []*entity.RolePermission) error {
	if len(roles) == 0 {
		return nil
	}
	query := `
		INSERT INTO role_permissions (id, role, permissions, built_in, updated_at)
		VALUES ($1, $2, $3, TRUE, $4)
		ON CONFLICT (role) DO NOTHING`
	batch := &pgx.Batch{}
	for _, rp := range roles {
		raw, err := json.Marshal(rp.Permissions)
		if err != nil {
			return fmt.Errorf("marshal permissions %s: %w", rp.Role, err)
		}
		batch.Queue(query, rp.ID, rp.Role, raw, rp.UpdatedAt)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for _, rp := range roles {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert built-in role %s: %w", rp.Role, err)
		}
	}
	return nil
}

func scanRolePermission(row pgx.Row) (*entity.RolePermission, error) {
	var rp entity.RolePermission
	var raw []byte
	if err := row.Scan(&rp.ID, &rp.Role, &raw, &rp.BuiltIn, &rp.UpdatedAt); err != nil {
		return nil, err
	}
	set := permission.Set{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &set); err != nil {
			return nil, fmt.Errorf("unmarshal permissions %s: %w", rp.Role, err)
		}
	}
	rp.Permissions = set
	return &rp, nil
}
