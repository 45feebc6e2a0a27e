package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var (
	_ repository.RolePermissionRepository = (*RolePermissionRepo)(nil)
	_ ports.RoleTxRunner                  = (*RolePermissionRepo)(nil)
)

// RolePermissionRepo permisos por rol en memoria (NAV_STORE=memory).
// También hace de RoleTxRunner: serializa los read-modify-write con txMu.
type RolePermissionRepo struct {
	txMu  sync.Mutex
	mu    sync.RWMutex
	roles map[string]*entity.RolePermission
}

func NewRolePermissionRepository() *RolePermissionRepo {
	return &RolePermissionRepo{roles: make(map[string]*entity.RolePermission)}
}

func (r *RolePermissionRepo) GetByRole(_ context.Context, role string) (*entity.RolePermission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rp, ok := r.roles[role]
	if !ok {
		return nil, nil
	}
	return copyRole(rp), nil
}

func (r *RolePermissionRepo) GetForUpdate(ctx context.Context, role string) (*entity.RolePermission, error) {
	return r.GetByRole(ctx, role)
}

// RunRoles ejecuta fn en exclusión mutua con otros RunRoles.
func (r *RolePermissionRepo) RunRoles(_ context.Context, fn func(repo repository.RolePermissionRepository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r)
}

func (r *RolePermissionRepo) List(_ context.Context) ([]*entity.RolePermission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.RolePermission, 0, len(r.roles))
	for _, rp := range r.roles {
		out = append(out, copyRole(rp))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out, nil
}

func (r *RolePermissionRepo) Upsert(_ context.Context, rp *entity.RolePermission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[rp.Role] = copyRole(rp)
	return nil
}

func (r *RolePermissionRepo) EnsureBuiltIn(_ context.Context, roles []*entity.RolePermission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rp := range roles {
		if _, ok := r.roles[rp.Role]; !ok {
			r.roles[rp.Role] = copyRole(rp)
		}
	}
	return nil
}

func copyRole(rp *entity.RolePermission) *entity.RolePermission {
	c := *rp
	c.Permissions = rp.Permissions.Clone()
	return &c
}

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio de usuarios en memoria. Add lo usan las pruebas y el modo local.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]*entity.User)}
}

// Add registra o reemplaza un usuario.
func (r *UserRepo) Add(u *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *u
	r.users[u.ID] = &c
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *UserRepo) ListIDsByRole(_ context.Context, role string) ([]string, error) {
	role = permission.NormalizeRole(role)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for id, u := range r.users {
		if u.Status == entity.UserStatusActive && permission.NormalizeRole(u.Role) == role {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
