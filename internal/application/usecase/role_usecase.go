package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/navigation"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// RoleChangeListener se invoca después de persistir un cambio de permisos de un rol.
type RoleChangeListener func(ctx context.Context, role string)

// RoleUseCase administra los permisos por rol. Es el único punto que lee y escribe la
// tabla de permisos; mantiene una caché LRU con expiración para las consultas del menú.
type RoleUseCase struct {
	repo  repository.RolePermissionRepository
	tx    ports.RoleTxRunner
	cache *lru.LRU[string, *entity.RolePermission]
	log   zerolog.Logger

	mu        sync.RWMutex
	listeners []RoleChangeListener
}

// NewRoleUseCase construye el caso de uso. cacheSize <= 0 usa 128 entradas.
// Con tx nil las actualizaciones leen y escriben directamente sobre repo.
func NewRoleUseCase(repo repository.RolePermissionRepository, tx ports.RoleTxRunner, cacheSize int, cacheTTL time.Duration, log zerolog.Logger) *RoleUseCase {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	if tx == nil {
		tx = directRunner{repo: repo}
	}
	return &RoleUseCase{
		repo:  repo,
		tx:    tx,
		cache: lru.NewLRU[string, *entity.RolePermission](cacheSize, nil, cacheTTL),
		log:   log.With().Str("component", "roles").Logger(),
	}
}

// OnChange registra un oyente de cambios de permisos.
func (uc *RoleUseCase) OnChange(l RoleChangeListener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, l)
}

// EnsureDefaults inserta los roles de fábrica que aún no existen.
func (uc *RoleUseCase) EnsureDefaults(ctx context.Context) error {
	now := time.Now()
	defaults := permission.DefaultSets()
	roles := make([]*entity.RolePermission, 0, len(defaults))
	for role, set := range defaults {
		roles = append(roles, &entity.RolePermission{
			ID:          uuid.New().String(),
			Role:        role,
			Permissions: set,
			BuiltIn:     true,
			UpdatedAt:   now,
		})
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Role < roles[j].Role })
	if err := uc.repo.EnsureBuiltIn(ctx, roles); err != nil {
		return fmt.Errorf("roles de fábrica: %w", err)
	}
	uc.cache.Purge()
	return nil
}

// Permissions devuelve el conjunto de permisos del rol tal como está guardado,
// o nil si el rol no existe.
func (uc *RoleUseCase) Permissions(ctx context.Context, role string) (permission.Set, error) {
	rp, err := uc.lookup(ctx, permission.NormalizeRole(role))
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, nil
	}
	return rp.Permissions.Clone(), nil
}

func (uc *RoleUseCase) lookup(ctx context.Context, role string) (*entity.RolePermission, error) {
	if role == "" {
		return nil, nil
	}
	if rp, ok := uc.cache.Get(role); ok {
		return rp, nil
	}
	rp, err := uc.repo.GetByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("permisos del rol %s: %w", role, err)
	}
	uc.cache.Add(role, rp)
	return rp, nil
}

// List devuelve todos los roles ordenados por nombre.
func (uc *RoleUseCase) List(ctx context.Context) (*dto.RoleListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar roles: %w", err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Role < list[j].Role })
	items := make([]dto.RolePermissionsResponse, 0, len(list))
	for _, rp := range list {
		items = append(items, *toRoleResponse(rp))
	}
	return &dto.RoleListResponse{Items: items}, nil
}

// Get devuelve los permisos de un rol. ErrRoleNotFound si no existe.
func (uc *RoleUseCase) Get(ctx context.Context, role string) (*dto.RolePermissionsResponse, error) {
	rp, err := uc.lookup(ctx, permission.NormalizeRole(role))
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, domain.ErrRoleNotFound
	}
	return toRoleResponse(rp), nil
}

// Update aplica un parche parcial a los permisos del rol. Si el rol no existe se crea
// partiendo de un conjunto vacío. Tras persistir invalida la caché y avisa a los oyentes.
func (uc *RoleUseCase) Update(ctx context.Context, role string, in dto.UpdateRolePermissionsRequest) (*dto.RolePermissionsResponse, error) {
	role = permission.NormalizeRole(role)
	if role == "" || len(in.Permissions) == 0 {
		return nil, domain.ErrInvalidInput
	}
	patch := make(map[permission.Key]bool, len(in.Permissions))
	for k, v := range in.Permissions {
		patch[permission.Key(k)] = v
	}

	var (
		current *entity.RolePermission
		changed bool
	)
	err := uc.tx.RunRoles(ctx, func(repo repository.RolePermissionRepository) error {
		rp, err := repo.GetForUpdate(ctx, role)
		if err != nil {
			return fmt.Errorf("permisos del rol %s: %w", role, err)
		}
		if rp == nil {
			rp = &entity.RolePermission{ID: uuid.New().String(), Role: role}
		}
		updated, err := rp.Permissions.Apply(patch)
		if err != nil {
			return err
		}
		current = rp
		if updated.Equal(rp.Permissions) && !rp.UpdatedAt.IsZero() {
			return nil
		}
		rp.Permissions = updated
		rp.UpdatedAt = time.Now()
		if err := repo.Upsert(ctx, rp); err != nil {
			return fmt.Errorf("guardar permisos del rol %s: %w", role, err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return toRoleResponse(current), nil
	}
	uc.cache.Remove(role)
	uc.log.Info().Str("role", role).Int("keys", len(patch)).Msg("permisos del rol actualizados")

	uc.notify(ctx, role)
	return toRoleResponse(current), nil
}

// directRunner ejecuta sin transacción.
type directRunner struct {
	repo repository.RolePermissionRepository
}

func (d directRunner) RunRoles(_ context.Context, fn func(repo repository.RolePermissionRepository) error) error {
	return fn(d.repo)
}

func (uc *RoleUseCase) notify(ctx context.Context, role string) {
	uc.mu.RLock()
	listeners := make([]RoleChangeListener, len(uc.listeners))
	copy(listeners, uc.listeners)
	uc.mu.RUnlock()
	for _, l := range listeners {
		l(ctx, role)
	}
}

func toRoleResponse(rp *entity.RolePermission) *dto.RolePermissionsResponse {
	if rp == nil {
		return nil
	}
	full := rp.Permissions.Complete()
	perms := make(map[string]bool, len(full))
	for k, v := range full {
		perms[string(k)] = v
	}
	return &dto.RolePermissionsResponse{
		Role:        rp.Role,
		Mode:        string(navigation.ModeForRole(rp.Role)),
		BuiltIn:     rp.BuiltIn,
		Permissions: perms,
		UpdatedAt:   rp.UpdatedAt,
	}
}
