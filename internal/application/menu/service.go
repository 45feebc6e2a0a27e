package menu

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/navigation"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// PermissionSource entrega el conjunto de permisos vigente de un rol.
// Devuelve (nil, nil) cuando el rol no existe. Lo implementa *usecase.RoleUseCase.
type PermissionSource interface {
	Permissions(ctx context.Context, role string) (permission.Set, error)
}

// Service carga, sincroniza y guarda la configuración de menú de cada usuario.
// Los fallos de escritura se registran y no se propagan: la lista en memoria ya es correcta
// y se vuelve a escribir en la siguiente mutación.
type Service struct {
	store   repository.ConfigStore
	engine  *navigation.Engine
	perms   PermissionSource
	users   repository.UserRepository
	metrics ports.NavMetrics
	log     zerolog.Logger
}

// NewService construye el servicio. metrics puede ser nil.
func NewService(
	store repository.ConfigStore,
	engine *navigation.Engine,
	perms PermissionSource,
	users repository.UserRepository,
	metrics ports.NavMetrics,
	log zerolog.Logger,
) *Service {
	if metrics == nil {
		metrics = ports.NopNavMetrics{}
	}
	return &Service{
		store:   store,
		engine:  engine,
		perms:   perms,
		users:   users,
		metrics: metrics,
		log:     log.With().Str("component", "menu").Logger(),
	}
}

// ConfigKey es la clave estable del registro de configuración de (modo, usuario).
func ConfigKey(mode navigation.Mode, userID string) string {
	return fmt.Sprintf("nav:%s:%s", mode, userID)
}

// Load devuelve la configuración guardada o, si no existe o no se puede leer, la de fábrica.
func (s *Service) Load(ctx context.Context, userID string, mode navigation.Mode) []navigation.MenuEntry {
	entries, _ := s.load(ctx, userID, mode)
	return entries
}

// loadOrigin indica de dónde salió la lista cargada.
type loadOrigin int

const (
	fromStore loadOrigin = iota
	// fromDefaults: no había registro o era ilegible; conviene materializarlo.
	fromDefaults
	// fromReadError: el almacén falló; no se escribe para no pisar un registro válido.
	fromReadError
)

func (s *Service) load(ctx context.Context, userID string, mode navigation.Mode) ([]navigation.MenuEntry, loadOrigin) {
	key := ConfigKey(mode, userID)
	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("lectura de configuración de menú")
		s.metrics.ConfigRecovered(string(mode), "read_error")
		return s.engine.Defaults(mode), fromReadError
	}
	if !found {
		return s.engine.Defaults(mode), fromDefaults
	}
	entries, err := decodeEntries(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("configuración de menú ilegible, se usan valores de fábrica")
		s.metrics.ConfigRecovered(string(mode), "malformed")
		return s.engine.Defaults(mode), fromDefaults
	}
	return entries, fromStore
}

// Save persiste la lista tal cual (último en escribir gana). Exige ids únicos.
func (s *Service) Save(ctx context.Context, userID string, mode navigation.Mode, entries []navigation.MenuEntry) error {
	if userID == "" || !mode.Valid() {
		return domain.ErrInvalidInput
	}
	if err := navigation.Validate(entries); err != nil {
		return err
	}
	raw, err := encodeEntries(entries)
	if err != nil {
		return fmt.Errorf("codificar configuración: %w", err)
	}
	if err := s.store.Set(ctx, ConfigKey(mode, userID), raw); err != nil {
		return fmt.Errorf("guardar configuración: %w", err)
	}
	return nil
}

// persist escribe sin propagar el error.
func (s *Service) persist(ctx context.Context, userID string, mode navigation.Mode, entries []navigation.MenuEntry, op string) {
	if err := s.Save(ctx, userID, mode, entries); err != nil {
		s.metrics.PersistFailed(op)
		s.log.Error().Err(err).
			Str("user_id", userID).
			Str("mode", string(mode)).
			Str("op", op).
			Msg("no se pudo persistir la configuración de menú")
	}
}

// permissions nunca falla: un error de infraestructura se trata como rol desconocido.
func (s *Service) permissions(ctx context.Context, role string) permission.Set {
	set, err := s.perms.Permissions(ctx, role)
	if err != nil {
		s.log.Error().Err(err).Str("role", role).Msg("consulta de permisos del rol")
		return nil
	}
	if set == nil {
		s.log.Debug().Str("role", role).Msg("rol sin permisos registrados")
	}
	return set
}

// Sync carga la configuración del usuario, la concilia con catálogo y permisos y la
// persiste si cambió o si acaba de sintetizarse.
func (s *Service) Sync(ctx context.Context, userID, role string) (navigation.Mode, []navigation.MenuEntry, permission.Set) {
	mode := navigation.ModeForRole(role)
	set := s.permissions(ctx, role)
	entries, origin := s.load(ctx, userID, mode)

	res := s.engine.Sync(mode, entries, set)
	if res.Changed() {
		s.metrics.SyncApplied(string(mode), len(res.Appended), len(res.Injected), len(res.Removed))
		s.log.Info().
			Str("user_id", userID).
			Str("mode", string(mode)).
			Strs("appended", res.Appended).
			Strs("injected", res.Injected).
			Strs("removed", res.Removed).
			Msg("configuración de menú sincronizada")
	}
	if (res.Changed() || origin == fromDefaults) && origin != fromReadError {
		s.persist(ctx, userID, mode, res.Entries, "sync")
	}
	return mode, res.Entries, set
}

// Menu devuelve la lista lista para dibujar del usuario.
func (s *Service) Menu(ctx context.Context, userID, role string) (navigation.Mode, []navigation.RenderItem) {
	mode, entries, set := s.Sync(ctx, userID, role)
	return mode, s.engine.Project(mode, entries, set)
}

// Config devuelve la configuración sincronizada sin filtrar, para el editor de menú.
func (s *Service) Config(ctx context.Context, userID, role string) (navigation.Mode, []navigation.MenuEntry) {
	mode, entries, _ := s.Sync(ctx, userID, role)
	return mode, entries
}

// Replace guarda una lista completa enviada por el usuario y la vuelve a sincronizar.
func (s *Service) Replace(ctx context.Context, userID, role string, entries []navigation.MenuEntry) ([]navigation.MenuEntry, error) {
	mode := navigation.ModeForRole(role)
	if err := s.Save(ctx, userID, mode, entries); err != nil {
		return nil, err
	}
	_, synced := s.Config(ctx, userID, role)
	return synced, nil
}

// Move reubica una entrada y guarda el nuevo orden.
func (s *Service) Move(ctx context.Context, userID, role, id string, position int) ([]navigation.MenuEntry, error) {
	mode, entries := s.Config(ctx, userID, role)
	moved, err := navigation.Move(entries, id, position)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, userID, mode, moved, "move")
	return moved, nil
}

// SetVisible muestra u oculta una entrada y guarda el cambio.
func (s *Service) SetVisible(ctx context.Context, userID, role, id string, visible bool) ([]navigation.MenuEntry, error) {
	mode, entries := s.Config(ctx, userID, role)
	updated, err := navigation.SetVisible(entries, id, visible)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, userID, mode, updated, "visibility")
	return updated, nil
}

// Reset borra la configuración guardada y devuelve la de fábrica ya sincronizada.
func (s *Service) Reset(ctx context.Context, userID, role string) ([]navigation.MenuEntry, error) {
	mode := navigation.ModeForRole(role)
	if err := s.store.Delete(ctx, ConfigKey(mode, userID)); err != nil {
		s.metrics.PersistFailed("reset")
		return nil, fmt.Errorf("borrar configuración: %w", err)
	}
	_, entries := s.Config(ctx, userID, role)
	return entries, nil
}

// ResyncRole vuelve a sincronizar los menús guardados de todos los usuarios del rol.
// Se invoca cuando cambian los permisos del rol.
func (s *Service) ResyncRole(ctx context.Context, role string) error {
	if s.users == nil {
		return nil
	}
	ids, err := s.users.ListIDsByRole(ctx, role)
	if err != nil {
		return fmt.Errorf("listar usuarios del rol %s: %w", role, err)
	}
	for _, id := range ids {
		s.Sync(ctx, id, role)
	}
	s.log.Info().Str("role", role).Int("users", len(ids)).Msg("menús del rol resincronizados")
	return nil
}
