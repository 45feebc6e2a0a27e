package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/menu"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/navigation"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

type testEnv struct {
	app   *fiber.App
	store *memory.ConfigStore
	users *memory.UserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewConfigStore()
	users := memory.NewUserRepository()
	roles := memory.NewRolePermissionRepository()
	roleUC := usecase.NewRoleUseCase(roles, roles, 16, time.Minute, logger.Nop())
	require.NoError(t, roleUC.EnsureDefaults(ctx))

	catalog := navigation.Default()
	injections := navigation.DefaultInjections()
	navMetrics := metrics.NewNavMetrics("test")
	svc := menu.NewService(store, navigation.NewEngine(catalog, injections), roleUC, users, navMetrics, logger.Nop())
	roleUC.OnChange(func(ctx context.Context, role string) {
		_ = svc.ResyncRole(ctx, role)
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		MenuService: svc,
		RoleUC:      roleUC,
		Users:       users,
		Catalog:     catalog,
		Injections:  injections,
		Metrics:     navMetrics,
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
	})
	return &testEnv{app: app, store: store, users: users}
}

func (e *testEnv) call(t *testing.T, method, path, auth string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func itemIDs(items []dto.MenuItemResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestMenu_SinToken_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.call(t, http.MethodGet, "/api/navigation/menu", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMenu_Cocina(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.call(t, http.MethodGet, "/api/navigation/menu", tokenFor(t, "u-cocina", "Cocina"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out dto.MenuResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "member", out.Mode)
	assert.Equal(t, []string{"HOME", "PROFILE", "CALENDAR", "CHECKLIST", "WELFARE", "MY_TASKS", "MY_DOCUMENTS", "MESSAGES"}, itemIDs(out.Items))
	assert.Equal(t, 1, env.store.Len(), "la primera carga materializa la configuración")
}

func TestMenu_BarraConInventarioInyectado(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.call(t, http.MethodGet, "/api/navigation/menu", tokenFor(t, "u-barra", "barra"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.MenuResponse
	require.NoError(t, json.Unmarshal(body, &out))
	last := out.Items[len(out.Items)-1]
	assert.Equal(t, "INVENTORY", last.ID)
	assert.Equal(t, "GRP_INVENTARIO", last.GroupID)
}

func TestMenu_AdminConEncabezados(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.call(t, http.MethodGet, "/api/navigation/menu", tokenFor(t, "u-admin", "ADMIN"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.MenuResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "admin", out.Mode)
	require.NotEmpty(t, out.Items)
	assert.True(t, out.Items[0].IsHeader)
	assert.Contains(t, itemIDs(out.Items), "ROLES")
}

func TestConfig_GuardarMoverOcultarYRestablecer(t *testing.T) {
	env := newTestEnv(t)
	auth := tokenFor(t, "u-1", "MESERO")

	resp, body := env.call(t, http.MethodPost, "/api/navigation/config/MESSAGES/move", auth, dto.MoveEntryRequest{Position: intPtr(0)})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var cfg dto.MenuConfigResponse
	require.NoError(t, json.Unmarshal(body, &cfg))
	assert.Equal(t, "MESSAGES", cfg.Entries[0].ID)

	resp, body = env.call(t, http.MethodPatch, "/api/navigation/config/CALENDAR", auth, dto.SetVisibilityRequest{Visible: boolPtr(false)})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.call(t, http.MethodGet, "/api/navigation/menu", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.MenuResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "MESSAGES", out.Items[0].ID)
	assert.NotContains(t, itemIDs(out.Items), "CALENDAR")

	resp, body = env.call(t, http.MethodDelete, "/api/navigation/config", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &cfg))
	assert.Equal(t, "HOME", cfg.Entries[0].ID)
	assert.True(t, cfg.Entries[2].Visible)
}

func TestConfig_Errores(t *testing.T) {
	env := newTestEnv(t)
	auth := tokenFor(t, "u-1", "MESERO")

	resp, body := env.call(t, http.MethodPost, "/api/navigation/config/NOPE/move", auth, dto.MoveEntryRequest{Position: intPtr(1)})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "ENTRY_NOT_FOUND")

	resp, _ = env.call(t, http.MethodPost, "/api/navigation/config/HOME/move", auth, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.call(t, http.MethodPatch, "/api/navigation/config/HOME", auth, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	dup := dto.SaveMenuConfigRequest{Entries: []dto.MenuEntryDTO{{ID: "HOME"}, {ID: "HOME"}}}
	resp, body = env.call(t, http.MethodPut, "/api/navigation/config", auth, dup)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "DUPLICATE_ENTRY")

	resp, _ = env.call(t, http.MethodPut, "/api/navigation/config", auth, dto.SaveMenuConfigRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConfig_GuardarCompleta(t *testing.T) {
	env := newTestEnv(t)
	auth := tokenFor(t, "u-1", "MESERO")

	in := dto.SaveMenuConfigRequest{Entries: []dto.MenuEntryDTO{
		{ID: "MESSAGES", Label: "Chat", Visible: true, Order: 0},
		{ID: "HOME", Label: "Inicio", Visible: true, Order: 1},
	}}
	resp, body := env.call(t, http.MethodPut, "/api/navigation/config", auth, in)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var cfg dto.MenuConfigResponse
	require.NoError(t, json.Unmarshal(body, &cfg))
	assert.Len(t, cfg.Entries, len(navigation.Default().Member()))
	assert.Equal(t, "Chat", cfg.Entries[0].Label)
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.call(t, http.MethodGet, "/api/navigation/catalog", tokenFor(t, "u-1", "MESERO"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CatalogResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Member, 8)
	assert.Len(t, out.Admin, 4)
	injectable := make([]string, 0, len(out.Injectable))
	for _, inj := range out.Injectable {
		injectable = append(injectable, inj.ID)
	}
	assert.Equal(t, []string{"INVENTORY", "SUPPLIERS", "WALLET", "TASKS", "DOCUMENTS", "REPORTS"}, injectable)

	require.Len(t, out.Injectable[0].Conditions, 2)
	assert.Equal(t, dto.InjectionConditionDTO{Key: "inventory_view"}, out.Injectable[0].Conditions[0])
	assert.Equal(t, dto.InjectionConditionDTO{Key: "view_inventory", Legacy: true}, out.Injectable[0].Conditions[1],
		"los alias antiguos se marcan como legacy")
}

func TestRoles_RequierePermiso(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.call(t, http.MethodGet, "/api/roles", tokenFor(t, "u-1", "GERENTE"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "PERMISSION_DENIED")

	resp, _ = env.call(t, http.MethodGet, "/api/roles", tokenFor(t, "u-1", "ADMIN"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.call(t, http.MethodGet, "/api/roles", tokenFor(t, "u-1", "SUPER_ADMIN"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoles_GetYUpdateResincronizaMenus(t *testing.T) {
	env := newTestEnv(t)
	env.users.Add(&entity.User{ID: "u-cocina", Role: "COCINA", Status: entity.UserStatusActive})
	cocina := tokenFor(t, "u-cocina", "COCINA")
	admin := tokenFor(t, "u-admin", "ADMIN")

	resp, _ := env.call(t, http.MethodGet, "/api/navigation/menu", cocina, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.call(t, http.MethodGet, "/api/roles/cocina/permissions", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var role dto.RolePermissionsResponse
	require.NoError(t, json.Unmarshal(body, &role))
	assert.False(t, role.Permissions["reports_view"])

	resp, body = env.call(t, http.MethodPut, "/api/roles/cocina/permissions", admin,
		dto.UpdateRolePermissionsRequest{Permissions: map[string]bool{"reports_view": true}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	raw, found, err := env.store.Get(context.Background(), menu.ConfigKey(navigation.ModeMember, "u-cocina"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(raw), `"REPORTS"`, "el menú guardado se resincroniza al cambiar el rol")

	resp, _ = env.call(t, http.MethodGet, "/api/roles/NO_EXISTE/permissions", admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = env.call(t, http.MethodPut, "/api/roles/cocina/permissions", admin,
		dto.UpdateRolePermissionsRequest{Permissions: map[string]bool{"borrar_todo": true}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "UNKNOWN_PERMISSION")
}

func TestUsuarioDesactivado_Retorna403(t *testing.T) {
	env := newTestEnv(t)
	env.users.Add(&entity.User{ID: "u-baja", Role: "MESERO", Status: entity.UserStatusInactive})

	resp, body := env.call(t, http.MethodGet, "/api/navigation/menu", tokenFor(t, "u-baja", "MESERO"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "USER_INACTIVE")
}

func TestUsuarioDeOtroRestaurante_Retorna403(t *testing.T) {
	env := newTestEnv(t)
	env.users.Add(&entity.User{ID: "u-otro", RestaurantID: "rest-otro", Role: "MESERO", Status: entity.UserStatusActive})
	env.users.Add(&entity.User{ID: "u-mismo", RestaurantID: testRestaurantID, Role: "MESERO", Status: entity.UserStatusActive})

	resp, body := env.call(t, http.MethodGet, "/api/navigation/menu", tokenFor(t, "u-otro", "MESERO"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "RESTAURANT_MISMATCH")

	resp, _ = env.call(t, http.MethodGet, "/api/navigation/menu", tokenFor(t, "u-mismo", "MESERO"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics_Expuestas(t *testing.T) {
	env := newTestEnv(t)
	env.call(t, http.MethodGet, "/api/navigation/menu", tokenFor(t, "u-barra", "BARRA"), nil)

	resp, body := env.call(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "test_navigation_sync_changes_total")
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }
