package permission_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
)

func TestHasAccess_AlwaysSiempreConcede(t *testing.T) {
	assert.True(t, permission.HasAccess(nil, permission.Always))
	assert.True(t, permission.HasAccess(permission.Set{}, permission.Always))
}

func TestHasAccess_RolDesconocidoSoloAlways(t *testing.T) {
	assert.False(t, permission.HasAccess(nil, permission.ViewProfile),
		"un conjunto nil no aplica la lista de compatibilidad")
	assert.False(t, permission.HasAccess(nil, permission.InventoryView))
}

func TestHasAccess_SuperAdminConcedeTodo(t *testing.T) {
	set := permission.Set{permission.SuperAdmin: true, permission.InventoryView: false}
	for _, k := range permission.KnownKeys() {
		assert.True(t, permission.HasAccess(set, k), "superAdmin debe conceder %s", k)
	}
}

func TestHasAccess_ClavesAusentes(t *testing.T) {
	set := permission.Set{permission.ViewTasks: true}

	assert.True(t, permission.HasAccess(set, permission.ViewTasks))
	assert.False(t, permission.HasAccess(set, permission.ViewMessages), "ausente => false")
	assert.True(t, permission.HasAccess(set, permission.ViewProfile), "lista de compatibilidad => true")
	assert.True(t, permission.HasAccess(set, permission.ViewWelfare))

	set[permission.ViewProfile] = false
	assert.False(t, permission.HasAccess(set, permission.ViewProfile), "un false explícito gana")
}

func TestAnyOf(t *testing.T) {
	set := permission.Set{permission.LegacyCashRegister: true}
	assert.True(t, permission.AnyOf(set, permission.WalletView, permission.LegacyCashRegister))
	assert.False(t, permission.AnyOf(set, permission.WalletView))
	assert.False(t, permission.AnyOf(set))
}

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"Cocina":          "COCINA",
		"Recepción":       "RECEPCION",
		"  jefe de  sala": "JEFE_DE_SALA",
		"Súper Admin":     "SUPER_ADMIN",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, permission.NormalizeRole(in), "entrada %q", in)
	}
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, permission.IsAdminRole("gerente"))
	assert.True(t, permission.IsAdminRole("SUPER_ADMIN"))
	assert.False(t, permission.IsAdminRole("COCINA"))
	assert.False(t, permission.IsAdminRole(""))
}

func TestApply_ParcialYSinMutarOriginal(t *testing.T) {
	orig := permission.Set{permission.ViewTasks: true}
	out, err := orig.Apply(map[permission.Key]bool{permission.InventoryView: true})
	require.NoError(t, err)

	assert.True(t, out[permission.ViewTasks])
	assert.True(t, out[permission.InventoryView])
	_, touched := orig[permission.InventoryView]
	assert.False(t, touched, "el original no se modifica")
}

func TestApply_ClaveDesconocida(t *testing.T) {
	_, err := permission.Set{}.Apply(map[permission.Key]bool{"borrar_todo": true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPermission))
}

func TestComplete_TodasLasClaves(t *testing.T) {
	full := permission.Set{permission.ViewTasks: true}.Complete()
	assert.Len(t, full, len(permission.KnownKeys()))
	assert.True(t, full[permission.ViewProfile])
	assert.False(t, full[permission.WalletView])
	assert.True(t, full[permission.ViewTasks])
}

func TestDefaultSets(t *testing.T) {
	sets := permission.DefaultSets()
	require.Contains(t, sets, permission.RoleSuperAdmin)
	require.Contains(t, sets, permission.RoleCocina)

	assert.True(t, permission.HasAccess(sets[permission.RoleSuperAdmin], permission.EmployeesManage))
	assert.True(t, permission.HasAccess(sets[permission.RoleAdmin], permission.RolesManage))
	assert.False(t, permission.HasAccess(sets[permission.RoleGerente], permission.RolesManage))
	assert.False(t, permission.HasAccess(sets[permission.RoleCocina], permission.InventoryView))
	assert.True(t, permission.HasAccess(sets[permission.RoleBarra], permission.InventoryView))
	for _, k := range permission.KnownKeys() {
		for role, set := range sets {
			_, ok := set[k]
			assert.True(t, ok, "%s debe traer la clave %s", role, k)
		}
	}
}

func TestEqual(t *testing.T) {
	a := permission.Set{permission.ViewTasks: true}
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(permission.Set{permission.ViewTasks: false}))
	assert.False(t, a.Equal(permission.Set{}))
}
