package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
)

func TestConfigStore_CopiaLosValores(t *testing.T) {
	store := memory.NewConfigStore()
	ctx := context.Background()
	in := []byte("abc")

	require.NoError(t, store.Set(ctx, "k", in))
	in[0] = 'z'
	out, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc", string(out))

	out[0] = 'y'
	again, _, _ := store.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))

	require.NoError(t, store.Delete(ctx, "k"))
	assert.Equal(t, 0, store.Len())
}

func TestRolePermissionRepo(t *testing.T) {
	repo := memory.NewRolePermissionRepository()
	ctx := context.Background()

	rp, err := repo.GetByRole(ctx, "COCINA")
	require.NoError(t, err)
	assert.Nil(t, rp)

	require.NoError(t, repo.EnsureBuiltIn(ctx, []*entity.RolePermission{
		{Role: "COCINA", Permissions: permission.Set{permission.ViewTasks: true}, BuiltIn: true},
	}))
	require.NoError(t, repo.EnsureBuiltIn(ctx, []*entity.RolePermission{
		{Role: "COCINA", Permissions: permission.Set{}, BuiltIn: true},
	}))

	rp, err = repo.GetByRole(ctx, "COCINA")
	require.NoError(t, err)
	assert.True(t, rp.Permissions[permission.ViewTasks], "EnsureBuiltIn no pisa")

	rp.Permissions[permission.ViewTasks] = false
	again, _ := repo.GetByRole(ctx, "COCINA")
	assert.True(t, again.Permissions[permission.ViewTasks], "se devuelven copias")

	require.NoError(t, repo.Upsert(ctx, &entity.RolePermission{Role: "ADMIN", Permissions: permission.Set{}}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ADMIN", list[0].Role)
}

func TestUserRepo_ListIDsByRole(t *testing.T) {
	repo := memory.NewUserRepository()
	repo.Add(&entity.User{ID: "b", Role: "COCINA", Status: entity.UserStatusActive})
	repo.Add(&entity.User{ID: "a", Role: "COCINA", Status: entity.UserStatusActive})
	repo.Add(&entity.User{ID: "c", Role: "COCINA", Status: entity.UserStatusInactive})
	repo.Add(&entity.User{ID: "d", Role: "Cocina", Status: entity.UserStatusActive})
	repo.Add(&entity.User{ID: "e", Role: "COCINA", Status: "pending"})
	repo.Add(&entity.User{ID: "f", Role: "Recepción", Status: entity.UserStatusActive})

	ids, err := repo.ListIDsByRole(context.Background(), "COCINA")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, ids, "solo usuarios active, con el rol comparado normalizado")

	ids, err = repo.ListIDsByRole(context.Background(), "RECEPCION")
	require.NoError(t, err)
	assert.Equal(t, []string{"f"}, ids)

	u, err := repo.GetByID(context.Background(), "zz")
	require.NoError(t, err)
	assert.Nil(t, u)
}
