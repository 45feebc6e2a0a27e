package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/Restaurante-api/pkg/config"
)

func newStore(t *testing.T) (*redisstore.ConfigStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewConfigStore(client, "restaurante:"), mr
}

func TestConfigStore_GetInexistente(t *testing.T) {
	store, _ := newStore(t)
	val, found, err := store.Get(context.Background(), "nav:member:u-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestConfigStore_SetGetDelete(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	payload := []byte(`{"version":1,"entries":[]}`)

	require.NoError(t, store.Set(ctx, "nav:member:u-1", payload))
	assert.True(t, mr.Exists("restaurante:nav:member:u-1"), "la clave lleva el prefijo")
	assert.Equal(t, 0, int(mr.TTL("restaurante:nav:member:u-1")), "sin expiración")

	val, found, err := store.Get(ctx, "nav:member:u-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, val)

	require.NoError(t, store.Delete(ctx, "nav:member:u-1"))
	_, found, err = store.Get(ctx, "nav:member:u-1")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.Delete(ctx, "nav:member:u-1"), "borrar una clave inexistente no falla")
}

func TestConfigStore_ErrorDeConexion(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), "nav:member:u-1")
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "nav:member:u-1", []byte("x")))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	client, err := redisstore.NewClient(context.Background(), config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = redisstore.NewClient(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err, "sin servidor el ping falla")
}
