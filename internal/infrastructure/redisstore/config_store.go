package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/redis/go-redis/v9"
)

var _ repository.ConfigStore = (*ConfigStore)(nil)

// NewClient abre el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// ConfigStore guarda la configuración de menú como cadenas Redis sin expiración.
// prefix permite compartir la instancia con otros servicios.
type ConfigStore struct {
	client redis.UniversalClient
	prefix string
}

// NewConfigStore construye el almacén sobre un cliente ya conectado.
func NewConfigStore(client redis.UniversalClient, prefix string) *ConfigStore {
	return &ConfigStore{client: client, prefix: prefix}
}

func (s *ConfigStore) key(k string) string {
	return s.prefix + k
}

// Get obtiene el valor; found=false si la clave no existe.
func (s *ConfigStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set reemplaza el valor de la clave.
func (s *ConfigStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave.
func (s *ConfigStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
