package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ConfigStore = (*ConfigStore)(nil)

// ConfigStore guarda la configuración de menú en la tabla nav_configs (clave -> bytes).
type ConfigStore struct {
	q Querier
}

// NewConfigStore construye el almacén. Pasar pool o tx (Querier).
func NewConfigStore(q Querier) *ConfigStore {
	return &ConfigStore{q: q}
}

// Get obtiene el valor de la clave; found=false si no existe.
func (s *ConfigStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.q.QueryRow(ctx, `SELECT payload FROM nav_configs WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if isNoRows(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get nav config: %w", err)
	}
	return payload, true, nil
}

// Set inserta o reemplaza el valor de la clave.
func (s *ConfigStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO nav_configs (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert nav config: %w", err)
	}
	return nil
}

// Delete elimina la clave; no falla si no existía.
func (s *ConfigStore) Delete(ctx context.Context, key string) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM nav_configs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete nav config: %w", err)
	}
	return nil
}
