package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ConfigStore = (*ConfigStore)(nil)

// ConfigStore almacén en memoria para desarrollo local y pruebas. No sobrevive reinicios.
type ConfigStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewConfigStore construye un almacén vacío.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{data: make(map[string][]byte)}
}

func (s *ConfigStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *ConfigStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *ConfigStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len devuelve cuántas claves hay guardadas.
func (s *ConfigStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
