package repository

import "context"

// ConfigStore es el almacén clave-valor donde se guarda la configuración de menú.
// El motor no conoce la tecnología concreta (PostgreSQL, Redis o memoria).
type ConfigStore interface {
	// Get devuelve found=false cuando la clave no existe.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
