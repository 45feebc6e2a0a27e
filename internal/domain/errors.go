package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrRoleNotFound       = errors.New("rol no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnknownPermission  = errors.New("permiso desconocido")
	ErrUnknownDestination = errors.New("destino de navegación desconocido")
	ErrDuplicateEntry     = errors.New("entrada de menú duplicada")
)
