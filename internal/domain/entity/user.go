package entity

import "time"

// User representa un empleado o administrador de un restaurante.
// Role llega tal como lo registra el servicio de identidad ("Cocina", "Recepción");
// se compara siempre con permission.NormalizeRole.
type User struct {
	ID           string
	RestaurantID string
	Email        string
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)
