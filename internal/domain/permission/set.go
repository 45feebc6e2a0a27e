package permission

import (
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// Set es el mapa de permisos de un rol.
type Set map[Key]bool

// HasAccess responde si el conjunto satisface el permiso requerido.
// Un conjunto nil (rol desconocido) solo satisface Always.
func HasAccess(set Set, required Key) bool {
	if required == Always {
		return true
	}
	if set == nil {
		return false
	}
	if set[SuperAdmin] {
		return true
	}
	granted, present := set[required]
	if !present {
		return DefaultsToTrue(required)
	}
	return granted
}

// AnyOf devuelve true si alguna de las claves concede acceso.
func AnyOf(set Set, keys ...Key) bool {
	for _, k := range keys {
		if HasAccess(set, k) {
			return true
		}
	}
	return false
}

// Clone copia el conjunto; nil se conserva como nil.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Complete devuelve una copia con todas las claves conocidas presentes.
// Las ausentes toman su valor por defecto (false salvo la lista de compatibilidad).
func (s Set) Complete() Set {
	out := s.Clone()
	if out == nil {
		out = make(Set, len(knownKeys))
	}
	for k := range knownKeys {
		if _, ok := out[k]; !ok {
			out[k] = DefaultsToTrue(k)
		}
	}
	return out
}

// Apply devuelve una copia con el parche aplicado. Rechaza claves desconocidas.
func (s Set) Apply(patch map[Key]bool) (Set, error) {
	for k := range patch {
		if !IsKnown(k) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPermission, k)
		}
	}
	out := s.Clone()
	if out == nil {
		out = make(Set, len(patch))
	}
	for k, v := range patch {
		out[k] = v
	}
	return out, nil
}

// Equal compara dos conjuntos clave a clave.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
