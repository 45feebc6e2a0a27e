package navigation

import (
	"fmt"
	"sort"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// MenuEntry es la referencia persistida de un usuario a un destino o a un encabezado de grupo.
// Label es una copia tomada al crear la entrada y puede diferir del catálogo.
type MenuEntry struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Visible  bool   `json:"visible"`
	Order    int    `json:"order"`
	IsHeader bool   `json:"isHeader"`
}

// Defaults sintetiza la configuración inicial recorriendo el catálogo del modo en orden
// de declaración. En administración cada grupo va precedido por su encabezado.
func Defaults(c *Catalog, mode Mode) []MenuEntry {
	var out []MenuEntry
	if mode == ModeMember {
		for _, d := range c.member {
			out = append(out, MenuEntry{ID: d.ID, Label: d.Label, Visible: true, Order: len(out)})
		}
		return out
	}
	for _, g := range c.groups {
		out = append(out, MenuEntry{ID: g.ID, Label: g.Title, Visible: true, Order: len(out), IsHeader: true})
		for _, d := range g.Destinations {
			out = append(out, MenuEntry{ID: d.ID, Label: d.Label, Visible: true, Order: len(out)})
		}
	}
	return out
}

// Clone copia la lista para poder mutarla sin afectar al llamador.
func Clone(entries []MenuEntry) []MenuEntry {
	if entries == nil {
		return nil
	}
	out := make([]MenuEntry, len(entries))
	copy(out, entries)
	return out
}

// SortByOrder ordena en sitio por Order; los empates conservan el orden de inserción.
func SortByOrder(entries []MenuEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })
}

// IndexOf devuelve la posición de la entrada con ese id, o -1.
func IndexOf(entries []MenuEntry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func maxOrder(entries []MenuEntry) int {
	max := -1
	for _, e := range entries {
		if e.Order > max {
			max = e.Order
		}
	}
	return max
}

// Validate exige ids no vacíos y únicos dentro de la lista.
func Validate(entries []MenuEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("%w: id vacío", domain.ErrInvalidInput)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEntry, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// Move coloca la entrada en la posición indicada (0 = primera) y renumera Order de 0 a n-1.
// Las posiciones fuera de rango se ajustan al extremo más cercano.
func Move(entries []MenuEntry, id string, position int) ([]MenuEntry, error) {
	out := Clone(entries)
	SortByOrder(out)
	from := IndexOf(out, id)
	if from < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDestination, id)
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	if position < 0 {
		position = 0
	}
	if position > len(out) {
		position = len(out)
	}
	out = append(out, MenuEntry{})
	copy(out[position+1:], out[position:])
	out[position] = moved
	for i := range out {
		out[i].Order = i
	}
	return out, nil
}

// SetVisible cambia la visibilidad de una entrada sin alterar el orden.
func SetVisible(entries []MenuEntry, id string, visible bool) ([]MenuEntry, error) {
	out := Clone(entries)
	i := IndexOf(out, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDestination, id)
	}
	out[i].Visible = visible
	return out, nil
}
