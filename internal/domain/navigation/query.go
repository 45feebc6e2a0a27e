package navigation

import "github.com/jhoicas/Restaurante-api/internal/domain/permission"

// RenderItem es un elemento listo para dibujar en la barra lateral.
type RenderItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon,omitempty"`
	IsHeader bool   `json:"isHeader"`
	GroupID  string `json:"groupId,omitempty"`
}

// Project produce la lista final ordenada y filtrada para el modo y los permisos dados.
// Descarta entradas ocultas, huérfanas o sin permiso. Los encabezados no se filtran por
// permiso, pero se omiten si ninguno de los destinos que los siguen sobrevive.
func (e *Engine) Project(mode Mode, entries []MenuEntry, set permission.Set) []RenderItem {
	sorted := Clone(entries)
	SortByOrder(sorted)

	items := make([]RenderItem, 0, len(sorted))
	for _, en := range sorted {
		if !en.Visible {
			continue
		}
		if en.IsHeader {
			if mode != ModeAdmin {
				continue
			}
			g, ok := e.catalog.Group(en.ID)
			if !ok {
				continue
			}
			items = append(items, RenderItem{ID: g.ID, Label: labelOr(en.Label, g.Title), IsHeader: true})
			continue
		}
		dest, ok := e.resolve(mode, en.ID, set)
		if !ok {
			continue
		}
		items = append(items, RenderItem{
			ID:      dest.ID,
			Label:   labelOr(en.Label, dest.Label),
			Icon:    dest.Icon,
			GroupID: dest.GroupID,
		})
	}
	if e.hideEmptyHeaders {
		items = dropEmptyHeaders(items)
	}
	return items
}

// resolve busca el destino y comprueba el permiso. Las entradas inyectadas en el menú de
// empleado se validan con las condiciones de su regla de inyección.
func (e *Engine) resolve(mode Mode, id string, set permission.Set) (Destination, bool) {
	if dest, ok := e.catalog.Lookup(mode, id); ok {
		return dest, permission.HasAccess(set, dest.Permission)
	}
	if mode != ModeMember {
		return Destination{}, false
	}
	rule, ok := e.injections.Rule(id)
	if !ok {
		return Destination{}, false
	}
	dest, ok := e.catalog.Lookup(ModeAdmin, id)
	if !ok {
		return Destination{}, false
	}
	return dest, rule.Allows(set)
}

func dropEmptyHeaders(items []RenderItem) []RenderItem {
	out := make([]RenderItem, 0, len(items))
	for i, it := range items {
		if it.IsHeader && (i+1 >= len(items) || items[i+1].IsHeader) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
