package navigation

import "github.com/jhoicas/Restaurante-api/internal/domain/permission"

// injectedOrderBase separa las entradas inyectadas de las nativas en el orden por defecto.
const injectedOrderBase = 90

// Engine resuelve la configuración de menú de un usuario contra el catálogo y los permisos.
// No guarda estado entre llamadas; todas las operaciones trabajan sobre copias.
type Engine struct {
	catalog          *Catalog
	injections       *InjectionTable
	hideEmptyHeaders bool
}

// Option ajusta el comportamiento del motor.
type Option func(*Engine)

// WithEmptyHeaders conserva los encabezados aunque todos sus destinos queden ocultos.
func WithEmptyHeaders() Option {
	return func(e *Engine) { e.hideEmptyHeaders = false }
}

// NewEngine construye el motor. Con catálogo o tabla nil se usan los compilados.
func NewEngine(catalog *Catalog, injections *InjectionTable, opts ...Option) *Engine {
	if catalog == nil {
		catalog = Default()
	}
	if injections == nil {
		injections = DefaultInjections()
	}
	e := &Engine{catalog: catalog, injections: injections, hideEmptyHeaders: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Defaults sintetiza la configuración por defecto del modo.
func (e *Engine) Defaults(mode Mode) []MenuEntry {
	return Defaults(e.catalog, mode)
}

// SyncResult describe lo que cambió en una pasada de sincronización.
type SyncResult struct {
	Entries  []MenuEntry
	Appended []string
	Injected []string
	Removed  []string
}

// Changed informa si la pasada modificó la lista.
func (r SyncResult) Changed() bool {
	return len(r.Appended)+len(r.Injected)+len(r.Removed) > 0
}

// Sync concilia la configuración cargada con el catálogo y, en el menú de empleado,
// con las reglas de inyección. Ejecutarlo de nuevo con las mismas entradas no cambia nada.
func (e *Engine) Sync(mode Mode, entries []MenuEntry, set permission.Set) SyncResult {
	out := Clone(entries)
	res := SyncResult{}

	present := make(map[string]struct{}, len(out))
	for _, en := range out {
		present[en.ID] = struct{}{}
	}
	next := maxOrder(out) + 1
	for _, def := range e.Defaults(mode) {
		if _, ok := present[def.ID]; ok {
			continue
		}
		def.Order = next
		def.Visible = true
		next++
		out = append(out, def)
		res.Appended = append(res.Appended, def.ID)
	}

	if mode == ModeMember {
		out = e.applyInjections(out, set, &res)
	}
	res.Entries = out
	return res
}

func (e *Engine) applyInjections(out []MenuEntry, set permission.Set, res *SyncResult) []MenuEntry {
	mutated := false
	for _, rule := range e.injections.rules {
		dest, ok := e.catalog.Lookup(ModeAdmin, rule.DestinationID)
		if !ok {
			continue
		}
		idx := IndexOf(out, rule.DestinationID)
		allowed := rule.Allows(set)
		switch {
		case allowed && idx < 0:
			out = append(out, MenuEntry{
				ID:      dest.ID,
				Label:   dest.Label,
				Visible: true,
				Order:   injectedOrderBase + len(out),
			})
			res.Injected = append(res.Injected, dest.ID)
			mutated = true
		case !allowed && idx >= 0 && !e.catalog.IsNativeMember(rule.DestinationID):
			out = append(out[:idx], out[idx+1:]...)
			res.Removed = append(res.Removed, dest.ID)
			mutated = true
		}
	}
	if mutated {
		SortByOrder(out)
	}
	return out
}
