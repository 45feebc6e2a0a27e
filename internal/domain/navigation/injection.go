package navigation

import "github.com/jhoicas/Restaurante-api/internal/domain/permission"

// Condition es una clave que, concedida, habilita un destino inyectado.
// Legacy marca claves antiguas que se siguen aceptando.
type Condition struct {
	Key    permission.Key
	Legacy bool
}

// InjectionRule describe una pantalla de administración que puede aparecer en el menú de
// un empleado cuando su rol recibe el permiso granular. Las condiciones se combinan con OR.
type InjectionRule struct {
	DestinationID string
	Conditions    []Condition
}

// Allows evalúa las condiciones de la regla sobre el conjunto de permisos.
func (r InjectionRule) Allows(set permission.Set) bool {
	for _, c := range r.Conditions {
		if permission.HasAccess(set, c.Key) {
			return true
		}
	}
	return false
}

var injectionRules = []InjectionRule{
	{DestinationID: "INVENTORY", Conditions: []Condition{
		{Key: permission.InventoryView},
		{Key: permission.LegacyViewInventory, Legacy: true},
	}},
	{DestinationID: "SUPPLIERS", Conditions: []Condition{
		{Key: permission.SuppliersView},
		{Key: permission.LegacyInventoryManage, Legacy: true},
	}},
	{DestinationID: "WALLET", Conditions: []Condition{
		{Key: permission.WalletView},
		{Key: permission.LegacyCashRegister, Legacy: true},
	}},
	{DestinationID: "TASKS", Conditions: []Condition{{Key: permission.TasksManage}}},
	{DestinationID: "DOCUMENTS", Conditions: []Condition{{Key: permission.DocumentsManage}}},
	{DestinationID: "REPORTS", Conditions: []Condition{{Key: permission.ReportsView}}},
}

// InjectionTable es la tabla de inyección con búsqueda por destino.
type InjectionTable struct {
	rules []InjectionRule
	byID  map[string]InjectionRule
}

// NewInjectionTable indexa las reglas conservando su orden.
func NewInjectionTable(rules []InjectionRule) *InjectionTable {
	t := &InjectionTable{byID: make(map[string]InjectionRule, len(rules))}
	for _, r := range rules {
		t.rules = append(t.rules, r)
		t.byID[r.DestinationID] = r
	}
	return t
}

var defaultInjections = NewInjectionTable(injectionRules)

// DefaultInjections devuelve la tabla compilada del producto.
func DefaultInjections() *InjectionTable {
	return defaultInjections
}

// Rules devuelve las reglas en orden de declaración.
func (t *InjectionTable) Rules() []InjectionRule {
	out := make([]InjectionRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Rule busca la regla de un destino.
func (t *InjectionTable) Rule(id string) (InjectionRule, bool) {
	r, ok := t.byID[id]
	return r, ok
}
