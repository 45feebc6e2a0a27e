package permission

import "sort"

// Key identifica un permiso granular. El conjunto de claves es fijo y conocido.
type Key string

// Always marca un destino que no requiere permiso.
const Always Key = "ALWAYS"

// SuperAdmin concede acceso a todo cuando está en true.
const SuperAdmin Key = "superAdmin"

// Permisos de la vista de empleado (member).
const (
	ViewProfile   Key = "view_profile"
	ViewCalendar  Key = "view_calendar"
	ViewChecklist Key = "view_checklist"
	ViewWelfare   Key = "view_welfare"
	ViewTasks     Key = "view_tasks"
	ViewDocuments Key = "view_documents"
	ViewMessages  Key = "view_messages"
)

// Permisos de la vista de administración.
const (
	TasksManage     Key = "tasks_manage"
	DocumentsManage Key = "documents_manage"
	MessagesManage  Key = "messages_manage"
	InventoryView   Key = "inventory_view"
	SuppliersView   Key = "suppliers_view"
	WalletView      Key = "wallet_view"
	BudgetAnalysis  Key = "budget_analysis"
	ReportsView     Key = "reports_view"
	EmployeesManage Key = "employees_manage"
	RolesManage     Key = "roles_manage"
)

// Claves heredadas que aún se aceptan como alternativa de un permiso actual.
const (
	LegacyViewInventory   Key = "view_inventory"
	LegacyInventoryManage Key = "inventory_manage"
	LegacyCashRegister    Key = "cash_register"
)

var knownKeys = map[Key]struct{}{
	SuperAdmin:            {},
	ViewProfile:           {},
	ViewCalendar:          {},
	ViewChecklist:         {},
	ViewWelfare:           {},
	ViewTasks:             {},
	ViewDocuments:         {},
	ViewMessages:          {},
	TasksManage:           {},
	DocumentsManage:       {},
	MessagesManage:        {},
	InventoryView:         {},
	SuppliersView:         {},
	WalletView:            {},
	BudgetAnalysis:        {},
	ReportsView:           {},
	EmployeesManage:       {},
	RolesManage:           {},
	LegacyViewInventory:   {},
	LegacyInventoryManage: {},
	LegacyCashRegister:    {},
}

// defaultTrue son las claves de perfil de empleado que se consideran concedidas cuando
// no aparecen en el conjunto. Compatibilidad con roles creados antes de que existieran.
var defaultTrue = map[Key]struct{}{
	ViewProfile:   {},
	ViewCalendar:  {},
	ViewChecklist: {},
	ViewWelfare:   {},
}

// IsKnown informa si la clave pertenece al catálogo de permisos.
func IsKnown(k Key) bool {
	_, ok := knownKeys[k]
	return ok
}

// DefaultsToTrue informa si la clave ausente se interpreta como concedida.
func DefaultsToTrue(k Key) bool {
	_, ok := defaultTrue[k]
	return ok
}

// KnownKeys devuelve todas las claves conocidas ordenadas alfabéticamente.
func KnownKeys() []Key {
	out := make([]Key, 0, len(knownKeys))
	for k := range knownKeys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
