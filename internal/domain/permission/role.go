package permission

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Roles de administración. Cualquier otro rol es de empleado (member).
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleGerente    = "GERENTE"
)

// Roles de empleado incluidos por defecto.
const (
	RoleCocina = "COCINA"
	RoleMesero = "MESERO"
	RoleCaja   = "CAJA"
	RoleBarra  = "BARRA"
)

// NormalizeRole lleva un nombre de cargo a su forma canónica: sin tildes, en mayúsculas
// y con guiones bajos en lugar de espacios ("Recepción" -> "RECEPCION").
func NormalizeRole(role string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, strings.TrimSpace(role))
	if err != nil {
		clean = strings.TrimSpace(role)
	}
	clean = strings.ToUpper(clean)
	return strings.Join(strings.Fields(clean), "_")
}

// IsAdminRole informa si el rol navega con el catálogo de administración.
func IsAdminRole(role string) bool {
	switch NormalizeRole(role) {
	case RoleSuperAdmin, RoleAdmin, RoleGerente:
		return true
	}
	return false
}

// DefaultSets devuelve los permisos de fábrica de los roles incluidos.
func DefaultSets() map[string]Set {
	return map[string]Set{
		RoleSuperAdmin: Set{SuperAdmin: true}.Complete(),
		RoleAdmin: Set{
			TasksManage: true, DocumentsManage: true, MessagesManage: true,
			InventoryView: true, SuppliersView: true, WalletView: true,
			BudgetAnalysis: true, ReportsView: true, EmployeesManage: true,
			RolesManage: true,
		}.Complete(),
		RoleGerente: Set{
			TasksManage: true, DocumentsManage: true, MessagesManage: true,
			InventoryView: true, SuppliersView: true, ReportsView: true,
			EmployeesManage: true,
		}.Complete(),
		RoleCocina: Set{ViewTasks: true, ViewDocuments: true, ViewMessages: true}.Complete(),
		RoleMesero: Set{ViewTasks: true, ViewMessages: true}.Complete(),
		RoleCaja:   Set{ViewTasks: true, ViewMessages: true, WalletView: true}.Complete(),
		RoleBarra:  Set{ViewTasks: true, ViewMessages: true, InventoryView: true}.Complete(),
	}
}
