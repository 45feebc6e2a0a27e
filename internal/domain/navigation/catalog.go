package navigation

import "github.com/jhoicas/Restaurante-api/internal/domain/permission"

// Mode distingue el menú de empleado del menú de administración.
type Mode string

const (
	ModeMember Mode = "member"
	ModeAdmin  Mode = "admin"
)

// ModeForRole elige el catálogo con el que navega un rol.
func ModeForRole(role string) Mode {
	if permission.IsAdminRole(role) {
		return ModeAdmin
	}
	return ModeMember
}

// Valid informa si el modo es uno de los conocidos.
func (m Mode) Valid() bool {
	return m == ModeMember || m == ModeAdmin
}

// Destination es una pantalla navegable. GroupID solo aplica al catálogo de administración.
type Destination struct {
	ID         string
	Label      string
	Icon       string
	Permission permission.Key
	GroupID    string
}

// Group agrupa destinos del catálogo de administración bajo un título.
type Group struct {
	ID           string
	Title        string
	Destinations []Destination
}

var memberCatalog = []Destination{
	{ID: "HOME", Label: "Inicio", Icon: "home", Permission: permission.Always},
	{ID: "PROFILE", Label: "Mi perfil", Icon: "user", Permission: permission.ViewProfile},
	{ID: "CALENDAR", Label: "Calendario", Icon: "calendar", Permission: permission.ViewCalendar},
	{ID: "CHECKLIST", Label: "Checklist", Icon: "check-square", Permission: permission.ViewChecklist},
	{ID: "WELFARE", Label: "Bienestar", Icon: "heart", Permission: permission.ViewWelfare},
	{ID: "MY_TASKS", Label: "Mis tareas", Icon: "clipboard", Permission: permission.ViewTasks},
	{ID: "MY_DOCUMENTS", Label: "Mis documentos", Icon: "file-text", Permission: permission.ViewDocuments},
	{ID: "MESSAGES", Label: "Mensajes", Icon: "mail", Permission: permission.ViewMessages},
}

var adminGroups = []Group{
	{ID: "GRP_OPERACION", Title: "Operación", Destinations: []Destination{
		{ID: "DASHBOARD", Label: "Panel", Icon: "layout", Permission: permission.Always},
		{ID: "TASKS", Label: "Tablero de tareas", Icon: "trello", Permission: permission.TasksManage},
		{ID: "DOCUMENTS", Label: "Documentos", Icon: "file-text", Permission: permission.DocumentsManage},
		{ID: "INBOX", Label: "Bandeja de mensajes", Icon: "inbox", Permission: permission.MessagesManage},
	}},
	{ID: "GRP_INVENTARIO", Title: "Inventario y proveedores", Destinations: []Destination{
		{ID: "INVENTORY", Label: "Inventario", Icon: "package", Permission: permission.InventoryView},
		{ID: "SUPPLIERS", Label: "Proveedores", Icon: "truck", Permission: permission.SuppliersView},
	}},
	{ID: "GRP_FINANZAS", Title: "Finanzas", Destinations: []Destination{
		{ID: "WALLET", Label: "Caja y billetera", Icon: "dollar-sign", Permission: permission.WalletView},
		{ID: "BUDGET_AI", Label: "Análisis de presupuesto", Icon: "cpu", Permission: permission.BudgetAnalysis},
		{ID: "REPORTS", Label: "Reportes", Icon: "bar-chart", Permission: permission.ReportsView},
	}},
	{ID: "GRP_ADMIN", Title: "Administración", Destinations: []Destination{
		{ID: "EMPLOYEES", Label: "Empleados", Icon: "users", Permission: permission.EmployeesManage},
		{ID: "ROLES", Label: "Roles y permisos", Icon: "shield", Permission: permission.RolesManage},
	}},
}

// Catalog es el conjunto estático de destinos de ambos menús.
// El paquete expone Default(); se puede construir otro para pruebas con NewCatalog.
type Catalog struct {
	member []Destination
	groups []Group

	memberByID map[string]Destination
	adminByID  map[string]Destination
	groupByID  map[string]Group
}

// NewCatalog indexa los destinos. El GroupID de cada destino se toma del grupo que lo contiene.
func NewCatalog(member []Destination, groups []Group) *Catalog {
	c := &Catalog{
		memberByID: make(map[string]Destination, len(member)),
		adminByID:  make(map[string]Destination),
		groupByID:  make(map[string]Group, len(groups)),
	}
	for _, d := range member {
		d.GroupID = ""
		c.member = append(c.member, d)
		c.memberByID[d.ID] = d
	}
	for _, g := range groups {
		ng := Group{ID: g.ID, Title: g.Title}
		for _, d := range g.Destinations {
			d.GroupID = g.ID
			ng.Destinations = append(ng.Destinations, d)
			c.adminByID[d.ID] = d
		}
		c.groups = append(c.groups, ng)
		c.groupByID[g.ID] = ng
	}
	return c
}

var defaultCatalog = NewCatalog(memberCatalog, adminGroups)

// Default devuelve el catálogo compilado del producto.
func Default() *Catalog {
	return defaultCatalog
}

// Member devuelve el catálogo plano de empleado en orden de declaración.
func (c *Catalog) Member() []Destination {
	out := make([]Destination, len(c.member))
	copy(out, c.member)
	return out
}

// Groups devuelve los grupos de administración en orden de declaración.
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// IsNativeMember informa si el id es un destino propio del catálogo de empleado.
func (c *Catalog) IsNativeMember(id string) bool {
	_, ok := c.memberByID[id]
	return ok
}

// Group busca un grupo de administración por id.
func (c *Catalog) Group(id string) (Group, bool) {
	g, ok := c.groupByID[id]
	return g, ok
}

// Lookup busca un destino en el catálogo del modo indicado.
func (c *Catalog) Lookup(mode Mode, id string) (Destination, bool) {
	if mode == ModeMember {
		d, ok := c.memberByID[id]
		return d, ok
	}
	d, ok := c.adminByID[id]
	return d, ok
}
