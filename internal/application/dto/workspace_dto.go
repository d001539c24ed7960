package dto

// LoginView modelo del formulario de registro (sin sesión).
type LoginView struct {
	AppName string
	Roles   []RoleOption
	Form    RegisterRequest
	Error   string
}

// RoleOption opción del selector de rol.
type RoleOption struct {
	Value    string
	Label    string
	Selected bool
}

// WorkspaceView modelo de la página con sesión: barra lateral + contenido de la pestaña activa.
// Solo se cargan los datos de la pestaña activa.
type WorkspaceView struct {
	AppName     string
	User        UserResponse
	Tabs        []TabItem
	Active      TabItem
	Permissions PermissionsView
	Notice      *NoticeResponse

	Stats        []StatCard
	RecentOrders []DocumentResponse
	Zones        []ZoneResponse
	Products     []ProductResponse
	Orders       []DocumentResponse
	Receipts     []DocumentResponse
	Shipments    []DocumentResponse
	Inventory    []InventoryCountResponse
	Contractors  []ContractorResponse
	Reports      []ReportCardResponse

	OrderDialog  OrderDialogView
	SupplyDialog SupplyDialogView
	StatusDialog StatusDialogView
}

// TabItem entrada de la barra lateral.
type TabItem struct {
	ID       string
	Label    string
	Subtitle string
	Icon     string
	Active   bool
}

// PermissionsView acciones visibles para el rol.
type PermissionsView struct {
	CanEdit   bool `json:"can_edit"`
	CanOrder  bool `json:"can_order"`
	CanSupply bool `json:"can_supply"`
}

// StatCard tarjeta de indicador del dashboard.
type StatCard struct {
	Label  string
	Value  string
	Icon   string
	Change string
}

// OrderDialogView estado del diálogo de pedido.
type OrderDialogView struct {
	Open  bool
	Form  OrderForm
	Error string
}

// SupplyDialogView estado del diálogo de suministro.
type SupplyDialogView struct {
	Open     bool
	Form     SupplyForm
	Error    string
	Products []string // opciones del selector de producto
}

// StatusDialogView estado del diálogo de cambio de estado.
type StatusDialogView struct {
	Open    bool
	Kind    string
	ID      int
	Number  string
	Current string
	Form    StatusForm
	Options []string
	Error   string
}

// ViewStateResponse estado de la vista expuesto por GET /api/view.
type ViewStateResponse struct {
	ActiveTab    string `json:"active_tab"`
	OrderDialog  bool   `json:"order_dialog_open"`
	SupplyDialog bool   `json:"supply_dialog_open"`
	StatusDialog bool   `json:"status_dialog_open"`
}
