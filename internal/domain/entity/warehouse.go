package entity

import "fmt"

// Zone subdivisión física del almacén con su porcentaje de ocupación.
type Zone struct {
	ID       int
	Name     string
	Capacity int // porcentaje 0-100
	Items    int
	Location string // ej: Стеллажи 1-10
}

// CapacityLabel porcentaje formateado, ej: "80%".
func (z Zone) CapacityLabel() string {
	return fmt.Sprintf("%d%%", z.Capacity)
}

// Estados de inventario físico.
const (
	CountInProgress Status = "В процессе"
	CountCompleted  Status = "Завершена"
)

// InventoryCount inventario físico (conteo) de una zona.
type InventoryCount struct {
	ID       int
	Number   string
	Zone     string
	Status   Status
	Date     string
	Progress int // porcentaje 0-100
}

// Completed indica si el conteo terminó.
func (c InventoryCount) Completed() bool {
	return c.Status == CountCompleted
}

// Contractor cliente o proveedor.
type Contractor struct {
	ID      int
	Name    string
	Type    string // Поставщик | Клиент
	Contact string
	Orders  int
}

// Stats indicadores de la cabecera del dashboard.
type Stats struct {
	ProductsCount  int
	ActiveOrders   int
	ReceiptsToday  int
	ShipmentsToday int
	Changes        StatChanges
}

// StatChanges variación respecto al período anterior, ya formateada (ej: "+12%").
// Vacío cuando la fuente no la calcula.
type StatChanges struct {
	Products  string
	Orders    string
	Receipts  string
	Shipments string
}
