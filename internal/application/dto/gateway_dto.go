package dto

import "github.com/shopspring/decimal"

// Filas del contrato ?path= del backend de datos (columnas snake_case del esquema).
// Las usan el gateway HTTP y el repositorio remoto que consume ese mismo contrato.

// GatewayProduct fila de path=products.
type GatewayProduct struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	Location     string          `json:"location"`
	Price        decimal.Decimal `json:"price"`
}

// GatewayOrder fila de path=orders.
type GatewayOrder struct {
	ID           int    `json:"id"`
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	TotalItems   int    `json:"total_items"`
	CreatedAt    string `json:"created_at"`
}

// GatewayReceipt fila de path=receipts.
type GatewayReceipt struct {
	ID            int    `json:"id"`
	ReceiptNumber string `json:"receipt_number"`
	SupplierName  string `json:"supplier_name"`
	Status        string `json:"status"`
	TotalItems    int    `json:"total_items"`
	CreatedAt     string `json:"created_at"`
}

// GatewayShipment fila de path=shipments.
type GatewayShipment struct {
	ID             int    `json:"id"`
	ShipmentNumber string `json:"shipment_number"`
	CustomerName   string `json:"customer_name"`
	Status         string `json:"status"`
	TotalItems     int    `json:"total_items"`
	CreatedAt      string `json:"created_at"`
}

// GatewayZone fila de path=warehouse_zones.
type GatewayZone struct {
	ID         int    `json:"id"`
	ZoneName   string `json:"zone_name"`
	Capacity   int    `json:"capacity"`
	ItemsCount int    `json:"items_count"`
	Location   string `json:"location"`
}

// GatewayInventory fila de path=inventories.
type GatewayInventory struct {
	ID              int    `json:"id"`
	InventoryNumber string `json:"inventory_number"`
	ZoneName        string `json:"zone_name"`
	Status          string `json:"status"`
	StartedAt       string `json:"started_at"`
	Progress        int    `json:"progress"`
}

// GatewayContractor fila de path=contractors.
type GatewayContractor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Contact     string `json:"contact"`
	OrdersCount int    `json:"orders_count"`
}

// GatewayOrderRequest cuerpo de POST path=order.
type GatewayOrderRequest struct {
	UserID    string          `json:"user_id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Notes     string          `json:"notes"`
}

// GatewayReceiptRequest cuerpo de POST path=receipt.
type GatewayReceiptRequest struct {
	SupplierID   int    `json:"supplier_id"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"delivery_date"`
	Notes        string `json:"notes"`
}

// GatewayStatusRequest cuerpo de PUT path=*_status.
type GatewayStatusRequest struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// GatewayAck respuesta a POST/PUT: el documento se valida y se devuelve, pero no se guarda.
type GatewayAck struct {
	ID        int    `json:"id,omitempty"`
	Number    string `json:"number,omitempty"`
	Status    string `json:"status,omitempty"`
	Persisted bool   `json:"persisted"`
}

// GatewayUserAck respuesta a POST path=register.
type GatewayUserAck struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Persisted bool   `json:"persisted"`
}
