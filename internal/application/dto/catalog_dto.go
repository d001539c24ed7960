package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Location string          `json:"location"`
	Price    decimal.Decimal `json:"price"`
}

// DocumentResponse salida común de pedidos, recepciones y envíos.
// Counterparty es el cliente (pedido/envío) o el proveedor (recepción).
type DocumentResponse struct {
	ID           int    `json:"id"`
	Kind         string `json:"kind"`
	Number       string `json:"number"`
	Counterparty string `json:"counterparty"`
	Status       string `json:"status"`
	Items        int    `json:"items"`
	Date         string `json:"date"`
}

// ZoneResponse salida de una zona del almacén.
type ZoneResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"zone"`
	Capacity string `json:"capacity"`
	Items    int    `json:"items"`
	Location string `json:"location"`
}

// InventoryCountResponse salida de un inventario físico.
type InventoryCountResponse struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	Zone     string `json:"zone"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Progress int    `json:"progress"`
}

// ContractorResponse salida de un contratista.
type ContractorResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Orders  int    `json:"orders"`
}

// StatsResponse indicadores del dashboard.
type StatsResponse struct {
	ProductsCount  int `json:"products_count"`
	ActiveOrders   int `json:"active_orders"`
	ReceiptsToday  int `json:"receipts_today"`
	ShipmentsToday int `json:"shipments_today"`
}
