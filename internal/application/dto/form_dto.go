package dto

// OrderForm formulario del diálogo de pedido (comprador).
type OrderForm struct {
	Product  string `json:"product" form:"product"`
	Quantity string `json:"quantity" form:"quantity"`
	Notes    string `json:"notes" form:"notes"`
}

// SupplyForm formulario del diálogo de suministro (proveedor).
type SupplyForm struct {
	Product      string `json:"product" form:"product"`
	Quantity     string `json:"quantity" form:"quantity"`
	DeliveryDate string `json:"delivery_date" form:"delivery_date"`
	Notes        string `json:"notes" form:"notes"`
}

// StatusForm formulario del diálogo de cambio de estado (operador).
type StatusForm struct {
	Status string `json:"status" form:"status"`
}

// StatusTargetRequest documento a seleccionar para el diálogo de estado.
type StatusTargetRequest struct {
	Kind string `json:"kind" form:"kind"`
	ID   int    `json:"id" form:"id"`
}
