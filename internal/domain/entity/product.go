package entity

import "github.com/shopspring/decimal"

// Product artículo del catálogo. Es estático: nunca se modifica desde el panel.
type Product struct {
	ID       int
	Name     string
	SKU      string
	Category string
	Quantity int
	Location string // celda de almacenamiento, ej: A-01-01
	Price    decimal.Decimal
}

// Value valor del stock (cantidad × precio).
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
