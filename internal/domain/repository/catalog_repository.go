package repository

import (
	"context"

	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// CatalogRepository puerto de lectura del catálogo del almacén (DIP).
// Es de solo lectura: el panel nunca persiste cambios sobre los registros.
type CatalogRepository interface {
	Products(ctx context.Context) ([]entity.Product, error)
	Orders(ctx context.Context) ([]entity.Order, error)
	Receipts(ctx context.Context) ([]entity.Receipt, error)
	Shipments(ctx context.Context) ([]entity.Shipment, error)
	Zones(ctx context.Context) ([]entity.Zone, error)
	InventoryCounts(ctx context.Context) ([]entity.InventoryCount, error)
	Contractors(ctx context.Context) ([]entity.Contractor, error)
	Stats(ctx context.Context) (entity.Stats, error)
}
