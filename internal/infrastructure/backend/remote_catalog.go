package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/ports"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/domain/repository"
)

var _ repository.CatalogRepository = (*RemoteCatalog)(nil)

// RemoteCatalog CatalogRepository que lee el catálogo a través del DataPort.
type RemoteCatalog struct {
	port ports.DataPort
}

// NewRemoteCatalog construye el repositorio remoto.
func NewRemoteCatalog(port ports.DataPort) *RemoteCatalog {
	return &RemoteCatalog{port: port}
}

// errorBody respuesta de error del backend: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

func fetch[T any](ctx context.Context, port ports.DataPort, path string) (T, error) {
	var out T
	raw, err := port.Get(ctx, path)
	if err != nil {
		return out, err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var e errorBody
		if json.Unmarshal(trimmed, &e) == nil && e.Error != "" {
			return out, fmt.Errorf("backend: path=%s: %s", path, e.Error)
		}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("backend: decodificar path=%s: %w", path, err)
	}
	return out, nil
}

// day recorta un timestamp del backend a YYYY-MM-DD.
func day(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func (r *RemoteCatalog) Products(ctx context.Context) ([]entity.Product, error) {
	rows, err := fetch[[]dto.GatewayProduct](ctx, r.port, "products")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, entity.Product{
			ID: p.ID, Name: p.Name, SKU: p.SKU, Category: p.CategoryName,
			Quantity: p.Quantity, Location: p.Location, Price: p.Price,
		})
	}
	return out, nil
}

func (r *RemoteCatalog) Orders(ctx context.Context) ([]entity.Order, error) {
	rows, err := fetch[[]dto.GatewayOrder](ctx, r.port, "orders")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(rows))
	for _, o := range rows {
		out = append(out, entity.Order{
			ID: o.ID, Number: o.OrderNumber, Customer: o.CustomerName,
			Status: entity.Status(o.Status), Items: o.TotalItems, Date: day(o.CreatedAt),
		})
	}
	return out, nil
}

func (r *RemoteCatalog) Receipts(ctx context.Context) ([]entity.Receipt, error) {
	rows, err := fetch[[]dto.GatewayReceipt](ctx, r.port, "receipts")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Receipt, 0, len(rows))
	for _, rc := range rows {
		out = append(out, entity.Receipt{
			ID: rc.ID, Number: rc.ReceiptNumber, Supplier: rc.SupplierName,
			Status: entity.Status(rc.Status), Items: rc.TotalItems, Date: day(rc.CreatedAt),
		})
	}
	return out, nil
}

func (r *RemoteCatalog) Shipments(ctx context.Context) ([]entity.Shipment, error) {
	rows, err := fetch[[]dto.GatewayShipment](ctx, r.port, "shipments")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Shipment, 0, len(rows))
	for _, s := range rows {
		out = append(out, entity.Shipment{
			ID: s.ID, Number: s.ShipmentNumber, Customer: s.CustomerName,
			Status: entity.Status(s.Status), Items: s.TotalItems, Date: day(s.CreatedAt),
		})
	}
	return out, nil
}

func (r *RemoteCatalog) Zones(ctx context.Context) ([]entity.Zone, error) {
	rows, err := fetch[[]dto.GatewayZone](ctx, r.port, "warehouse_zones")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Zone, 0, len(rows))
	for _, z := range rows {
		out = append(out, entity.Zone{ID: z.ID, Name: z.ZoneName, Capacity: z.Capacity, Items: z.ItemsCount, Location: z.Location})
	}
	return out, nil
}

func (r *RemoteCatalog) InventoryCounts(ctx context.Context) ([]entity.InventoryCount, error) {
	rows, err := fetch[[]dto.GatewayInventory](ctx, r.port, "inventories")
	if err != nil {
		return nil, err
	}
	out := make([]entity.InventoryCount, 0, len(rows))
	for _, i := range rows {
		out = append(out, entity.InventoryCount{
			ID: i.ID, Number: i.InventoryNumber, Zone: i.ZoneName,
			Status: entity.Status(i.Status), Date: day(i.StartedAt), Progress: i.Progress,
		})
	}
	return out, nil
}

func (r *RemoteCatalog) Contractors(ctx context.Context) ([]entity.Contractor, error) {
	rows, err := fetch[[]dto.GatewayContractor](ctx, r.port, "contractors")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Contractor, 0, len(rows))
	for _, c := range rows {
		out = append(out, entity.Contractor{ID: c.ID, Name: c.Name, Type: c.Type, Contact: c.Contact, Orders: c.OrdersCount})
	}
	return out, nil
}

func (r *RemoteCatalog) Stats(ctx context.Context) (entity.Stats, error) {
	s, err := fetch[dto.StatsResponse](ctx, r.port, "stats")
	if err != nil {
		return entity.Stats{}, err
	}
	return entity.Stats{
		ProductsCount:  s.ProductsCount,
		ActiveOrders:   s.ActiveOrders,
		ReceiptsToday:  s.ReceiptsToday,
		ShipmentsToday: s.ShipmentsToday,
	}, nil
}
