package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// Querier lo que el repositorio necesita de *pgxpool.Pool (o de una conexión/tx).
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepo implementación de solo lectura de CatalogRepository sobre el esquema del backend.
type CatalogRepo struct {
	db Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(db Querier) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Products lista productos con el nombre de su categoría.
func (r *CatalogRepo) Products(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.sku, COALESCE(c.name, ''), p.quantity, COALESCE(p.location, ''), p.price
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Quantity, &p.Location, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Orders lista pedidos, el más reciente primero.
func (r *CatalogRepo) Orders(ctx context.Context) ([]entity.Order, error) {
	query := `
		SELECT o.id, o.order_number, COALESCE(c.name, o.customer_name, ''), o.status, o.total_items,
		       to_char(o.created_at, 'YYYY-MM-DD')
		FROM orders o
		LEFT JOIN contractors c ON o.contractor_id = c.id
		ORDER BY o.created_at DESC, o.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.Customer, &o.Status, &o.Items, &o.Date); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Receipts lista recepciones, la más reciente primero.
func (r *CatalogRepo) Receipts(ctx context.Context) ([]entity.Receipt, error) {
	query := `
		SELECT r.id, r.receipt_number, COALESCE(c.name, r.supplier_name, ''), r.status, r.total_items,
		       to_char(r.created_at, 'YYYY-MM-DD')
		FROM receipts r
		LEFT JOIN contractors c ON r.supplier_id = c.id
		ORDER BY r.created_at DESC, r.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []entity.Receipt
	for rows.Next() {
		var rc entity.Receipt
		if err := rows.Scan(&rc.ID, &rc.Number, &rc.Supplier, &rc.Status, &rc.Items, &rc.Date); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, rc)
	}
	return list, rows.Err()
}

// Shipments lista envíos, el más reciente primero.
func (r *CatalogRepo) Shipments(ctx context.Context) ([]entity.Shipment, error) {
	query := `
		SELECT s.id, s.shipment_number, COALESCE(c.name, s.customer_name, ''), s.status, s.total_items,
		       to_char(s.created_at, 'YYYY-MM-DD')
		FROM shipments s
		LEFT JOIN contractors c ON s.customer_id = c.id
		ORDER BY s.created_at DESC, s.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.Number, &s.Customer, &s.Status, &s.Items, &s.Date); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Zones lista las zonas del almacén.
func (r *CatalogRepo) Zones(ctx context.Context) ([]entity.Zone, error) {
	query := `
		SELECT id, zone_name, capacity, items_count, COALESCE(location, '')
		FROM warehouse_zones ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []entity.Zone
	for rows.Next() {
		var z entity.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Capacity, &z.Items, &z.Location); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, z)
	}
	return list, rows.Err()
}

// InventoryCounts lista inventarios físicos, el más reciente primero.
func (r *CatalogRepo) InventoryCounts(ctx context.Context) ([]entity.InventoryCount, error) {
	query := `
		SELECT i.id, i.inventory_number, COALESCE(w.zone_name, ''), i.status,
		       to_char(i.started_at, 'YYYY-MM-DD'), i.progress
		FROM inventories i
		LEFT JOIN warehouse_zones w ON i.zone_id = w.id
		ORDER BY i.started_at DESC, i.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []entity.InventoryCount
	for rows.Next() {
		var c entity.InventoryCount
		if err := rows.Scan(&c.ID, &c.Number, &c.Zone, &c.Status, &c.Date, &c.Progress); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Contractors lista clientes y proveedores.
func (r *CatalogRepo) Contractors(ctx context.Context) ([]entity.Contractor, error) {
	query := `
		SELECT id, name, type, COALESCE(contact, ''), orders_count
		FROM contractors ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	defer rows.Close()
	var list []entity.Contractor
	for rows.Next() {
		var c entity.Contractor
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Contact, &c.Orders); err != nil {
			return nil, fmt.Errorf("scan contractor: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Stats cuenta productos, pedidos no entregados y movimientos del día. No calcula variaciones.
func (r *CatalogRepo) Stats(ctx context.Context) (entity.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders WHERE status <> $1),
			(SELECT COUNT(*) FROM receipts WHERE created_at::date = CURRENT_DATE),
			(SELECT COUNT(*) FROM shipments WHERE created_at::date = CURRENT_DATE)`
	var s entity.Stats
	err := r.db.QueryRow(ctx, query, string(entity.OrderDelivered)).Scan(
		&s.ProductsCount, &s.ActiveOrders, &s.ReceiptsToday, &s.ShipmentsToday,
	)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("stats: %w", err)
	}
	return s, nil
}
