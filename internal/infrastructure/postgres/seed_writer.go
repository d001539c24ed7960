package postgres

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
)

// WriteSeed escribe los INSERT del catálogo. Los ids se conservan y las secuencias se ajustan
// al final para que el backend pueda seguir insertando.
func WriteSeed(w io.Writer, s *memory.Seed) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) { fmt.Fprintf(bw, format, args...) }

	p("-- Catálogo SkladPro: %d productos, %d pedidos, %d recepciones, %d envíos\n",
		len(s.Products), len(s.Orders), len(s.Receipts), len(s.Shipments))

	seen := map[string]bool{}
	for _, pr := range s.Products {
		if pr.Category == "" || seen[pr.Category] {
			continue
		}
		seen[pr.Category] = true
		p("INSERT INTO categories (name) VALUES (%s);\n", quote(pr.Category))
	}
	for _, pr := range s.Products {
		price, err := decimal.NewFromString(pr.Price)
		if err != nil {
			return fmt.Errorf("precio de %s: %w", pr.SKU, err)
		}
		p("INSERT INTO products (id, name, sku, category_id, quantity, location, price) VALUES (%d, %s, %s, (SELECT id FROM categories WHERE name = %s), %d, %s, %s);\n",
			pr.ID, quote(pr.Name), quote(pr.SKU), quote(pr.Category), pr.Quantity, quote(pr.Location), price.StringFixed(2))
	}
	for _, c := range s.Contractors {
		p("INSERT INTO contractors (id, name, type, contact, orders_count) VALUES (%d, %s, %s, %s, %d);\n",
			c.ID, quote(c.Name), quote(c.Type), quote(c.Contact), c.Orders)
	}
	for _, o := range s.Orders {
		p("INSERT INTO orders (id, order_number, customer_name, status, total_items, created_at) VALUES (%d, %s, %s, %s, %d, %s);\n",
			o.ID, quote(o.Number), quote(o.Customer), quote(o.Status), o.Items, quote(o.Date))
	}
	for _, r := range s.Receipts {
		p("INSERT INTO receipts (id, receipt_number, supplier_name, status, total_items, created_at) VALUES (%d, %s, %s, %s, %d, %s);\n",
			r.ID, quote(r.Number), quote(r.Supplier), quote(r.Status), r.Items, quote(r.Date))
	}
	for _, sh := range s.Shipments {
		p("INSERT INTO shipments (id, shipment_number, customer_name, status, total_items, created_at) VALUES (%d, %s, %s, %s, %d, %s);\n",
			sh.ID, quote(sh.Number), quote(sh.Customer), quote(sh.Status), sh.Items, quote(sh.Date))
	}
	for _, z := range s.Zones {
		p("INSERT INTO warehouse_zones (id, zone_name, capacity, items_count, location) VALUES (%d, %s, %d, %d, %s);\n",
			z.ID, quote(z.Name), z.Capacity, z.Items, quote(z.Location))
	}
	for _, i := range s.Inventory {
		p("INSERT INTO inventories (id, inventory_number, zone_id, status, progress, started_at) VALUES (%d, %s, (SELECT id FROM warehouse_zones WHERE zone_name = %s), %s, %d, %s);\n",
			i.ID, quote(i.Number), quote(i.Zone), quote(i.Status), i.Progress, quote(i.Date))
	}
	for _, t := range []string{"products", "contractors", "orders", "receipts", "shipments", "warehouse_zones", "inventories"} {
		p("SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1));\n", t, t)
	}
	return bw.Flush()
}
