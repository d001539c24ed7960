package memory

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// Seed documento YAML del catálogo. Lo leen el catálogo en memoria y cmd/seed_catalog.
type Seed struct {
	Stats       SeedStats        `yaml:"stats"`
	Products    []SeedProduct    `yaml:"products"`
	Orders      []SeedDocument   `yaml:"orders"`
	Receipts    []SeedDocument   `yaml:"receipts"`
	Shipments   []SeedDocument   `yaml:"shipments"`
	Zones       []SeedZone       `yaml:"zones"`
	Inventory   []SeedInventory  `yaml:"inventory"`
	Contractors []SeedContractor `yaml:"contractors"`
}

type SeedStats struct {
	ProductsCount  int `yaml:"products_count"`
	ActiveOrders   int `yaml:"active_orders"`
	ReceiptsToday  int `yaml:"receipts_today"`
	ShipmentsToday int `yaml:"shipments_today"`
	Changes        struct {
		Products  string `yaml:"products"`
		Orders    string `yaml:"orders"`
		Receipts  string `yaml:"receipts"`
		Shipments string `yaml:"shipments"`
	} `yaml:"changes"`
}

type SeedProduct struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	SKU      string `yaml:"sku"`
	Category string `yaml:"category"`
	Quantity int    `yaml:"quantity"`
	Location string `yaml:"location"`
	Price    string `yaml:"price"`
}

// SeedDocument fila común de pedidos, recepciones y envíos.
type SeedDocument struct {
	ID       int    `yaml:"id"`
	Number   string `yaml:"number"`
	Customer string `yaml:"customer"`
	Supplier string `yaml:"supplier"`
	Status   string `yaml:"status"`
	Items    int    `yaml:"items"`
	Date     string `yaml:"date"`
}

type SeedZone struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
	Items    int    `yaml:"items"`
	Location string `yaml:"location"`
}

type SeedInventory struct {
	ID       int    `yaml:"id"`
	Number   string `yaml:"number"`
	Zone     string `yaml:"zone"`
	Status   string `yaml:"status"`
	Date     string `yaml:"date"`
	Progress int    `yaml:"progress"`
}

type SeedContractor struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Contact string `yaml:"contact"`
	Orders  int    `yaml:"orders"`
}

// DecodeSeed lee el YAML y valida estados y precios.
func DecodeSeed(r io.Reader) (*Seed, error) {
	var s Seed
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("memory: decodificar catálogo: %w", err)
	}
	if _, err := s.Catalog(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Catalog convierte el documento en registros de dominio.
func (s *Seed) Catalog() (*Catalog, error) {
	c := &Catalog{
		stats: entity.Stats{
			ProductsCount:  s.Stats.ProductsCount,
			ActiveOrders:   s.Stats.ActiveOrders,
			ReceiptsToday:  s.Stats.ReceiptsToday,
			ShipmentsToday: s.Stats.ShipmentsToday,
			Changes: entity.StatChanges{
				Products:  s.Stats.Changes.Products,
				Orders:    s.Stats.Changes.Orders,
				Receipts:  s.Stats.Changes.Receipts,
				Shipments: s.Stats.Changes.Shipments,
			},
		},
	}
	for _, p := range s.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: precio de %s: %v", domain.ErrInvalidInput, p.SKU, err)
		}
		c.products = append(c.products, entity.Product{
			ID: p.ID, Name: p.Name, SKU: p.SKU, Category: p.Category,
			Quantity: p.Quantity, Location: p.Location, Price: price,
		})
	}
	for _, d := range s.Orders {
		st, err := entity.KindOrder.ParseStatus(d.Status)
		if err != nil {
			return nil, fmt.Errorf("pedido %s: %w", d.Number, err)
		}
		c.orders = append(c.orders, entity.Order{ID: d.ID, Number: d.Number, Customer: d.Customer, Status: st, Items: d.Items, Date: d.Date})
	}
	for _, d := range s.Receipts {
		st, err := entity.KindReceipt.ParseStatus(d.Status)
		if err != nil {
			return nil, fmt.Errorf("recepción %s: %w", d.Number, err)
		}
		c.receipts = append(c.receipts, entity.Receipt{ID: d.ID, Number: d.Number, Supplier: d.Supplier, Status: st, Items: d.Items, Date: d.Date})
	}
	for _, d := range s.Shipments {
		st, err := entity.KindShipment.ParseStatus(d.Status)
		if err != nil {
			return nil, fmt.Errorf("envío %s: %w", d.Number, err)
		}
		c.shipments = append(c.shipments, entity.Shipment{ID: d.ID, Number: d.Number, Customer: d.Customer, Status: st, Items: d.Items, Date: d.Date})
	}
	for _, z := range s.Zones {
		c.zones = append(c.zones, entity.Zone{ID: z.ID, Name: z.Name, Capacity: z.Capacity, Items: z.Items, Location: z.Location})
	}
	for _, i := range s.Inventory {
		c.inventory = append(c.inventory, entity.InventoryCount{
			ID: i.ID, Number: i.Number, Zone: i.Zone, Status: entity.Status(i.Status), Date: i.Date, Progress: i.Progress,
		})
	}
	for _, k := range s.Contractors {
		c.contractors = append(c.contractors, entity.Contractor{ID: k.ID, Name: k.Name, Type: k.Type, Contact: k.Contact, Orders: k.Orders})
	}
	return c, nil
}
