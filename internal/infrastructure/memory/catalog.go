// Package memory catálogo estático embebido: la fuente por defecto del panel.
package memory

import (
	"bytes"
	"context"
	_ "embed"
	"slices"

	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/domain/repository"
)

//go:embed seed/catalog.yaml
var defaultSeed []byte

var _ repository.CatalogRepository = (*Catalog)(nil)

// Catalog implementa CatalogRepository sobre registros inmutables en memoria.
// Cada lectura devuelve una copia: nadie puede alterar los registros guardados.
type Catalog struct {
	stats       entity.Stats
	products    []entity.Product
	orders      []entity.Order
	receipts    []entity.Receipt
	shipments   []entity.Shipment
	zones       []entity.Zone
	inventory   []entity.InventoryCount
	contractors []entity.Contractor
}

// DefaultSeedYAML copia del YAML embebido.
func DefaultSeedYAML() []byte {
	return bytes.Clone(defaultSeed)
}

// NewDefaultCatalog carga el catálogo embebido.
func NewDefaultCatalog() (*Catalog, error) {
	s, err := DecodeSeed(bytes.NewReader(defaultSeed))
	if err != nil {
		return nil, err
	}
	return s.Catalog()
}

func (c *Catalog) Products(context.Context) ([]entity.Product, error) {
	return slices.Clone(c.products), nil
}

func (c *Catalog) Orders(context.Context) ([]entity.Order, error) {
	return slices.Clone(c.orders), nil
}

func (c *Catalog) Receipts(context.Context) ([]entity.Receipt, error) {
	return slices.Clone(c.receipts), nil
}

func (c *Catalog) Shipments(context.Context) ([]entity.Shipment, error) {
	return slices.Clone(c.shipments), nil
}

func (c *Catalog) Zones(context.Context) ([]entity.Zone, error) {
	return slices.Clone(c.zones), nil
}

func (c *Catalog) InventoryCounts(context.Context) ([]entity.InventoryCount, error) {
	return slices.Clone(c.inventory), nil
}

func (c *Catalog) Contractors(context.Context) ([]entity.Contractor, error) {
	return slices.Clone(c.contractors), nil
}

func (c *Catalog) Stats(context.Context) (entity.Stats, error) {
	return c.stats, nil
}
