package memory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
)

func TestNewDefaultCatalog_DatosDeDemostracion(t *testing.T) {
	c, err := memory.NewDefaultCatalog()
	require.NoError(t, err)
	ctx := context.Background()

	products, _ := c.Products(ctx)
	require.Len(t, products, 3)
	assert.Equal(t, "Товар А", products[0].Name)
	assert.Equal(t, "A-01-01", products[0].Location)
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("820.50")))

	orders, _ := c.Orders(ctx)
	require.Len(t, orders, 3)
	assert.Equal(t, entity.OrderDelivered, orders[2].Status)

	receipts, _ := c.Receipts(ctx)
	assert.Len(t, receipts, 2)
	shipments, _ := c.Shipments(ctx)
	assert.Len(t, shipments, 2)

	zones, _ := c.Zones(ctx)
	require.Len(t, zones, 3)
	assert.Equal(t, "80%", zones[0].CapacityLabel())

	inv, _ := c.InventoryCounts(ctx)
	require.Len(t, inv, 2)
	assert.True(t, inv[1].Completed())

	contractors, _ := c.Contractors(ctx)
	assert.Len(t, contractors, 3)

	stats, _ := c.Stats(ctx)
	assert.Equal(t, 1248, stats.ProductsCount)
	assert.Equal(t, "-3%", stats.Changes.Shipments)
}

func TestCatalog_LecturasNoAlteranLosRegistros(t *testing.T) {
	c, err := memory.NewDefaultCatalog()
	require.NoError(t, err)
	ctx := context.Background()

	orders, _ := c.Orders(ctx)
	orders[0].Status = entity.OrderDelivered

	again, _ := c.Orders(ctx)
	assert.Equal(t, entity.OrderProcessing, again[0].Status)
}

func TestDecodeSeed_EstadoInvalido(t *testing.T) {
	doc := `
orders:
  - {id: 1, number: "ORD-9", customer: "X", status: "Принято", items: 1, date: "2024-01-01"}
`
	_, err := memory.DecodeSeed(strings.NewReader(doc))
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestDecodeSeed_PrecioInvalido(t *testing.T) {
	doc := `
products:
  - {id: 1, name: "X", sku: "S", category: "C", quantity: 1, location: "L", price: "abc"}
`
	_, err := memory.DecodeSeed(strings.NewReader(doc))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
