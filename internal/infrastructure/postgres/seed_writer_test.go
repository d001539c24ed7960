package postgres_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
	"github.com/jhoicas/skladpro/internal/infrastructure/postgres"
)

func TestWriteSeed_InsertsDelCatalogo(t *testing.T) {
	seed := &memory.Seed{
		Products: []memory.SeedProduct{
			{ID: 1, Name: "Товар А", SKU: "SKU-001", Category: "Категория 1", Quantity: 150, Location: "A-01-01", Price: "1500"},
			{ID: 2, Name: "O'Neil", SKU: "SKU-002", Category: "Категория 1", Quantity: 1, Location: "A-01-02", Price: "9.5"},
		},
		Orders:    []memory.SeedDocument{{ID: 1, Number: "ORD-001", Customer: "Клиент А", Status: "В обработке", Items: 5, Date: "2024-11-13"}},
		Inventory: []memory.SeedInventory{{ID: 1, Number: "INV-001", Zone: "Зона А", Status: "В процессе", Date: "2024-11-13", Progress: 60}},
	}
	var buf bytes.Buffer
	require.NoError(t, postgres.WriteSeed(&buf, seed))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "INSERT INTO categories"), "categorías sin duplicar")
	assert.Contains(t, out, "'O''Neil'")
	assert.Contains(t, out, ", 1500.00);")
	assert.Contains(t, out, "'ORD-001', 'Клиент А', 'В обработке', 5, '2024-11-13'")
	assert.Contains(t, out, "(SELECT id FROM warehouse_zones WHERE zone_name = 'Зона А')")
	assert.Contains(t, out, "pg_get_serial_sequence('inventories', 'id')")
}

func TestWriteSeed_PrecioInvalido(t *testing.T) {
	seed := &memory.Seed{Products: []memory.SeedProduct{{ID: 1, SKU: "X", Price: "n/a"}}}
	err := postgres.WriteSeed(&bytes.Buffer{}, seed)
	assert.Error(t, err)
}

func TestSchema_TablasDelBackend(t *testing.T) {
	for _, table := range []string{"products", "categories", "orders", "receipts", "shipments", "warehouse_zones", "inventories", "contractors"} {
		assert.Contains(t, postgres.Schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
