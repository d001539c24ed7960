package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/infrastructure/backend"
)

// fakePort DataPort en memoria: path -> JSON.
type fakePort map[string]string

func (f fakePort) Get(_ context.Context, path string) (json.RawMessage, error) {
	body, ok := f[path]
	if !ok {
		return nil, errors.New("sin red")
	}
	return json.RawMessage(body), nil
}

func (f fakePort) Post(context.Context, string, any) (json.RawMessage, error) { return nil, nil }
func (f fakePort) Put(context.Context, string, any) (json.RawMessage, error)  { return nil, nil }

func TestRemoteCatalog_FilasDelBackend(t *testing.T) {
	port := fakePort{
		"products":        `[{"id":1,"name":"Товар А","sku":"SKU-001","category_name":"Категория 1","quantity":150,"location":"A-01-01","price":"1500.00"}]`,
		"orders":          `[{"id":1,"order_number":"ORD-001","customer_name":"Клиент А","status":"В обработке","total_items":5,"created_at":"2024-11-13 09:15:00"}]`,
		"warehouse_zones": `[{"id":1,"zone_name":"Зона А","capacity":80,"items_count":450,"location":"Стеллажи 1-10"}]`,
		"inventories":     `[{"id":1,"inventory_number":"INV-001","zone_name":"Зона А","status":"В процессе","started_at":"2024-11-13T08:00:00","progress":60}]`,
		"contractors":     `[{"id":1,"name":"Поставщик А","type":"Поставщик","contact":"info@supplier-a.ru","orders_count":45}]`,
		"stats":           `{"products_count":3,"active_orders":2,"receipts_today":0,"shipments_today":1}`,
	}
	repo := backend.NewRemoteCatalog(port)
	ctx := context.Background()

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Категория 1", products[0].Category)
	assert.Equal(t, "1500.00", products[0].Price.StringFixed(2))

	orders, err := repo.Orders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-13", orders[0].Date)
	assert.Equal(t, entity.OrderProcessing, orders[0].Status)

	zones, err := repo.Zones(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Зона А", zones[0].Name)

	inv, err := repo.InventoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-13", inv[0].Date)

	contractors, err := repo.Contractors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, contractors[0].Orders)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ActiveOrders)
}

func TestRemoteCatalog_CuerpoDeError(t *testing.T) {
	repo := backend.NewRemoteCatalog(fakePort{"receipts": `{"error":"Unknown path"}`})
	_, err := repo.Receipts(context.Background())
	assert.ErrorContains(t, err, "Unknown path")
}

func TestRemoteCatalog_ErrorDeRed(t *testing.T) {
	_, err := backend.NewRemoteCatalog(fakePort{}).Shipments(context.Background())
	assert.Error(t, err)
}
