package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/domain/repository"
)

// CatalogUseCase consultas de solo lectura sobre el catálogo del almacén.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Repository expone el puerto subyacente (reportes y gateway leen los registros crudos).
func (uc *CatalogUseCase) Repository() repository.CatalogRepository {
	return uc.repo
}

// ListProducts lista el catálogo de productos.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ProductNames nombres para el selector del diálogo de suministro.
func (uc *CatalogUseCase) ProductNames(ctx context.Context) ([]string, error) {
	list, err := uc.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	return names, nil
}

// ListOrders lista los pedidos.
func (uc *CatalogUseCase) ListOrders(ctx context.Context) ([]dto.DocumentResponse, error) {
	list, err := uc.repo.Orders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.DocumentResponse{
			ID: o.ID, Kind: string(entity.KindOrder), Number: o.Number, Counterparty: o.Customer,
			Status: string(o.Status), Items: o.Items, Date: o.Date,
		})
	}
	return out, nil
}

// RecentOrders los primeros n pedidos (el catálogo viene ordenado del más reciente al más antiguo).
func (uc *CatalogUseCase) RecentOrders(ctx context.Context, n int) ([]dto.DocumentResponse, error) {
	list, err := uc.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) > n {
		list = list[:n]
	}
	return list, nil
}

// ListReceipts lista las recepciones.
func (uc *CatalogUseCase) ListReceipts(ctx context.Context) ([]dto.DocumentResponse, error) {
	list, err := uc.repo.Receipts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.DocumentResponse{
			ID: r.ID, Kind: string(entity.KindReceipt), Number: r.Number, Counterparty: r.Supplier,
			Status: string(r.Status), Items: r.Items, Date: r.Date,
		})
	}
	return out, nil
}

// ListShipments lista los envíos.
func (uc *CatalogUseCase) ListShipments(ctx context.Context) ([]dto.DocumentResponse, error) {
	list, err := uc.repo.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.DocumentResponse{
			ID: s.ID, Kind: string(entity.KindShipment), Number: s.Number, Counterparty: s.Customer,
			Status: string(s.Status), Items: s.Items, Date: s.Date,
		})
	}
	return out, nil
}

// ListZones lista las zonas del almacén.
func (uc *CatalogUseCase) ListZones(ctx context.Context) ([]dto.ZoneResponse, error) {
	list, err := uc.repo.Zones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		out = append(out, dto.ZoneResponse{
			ID: z.ID, Name: z.Name, Capacity: z.CapacityLabel(), Items: z.Items, Location: z.Location,
		})
	}
	return out, nil
}

// ListInventory lista los inventarios físicos.
func (uc *CatalogUseCase) ListInventory(ctx context.Context) ([]dto.InventoryCountResponse, error) {
	list, err := uc.repo.InventoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryCountResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.InventoryCountResponse{
			ID: c.ID, Number: c.Number, Zone: c.Zone, Status: string(c.Status), Date: c.Date, Progress: c.Progress,
		})
	}
	return out, nil
}

// ListContractors lista clientes y proveedores.
func (uc *CatalogUseCase) ListContractors(ctx context.Context) ([]dto.ContractorResponse, error) {
	list, err := uc.repo.Contractors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractorResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ContractorResponse{
			ID: c.ID, Name: c.Name, Type: c.Type, Contact: c.Contact, Orders: c.Orders,
		})
	}
	return out, nil
}

// GetStats indicadores del dashboard.
func (uc *CatalogUseCase) GetStats(ctx context.Context) (dto.StatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return dto.StatsResponse{}, err
	}
	return dto.StatsResponse{
		ProductsCount:  s.ProductsCount,
		ActiveOrders:   s.ActiveOrders,
		ReceiptsToday:  s.ReceiptsToday,
		ShipmentsToday: s.ShipmentsToday,
	}, nil
}

// FindTarget busca el documento cuyo estado se va a cambiar. ErrNotFound si no existe.
func (uc *CatalogUseCase) FindTarget(ctx context.Context, kind entity.RecordKind, id int) (entity.StatusTarget, error) {
	switch kind {
	case entity.KindOrder:
		list, err := uc.repo.Orders(ctx)
		if err != nil {
			return entity.StatusTarget{}, err
		}
		for _, o := range list {
			if o.ID == id {
				return o.Target(), nil
			}
		}
	case entity.KindReceipt:
		list, err := uc.repo.Receipts(ctx)
		if err != nil {
			return entity.StatusTarget{}, err
		}
		for _, r := range list {
			if r.ID == id {
				return r.Target(), nil
			}
		}
	case entity.KindShipment:
		list, err := uc.repo.Shipments(ctx)
		if err != nil {
			return entity.StatusTarget{}, err
		}
		for _, s := range list {
			if s.ID == id {
				return s.Target(), nil
			}
		}
	default:
		return entity.StatusTarget{}, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, kind)
	}
	return entity.StatusTarget{}, fmt.Errorf("%w: %s %d", domain.ErrNotFound, kind, id)
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		SKU:      p.SKU,
		Category: p.Category,
		Quantity: p.Quantity,
		Location: p.Location,
		Price:    p.Price,
	}
}
