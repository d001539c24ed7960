package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// Recursos del contrato ?path=.
const (
	PathProducts       = "products"
	PathOrders         = "orders"
	PathReceipts       = "receipts"
	PathShipments      = "shipments"
	PathZones          = "warehouse_zones"
	PathContractors    = "contractors"
	PathInventories    = "inventories"
	PathStats          = "stats"
	PathRegister       = "register"
	PathOrder          = "order"
	PathReceipt        = "receipt"
	PathOrderStatus    = "order_status"
	PathReceiptStatus  = "receipt_status"
	PathShipmentStatus = "shipment_status"
)

// registrar valida el formulario de registro (lo implementa session.UseCase).
type registrar interface {
	Login(in dto.RegisterRequest) (*entity.Session, string, error)
}

// GatewayUseCase sirve el contrato ?path= del backend sobre el catálogo. Las escrituras se
// validan y se confirman con persisted=false: nada se guarda.
type GatewayUseCase struct {
	catalog  *CatalogUseCase
	register registrar
	now      func() time.Time
}

// NewGatewayUseCase construye el caso de uso.
func NewGatewayUseCase(catalog *CatalogUseCase, register registrar) *GatewayUseCase {
	return &GatewayUseCase{catalog: catalog, register: register, now: time.Now}
}

// Fetch lectura GET path=<recurso> con las columnas snake_case del esquema.
func (uc *GatewayUseCase) Fetch(ctx context.Context, path string) (any, error) {
	repo := uc.catalog.Repository()
	switch path {
	case PathProducts:
		list, err := repo.Products(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.GatewayProduct, 0, len(list))
		for _, p := range list {
			out = append(out, dto.GatewayProduct{
				ID: p.ID, Name: p.Name, SKU: p.SKU, CategoryName: p.Category,
				Quantity: p.Quantity, Location: p.Location, Price: p.Price,
			})
		}
		return out, nil
	case PathOrders:
		list, err := repo.Orders(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.GatewayOrder, 0, len(list))
		for _, o := range list {
			out = append(out, dto.GatewayOrder{
				ID: o.ID, OrderNumber: o.Number, CustomerName: o.Customer,
				Status: string(o.Status), TotalItems: o.Items, CreatedAt: o.Date,
			})
		}
		return out, nil
	case PathReceipts:
		list, err := repo.Receipts(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.GatewayReceipt, 0, len(list))
		for _, r := range list {
			out = append(out, dto.GatewayReceipt{
				ID: r.ID, ReceiptNumber: r.Number, SupplierName: r.Supplier,
				Status: string(r.Status), TotalItems: r.Items, CreatedAt: r.Date,
			})
		}
		return out, nil
	case PathShipments:
		list, err := repo.Shipments(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.GatewayShipment, 0, len(list))
		for _, s := range list {
			out = append(out, dto.GatewayShipment{
				ID: s.ID, ShipmentNumber: s.Number, CustomerName: s.Customer,
				Status: string(s.Status), TotalItems: s.Items, CreatedAt: s.Date,
			})
		}
		return out, nil
	case PathZones:
		list, err := repo.Zones(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.GatewayZone, 0, len(list))
		for _, z := range list {
			out = append(out, dto.GatewayZone{ID: z.ID, ZoneName: z.Name, Capacity: z.Capacity, ItemsCount: z.Items, Location: z.Location})
		}
		return out, nil
	case PathContractors:
		list, err := repo.Contractors(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.GatewayContractor, 0, len(list))
		for _, c := range list {
			out = append(out, dto.GatewayContractor{ID: c.ID, Name: c.Name, Type: c.Type, Contact: c.Contact, OrdersCount: c.Orders})
		}
		return out, nil
	case PathInventories:
		list, err := repo.InventoryCounts(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.GatewayInventory, 0, len(list))
		for _, i := range list {
			out = append(out, dto.GatewayInventory{
				ID: i.ID, InventoryNumber: i.Number, ZoneName: i.Zone,
				Status: string(i.Status), StartedAt: i.Date, Progress: i.Progress,
			})
		}
		return out, nil
	case PathStats:
		return uc.catalog.GetStats(ctx)
	}
	return nil, domain.ErrUnknownPath
}

// Create escritura POST path=register|order|receipt.
func (uc *GatewayUseCase) Create(ctx context.Context, path string, body []byte) (any, error) {
	switch path {
	case PathRegister:
		var in dto.RegisterRequest
		if err := decodeBody(body, &in); err != nil {
			return nil, err
		}
		sess, _, err := uc.register.Login(in)
		if err != nil {
			return nil, err
		}
		return dto.GatewayUserAck{Name: sess.User.Name, Email: sess.User.Email, Role: string(sess.User.Role)}, nil
	case PathOrder:
		var in dto.GatewayOrderRequest
		if err := decodeBody(body, &in); err != nil {
			return nil, err
		}
		if err := uc.validateOrder(ctx, in); err != nil {
			return nil, err
		}
		return dto.GatewayAck{Number: uc.number("ORD"), Status: string(entity.OrderProcessing)}, nil
	case PathReceipt:
		var in dto.GatewayReceiptRequest
		if err := decodeBody(body, &in); err != nil {
			return nil, err
		}
		if err := validateReceipt(in); err != nil {
			return nil, err
		}
		return dto.GatewayAck{Number: uc.number("RCP"), Status: string(entity.ReceiptExpected)}, nil
	}
	return nil, domain.ErrUnknownPath
}

// Update escritura PUT path=<tipo>_status. El documento conserva su estado.
func (uc *GatewayUseCase) Update(ctx context.Context, path string, body []byte) (any, error) {
	var kind entity.RecordKind
	switch path {
	case PathOrderStatus:
		kind = entity.KindOrder
	case PathReceiptStatus:
		kind = entity.KindReceipt
	case PathShipmentStatus:
		kind = entity.KindShipment
	default:
		return nil, domain.ErrUnknownPath
	}
	var in dto.GatewayStatusRequest
	if err := decodeBody(body, &in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		return nil, domain.RequiredField("status")
	}
	target, err := uc.catalog.FindTarget(ctx, kind, in.ID)
	if err != nil {
		return nil, err
	}
	st, err := kind.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	return dto.GatewayAck{ID: target.ID, Number: target.Number, Status: string(st)}, nil
}

func (uc *GatewayUseCase) validateOrder(ctx context.Context, in dto.GatewayOrderRequest) error {
	if in.Quantity <= 0 {
		return &domain.FieldError{Field: "quantity", Reason: "debe ser un entero positivo"}
	}
	if in.Price.IsNegative() {
		return &domain.FieldError{Field: "price", Reason: "no puede ser negativo"}
	}
	products, err := uc.catalog.Repository().Products(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.ID == in.ProductID {
			return nil
		}
	}
	return fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
}

func validateReceipt(in dto.GatewayReceiptRequest) error {
	if in.Quantity <= 0 {
		return &domain.FieldError{Field: "quantity", Reason: "debe ser un entero positivo"}
	}
	if in.DeliveryDate != "" {
		if _, err := time.Parse(time.DateOnly, in.DeliveryDate); err != nil {
			return &domain.FieldError{Field: "delivery_date", Reason: "formato YYYY-MM-DD"}
		}
	}
	return nil
}

// number numeración del backend: PREFIJO-YYYYMMDDHHMMSS.
func (uc *GatewayUseCase) number(prefix string) string {
	return prefix + "-" + uc.now().Format("20060102150405")
}

func decodeBody(body []byte, v any) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: JSON: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
