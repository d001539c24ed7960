package entity

import (
	"fmt"
	"slices"

	"github.com/jhoicas/skladpro/internal/domain"
)

// RecordKind tipo de documento cuyo estado se puede cambiar desde el diálogo de estado.
type RecordKind string

const (
	KindOrder    RecordKind = "order"
	KindReceipt  RecordKind = "receipt"
	KindShipment RecordKind = "shipment"
)

// Estados de pedidos.
const (
	OrderProcessing Status = "В обработке"
	OrderReady      Status = "Готов к отгрузке"
	OrderInTransit  Status = "В пути"
	OrderDelivered  Status = "Доставлен"
	OrderCancelled  Status = "Отменён"
)

// Estados de recepciones.
const (
	ReceiptExpected Status = "Ожидается"
	ReceiptChecking Status = "В приёмке"
	ReceiptAccepted Status = "Принято"
	ReceiptRejected Status = "Отклонено"
)

// Estados de envíos.
const (
	ShipmentPreparing Status = "Подготовка"
	ShipmentShipped   Status = "Отгружено"
	ShipmentInTransit Status = "В пути"
	ShipmentDelivered Status = "Доставлен"
)

// Status estado de un documento, tal como se muestra en la tabla.
type Status string

// ParseRecordKind valida el tipo de documento.
func ParseRecordKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindOrder, KindReceipt, KindShipment:
		return RecordKind(s), nil
	}
	return "", fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, s)
}

// Statuses conjunto cerrado de estados de cada tipo, en el orden del selector.
func (k RecordKind) Statuses() []Status {
	switch k {
	case KindOrder:
		return []Status{OrderProcessing, OrderReady, OrderInTransit, OrderDelivered, OrderCancelled}
	case KindReceipt:
		return []Status{ReceiptExpected, ReceiptChecking, ReceiptAccepted, ReceiptRejected}
	case KindShipment:
		return []Status{ShipmentPreparing, ShipmentShipped, ShipmentInTransit, ShipmentDelivered}
	}
	return nil
}

// ParseStatus valida que el estado pertenezca al conjunto del tipo.
func (k RecordKind) ParseStatus(s string) (Status, error) {
	if slices.Contains(k.Statuses(), Status(s)) {
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownStatus, s)
}

// Order pedido de cliente.
type Order struct {
	ID       int
	Number   string
	Customer string
	Status   Status
	Items    int
	Date     string // YYYY-MM-DD
}

// Receipt recepción de mercancía de un proveedor.
type Receipt struct {
	ID       int
	Number   string
	Supplier string
	Status   Status
	Items    int
	Date     string
}

// Shipment envío a un cliente.
type Shipment struct {
	ID       int
	Number   string
	Customer string
	Status   Status
	Items    int
	Date     string
}

// StatusTarget documento seleccionado para el diálogo de cambio de estado.
type StatusTarget struct {
	Kind   RecordKind
	ID     int
	Number string
	Status Status
}

// Target construye el StatusTarget de cada documento.
func (o Order) Target() StatusTarget {
	return StatusTarget{Kind: KindOrder, ID: o.ID, Number: o.Number, Status: o.Status}
}

func (r Receipt) Target() StatusTarget {
	return StatusTarget{Kind: KindReceipt, ID: r.ID, Number: r.Number, Status: r.Status}
}

func (s Shipment) Target() StatusTarget {
	return StatusTarget{Kind: KindShipment, ID: s.ID, Number: s.Number, Status: s.Status}
}
