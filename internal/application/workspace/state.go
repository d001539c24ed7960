// Package workspace contenedor del estado de vista del panel: pestaña activa, diálogos
// modales y el aviso transitorio que sustituye a la persistencia.
package workspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// Dialog diálogo modal del panel.
type Dialog string

const (
	DialogOrder  Dialog = "order"
	DialogSupply Dialog = "supply"
	DialogStatus Dialog = "status"
)

// ParseDialog valida el identificador de diálogo.
func ParseDialog(s string) (Dialog, error) {
	switch Dialog(s) {
	case DialogOrder, DialogSupply, DialogStatus:
		return Dialog(s), nil
	}
	return "", fmt.Errorf("%w: diálogo %q", domain.ErrInvalidInput, s)
}

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// OrderDialog diálogo de pedido del comprador.
type OrderDialog struct {
	Open  bool
	Form  dto.OrderForm
	Error string
}

// SupplyDialog diálogo de solicitud de suministro del proveedor.
type SupplyDialog struct {
	Open  bool
	Form  dto.SupplyForm
	Error string
}

// StatusDialog diálogo de cambio de estado del operador.
type StatusDialog struct {
	Open   bool
	Target entity.StatusTarget
	Form   dto.StatusForm
	Error  string
}

// State estado de vista de una sesión. Las operaciones solo tocan este valor:
// ningún envío modifica el catálogo.
type State struct {
	ActiveTab entity.Tab
	Order     OrderDialog
	Supply    SupplyDialog
	Status    StatusDialog
	Notice    *dto.NoticeResponse
}

// NewState estado inicial: dashboard, sin diálogos abiertos.
func NewState() State {
	return State{ActiveTab: entity.TabDashboard}
}

// SelectTab cambia la pestaña activa. Con un identificador desconocido el estado no cambia.
func (s *State) SelectTab(id string) error {
	tab, err := entity.ParseTab(id)
	if err != nil {
		return err
	}
	s.ActiveTab = tab
	return nil
}

// OpenOrderDialog abre el diálogo de pedido con el producto ya elegido.
func (s *State) OpenOrderDialog(product string) {
	s.Order = OrderDialog{Open: true, Form: dto.OrderForm{Product: product}}
}

// OpenSupplyDialog abre el diálogo de suministro con el formulario vacío.
func (s *State) OpenSupplyDialog() {
	s.Supply = SupplyDialog{Open: true}
}

// OpenStatusDialog abre el diálogo de estado con el estado actual del documento.
func (s *State) OpenStatusDialog(t entity.StatusTarget) {
	s.Status = StatusDialog{Open: true, Target: t, Form: dto.StatusForm{Status: string(t.Status)}}
}

// CloseDialog cierra sin aviso y descarta el formulario.
func (s *State) CloseDialog(d Dialog) {
	switch d {
	case DialogOrder:
		s.Order = OrderDialog{}
	case DialogSupply:
		s.Supply = SupplyDialog{}
	case DialogStatus:
		s.Status = StatusDialog{}
	}
}

// SubmitOrder valida el pedido, emite el aviso, limpia el formulario y cierra el diálogo.
// Si la validación falla el diálogo queda abierto con lo escrito por el usuario.
func (s *State) SubmitOrder(f dto.OrderForm) (string, error) {
	f.Product = strings.TrimSpace(f.Product)
	f.Quantity = strings.TrimSpace(f.Quantity)
	if err := validateOrder(f); err != nil {
		s.Order = OrderDialog{Open: true, Form: f, Error: err.Error()}
		return "", err
	}
	msg := fmt.Sprintf("Заказ оформлен: %s — %s шт.", f.Product, f.Quantity)
	s.Order = OrderDialog{}
	s.notify(NoticeSuccess, msg)
	return msg, nil
}

// SubmitSupply valida la solicitud de suministro y la confirma con un aviso.
func (s *State) SubmitSupply(f dto.SupplyForm) (string, error) {
	f.Product = strings.TrimSpace(f.Product)
	f.Quantity = strings.TrimSpace(f.Quantity)
	f.DeliveryDate = strings.TrimSpace(f.DeliveryDate)
	if err := validateSupply(f); err != nil {
		s.Supply = SupplyDialog{Open: true, Form: f, Error: err.Error()}
		return "", err
	}
	msg := fmt.Sprintf("Заявка на поставку отправлена: %s — %s шт., поставка %s", f.Product, f.Quantity, f.DeliveryDate)
	s.Supply = SupplyDialog{}
	s.notify(NoticeSuccess, msg)
	return msg, nil
}

// SubmitStatusChange confirma el nuevo estado del documento seleccionado.
// El registro del catálogo conserva su estado: el cambio solo se anuncia.
func (s *State) SubmitStatusChange(status string) (string, error) {
	if !s.Status.Open {
		return "", fmt.Errorf("%w: no hay documento seleccionado", domain.ErrInvalidInput)
	}
	status = strings.TrimSpace(status)
	if status == "" {
		err := domain.RequiredField("status")
		s.Status.Error = err.Error()
		return "", err
	}
	st, err := s.Status.Target.Kind.ParseStatus(status)
	if err != nil {
		s.Status.Form.Status = status
		s.Status.Error = err.Error()
		return "", err
	}
	msg := fmt.Sprintf("Статус %s изменён на «%s»", s.Status.Target.Number, st)
	s.Status = StatusDialog{}
	s.notify(NoticeSuccess, msg)
	return msg, nil
}

// TakeNotice devuelve el aviso pendiente y lo descarta (se muestra una sola vez).
func (s *State) TakeNotice() *dto.NoticeResponse {
	n := s.Notice
	s.Notice = nil
	return n
}

// Fail deja un aviso de error para la próxima página.
func (s *State) Fail(msg string) {
	s.notify(NoticeError, msg)
}

func (s *State) notify(kind, msg string) {
	s.Notice = &dto.NoticeResponse{Kind: kind, Message: msg}
}

func validateOrder(f dto.OrderForm) error {
	if f.Product == "" {
		return domain.RequiredField("product")
	}
	return validateQuantity(f.Quantity)
}

func validateSupply(f dto.SupplyForm) error {
	if f.Product == "" {
		return domain.RequiredField("product")
	}
	if err := validateQuantity(f.Quantity); err != nil {
		return err
	}
	if f.DeliveryDate == "" {
		return domain.RequiredField("delivery_date")
	}
	return nil
}

func validateQuantity(q string) error {
	if q == "" {
		return domain.RequiredField("quantity")
	}
	n, err := strconv.Atoi(q)
	if err != nil || n <= 0 {
		return &domain.FieldError{Field: "quantity", Reason: "debe ser un entero positivo"}
	}
	return nil
}
