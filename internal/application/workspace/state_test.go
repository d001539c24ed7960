package workspace_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/workspace"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
)

func TestNewState_Dashboard(t *testing.T) {
	st := workspace.NewState()
	assert.Equal(t, entity.TabDashboard, st.ActiveTab)
	assert.False(t, st.Order.Open)
	assert.False(t, st.Supply.Open)
	assert.False(t, st.Status.Open)
	assert.Nil(t, st.Notice)
}

func TestSelectTab_SoloCambiaLaPestana(t *testing.T) {
	st := workspace.NewState()

	require.NoError(t, st.SelectTab("products"))
	require.NoError(t, st.SelectTab("orders"))

	want := workspace.NewState()
	want.ActiveTab = entity.TabOrders
	assert.Equal(t, want, st, "solo cambia la pestaña activa; los diálogos siguen cerrados")
}

func TestSelectTab_Desconocida(t *testing.T) {
	st := workspace.NewState()
	require.NoError(t, st.SelectTab("warehouse"))

	err := st.SelectTab("settings")
	assert.ErrorIs(t, err, domain.ErrUnknownTab)
	assert.Equal(t, entity.TabWarehouse, st.ActiveTab)
}

func TestSubmitOrder_AvisoYCierre(t *testing.T) {
	st := workspace.NewState()
	st.OpenOrderDialog("X")
	assert.True(t, st.Order.Open)
	assert.Equal(t, "X", st.Order.Form.Product)

	msg, err := st.SubmitOrder(dto.OrderForm{Product: "X", Quantity: "5"})
	require.NoError(t, err)
	assert.Contains(t, msg, "5")
	assert.Contains(t, msg, "X")
	assert.Equal(t, "Заказ оформлен: X — 5 шт.", msg)

	assert.False(t, st.Order.Open)
	assert.Equal(t, dto.OrderForm{}, st.Order.Form)
	require.NotNil(t, st.Notice)
	assert.Equal(t, workspace.NoticeSuccess, st.Notice.Kind)
	assert.Equal(t, msg, st.Notice.Message)
}

func TestSubmitOrder_Validacion(t *testing.T) {
	tests := []struct {
		name  string
		form  dto.OrderForm
		field string
	}{
		{"sin producto", dto.OrderForm{Quantity: "5"}, "product"},
		{"sin cantidad", dto.OrderForm{Product: "X"}, "quantity"},
		{"cantidad cero", dto.OrderForm{Product: "X", Quantity: "0"}, "quantity"},
		{"cantidad no numérica", dto.OrderForm{Product: "X", Quantity: "cinco"}, "quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := workspace.NewState()
			st.OpenOrderDialog(tt.form.Product)

			_, err := st.SubmitOrder(tt.form)
			var fe *domain.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.True(t, st.Order.Open, "el diálogo sigue abierto")
			assert.Equal(t, tt.form.Product, st.Order.Form.Product)
			assert.NotEmpty(t, st.Order.Error)
			assert.Nil(t, st.Notice)
		})
	}
}

func TestSubmitSupply(t *testing.T) {
	st := workspace.NewState()
	st.OpenSupplyDialog()
	assert.Equal(t, workspace.SupplyDialog{Open: true}, st.Supply)

	_, err := st.SubmitSupply(dto.SupplyForm{Product: "Товар Б", Quantity: "40"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, st.Supply.Open)

	msg, err := st.SubmitSupply(dto.SupplyForm{Product: "Товар Б", Quantity: "40", DeliveryDate: "2024-12-01", Notes: "утро"})
	require.NoError(t, err)
	assert.Equal(t, "Заявка на поставку отправлена: Товар Б — 40 шт., поставка 2024-12-01", msg)
	assert.Equal(t, workspace.SupplyDialog{}, st.Supply)
}

func TestSubmitStatusChange_NoModificaElRegistro(t *testing.T) {
	repo, err := memory.NewDefaultCatalog()
	require.NoError(t, err)
	ctx := context.Background()
	orders, err := repo.Orders(ctx)
	require.NoError(t, err)

	st := workspace.NewState()
	st.OpenStatusDialog(orders[0].Target())
	assert.Equal(t, string(entity.OrderProcessing), st.Status.Form.Status, "el selector arranca con el estado actual")

	msg, err := st.SubmitStatusChange("Доставлен")
	require.NoError(t, err)
	assert.Contains(t, msg, "Доставлен")
	assert.Equal(t, "Статус ORD-001 изменён на «Доставлен»", msg)
	assert.False(t, st.Status.Open)

	again, err := repo.Orders(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, again[0].Status)
}

func TestSubmitStatusChange_EstadoAjenoAlTipo(t *testing.T) {
	st := workspace.NewState()
	st.OpenStatusDialog(entity.StatusTarget{Kind: entity.KindReceipt, ID: 1, Number: "RCP-001", Status: entity.ReceiptExpected})

	_, err := st.SubmitStatusChange("Доставлен")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.True(t, st.Status.Open)

	_, err = st.SubmitStatusChange(" ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, st.Status.Open)
}

func TestSubmitStatusChange_SinDocumento(t *testing.T) {
	st := workspace.NewState()
	_, err := st.SubmitStatusChange("Доставлен")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCloseDialog_SinAviso(t *testing.T) {
	st := workspace.NewState()
	st.OpenOrderDialog("X")
	st.OpenSupplyDialog()

	st.CloseDialog(workspace.DialogOrder)
	assert.False(t, st.Order.Open)
	assert.True(t, st.Supply.Open)
	assert.Nil(t, st.Notice)

	_, err := workspace.ParseDialog("delete")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTakeNotice_UnaSolaVez(t *testing.T) {
	st := workspace.NewState()
	st.Fail("fallo")

	n := st.TakeNotice()
	require.NotNil(t, n)
	assert.Equal(t, workspace.NoticeError, n.Kind)
	assert.Nil(t, st.TakeNotice())
}

func TestRegistry_EstadoPorSesion(t *testing.T) {
	reg := workspace.NewRegistry()

	require.NoError(t, reg.Update("a", func(s *workspace.State) error { return s.SelectTab("reports") }))
	assert.Equal(t, entity.TabReports, reg.Snapshot("a").ActiveTab)
	assert.Equal(t, entity.TabDashboard, reg.Snapshot("b").ActiveTab)

	err := reg.Update("a", func(s *workspace.State) error { return s.SelectTab("nope") })
	assert.ErrorIs(t, err, domain.ErrUnknownTab)

	reg.Forget("a")
	assert.Equal(t, entity.TabDashboard, reg.Snapshot("a").ActiveTab)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_AckNoticeSoloTrasMostrar(t *testing.T) {
	reg := workspace.NewRegistry()
	submit := func() {
		require.NoError(t, reg.Update("a", func(s *workspace.State) error {
			s.OpenOrderDialog("X")
			_, err := s.SubmitOrder(dto.OrderForm{Product: "X", Quantity: "1"})
			return err
		}))
	}
	submit()

	// Sin AckNotice (la página falló) el aviso sigue pendiente.
	first := reg.Snapshot("a")
	require.NotNil(t, first.Notice)
	assert.Equal(t, first.Notice, reg.Snapshot("a").Notice)

	reg.AckNotice("a", first.Notice)
	assert.Nil(t, reg.Snapshot("a").Notice)

	// Un aviso nuevo no se descarta con el puntero del anterior.
	submit()
	reg.AckNotice("a", first.Notice)
	assert.NotNil(t, reg.Snapshot("a").Notice)
}

func TestRegistry_SnapshotNoCreaEstado(t *testing.T) {
	reg := workspace.NewRegistry()
	_ = reg.Snapshot("a")
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_DescartaSesionesInactivas(t *testing.T) {
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	reg := workspace.NewRegistryWithTTL(time.Hour, clock)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Update(id, func(s *workspace.State) error { return s.SelectTab("orders") }))
	}
	require.Equal(t, 3, reg.Len())

	now = now.Add(40 * time.Minute)
	require.NoError(t, reg.Update("a", func(s *workspace.State) error { return nil }))
	assert.Equal(t, 3, reg.Len(), "nadie supera la inactividad todavía")

	now = now.Add(40 * time.Minute)
	require.NoError(t, reg.Update("a", func(s *workspace.State) error { return nil }))
	assert.Equal(t, 1, reg.Len(), "b y c llevan 80 minutos inactivas")
	assert.Equal(t, entity.TabOrders, reg.Snapshot("a").ActiveTab)
	assert.Equal(t, entity.TabDashboard, reg.Snapshot("b").ActiveTab, "vuelve al estado inicial")

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, reg.Sweep())
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Concurrente(t *testing.T) {
	reg := workspace.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reg.Update("a", func(s *workspace.State) error {
				s.OpenOrderDialog("X")
				_, err := s.SubmitOrder(dto.OrderForm{Product: "X", Quantity: "2"})
				return err
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, reg.Len())
	assert.False(t, reg.Snapshot("a").Order.Open)
}
