package workspace

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/reports"
	"github.com/jhoicas/skladpro/internal/application/session"
	"github.com/jhoicas/skladpro/internal/application/usecase"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// recentOrders pedidos mostrados en el dashboard.
const recentOrders = 3

// PageUseCase arma el modelo de la página a partir de la sesión y el estado de vista.
type PageUseCase struct {
	appName string
	catalog *usecase.CatalogUseCase
	lang    language.Tag // agrupación de miles: 1,248
}

// NewPageUseCase construye el caso de uso.
func NewPageUseCase(appName string, catalog *usecase.CatalogUseCase) *PageUseCase {
	return &PageUseCase{
		appName: appName,
		catalog: catalog,
		lang:    language.English,
	}
}

// LoginPage formulario de registro. form conserva lo escrito si hubo error.
func (uc *PageUseCase) LoginPage(form dto.RegisterRequest, errMsg string) dto.LoginView {
	if form.Role == "" {
		form.Role = string(entity.RoleBuyer)
	}
	form.Password = ""
	roles := entity.Roles()
	opts := make([]dto.RoleOption, 0, len(roles))
	for _, r := range roles {
		opts = append(opts, dto.RoleOption{Value: string(r), Label: r.OptionLabel(), Selected: string(r) == form.Role})
	}
	return dto.LoginView{AppName: uc.appName, Roles: opts, Form: form, Error: errMsg}
}

// Build arma la página con sesión. Solo se consultan los datos de la pestaña activa.
func (uc *PageUseCase) Build(ctx context.Context, sess *entity.Session, st State) (*dto.WorkspaceView, error) {
	perms := sess.Permissions()
	v := &dto.WorkspaceView{
		AppName:     uc.appName,
		User:        session.ToUserResponse(sess.User),
		Permissions: dto.PermissionsView{CanEdit: perms.CanEdit, CanOrder: perms.CanOrder, CanSupply: perms.CanSupply},
		Notice:      st.Notice,
	}
	for _, t := range entity.Tabs() {
		item := dto.TabItem{ID: string(t), Label: t.Label(), Subtitle: t.Subtitle(), Icon: t.Icon(), Active: t == st.ActiveTab}
		v.Tabs = append(v.Tabs, item)
		if item.Active {
			v.Active = item
		}
	}
	if err := uc.loadTab(ctx, st.ActiveTab, v); err != nil {
		return nil, err
	}
	if err := uc.loadDialogs(ctx, st, perms, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *PageUseCase) loadTab(ctx context.Context, tab entity.Tab, v *dto.WorkspaceView) error {
	var err error
	switch tab {
	case entity.TabDashboard:
		var stats entity.Stats
		if stats, err = uc.catalog.Repository().Stats(ctx); err != nil {
			return err
		}
		v.Stats = uc.statCards(stats)
		if v.RecentOrders, err = uc.catalog.RecentOrders(ctx, recentOrders); err != nil {
			return err
		}
		v.Zones, err = uc.catalog.ListZones(ctx)
	case entity.TabProducts:
		v.Products, err = uc.catalog.ListProducts(ctx)
	case entity.TabReceipts:
		v.Receipts, err = uc.catalog.ListReceipts(ctx)
	case entity.TabShipments:
		v.Shipments, err = uc.catalog.ListShipments(ctx)
	case entity.TabWarehouse:
		v.Zones, err = uc.catalog.ListZones(ctx)
	case entity.TabInventory:
		v.Inventory, err = uc.catalog.ListInventory(ctx)
	case entity.TabOrders:
		v.Orders, err = uc.catalog.ListOrders(ctx)
	case entity.TabContractors:
		v.Contractors, err = uc.catalog.ListContractors(ctx)
	case entity.TabReports:
		v.Reports = reports.Cards()
	}
	return err
}

// loadDialogs solo muestra los diálogos que el rol puede usar.
func (uc *PageUseCase) loadDialogs(ctx context.Context, st State, perms entity.Permissions, v *dto.WorkspaceView) error {
	if perms.CanOrder && st.Order.Open {
		v.OrderDialog = dto.OrderDialogView{Open: true, Form: st.Order.Form, Error: st.Order.Error}
	}
	if perms.CanSupply && st.Supply.Open {
		names, err := uc.catalog.ProductNames(ctx)
		if err != nil {
			return err
		}
		v.SupplyDialog = dto.SupplyDialogView{Open: true, Form: st.Supply.Form, Error: st.Supply.Error, Products: names}
	}
	if perms.CanEdit && st.Status.Open {
		t := st.Status.Target
		opts := make([]string, 0, len(t.Kind.Statuses()))
		for _, s := range t.Kind.Statuses() {
			opts = append(opts, string(s))
		}
		v.StatusDialog = dto.StatusDialogView{
			Open:    true,
			Kind:    string(t.Kind),
			ID:      t.ID,
			Number:  t.Number,
			Current: string(t.Status),
			Form:    st.Status.Form,
			Options: opts,
			Error:   st.Status.Error,
		}
	}
	return nil
}

func (uc *PageUseCase) statCards(s entity.Stats) []dto.StatCard {
	p := message.NewPrinter(uc.lang)
	return []dto.StatCard{
		{Label: "Товаров на складе", Value: p.Sprintf("%d", s.ProductsCount), Icon: "Package", Change: s.Changes.Products},
		{Label: "Активных заказов", Value: p.Sprintf("%d", s.ActiveOrders), Icon: "ShoppingCart", Change: s.Changes.Orders},
		{Label: "Приёмки сегодня", Value: p.Sprintf("%d", s.ReceiptsToday), Icon: "TrendingUp", Change: s.Changes.Receipts},
		{Label: "Отгрузки сегодня", Value: p.Sprintf("%d", s.ShipmentsToday), Icon: "TrendingDown", Change: s.Changes.Shipments},
	}
}

// ViewState resumen del estado para la API JSON.
func ViewState(st State) dto.ViewStateResponse {
	return dto.ViewStateResponse{
		ActiveTab:    string(st.ActiveTab),
		OrderDialog:  st.Order.Open,
		SupplyDialog: st.Supply.Open,
		StatusDialog: st.Status.Open,
	}
}
