package entity

import (
	"fmt"

	"github.com/jhoicas/skladpro/internal/domain"
)

// Tab pestaña de navegación del panel.
type Tab string

const (
	TabDashboard   Tab = "dashboard"
	TabProducts    Tab = "products"
	TabReceipts    Tab = "receipts"
	TabShipments   Tab = "shipments"
	TabWarehouse   Tab = "warehouse"
	TabInventory   Tab = "inventory"
	TabOrders      Tab = "orders"
	TabContractors Tab = "contractors"
	TabReports     Tab = "reports"
)

// Tabs devuelve las pestañas en el orden de la barra lateral.
func Tabs() []Tab {
	return []Tab{
		TabDashboard, TabProducts, TabReceipts, TabShipments, TabWarehouse,
		TabInventory, TabOrders, TabContractors, TabReports,
	}
}

// ParseTab valida el identificador de pestaña.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownTab, s)
}

// Label título de la pestaña.
func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Дашборд"
	case TabProducts:
		return "Товары"
	case TabReceipts:
		return "Приёмка"
	case TabShipments:
		return "Отгрузка"
	case TabWarehouse:
		return "Склад"
	case TabInventory:
		return "Инвентаризация"
	case TabOrders:
		return "Заказы"
	case TabContractors:
		return "Контрагенты"
	case TabReports:
		return "Отчёты"
	}
	return string(t)
}

// Subtitle texto secundario bajo el título.
func (t Tab) Subtitle() string {
	switch t {
	case TabDashboard:
		return "Общая статистика склада"
	case TabProducts:
		return "Управление номенклатурой"
	case TabReceipts:
		return "Регистрация поступлений"
	case TabShipments:
		return "Управление отгрузками"
	case TabWarehouse:
		return "Структура и загрузка"
	case TabInventory:
		return "Проверка остатков"
	case TabOrders:
		return "Управление заказами"
	case TabContractors:
		return "Клиенты и поставщики"
	case TabReports:
		return "Аналитика и статистика"
	}
	return ""
}

// Icon nombre del icono (lucide) de la pestaña.
func (t Tab) Icon() string {
	switch t {
	case TabDashboard:
		return "LayoutDashboard"
	case TabProducts:
		return "Package"
	case TabReceipts:
		return "ArrowDownToLine"
	case TabShipments:
		return "ArrowUpFromLine"
	case TabWarehouse:
		return "Warehouse"
	case TabInventory:
		return "ClipboardList"
	case TabOrders:
		return "ShoppingCart"
	case TabContractors:
		return "Users"
	case TabReports:
		return "BarChart3"
	}
	return ""
}
