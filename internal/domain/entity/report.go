package entity

import (
	"fmt"

	"github.com/jhoicas/skladpro/internal/domain"
)

// ReportKind tipo de reporte de la pestaña de reportes.
type ReportKind string

const (
	ReportStock      ReportKind = "stock"
	ReportMovement   ReportKind = "movement"
	ReportABC        ReportKind = "abc"
	ReportOccupancy  ReportKind = "occupancy"
	ReportTurnover   ReportKind = "turnover"
	ReportEfficiency ReportKind = "efficiency"
)

// ReportKinds en el orden de las tarjetas.
func ReportKinds() []ReportKind {
	return []ReportKind{ReportStock, ReportMovement, ReportABC, ReportOccupancy, ReportTurnover, ReportEfficiency}
}

// ParseReportKind valida el identificador.
func ParseReportKind(s string) (ReportKind, error) {
	for _, k := range ReportKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownReport, s)
}

// Title título de la tarjeta.
func (k ReportKind) Title() string {
	switch k {
	case ReportStock:
		return "Остатки на складе"
	case ReportMovement:
		return "Движение товаров"
	case ReportABC:
		return "ABC-анализ"
	case ReportOccupancy:
		return "Заполняемость склада"
	case ReportTurnover:
		return "Оборачиваемость"
	case ReportEfficiency:
		return "Эффективность"
	}
	return string(k)
}

// Description texto de la tarjeta.
func (k ReportKind) Description() string {
	switch k {
	case ReportStock:
		return "Текущие остатки товаров"
	case ReportMovement:
		return "Приёмка и отгрузка за период"
	case ReportABC:
		return "Анализ товарооборота"
	case ReportOccupancy:
		return "Использование площадей"
	case ReportTurnover:
		return "Скорость оборота товаров"
	case ReportEfficiency:
		return "KPI складских операций"
	}
	return ""
}

// Icon icono de la tarjeta.
func (k ReportKind) Icon() string {
	switch k {
	case ReportStock:
		return "FileBarChart"
	case ReportMovement:
		return "TrendingUp"
	case ReportABC:
		return "BarChart3"
	case ReportOccupancy:
		return "PieChart"
	case ReportTurnover:
		return "ArrowRightLeft"
	case ReportEfficiency:
		return "Activity"
	}
	return ""
}

// Report reporte tabular listo para mostrarse o exportarse.
type Report struct {
	Kind    ReportKind
	Title   string
	Columns []string
	Rows    [][]string
	Summary []ReportLine // totales al pie
}

// ReportLine par etiqueta/valor de los totales.
type ReportLine struct {
	Label string
	Value string
}
