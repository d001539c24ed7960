// Package pdf genera la versión imprimible (A4) de los reportes del almacén.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: СкладПро + título del reporte  │  fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas del reporte                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: etiqueta / valor                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/skladpro/internal/application/ports"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

var _ ports.PDFRenderer = (*ReportGenerator)(nil)

// gridSize columnas de la grilla de maroto.
const gridSize = 12

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportGenerator implementa PDFRenderer con Maroto v2.
type ReportGenerator struct {
	appName string
	now     func() time.Time
}

// NewReportGenerator construye el generador.
func NewReportGenerator(appName string) *ReportGenerator {
	return &ReportGenerator{appName: appName, now: time.Now}
}

// RenderPDF genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) RenderPDF(ctx context.Context, report *entity.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(g.appName, report.Title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	widths := columnWidths(len(report.Columns))
	m.AddRows(tableHeaderRow(report.Columns, widths))
	for _, r := range report.Rows {
		m.AddRows(tableRow(r, widths))
	}

	if len(report.Summary) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		for _, l := range report.Summary {
			m.AddRows(summaryRow(l))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName, title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(title, props.Text{Size: 10, Top: 8}),
		),
		col.New(4).Add(
			text.New(at.Format("02.01.2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
		),
	)
}

func tableHeaderRow(columns []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(widths[i]).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRow(cells []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(widths))
	for i, w := range widths {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		cols = append(cols, col.New(w).Add(text.New(v, props.Text{Size: 8, Top: 1, Left: 1, Right: 1})))
	}
	return row.New(7).Add(cols...)
}

func summaryRow(l entity.ReportLine) core.Row {
	return row.New(6).Add(
		col.New(6),
		col.New(4).Add(text.New(l.Label+":", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})),
		col.New(2).Add(text.New(l.Value, props.Text{Size: 9, Align: align.Right, Right: 1})),
	)
}

// columnWidths reparte las 12 columnas de la grilla; las primeras reciben el resto.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > gridSize {
		n = gridSize
	}
	base, extra := gridSize/n, gridSize%n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}
