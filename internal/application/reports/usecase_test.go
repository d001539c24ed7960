package reports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/application/reports"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
)

type fakeRenderer struct {
	encoding string
	err      error
}

func (f *fakeRenderer) RenderPDF(_ context.Context, r *entity.Report) ([]byte, error) {
	return []byte("%PDF " + r.Title), f.err
}

func (f *fakeRenderer) RenderXML(r *entity.Report) ([]byte, []byte, error) {
	return []byte("<Report>" + r.Title + "</Report>"), []byte("<Report>" + string(r.Kind) + "</Report>"), f.err
}

func (f *fakeRenderer) RenderCSV(r *entity.Report, encoding string) ([]byte, error) {
	f.encoding = encoding
	return []byte(r.Title), f.err
}

func newUseCase(t *testing.T, r *fakeRenderer) *reports.UseCase {
	t.Helper()
	repo, err := memory.NewDefaultCatalog()
	require.NoError(t, err)
	return reports.NewUseCase(repo, r, r, r)
}

func summary(r *entity.Report) map[string]string {
	out := map[string]string{}
	for _, l := range r.Summary {
		out[l.Label] = l.Value
	}
	return out
}

func TestList_SeisTarjetas(t *testing.T) {
	cards := newUseCase(t, &fakeRenderer{}).List()
	require.Len(t, cards, 6)
	assert.Equal(t, "stock", cards[0].Kind)
	assert.Equal(t, "Остатки на складе", cards[0].Title)
	assert.Equal(t, "KPI складских операций", cards[5].Description)
}

func TestBuild_Stock(t *testing.T) {
	r, err := newUseCase(t, &fakeRenderer{}).Build(context.Background(), entity.ReportStock)
	require.NoError(t, err)
	require.Len(t, r.Rows, 3)
	assert.Equal(t, []string{"Товар А", "SKU-001", "Категория 1", "A-01-01", "150", "1500.00", "225000.00"}, r.Rows[0])
	s := summary(r)
	assert.Equal(t, "425", s["Всего единиц"])
	assert.Equal(t, "356517.50", s["Общая стоимость"])
}

func TestBuild_Movement(t *testing.T) {
	r, err := newUseCase(t, &fakeRenderer{}).Build(context.Background(), entity.ReportMovement)
	require.NoError(t, err)
	require.Len(t, r.Rows, 4)
	assert.Equal(t, "RCP-001", r.Rows[0][1], "el documento más reciente primero")
	assert.Equal(t, "Приход", r.Rows[0][3])
	s := summary(r)
	assert.Equal(t, "205", s["Приход"])
	assert.Equal(t, "37", s["Расход"])
	assert.Equal(t, "168", s["Сальдо"])
}

func TestBuild_ABC(t *testing.T) {
	r, err := newUseCase(t, &fakeRenderer{}).Build(context.Background(), entity.ReportABC)
	require.NoError(t, err)
	require.Len(t, r.Rows, 3)

	assert.Equal(t, "Товар А", r.Rows[0][0])
	assert.Equal(t, "63.1%", r.Rows[0][3])
	assert.Equal(t, "A", r.Rows[0][5])

	assert.Equal(t, "Товар В", r.Rows[1][0])
	assert.Equal(t, "82.7%", r.Rows[1][4])
	assert.Equal(t, "A", r.Rows[1][5], "antes de Товар В se acumula 63.1%")

	assert.Equal(t, "Товар Б", r.Rows[2][0])
	assert.Equal(t, "100.0%", r.Rows[2][4])
	assert.Equal(t, "B", r.Rows[2][5], "antes de Товар Б se acumula 82.7%")
}

func abcUseCase(t *testing.T, products ...memory.SeedProduct) *reports.UseCase {
	t.Helper()
	repo, err := (&memory.Seed{Products: products}).Catalog()
	require.NoError(t, err)
	r := &fakeRenderer{}
	return reports.NewUseCase(repo, r, r, r)
}

func TestBuild_ABCClases(t *testing.T) {
	tests := []struct {
		name     string
		products []memory.SeedProduct
		classes  []string
	}{
		{
			name:     "un solo producto",
			products: []memory.SeedProduct{{ID: 1, Name: "X", SKU: "X-1", Quantity: 1, Price: "10"}},
			classes:  []string{"A"},
		},
		{
			name: "producto dominante",
			products: []memory.SeedProduct{
				{ID: 1, Name: "X", SKU: "X-1", Quantity: 90, Price: "10"},
				{ID: 2, Name: "Y", SKU: "Y-1", Quantity: 6, Price: "10"},
				{ID: 3, Name: "Z", SKU: "Z-1", Quantity: 4, Price: "10"},
			},
			classes: []string{"A", "B", "C"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := abcUseCase(t, tt.products...).Build(context.Background(), entity.ReportABC)
			require.NoError(t, err)
			require.Len(t, r.Rows, len(tt.classes))
			for i, class := range tt.classes {
				assert.Equal(t, class, r.Rows[i][5], r.Rows[i][0])
			}
		})
	}
}

func TestBuild_OccupancyTurnoverEfficiency(t *testing.T) {
	uc := newUseCase(t, &fakeRenderer{})
	ctx := context.Background()

	occ, err := uc.Build(ctx, entity.ReportOccupancy)
	require.NoError(t, err)
	assert.Equal(t, "63.3%", summary(occ)["Средняя заполненность"])
	assert.Equal(t, "950", summary(occ)["Всего единиц"])

	turn, err := uc.Build(ctx, entity.ReportTurnover)
	require.NoError(t, err)
	assert.Equal(t, "Поставщик А", turn.Rows[0][0], "contratistas ordenados por pedidos")
	assert.Equal(t, "0.09", summary(turn)["Коэффициент оборачиваемости"])

	eff, err := uc.Build(ctx, entity.ReportEfficiency)
	require.NoError(t, err)
	require.Len(t, eff.Rows, 4)
	assert.Equal(t, "33.3%", eff.Rows[0][1])
	assert.Equal(t, "50.0%", eff.Rows[1][1])
	assert.Equal(t, "80.0%", eff.Rows[2][1])
}

func TestGet_ReporteDesconocido(t *testing.T) {
	_, err := newUseCase(t, &fakeRenderer{}).Get(context.Background(), "sales")
	assert.ErrorIs(t, err, domain.ErrUnknownReport)
}

func TestExport_Formatos(t *testing.T) {
	r := &fakeRenderer{}
	uc := newUseCase(t, r)
	ctx := context.Background()

	pdf, err := uc.Export(ctx, "stock", "pdf", "")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.Equal(t, "skladpro-stock.pdf", pdf.Filename)
	assert.Empty(t, pdf.ETag)

	xml1, err := uc.Export(ctx, "abc", "XML", "")
	require.NoError(t, err)
	assert.Equal(t, "skladpro-abc.xml", xml1.Filename)
	assert.Regexp(t, `^"[0-9a-f]{64}"$`, xml1.ETag)
	xml2, err := uc.Export(ctx, "abc", "xml", "")
	require.NoError(t, err)
	assert.Equal(t, xml1.ETag, xml2.ETag, "mismo contenido canónico, mismo ETag")

	csv, err := uc.Export(ctx, "occupancy", "csv", "cp1251")
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=windows-1251", csv.ContentType)
	assert.Equal(t, reports.EncodingCP1251, r.encoding)
}

func TestExport_EntradaInvalida(t *testing.T) {
	uc := newUseCase(t, &fakeRenderer{})
	ctx := context.Background()

	_, err := uc.Export(ctx, "stock", "docx", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Export(ctx, "stock", "csv", "koi8-r")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Export(ctx, "nope", "csv", "")
	assert.ErrorIs(t, err, domain.ErrUnknownReport)
}

func TestExport_ErrorDelRenderer(t *testing.T) {
	boom := errors.New("boom")
	_, err := newUseCase(t, &fakeRenderer{err: boom}).Export(context.Background(), "stock", "pdf", "")
	assert.ErrorIs(t, err, boom)
}
