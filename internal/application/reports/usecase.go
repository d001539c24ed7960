// Package reports reportes tabulares calculados sobre el catálogo y su exportación
// a PDF, XML y CSV.
package reports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/ports"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/domain/repository"
)

// Format formato de exportación.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatXML Format = "xml"
	FormatCSV Format = "csv"
)

// Codificaciones del CSV.
const (
	EncodingUTF8   = "utf-8"
	EncodingCP1251 = "windows-1251"
)

// ParseFormat valida el formato pedido.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPDF, FormatXML, FormatCSV:
		return Format(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, s)
}

// ParseEncoding normaliza la codificación del CSV. Vacío = utf-8.
func ParseEncoding(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "cp1251", "windows-1251":
		return EncodingCP1251, nil
	}
	return "", fmt.Errorf("%w: codificación %q", domain.ErrInvalidInput, s)
}

// Export archivo generado.
type Export struct {
	ContentType string
	Filename    string
	Body        []byte
	ETag        string // solo XML: SHA-256 de la forma canónica
}

// UseCase listado, cálculo y exportación de reportes.
type UseCase struct {
	repo repository.CatalogRepository
	pdf  ports.PDFRenderer
	xml  ports.XMLRenderer
	csv  ports.CSVRenderer
}

// NewUseCase construye el caso de uso. Los renderers pueden ser nil si no se exporta.
func NewUseCase(repo repository.CatalogRepository, pdf ports.PDFRenderer, xml ports.XMLRenderer, csv ports.CSVRenderer) *UseCase {
	return &UseCase{repo: repo, pdf: pdf, xml: xml, csv: csv}
}

// Cards tarjetas de la pestaña de reportes.
func Cards() []dto.ReportCardResponse {
	kinds := entity.ReportKinds()
	out := make([]dto.ReportCardResponse, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, dto.ReportCardResponse{
			Kind: string(k), Title: k.Title(), Description: k.Description(), Icon: k.Icon(),
		})
	}
	return out
}

// List tarjetas de reportes.
func (uc *UseCase) List() []dto.ReportCardResponse {
	return Cards()
}

// Build calcula el reporte.
func (uc *UseCase) Build(ctx context.Context, kind entity.ReportKind) (*entity.Report, error) {
	switch kind {
	case entity.ReportStock:
		return uc.buildStock(ctx)
	case entity.ReportMovement:
		return uc.buildMovement(ctx)
	case entity.ReportABC:
		return uc.buildABC(ctx)
	case entity.ReportOccupancy:
		return uc.buildOccupancy(ctx)
	case entity.ReportTurnover:
		return uc.buildTurnover(ctx)
	case entity.ReportEfficiency:
		return uc.buildEfficiency(ctx)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReport, kind)
}

// Get calcula el reporte a partir del identificador recibido por HTTP.
func (uc *UseCase) Get(ctx context.Context, kind string) (*dto.ReportResponse, error) {
	k, err := entity.ParseReportKind(kind)
	if err != nil {
		return nil, err
	}
	r, err := uc.Build(ctx, k)
	if err != nil {
		return nil, err
	}
	return ToReportResponse(r), nil
}

// Export genera el archivo del reporte en el formato pedido.
func (uc *UseCase) Export(ctx context.Context, kind, format, encoding string) (*Export, error) {
	k, err := entity.ParseReportKind(kind)
	if err != nil {
		return nil, err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	enc, err := ParseEncoding(encoding)
	if err != nil {
		return nil, err
	}
	r, err := uc.Build(ctx, k)
	if err != nil {
		return nil, err
	}
	filename := fmt.Sprintf("skladpro-%s.%s", k, f)

	switch f {
	case FormatPDF:
		if uc.pdf == nil {
			return nil, fmt.Errorf("reports: exportación pdf no configurada")
		}
		body, err := uc.pdf.RenderPDF(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("reports: pdf: %w", err)
		}
		return &Export{ContentType: "application/pdf", Filename: filename, Body: body}, nil
	case FormatXML:
		if uc.xml == nil {
			return nil, fmt.Errorf("reports: exportación xml no configurada")
		}
		body, canonical, err := uc.xml.RenderXML(r)
		if err != nil {
			return nil, fmt.Errorf("reports: xml: %w", err)
		}
		sum := sha256.Sum256(canonical)
		return &Export{
			ContentType: "application/xml; charset=utf-8",
			Filename:    filename,
			Body:        body,
			ETag:        `"` + hex.EncodeToString(sum[:]) + `"`,
		}, nil
	case FormatCSV:
		if uc.csv == nil {
			return nil, fmt.Errorf("reports: exportación csv no configurada")
		}
		body, err := uc.csv.RenderCSV(r, enc)
		if err != nil {
			return nil, fmt.Errorf("reports: csv: %w", err)
		}
		return &Export{ContentType: "text/csv; charset=" + enc, Filename: filename, Body: body}, nil
	}
	return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
}

// ToReportResponse salida JSON del reporte.
func ToReportResponse(r *entity.Report) *dto.ReportResponse {
	out := &dto.ReportResponse{
		Kind:    string(r.Kind),
		Title:   r.Title,
		Columns: r.Columns,
		Rows:    r.Rows,
		Summary: make([]dto.ReportLineResponse, 0, len(r.Summary)),
	}
	for _, l := range r.Summary {
		out.Summary = append(out.Summary, dto.ReportLineResponse{Label: l.Label, Value: l.Value})
	}
	return out
}
