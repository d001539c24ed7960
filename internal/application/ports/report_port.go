package ports

import (
	"context"

	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// PDFRenderer genera la representación PDF de un reporte.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, report *entity.Report) ([]byte, error)
}

// XMLRenderer genera el documento XML de un reporte y su forma canónica (para el ETag).
type XMLRenderer interface {
	RenderXML(report *entity.Report) (doc []byte, canonical []byte, err error)
}

// CSVRenderer genera el CSV de un reporte en la codificación pedida (utf-8 | cp1251).
type CSVRenderer interface {
	RenderCSV(report *entity.Report, encoding string) ([]byte, error)
}
