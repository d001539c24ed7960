package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/skladpro/internal/application/ports"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// Codificaciones aceptadas (mismos valores que normaliza el caso de uso de reportes).
const (
	EncodingUTF8   = "utf-8"
	EncodingCP1251 = "windows-1251"
)

// utf8BOM hace que las hojas de cálculo detecten UTF-8 al abrir el archivo.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var _ ports.CSVRenderer = (*CSVRenderer)(nil)

// CSVRenderer genera el CSV del reporte: encabezado, filas, línea vacía y totales.
type CSVRenderer struct{}

// NewCSVRenderer construye el renderer.
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

// RenderCSV serializa el reporte. En windows-1251 los caracteres sin equivalente se reemplazan.
func (r *CSVRenderer) RenderCSV(report *entity.Report, enc string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(report.Columns); err != nil {
		return nil, fmt.Errorf("export: csv: %w", err)
	}
	if err := w.WriteAll(report.Rows); err != nil {
		return nil, fmt.Errorf("export: csv: %w", err)
	}
	if len(report.Summary) > 0 {
		lines := [][]string{{}}
		for _, l := range report.Summary {
			lines = append(lines, []string{l.Label, l.Value})
		}
		if err := w.WriteAll(lines); err != nil {
			return nil, fmt.Errorf("export: csv: %w", err)
		}
	}

	switch enc {
	case EncodingUTF8, "":
		return append(bytes.Clone(utf8BOM), buf.Bytes()...), nil
	case EncodingCP1251:
		out, err := encoding.ReplaceUnsupported(charmap.Windows1251.NewEncoder()).Bytes(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("export: csv windows-1251: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("export: codificación no soportada %q", enc)
}
