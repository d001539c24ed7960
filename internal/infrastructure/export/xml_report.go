// Package export serializa reportes a XML (con forma canónica para el ETag) y a CSV.
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/skladpro/internal/application/ports"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// NamespaceReport espacio de nombres del documento de reporte.
const NamespaceReport = "urn:skladpro:report:1"

var _ ports.XMLRenderer = (*XMLRenderer)(nil)

// XMLRenderer genera el documento <Report> con etree.
type XMLRenderer struct{}

// NewXMLRenderer construye el renderer.
func NewXMLRenderer() *XMLRenderer { return &XMLRenderer{} }

// RenderXML devuelve el documento indentado y su forma canónica (C14N).
// El documento no lleva marca de tiempo: el mismo reporte produce la misma forma canónica.
func (r *XMLRenderer) RenderXML(report *entity.Report) ([]byte, []byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Report")
	root.CreateAttr("xmlns", NamespaceReport)
	root.CreateAttr("kind", string(report.Kind))
	root.CreateElement("Title").SetText(report.Title)

	cols := root.CreateElement("Columns")
	for i, c := range report.Columns {
		el := cols.CreateElement("Column")
		el.CreateAttr("index", strconv.Itoa(i+1))
		el.SetText(c)
	}

	rows := root.CreateElement("Rows")
	rows.CreateAttr("count", strconv.Itoa(len(report.Rows)))
	for _, row := range report.Rows {
		rowEl := rows.CreateElement("Row")
		for i, v := range row {
			cell := rowEl.CreateElement("Cell")
			if i < len(report.Columns) {
				cell.CreateAttr("column", report.Columns[i])
			}
			cell.SetText(v)
		}
	}

	summary := root.CreateElement("Summary")
	for _, l := range report.Summary {
		line := summary.CreateElement("Line")
		line.CreateAttr("label", l.Label)
		line.SetText(l.Value)
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	canonical, err := canonicalizeXML(out.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("export: canonicalizar XML: %w", err)
	}
	return out.Bytes(), canonical, nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
