package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/internal/infrastructure/export"
)

func report() *entity.Report {
	return &entity.Report{
		Kind:    entity.ReportOccupancy,
		Title:   "Заполняемость склада",
		Columns: []string{"Зона", "Заполненность"},
		Rows:    [][]string{{"Зона А", "80%"}, {"Зона Б", "65%"}},
		Summary: []entity.ReportLine{{Label: "Средняя заполненность", Value: "72.5%"}},
	}
}

func TestRenderXML_Documento(t *testing.T) {
	doc, canonical, err := export.NewXMLRenderer().RenderXML(report())
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(doc))
	root := parsed.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Report", root.Tag)
	assert.Equal(t, "occupancy", root.SelectAttrValue("kind", ""))
	assert.Equal(t, "Заполняемость склада", root.SelectElement("Title").Text())
	assert.Len(t, root.FindElements("./Rows/Row"), 2)
	assert.Equal(t, "72.5%", root.FindElement("./Summary/Line").Text())

	assert.NotContains(t, string(canonical), "<?xml", "la forma canónica no lleva declaración")
	assert.Contains(t, string(canonical), `xmlns="urn:skladpro:report:1"`)
	assert.Contains(t, string(canonical), `kind="occupancy"`)
}

func TestRenderXML_FormaCanonicaEstable(t *testing.T) {
	_, c1, err := export.NewXMLRenderer().RenderXML(report())
	require.NoError(t, err)
	_, c2, err := export.NewXMLRenderer().RenderXML(report())
	require.NoError(t, err)
	assert.Equal(t, c1, c2)

	other := report()
	other.Rows[0][1] = "81%"
	_, c3, err := export.NewXMLRenderer().RenderXML(other)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c3)
}

func TestRenderCSV_UTF8(t *testing.T) {
	out, err := export.NewCSVRenderer().RenderCSV(report(), export.EncodingUTF8)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	r := csv.NewReader(bytes.NewReader(out[3:]))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Зона", "Заполненность"}, records[0])
	assert.Equal(t, []string{"Зона А", "80%"}, records[1])
	assert.Equal(t, []string{"Средняя заполненность", "72.5%"}, records[len(records)-1])
}

func TestRenderCSV_Windows1251(t *testing.T) {
	out, err := export.NewCSVRenderer().RenderCSV(report(), export.EncodingCP1251)
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(decoded), "Зона,Заполненность\n"))
	assert.Equal(t, byte(0xC7), out[0], "'З' en windows-1251")
}

func TestRenderCSV_CodificacionDesconocida(t *testing.T) {
	_, err := export.NewCSVRenderer().RenderCSV(report(), "koi8-r")
	assert.Error(t, err)
}
