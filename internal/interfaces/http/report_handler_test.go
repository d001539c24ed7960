package http_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/application/dto"
)

func TestReports_ListaYDetalle(t *testing.T) {
	env := buildTestApp(t)
	cookie := login(t, env.app, "A", "a@b.com", "operator")

	resp := request(t, env.app, http.MethodGet, "/api/reports", nil, "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cards []dto.ReportCardResponse
	decodeJSON(t, resp, &cards)
	require.Len(t, cards, 6)
	assert.Equal(t, "Остатки на складе", cards[0].Title)

	resp = request(t, env.app, http.MethodGet, "/api/reports/stock", nil, "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rep dto.ReportResponse
	decodeJSON(t, resp, &rep)
	assert.Equal(t, "stock", rep.Kind)
	assert.Len(t, rep.Rows, 3)

	resp = request(t, env.app, http.MethodGet, "/api/reports/forecast", nil, "", cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReports_ExportXMLConETag(t *testing.T) {
	env := buildTestApp(t)
	cookie := login(t, env.app, "A", "a@b.com", "operator")

	resp := request(t, env.app, http.MethodGet, "/api/reports/abc/export?format=xml", nil, "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="skladpro-abc.xml"`, resp.Header.Get("Content-Disposition"))
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req, err := http.NewRequest(http.MethodGet, "/api/reports/abc/export?format=xml", nil)
	require.NoError(t, err)
	req.Header.Set("Cookie", cookie)
	req.Header.Set("If-None-Match", etag)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestReports_ExportCSVyPDF(t *testing.T) {
	env := buildTestApp(t)
	cookie := login(t, env.app, "A", "a@b.com", "operator")

	resp := request(t, env.app, http.MethodGet, "/api/reports/stock/export?format=csv&encoding=cp1251", nil, "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=windows-1251", resp.Header.Get("Content-Type"))

	resp = request(t, env.app, http.MethodGet, "/api/reports/occupancy/export?format=pdf", nil, "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = request(t, env.app, http.MethodGet, "/api/reports/stock/export?format=docx", nil, "", cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
