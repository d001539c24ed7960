package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/application/reports"
	"github.com/jhoicas/skladpro/internal/application/session"
	"github.com/jhoicas/skladpro/internal/application/usecase"
	"github.com/jhoicas/skladpro/internal/application/workspace"
	"github.com/jhoicas/skladpro/internal/domain/repository"
	"github.com/jhoicas/skladpro/internal/infrastructure/export"
	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
	"github.com/jhoicas/skladpro/internal/infrastructure/pdf"
	infrasession "github.com/jhoicas/skladpro/internal/infrastructure/session"
	apphttp "github.com/jhoicas/skladpro/internal/interfaces/http"
	"github.com/jhoicas/skladpro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "skladpro-test"
	testCookie = "skladpro_user"
)

type testEnv struct {
	app    *fiber.App
	states *workspace.Registry
}

// buildTestApp construye la aplicación completa sobre el catálogo de demostración.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	catalog, err := memory.NewDefaultCatalog()
	require.NoError(t, err)
	return buildTestAppWith(t, catalog)
}

// buildTestAppWith construye la aplicación sobre el catálogo indicado.
func buildTestAppWith(t *testing.T, catalog repository.CatalogRepository) *testEnv {
	t.Helper()
	view, err := apphttp.NewView()
	require.NoError(t, err)

	states := workspace.NewRegistry()
	sessionUC := session.NewUseCase(infrasession.NewJWTCodec(testSecret, testIssuer, 0), states)
	catalogUC := usecase.NewCatalogUseCase(catalog)

	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	apphttp.Router(app, apphttp.RouterDeps{
		SessionUC: sessionUC,
		PageUC:    workspace.NewPageUseCase("skladpro", catalogUC),
		States:    states,
		CatalogUC: catalogUC,
		GatewayUC: usecase.NewGatewayUseCase(catalogUC, sessionUC),
		ReportsUC: reports.NewUseCase(catalog, pdf.NewReportGenerator("skladpro"), export.NewXMLRenderer(), export.NewCSVRenderer()),
		View:      view,
		Cookie:    apphttp.CookieConfig{Name: testCookie},
		Logger:    logger.Nop(),
	})
	return &testEnv{app: app, states: states}
}

// request lanza una petición y devuelve la respuesta. cookie es "nombre=valor" o vacío.
func request(t *testing.T, app *fiber.App, method, target string, body io.Reader, contentType, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// postForm envía un formulario como lo haría el navegador.
func postForm(t *testing.T, app *fiber.App, target string, form url.Values, cookie string) *http.Response {
	t.Helper()
	return request(t, app, http.MethodPost, target, strings.NewReader(form.Encode()), fiber.MIMEApplicationForm, cookie)
}

// login registra un usuario por el formulario y devuelve la cookie de sesión.
func login(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()
	resp := postForm(t, app, "/register", url.Values{
		"name": {name}, "email": {email}, "password": {"secret"}, "role": {role},
	}, "")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie && ck.Value != "" {
			return ck.Name + "=" + ck.Value
		}
	}
	t.Fatal("el registro debe fijar la cookie de sesión")
	return ""
}

// page devuelve el HTML de "/".
func page(t *testing.T, app *fiber.App, cookie string) string {
	t.Helper()
	resp := request(t, app, http.MethodGet, "/", nil, "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// selectTab cambia de pestaña y devuelve la página resultante.
func selectTab(t *testing.T, app *fiber.App, cookie, tab string) string {
	t.Helper()
	resp := postForm(t, app, "/ui/tabs/"+tab, nil, cookie)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	return page(t, app, cookie)
}

// decodeJSON decodifica el cuerpo de la respuesta.
func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
