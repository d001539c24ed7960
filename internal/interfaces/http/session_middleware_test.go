package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/session"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	infrasession "github.com/jhoicas/skladpro/internal/infrastructure/session"
	apphttp "github.com/jhoicas/skladpro/internal/interfaces/http"
)

// buildGuardedApp construye una aplicación Fiber mínima con:
//   - SessionMiddleware para leer la cookie o el Bearer
//   - RequireSession + RequirePermission(editar) sobre /protected
func buildGuardedApp(t *testing.T) (*fiber.App, *session.UseCase) {
	t.Helper()
	uc := session.NewUseCase(infrasession.NewJWTCodec(testSecret, testIssuer, 0), nil)
	app := fiber.New()
	app.Use(apphttp.SessionMiddleware(uc, apphttp.CookieConfig{Name: testCookie}))
	app.Get("/protected",
		apphttp.RequireSession(""),
		apphttp.RequirePermission("edit", func(p entity.Permissions) bool { return p.CanEdit }),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": string(apphttp.GetSession(c).User.Role)})
		},
	)
	app.Get("/page", apphttp.RequireSession("/"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, uc
}

// tokenForRole abre una sesión con el rol indicado y devuelve el token.
func tokenForRole(t *testing.T, uc *session.UseCase, role string) string {
	t.Helper()
	_, token, err := uc.Login(dto.RegisterRequest{Name: "Test", Email: "t@b.com", Password: "x", Role: role})
	require.NoError(t, err, "debe generarse un token válido")
	return token
}

func guardedRequest(t *testing.T, app *fiber.App, target, authHeader, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_PorRol(t *testing.T) {
	app, uc := buildGuardedApp(t)
	tests := []struct {
		role   string
		status int
	}{
		{"operator", http.StatusOK},
		{"buyer", http.StatusForbidden},
		{"supplier", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			resp := guardedRequest(t, app, "/protected", "Bearer "+tokenForRole(t, uc, tt.role), "")
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == http.StatusForbidden {
				var out dto.ErrorResponse
				decodeJSON(t, resp, &out)
				assert.Equal(t, "FORBIDDEN", out.Code)
				assert.Contains(t, out.Message, tt.role)
			}
		})
	}
}

// La cookie tiene prioridad sobre el header Authorization.
func TestSessionMiddleware_CookieAntesQueBearer(t *testing.T) {
	app, uc := buildGuardedApp(t)
	cookie := testCookie + "=" + tokenForRole(t, uc, "operator")
	resp := guardedRequest(t, app, "/protected", "Bearer "+tokenForRole(t, uc, "buyer"), cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	decodeJSON(t, resp, &out)
	assert.Equal(t, "operator", out["role"])
}

// Una cookie caducada o corrupta no impide usar un Bearer válido.
func TestSessionMiddleware_CookieInvalidaUsaBearer(t *testing.T) {
	app, uc := buildGuardedApp(t)
	resp := guardedRequest(t, app, "/protected", "Bearer "+tokenForRole(t, uc, "operator"), testCookie+"=stale")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	decodeJSON(t, resp, &out)
	assert.Equal(t, "operator", out["role"])

	resp = guardedRequest(t, app, "/protected", "", testCookie+"=stale")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_HeaderMalFormado(t *testing.T) {
	app, uc := buildGuardedApp(t)
	for _, header := range []string{"Token abc", "Bearer", tokenForRole(t, uc, "operator")} {
		resp := guardedRequest(t, app, "/protected", header, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
	}
}

// Un secreto distinto invalida el token: la petición sigue como anónima.
func TestSessionMiddleware_SecretoDistinto(t *testing.T) {
	app, _ := buildGuardedApp(t)
	other := session.NewUseCase(infrasession.NewJWTCodec("otro-secreto", testIssuer, 0), nil)
	resp := guardedRequest(t, app, "/protected", "Bearer "+tokenForRole(t, other, "operator"), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSession_RedirigePaginas(t *testing.T) {
	app, _ := buildGuardedApp(t)
	resp := guardedRequest(t, app, "/page", "", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
