package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// LocalSession key de la sesión en c.Locals.
const LocalSession = "session"

// sessionRestorer es lo que el middleware necesita de session.UseCase.
type sessionRestorer interface {
	Restore(token string) (*entity.Session, error)
}

// CookieConfig nombre y atributos de la cookie que guarda el registro de usuario.
type CookieConfig struct {
	Name   string
	Secure bool
}

// SessionMiddleware lee la sesión desde la cookie y, si no hay cookie o no es válida, desde
// el header Authorization: Bearer <token>. No corta la petición: sin sesión válida simplemente
// no carga nada en Locals (la página de inicio muestra entonces el formulario de registro).
func SessionMiddleware(restorer sessionRestorer, cookie CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, token := range []string{cookieToken(c, cookie.Name), bearerToken(c)} {
			if token == "" {
				continue
			}
			if sess, err := restorer.Restore(token); err == nil {
				c.Locals(LocalSession, sess)
				break
			}
		}
		return c.Next()
	}
}

func cookieToken(c *fiber.Ctx, cookieName string) string {
	return strings.TrimSpace(c.Cookies(cookieName))
}

func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware). nil si no hay.
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*entity.Session)
	return s
}

// RequireSession exige sesión. Con redirectTo vacío responde 401 NO_SESSION (API JSON);
// si no, redirige (páginas y formularios).
func RequireSession(redirectTo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c) != nil {
			return c.Next()
		}
		if redirectTo != "" {
			return c.Redirect(redirectTo, fiber.StatusSeeOther)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeNoSession, Message: "no hay sesión activa"})
	}
}

// RequirePermission verifica que el rol de la sesión tenga el permiso. Debe usarse
// DESPUÉS de RequireSession.
//   - 401 si no hay sesión.
//   - 403 FORBIDDEN si el rol no tiene el permiso.
func RequirePermission(name string, allowed func(entity.Permissions) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeNoSession, Message: "no hay sesión activa"})
		}
		if !allowed(sess.Permissions()) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    CodeForbidden,
				Message: "el rol '" + string(sess.User.Role) + "' no tiene el permiso '" + name + "'",
			})
		}
		return c.Next()
	}
}

// Atajos de permisos para el router.
func canOrder(p entity.Permissions) bool  { return p.CanOrder }
func canSupply(p entity.Permissions) bool { return p.CanSupply }
func canEdit(p entity.Permissions) bool   { return p.CanEdit }

func setSessionCookie(c *fiber.Ctx, cfg CookieConfig, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg CookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
