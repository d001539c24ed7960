package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/session"
)

// SessionHandler API JSON de la sesión (login, restore, logout).
type SessionHandler struct {
	uc     *session.UseCase
	cookie CookieConfig
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *session.UseCase, cookie CookieConfig) *SessionHandler {
	return &SessionHandler{uc: uc, cookie: cookie}
}

// Create godoc
// @Summary      Registrar usuario y abrir sesión
// @Description  La contraseña es obligatoria pero no se verifica ni se guarda.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Nombre, email, contraseña y rol"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sess, token, err := h.uc.Login(in)
	if err != nil {
		return writeError(c, err)
	}
	setSessionCookie(c, h.cookie, token)
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{Token: token, User: session.ToUserResponse(sess.User)})
}

// Get godoc
// @Summary      Usuario de la sesión actual
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeNoSession, Message: "no hay sesión activa"})
	}
	return c.JSON(session.ToUserResponse(sess.User))
}

// Delete godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Security     Bearer
// @Success      204
// @Router       /api/session [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	h.uc.Logout(GetSession(c))
	clearSessionCookie(c, h.cookie)
	return c.SendStatus(fiber.StatusNoContent)
}
