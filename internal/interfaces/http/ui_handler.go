package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/session"
	"github.com/jhoicas/skladpro/internal/application/usecase"
	"github.com/jhoicas/skladpro/internal/application/workspace"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/pkg/logger"
)

// UIHandler páginas del panel. Cada formulario es un evento sobre el estado de vista de la
// sesión; la respuesta siempre redirige a "/" (post/redirect/get).
type UIHandler struct {
	sessions *session.UseCase
	page     *workspace.PageUseCase
	states   *workspace.Registry
	catalog  *usecase.CatalogUseCase
	view     *View
	cookie   CookieConfig
	log      *logger.Logger
}

// NewUIHandler construye el handler.
func NewUIHandler(
	sessions *session.UseCase,
	page *workspace.PageUseCase,
	states *workspace.Registry,
	catalog *usecase.CatalogUseCase,
	view *View,
	cookie CookieConfig,
	log *logger.Logger,
) *UIHandler {
	return &UIHandler{
		sessions: sessions,
		page:     page,
		states:   states,
		catalog:  catalog,
		view:     view,
		cookie:   cookie,
		log:      log.Component("ui"),
	}
}

// Index muestra el formulario de registro sin sesión y el panel con sesión.
func (h *UIHandler) Index(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return h.view.Render(c, fiber.StatusOK, "login.html", h.page.LoginPage(dto.RegisterRequest{}, ""))
	}
	st := h.states.Snapshot(sess.ID)
	v, err := h.page.Build(c.UserContext(), sess, st)
	if err != nil {
		h.log.Error().Err(err).Str("tab", string(st.ActiveTab)).Msg("armar página")
		return c.Status(fiber.StatusInternalServerError).SendString("Не удалось загрузить данные")
	}
	if err := h.view.Render(c, fiber.StatusOK, "workspace.html", v); err != nil {
		return err
	}
	// El aviso se descarta solo cuando la página se pintó.
	h.states.AckNotice(sess.ID, st.Notice)
	return nil
}

// Register entra con el formulario de registro. Con error vuelve a pintar el formulario
// conservando lo escrito.
func (h *UIHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return h.view.Render(c, fiber.StatusBadRequest, "login.html", h.page.LoginPage(in, "Некорректная форма"))
	}
	sess, token, err := h.sessions.Login(in)
	if err != nil {
		return h.view.Render(c, fiber.StatusBadRequest, "login.html", h.page.LoginPage(in, err.Error()))
	}
	setSessionCookie(c, h.cookie, token)
	h.log.Info().Str("session", sess.ID).Str("role", string(sess.User.Role)).Msg("login")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout cierra la sesión y borra la cookie.
func (h *UIHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout(GetSession(c))
	clearSessionCookie(c, h.cookie)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// SelectTab cambia la pestaña activa. Un identificador desconocido no cambia el estado.
func (h *UIHandler) SelectTab(c *fiber.Ctx) error {
	sess := GetSession(c)
	err := h.states.Update(sess.ID, func(st *workspace.State) error {
		return st.SelectTab(c.Params("tab"))
	})
	if err != nil {
		h.log.Warn().Err(err).Str("session", sess.ID).Msg("pestaña")
	}
	return h.back(c)
}

// OpenOrderDialog abre el diálogo de pedido con el producto de la fila (vacío desde "Новый заказ").
func (h *UIHandler) OpenOrderDialog(c *fiber.Ctx) error {
	product := strings.TrimSpace(c.FormValue("product"))
	_ = h.states.Update(GetSession(c).ID, func(st *workspace.State) error {
		st.OpenOrderDialog(product)
		return nil
	})
	return h.back(c)
}

// SubmitOrder confirma el pedido con un aviso. Nada se guarda.
func (h *UIHandler) SubmitOrder(c *fiber.Ctx) error {
	var f dto.OrderForm
	if err := c.BodyParser(&f); err != nil {
		return h.fail(c, err)
	}
	return h.submit(c, "order", func(st *workspace.State) (string, error) {
		return st.SubmitOrder(f)
	})
}

// OpenSupplyDialog abre el diálogo de suministro.
func (h *UIHandler) OpenSupplyDialog(c *fiber.Ctx) error {
	_ = h.states.Update(GetSession(c).ID, func(st *workspace.State) error {
		st.OpenSupplyDialog()
		return nil
	})
	return h.back(c)
}

// SubmitSupply confirma la solicitud de suministro con un aviso.
func (h *UIHandler) SubmitSupply(c *fiber.Ctx) error {
	var f dto.SupplyForm
	if err := c.BodyParser(&f); err != nil {
		return h.fail(c, err)
	}
	return h.submit(c, "supply", func(st *workspace.State) (string, error) {
		return st.SubmitSupply(f)
	})
}

// OpenStatusDialog abre el diálogo de estado del documento (kind, id).
func (h *UIHandler) OpenStatusDialog(c *fiber.Ctx) error {
	var in dto.StatusTargetRequest
	if err := c.BodyParser(&in); err != nil {
		return h.fail(c, err)
	}
	kind, err := entity.ParseRecordKind(in.Kind)
	if err != nil {
		return h.fail(c, err)
	}
	target, err := h.catalog.FindTarget(c.UserContext(), kind, in.ID)
	if err != nil {
		return h.fail(c, err)
	}
	_ = h.states.Update(GetSession(c).ID, func(st *workspace.State) error {
		st.OpenStatusDialog(target)
		return nil
	})
	return h.back(c)
}

// SubmitStatus confirma el nuevo estado con un aviso. El documento conserva su estado.
func (h *UIHandler) SubmitStatus(c *fiber.Ctx) error {
	var f dto.StatusForm
	if err := c.BodyParser(&f); err != nil {
		return h.fail(c, err)
	}
	return h.submit(c, "status", func(st *workspace.State) (string, error) {
		return st.SubmitStatusChange(f.Status)
	})
}

// CloseDialog cierra un diálogo sin aviso.
func (h *UIHandler) CloseDialog(c *fiber.Ctx) error {
	d, err := workspace.ParseDialog(c.Params("dialog"))
	if err != nil {
		return writeError(c, err)
	}
	_ = h.states.Update(GetSession(c).ID, func(st *workspace.State) error {
		st.CloseDialog(d)
		return nil
	})
	return h.back(c)
}

// ViewState godoc
// @Summary      Estado de vista de la sesión
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ViewStateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/view [get]
func (h *UIHandler) ViewState(c *fiber.Ctx) error {
	return c.JSON(workspace.ViewState(h.states.Snapshot(GetSession(c).ID)))
}

// submit aplica un envío de diálogo. Los errores de validación quedan dentro del diálogo
// abierto; cualquier otro error se muestra como aviso.
func (h *UIHandler) submit(c *fiber.Ctx, dialog string, fn func(*workspace.State) (string, error)) error {
	sess := GetSession(c)
	var notice string
	err := h.states.Update(sess.ID, func(st *workspace.State) error {
		msg, err := fn(st)
		notice = msg
		return err
	})
	switch {
	case err == nil:
		h.log.Info().Str("session", sess.ID).Str("dialog", dialog).Str("notice", notice).Msg("envío simulado")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownStatus):
		h.log.Debug().Err(err).Str("dialog", dialog).Msg("validación")
	default:
		return h.fail(c, err)
	}
	return h.back(c)
}

// fail deja el error como aviso de la próxima página.
func (h *UIHandler) fail(c *fiber.Ctx, err error) error {
	sess := GetSession(c)
	status, _ := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("ui")
	}
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "Внутренняя ошибка"
	}
	_ = h.states.Update(sess.ID, func(st *workspace.State) error {
		st.Fail(msg)
		return nil
	})
	return h.back(c)
}

func (h *UIHandler) back(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusSeeOther)
}
