package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/usecase"
	"github.com/jhoicas/skladpro/internal/domain"
)

// gatewayError cuerpo de error del contrato ?path=.
type gatewayError struct {
	Error string `json:"error"`
}

// GatewayHandler endpoint único /api/gateway?path=<recurso>, compatible con el DataPort.
type GatewayHandler struct {
	uc *usecase.GatewayUseCase
}

// NewGatewayHandler construye el handler.
func NewGatewayHandler(uc *usecase.GatewayUseCase) *GatewayHandler {
	return &GatewayHandler{uc: uc}
}

// CORS responde al preflight OPTIONS y añade el origen permitido al resto.
func (h *GatewayHandler) CORS(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	if c.Method() != fiber.MethodOptions {
		return c.Next()
	}
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, X-User-Id")
	c.Set(fiber.HeaderAccessControlMaxAge, "86400")
	return c.SendStatus(fiber.StatusOK)
}

// Get godoc
// @Summary      Leer un recurso del catálogo
// @Tags         gateway
// @Produce      json
// @Param        path  query  string  true  "products | orders | receipts | shipments | warehouse_zones | contractors | inventories | stats"
// @Success      200
// @Failure      404  {object}  gatewayError
// @Router       /api/gateway [get]
func (h *GatewayHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Fetch(c.UserContext(), c.Query("path"))
	return h.respond(c, out, err)
}

// Post godoc
// @Summary      Validar una alta (register | order | receipt)
// @Description  El documento se valida y se devuelve con persisted=false; no se guarda.
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        path  query  string  true  "register | order | receipt"
// @Success      200
// @Failure      400  {object}  gatewayError
// @Failure      404  {object}  gatewayError
// @Router       /api/gateway [post]
func (h *GatewayHandler) Post(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext(), c.Query("path"), c.Body())
	return h.respond(c, out, err)
}

// Put godoc
// @Summary      Validar un cambio de estado (order_status | receipt_status | shipment_status)
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        path  query  string  true  "order_status | receipt_status | shipment_status"
// @Success      200  {object}  dto.GatewayAck
// @Failure      400  {object}  gatewayError
// @Failure      404  {object}  gatewayError
// @Router       /api/gateway [put]
func (h *GatewayHandler) Put(c *fiber.Ctx) error {
	out, err := h.uc.Update(c.UserContext(), c.Query("path"), c.Body())
	return h.respond(c, out, err)
}

func (h *GatewayHandler) respond(c *fiber.Ctx, out any, err error) error {
	if err == nil {
		return c.JSON(out)
	}
	if errors.Is(err, domain.ErrUnknownPath) {
		return c.Status(fiber.StatusNotFound).JSON(gatewayError{Error: domain.ErrUnknownPath.Error()})
	}
	status, _ := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "error interno"
	}
	return c.Status(status).JSON(gatewayError{Error: msg})
}
