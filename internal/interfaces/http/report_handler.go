package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/reports"
)

// ReportHandler reportes de la pestaña de reportes y su exportación.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      Tarjetas de reportes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReportCardResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Get godoc
// @Summary      Calcular un reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "stock | movement | abc | occupancy | turnover | efficiency"
// @Success      200   {object}  dto.ReportResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/{kind} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("kind"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar un reporte
// @Description  XML incluye ETag calculado sobre la forma canónica (C14N). CSV admite utf-8 o cp1251.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/xml
// @Produce      text/csv
// @Param        kind      path   string  true   "Tipo de reporte"
// @Param        format    query  string  true   "pdf | xml | csv"
// @Param        encoding  query  string  false  "utf-8 | cp1251 (solo csv)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{kind}/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.UserContext(), c.Params("kind"), c.Query("format"), c.Query("encoding"))
	if err != nil {
		return writeError(c, err)
	}
	if out.ETag != "" {
		if c.Get(fiber.HeaderIfNoneMatch) == out.ETag {
			return c.SendStatus(fiber.StatusNotModified)
		}
		c.Set(fiber.HeaderETag, out.ETag)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	return c.Send(out.Body)
}
