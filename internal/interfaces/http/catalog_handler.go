package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/application/usecase"
)

// CatalogHandler lectura del catálogo en JSON (con sesión).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Products godoc
// @Summary      Listar productos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	list, err := h.uc.ListProducts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Orders godoc
// @Summary      Listar pedidos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.DocumentResponse]
// @Router       /api/orders [get]
func (h *CatalogHandler) Orders(c *fiber.Ctx) error {
	list, err := h.uc.ListOrders(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Receipts godoc
// @Summary      Listar recepciones
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.DocumentResponse]
// @Router       /api/receipts [get]
func (h *CatalogHandler) Receipts(c *fiber.Ctx) error {
	list, err := h.uc.ListReceipts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Shipments godoc
// @Summary      Listar envíos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.DocumentResponse]
// @Router       /api/shipments [get]
func (h *CatalogHandler) Shipments(c *fiber.Ctx) error {
	list, err := h.uc.ListShipments(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Zones godoc
// @Summary      Listar zonas del almacén
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ZoneResponse]
// @Router       /api/zones [get]
func (h *CatalogHandler) Zones(c *fiber.Ctx) error {
	list, err := h.uc.ListZones(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Inventory godoc
// @Summary      Listar inventarios físicos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.InventoryCountResponse]
// @Router       /api/inventory [get]
func (h *CatalogHandler) Inventory(c *fiber.Ctx) error {
	list, err := h.uc.ListInventory(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Contractors godoc
// @Summary      Listar contratistas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ContractorResponse]
// @Router       /api/contractors [get]
func (h *CatalogHandler) Contractors(c *fiber.Ctx) error {
	list, err := h.uc.ListContractors(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Stats godoc
// @Summary      Indicadores del dashboard
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
