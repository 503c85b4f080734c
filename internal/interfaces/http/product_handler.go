package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/solicitudes-api/internal/application/analytics"
	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	stats *analytics.StatsUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stats *analytics.StatsUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stats: stats}
}

// Create POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Stats GET /api/products/stats — resumen por nombre de producto.
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.ProductStats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rename PUT /api/products/:id
func (h *ProductHandler) Rename(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, err := h.uc.Rename(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// Delete DELETE /api/products/:id — rechaza con 409 si el producto está
// referenciado por solicitudes existentes.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
