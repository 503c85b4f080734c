package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/solicitudes-api/internal/application/analytics"
	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc    *usecase.ClientUseCase
	stats *analytics.StatsUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, stats *analytics.StatsUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, stats: stats}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByTaxID GET /api/clients/:taxId
func (h *ClientHandler) GetByTaxID(c *fiber.Ctx) error {
	client, err := h.uc.GetByTaxID(c.Params("taxId"))
	if err != nil {
		return writeError(c, err)
	}
	if client == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(client)
}

// Stats GET /api/clients/:taxId/stats
func (h *ClientHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.ClientStats(c.Params("taxId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/clients/:id — corrección de razón social o email.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
