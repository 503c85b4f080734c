package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/application/export"
	"github.com/tu-usuario/solicitudes-api/internal/application/usecase"
)

// SolicitudHandler maneja las peticiones HTTP de solicitudes.
type SolicitudHandler struct {
	uc  *usecase.SolicitudUseCase
	pdf *usecase.PDFUseCase
}

// NewSolicitudHandler construye el handler.
func NewSolicitudHandler(uc *usecase.SolicitudUseCase, pdf *usecase.PDFUseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc, pdf: pdf}
}

// Create POST /api/solicitudes
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// List GET /api/solicitudes — todas, más reciente primero.
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/solicitudes/:id
func (h *SolicitudHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(s)
}

// Issue POST /api/solicitudes/:id/issue — pending → issued.
func (h *SolicitudHandler) Issue(c *fiber.Ctx) error {
	s, err := h.uc.Issue(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(s)
}

// Cancel POST /api/solicitudes/:id/cancel — pending → cancelled, comentario opcional.
func (h *SolicitudHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelSolicitudRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	s, err := h.uc.Cancel(c.Params("id"), in.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(s)
}

// ExportCSV GET /api/solicitudes/export — snapshot tabular para planillas.
func (h *SolicitudHandler) ExportCSV(c *fiber.Ctx) error {
	list, err := h.uc.ListEntities()
	if err != nil {
		return writeError(c, err)
	}
	filename := "solicitudes-" + time.Now().Format("20060102") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(export.SolicitudesCSV(list))
}

// PDF GET /api/solicitudes/:id/pdf — vista imprimible.
func (h *SolicitudHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdf.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
