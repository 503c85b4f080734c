package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/solicitudes-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del tablero.
type DashboardHandler struct {
	uc *analytics.StatsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary GET /api/dashboard/summary
//
// Conteos por estado sobre todas las solicitudes más ventas y altas del mes
// calendario en curso. Sin parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Dashboard()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
