package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/seifmegahed/daftar/internal/application/analytics"
)

// DashboardHandler maneja el tablero principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los conteos por entidad, los proyectos por estado y los últimos proyectos.
// GET /api/dashboard/summary
//
// GetSummary godoc
// @Summary      Resumen del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}
