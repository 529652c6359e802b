package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
	"github.com/jhoicas/directorio-negocios/internal/application/dto"
)

// HealthHandler expone el estado del servicio y del directorio.
type HealthHandler struct {
	state   *directory.DirectoryState
	service string
}

// NewHealthHandler construye el handler.
func NewHealthHandler(state *directory.DirectoryState, service string) *HealthHandler {
	return &HealthHandler{state: state, service: service}
}

// Get godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Get(c *fiber.Ctx) error {
	ds, _ := h.state.Snapshot()
	out := dto.HealthResponse{
		Status:     "ok",
		Service:    h.service,
		Dataset:    h.state.Status(),
		Businesses: ds.Len(),
	}
	if ds != nil {
		out.SnapshotID = ds.ID
	}
	return c.JSON(out)
}
