package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
)

// BusinessHandler maneja la API JSON del directorio.
type BusinessHandler struct {
	uc *directory.ListingsUseCase
}

// NewBusinessHandler construye el handler inyectando el caso de uso.
func NewBusinessHandler(uc *directory.ListingsUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// List godoc
// @Summary      Listar negocios filtrados
// @Tags         businesses
// @Produce      json
// @Param        search  query  string  false  "Texto contenido en el nombre (sin distinguir mayúsculas)"
// @Param        sector  query  string  false  "Sector exacto"
// @Param        status  query  string  false  "Etiqueta de categoría de estado"
// @Success      200     {object}  dto.BusinessListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /api/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	in, err := parseCriteria(c)
	if err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.Filter(in)
	if err != nil {
		return writeDatasetError(c, err)
	}
	return c.JSON(out)
}

// Sectors godoc
// @Summary      Sectores disponibles
// @Tags         businesses
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/sectors [get]
func (h *BusinessHandler) Sectors(c *fiber.Ctx) error {
	return c.JSON(h.uc.Sectors())
}

// StatusCategories godoc
// @Summary      Categorías del selector de estado
// @Tags         businesses
// @Produce      json
// @Success      200  {array}  dto.StatusCategoryDTO
// @Router       /api/status-categories [get]
func (h *BusinessHandler) StatusCategories(c *fiber.Ctx) error {
	return c.JSON(h.uc.StatusCategories())
}
