package http

import (
	"bytes"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
)

// DirectoryHandler sirve la página del directorio y sus fragmentos.
type DirectoryHandler struct {
	state    *directory.DirectoryState
	listings *directory.ListingsUseCase
	export   *directory.ExportUseCase
	renderer ports.ListingsRenderer
	loadWait time.Duration
}

// NewDirectoryHandler construye el handler. Con loadWait > 0 la página y el
// fragmento esperan hasta ese tiempo a que termine la carga inicial antes de
// renderizar; si no termina, se sirve "Loading" y el script vuelve a pedir.
func NewDirectoryHandler(
	state *directory.DirectoryState,
	listings *directory.ListingsUseCase,
	export *directory.ExportUseCase,
	renderer ports.ListingsRenderer,
	loadWait time.Duration,
) *DirectoryHandler {
	return &DirectoryHandler{state: state, listings: listings, export: export, renderer: renderer, loadWait: loadWait}
}

// awaitLoad bloquea hasta que la carga termine (éxito o fallo) o venza loadWait.
func (h *DirectoryHandler) awaitLoad(c *fiber.Ctx) {
	if h.loadWait <= 0 || h.state == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Context(), h.loadWait)
	defer cancel()
	_, _ = h.state.Wait(ctx)
}

// Page godoc
// @Summary      Página del directorio
// @Description  Página completa con los controles y el contenedor listings ya filtrado.
// @Tags         directory
// @Produce      html
// @Param        search  query  string  false  "Texto de búsqueda"
// @Param        sector  query  string  false  "Sector"
// @Param        status  query  string  false  "Categoría de estado"
// @Success      200
// @Router       / [get]
func (h *DirectoryHandler) Page(c *fiber.Ctx) error {
	in, err := parseCriteria(c)
	if err != nil {
		return invalidQuery(c)
	}
	h.awaitLoad(c)
	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, h.listings.Page(in)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Listings godoc
// @Summary      Fragmento del contenedor listings
// @Description  Contenido completo de #listings para los tres criterios actuales.
// @Tags         directory
// @Produce      html
// @Param        search  query  string  false  "Texto de búsqueda"
// @Param        sector  query  string  false  "Sector"
// @Param        status  query  string  false  "Categoría de estado"
// @Success      200
// @Router       /listings [get]
func (h *DirectoryHandler) Listings(c *fiber.Ctx) error {
	in, err := parseCriteria(c)
	if err != nil {
		return invalidQuery(c)
	}
	h.awaitLoad(c)
	var buf bytes.Buffer
	if err := h.renderer.RenderListings(&buf, h.listings.Build(directory.Criteria(in))); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// PDF godoc
// @Summary      Exportar listado filtrado en PDF
// @Tags         directory
// @Produce      application/pdf
// @Param        search  query  string  false  "Texto de búsqueda"
// @Param        sector  query  string  false  "Sector"
// @Param        status  query  string  false  "Categoría de estado"
// @Success      200
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /listings.pdf [get]
func (h *DirectoryHandler) PDF(c *fiber.Ctx) error {
	in, err := parseCriteria(c)
	if err != nil {
		return invalidQuery(c)
	}
	doc, err := h.export.ExportPDF(c.Context(), in)
	if err != nil {
		return writeDatasetError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="directorio.pdf"`)
	return c.Send(doc)
}

// parseCriteria lee los tres criterios; los ausentes quedan vacíos (coinciden con todo).
func parseCriteria(c *fiber.Ctx) (dto.CriteriaDTO, error) {
	var in dto.CriteriaDTO
	err := c.QueryParser(&in)
	return in, err
}

func invalidQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
}
