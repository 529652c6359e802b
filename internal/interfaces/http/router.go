package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
	"github.com/jhoicas/directorio-negocios/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	State    *directory.DirectoryState
	Listings *directory.ListingsUseCase
	Export   *directory.ExportUseCase
	Renderer ports.ListingsRenderer
	Service  string
	Log      *logger.Logger
	LoadWait time.Duration // espera máxima de / y /listings por la carga inicial
}

// Router registra las rutas de la página y de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	health := NewHealthHandler(deps.State, deps.Service)
	app.Get("/health", health.Get)

	// Página del directorio (HTML)
	page := NewDirectoryHandler(deps.State, deps.Listings, deps.Export, deps.Renderer, deps.LoadWait)
	app.Get("/", page.Page)
	app.Get("/listings", page.Listings)
	app.Get("/listings.pdf", RequireDataset(deps.State), page.PDF)

	// API JSON
	api := app.Group("/api")
	businesses := NewBusinessHandler(deps.Listings)
	api.Get("/businesses", RequireDataset(deps.State), businesses.List)
	api.Get("/sectors", businesses.Sectors)
	api.Get("/status-categories", businesses.StatusCategories)
}
