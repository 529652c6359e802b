package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
	domdir "github.com/jhoicas/directorio-negocios/internal/domain/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
	"github.com/jhoicas/directorio-negocios/internal/infrastructure/feed"
	infrapdf "github.com/jhoicas/directorio-negocios/internal/infrastructure/pdf"
	"github.com/jhoicas/directorio-negocios/internal/infrastructure/web"
	httpRouter "github.com/jhoicas/directorio-negocios/internal/interfaces/http"
	"github.com/jhoicas/directorio-negocios/pkg/config"
	"github.com/jhoicas/directorio-negocios/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("feed", cfg.Feed.Kind).
		Msg("iniciando aplicación")

	ctx, cancelLoad := context.WithCancel(context.Background())
	defer cancelLoad()

	source, closeSource, err := feed.FromConfig(ctx, cfg.Feed, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("fuente del directorio")
	}
	defer closeSource()

	// Carga única en segundo plano: la página responde "Loading" hasta que termine.
	state := directory.NewDirectoryState()
	loader := directory.NewLoadUseCase(source, directory.LoaderConfig{
		ImageBase: cfg.Assets.ImageBase,
		Timeout:   cfg.Feed.Timeout,
	}, log)
	loader.Start(ctx, state)

	matcher := domdir.NewMatcher(domdir.NewStatusCategories(
		domdir.StatusCategory{Label: cfg.Status.CompanyLabel, Status: entity.StatusCompany},
		domdir.StatusCategory{Label: cfg.Status.IndividualLabel, Status: entity.StatusIndividual},
	))
	listingsUC := directory.NewListingsUseCase(state, matcher)
	exportUC := directory.NewExportUseCase(listingsUC, infrapdf.NewMarotoDirectoryPDF())

	renderer, err := web.NewHTMLRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerPath != "" {
		if _, err := os.Stat(cfg.App.SwaggerPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerPath,
				Path:     "docs",
				Title:    "Business Directory API",
			}))
		} else {
			log.Warn().Str("path", cfg.App.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Static("/assets", cfg.Assets.Dir)
	if cfg.Feed.Kind == config.FeedKindFile {
		app.Get("/businesses.json", func(c *fiber.Ctx) error {
			return c.SendFile(cfg.Feed.FilePath)
		})
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		State:    state,
		Listings: listingsUC,
		Export:   exportUC,
		Renderer: renderer,
		Service:  cfg.App.Name,
		Log:      log,
		LoadWait: cfg.HTTP.LoadWait,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancelLoad()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
