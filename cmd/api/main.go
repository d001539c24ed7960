package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/skladpro/docs"
	"github.com/jhoicas/skladpro/internal/application/reports"
	"github.com/jhoicas/skladpro/internal/application/session"
	"github.com/jhoicas/skladpro/internal/application/usecase"
	"github.com/jhoicas/skladpro/internal/application/workspace"
	"github.com/jhoicas/skladpro/internal/domain/repository"
	"github.com/jhoicas/skladpro/internal/infrastructure/backend"
	"github.com/jhoicas/skladpro/internal/infrastructure/export"
	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/skladpro/internal/infrastructure/pdf"
	"github.com/jhoicas/skladpro/internal/infrastructure/postgres"
	infrasession "github.com/jhoicas/skladpro/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/skladpro/internal/interfaces/http"
	"github.com/jhoicas/skladpro/pkg/config"
	"github.com/jhoicas/skladpro/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        SkladPro API
// @version      1.0
// @description  Panel de almacén por roles: catálogo, reportes y gateway ?path= del backend.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
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
		Str("catalog", cfg.Catalog.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()
	catalog, closeCatalog, err := buildCatalog(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("catalog", cfg.Catalog.Source).Msg("fuente del catálogo")
	}
	defer closeCatalog()

	// Estado de vista por sesión; el logout o la inactividad lo descartan.
	states := workspace.NewRegistryWithTTL(time.Duration(cfg.Session.StateIdleMinutes)*time.Minute, time.Now)
	codec := infrasession.NewJWTCodec(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTLMinutes)
	sessionUC := session.NewUseCase(codec, states)

	catalogUC := usecase.NewCatalogUseCase(catalog)
	pageUC := workspace.NewPageUseCase(cfg.App.Name, catalogUC)
	gatewayUC := usecase.NewGatewayUseCase(catalogUC, sessionUC)

	// Reportes: PDF (maroto), XML (etree + C14N) y CSV (utf-8 | cp1251)
	reportsUC := reports.NewUseCase(
		catalog,
		infrapdf.NewReportGenerator(cfg.App.Name),
		export.NewXMLRenderer(),
		export.NewCSVRenderer(),
	)

	view, err := httpRouter.NewView()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "SkladPro API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "catalog": cfg.Catalog.Source})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC: sessionUC,
		PageUC:    pageUC,
		States:    states,
		CatalogUC: catalogUC,
		GatewayUC: gatewayUC,
		ReportsUC: reportsUC,
		View:      view,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.App.Env == "production",
		},
		Logger: log,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Int("sessions", states.Len()).Msg("aplicación detenida")
}

// buildCatalog elige la fuente del catálogo. El cierre libera el pool de PostgreSQL.
func buildCatalog(ctx context.Context, cfg *config.Config) (repository.CatalogRepository, func(), error) {
	noop := func() {}
	switch cfg.Catalog.Source {
	case config.CatalogPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return postgres.NewCatalogRepository(pool), pool.Close, nil
	case config.CatalogRemote:
		client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
		return backend.NewRemoteCatalog(client), noop, nil
	default:
		c, err := memory.NewDefaultCatalog()
		if err != nil {
			return nil, noop, err
		}
		return c, noop, nil
	}
}
