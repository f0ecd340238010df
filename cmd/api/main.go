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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/afero"

	"github.com/jhoicas/invoice-pdf-api/docs"
	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/invoice-pdf-api/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-pdf-api/internal/infrastructure/postgres"
	"github.com/jhoicas/invoice-pdf-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/invoice-pdf-api/internal/infrastructure/storage"
	"github.com/jhoicas/invoice-pdf-api/internal/infrastructure/template"
	httpRouter "github.com/jhoicas/invoice-pdf-api/internal/interfaces/http"
	"github.com/jhoicas/invoice-pdf-api/pkg/config"
	"github.com/jhoicas/invoice-pdf-api/pkg/logger"
)

// @title        Invoice PDF API
// @version      1.0
// @description  Generación de facturas en PDF a partir de plantillas HTML y persistencia de facturas.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db_driver", cfg.DB.Driver).
		Str("pdf_engine", cfg.PDF.Engine).
		Msg("iniciando aplicación")

	ctx := context.Background()
	invoiceRepo, closeDB, err := openInvoiceRepository(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("base de datos")
	}
	defer closeDB()

	htmlEngine, err := template.New(cfg.PDF.TemplateDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.PDF.TemplateDir).Msg("cargar plantillas")
	}

	pdfRenderer, closeRenderer, err := newPDFRenderer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("motor PDF")
	}
	defer closeRenderer()

	// Directorio de salida: se crea en la primera escritura.
	output := storage.NewOutputDir(afero.NewOsFs(), cfg.PDF.OutputDir)

	pdfUC := billing.NewPDFUseCase(invoiceRepo, htmlEngine, pdfRenderer, output, billing.PDFConfig{
		TemplateName: cfg.PDF.TemplateName,
		BasePath:     cfg.API.BasePath,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Invoice PDF API",
	}))

	app.Get("/health", httpRouter.Health(cfg.App.Name))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PDF:      pdfUC,
		BasePath: cfg.API.BasePath,
		Logger:   log,
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

	log.Info().Msg("aplicación detenida")
}

// openInvoiceRepository abre el almacenamiento indicado por DB_DRIVER y devuelve el repositorio
// junto con la función que libera sus conexiones.
func openInvoiceRepository(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (repository.InvoiceRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlstore.Open(cfg.SQLitePath, log.Component("gorm").Zerolog())
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("SQLite listo")
		return sqlstore.NewInvoiceRepository(db), func() { _ = sqlDB.Close() }, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.Migrate {
			if err := postgres.Migrate(pool); err != nil {
				pool.Close()
				return nil, nil, err
			}
			log.Info().Msg("migraciones aplicadas")
		}
		return postgres.NewInvoiceRepository(pool), pool.Close, nil
	}
}

// newPDFRenderer construye el motor indicado por PDF_ENGINE.
func newPDFRenderer(cfg *config.Config) (billing.PDFRenderer, func(), error) {
	if cfg.PDF.Engine == infrapdf.EngineMaroto {
		return infrapdf.NewMarotoRenderer(cfg.App.Name), func() {}, nil
	}
	chrome, err := infrapdf.NewChromeRenderer(infrapdf.ChromeConfig{
		Bin:       cfg.PDF.ChromeBin,
		AssetsDir: cfg.PDF.AssetsDir,
		Timeout:   cfg.PDF.RenderTimeout,
	})
	if err != nil {
		return nil, nil, err
	}
	return chrome, func() { _ = chrome.Close() }, nil
}
