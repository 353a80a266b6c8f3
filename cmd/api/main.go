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
	"github.com/rs/zerolog"

	"github.com/jhoicas/Monitoreo-api/docs"
	"github.com/jhoicas/Monitoreo-api/internal/application/documents"
	"github.com/jhoicas/Monitoreo-api/internal/application/templates"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
	"github.com/jhoicas/Monitoreo-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Monitoreo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Monitoreo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Monitoreo-api/internal/interfaces/http"
	"github.com/jhoicas/Monitoreo-api/pkg/config"
	"github.com/jhoicas/Monitoreo-api/pkg/logger"
)

// storage adaptadores de persistencia según DB_DRIVER.
type storage struct {
	tx        documents.TxRunner
	docs      repository.DocumentRepository
	templates repository.TemplateRepository
	parties   repository.PartyDirectory
	ping      func(ctx context.Context) error
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	// Un motor de documentos y un catálogo de plantillas por familia
	opts := documents.Options{
		NumberWindow:    cfg.Documents.NumberWindow,
		DefaultCurrency: entity.Currency(cfg.Documents.DefaultCurrency),
	}
	var docUCs []*documents.DocumentUseCase
	var tplUCs []*templates.TemplateUseCase
	for _, fam := range entity.Families {
		docUCs = append(docUCs, documents.NewDocumentUseCase(
			fam, store.tx, store.docs, store.parties, opts, log.Component("documents"),
		))
		tplUCs = append(tplUCs, templates.NewTemplateUseCase(fam, store.templates, log.Component("templates")))
	}

	// PDF: representación imprimible de cualquier familia
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.Company)
	pdfUC := documents.NewPDFUseCase(pdfGenerator, docUCs...)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Monitoreo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Documents: docUCs,
		Templates: tplUCs,
		PDF:       pdfUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log.Component("http"),
		AppName:   cfg.App.Name,
		Health:    store.ping,
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

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == config.DriverMemory {
		return openMemory(log.Component("memory")), nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &storage{
		tx:        postgres.NewTxRunner(pool),
		docs:      postgres.NewDocumentRepository(pool),
		templates: postgres.NewTemplateRepository(pool),
		parties:   postgres.NewPartyDirectory(pool),
		ping:      pool.Ping,
		close:     pool.Close,
	}, nil
}

// openMemory almacenamiento volátil con contrapartes de demostración.
func openMemory(log zerolog.Logger) *storage {
	store := memory.NewStore()
	demo := store.Directory().SeedDemo()
	log.Warn().
		Str("client_id", demo.ClientID).
		Str("provider_id", demo.ProviderID).
		Str("gestor_id", demo.GestorID).
		Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	return &storage{
		tx:        store,
		docs:      store.Documents(),
		templates: store.Templates(),
		parties:   store.Directory(),
		ping:      store.Ping,
		close:     func() {},
	}
}
