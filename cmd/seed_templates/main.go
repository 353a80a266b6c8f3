// seed_templates carga el catálogo de plantillas de ítems desde un CSV (separador ';').
//
// Uso: go run ./cmd/seed_templates [-latin1] [-user seed] [ruta/catalogo.csv]
// Por defecto busca plantillas.csv en el directorio actual. Las filas cuyo código ya
// existe en la familia se omiten; el resto de errores de validación detiene la carga.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/jhoicas/Monitoreo-api/internal/application/templates"
	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Monitoreo-api/pkg/config"
	"github.com/jhoicas/Monitoreo-api/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1")
	userID := flag.String("user", "seed", "usuario registrado como created_by")
	flag.Parse()

	path := "plantillas.csv"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("abrir catálogo")
	}
	defer f.Close()

	rows, err := parseCatalog(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("leer catálogo")
	}

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewTemplateRepository(pool)
	ucs := make(map[entity.Family]*templates.TemplateUseCase, len(entity.Families))
	for _, fam := range entity.Families {
		ucs[fam] = templates.NewTemplateUseCase(fam, repo, log.Component("seed"))
	}

	created, skipped := 0, 0
	for _, row := range rows {
		_, err := ucs[row.Family].Create(ctx, *userID, row.Request)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrConflict):
			skipped++
			log.Warn().Int("line", row.Line).Str("code", row.Request.Code).Msg("código existente, se omite")
		default:
			log.Fatal().Err(err).Int("line", row.Line).Str("code", row.Request.Code).Msg("crear plantilla")
		}
	}

	log.Info().Int("created", created).Int("skipped", skipped).Str("path", path).Msg("catálogo cargado")
}
