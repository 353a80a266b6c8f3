package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Monitoreo-api/internal/application/documents"
	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
	"github.com/jhoicas/Monitoreo-api/internal/application/templates"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Documents []*documents.DocumentUseCase
	Templates []*templates.TemplateUseCase
	PDF       *documents.PDFUseCase
	JWTSecret string
	Log       zerolog.Logger
	AppName   string
	// Health comprueba el almacenamiento; nil equivale a siempre disponible.
	Health func(ctx context.Context) error
}

// familyPaths segmento de URL de cada familia.
var familyPaths = map[entity.Family]string{
	entity.FamilyQuotation:     "quotations",
	entity.FamilyServiceOrder:  "service-orders",
	entity.FamilyPurchaseOrder: "purchase-orders",
}

// FamilyPath devuelve el segmento de URL de la familia.
func FamilyPath(f entity.Family) string { return familyPaths[f] }

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	for _, uc := range deps.Documents {
		family := uc.Config().Family
		h := NewDocumentHandler(uc, deps.PDF, deps.Log.With().Str("family", string(family)).Logger())
		g := protected.Group("/" + FamilyPath(family))
		g.Get("/", h.List)
		g.Post("/", h.Create)
		g.Get("/next-number", h.NextNumber)
		g.Get("/:id", h.GetByID)
		g.Put("/:id", h.Update)
		g.Delete("/:id", h.Delete)
		g.Get("/:id/pdf", h.PDF)
	}

	for _, uc := range deps.Templates {
		family := uc.Config().Family
		h := NewTemplateHandler(uc, deps.Log.With().Str("family", string(family)).Logger())
		g := protected.Group("/" + FamilyPath(family) + "-templates")
		g.Get("/", h.List)
		g.Post("/", h.Create)
		g.Get("/:id", h.GetByID)
		g.Put("/:id", h.Update)
		g.Delete("/:id", h.Delete)
		g.Get("/:id/item", h.Item)
	}
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(c.UserContext()); err != nil {
				deps.Log.Error().Err(err).Msg("health: almacenamiento no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacenamiento no disponible"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	}
}
