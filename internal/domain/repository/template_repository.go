package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// TemplateFilter filtros del listado de plantillas activas.
type TemplateFilter struct {
	Search string // código, nombre o descripción
	Limit  int
	Offset int
}

// TemplateRepository define el puerto de persistencia para plantillas de ítems.
type TemplateRepository interface {
	// Create inserta la plantilla; código duplicado entre activas → *domain.ConflictError.
	Create(ctx context.Context, tpl *entity.ItemTemplate) error
	Update(ctx context.Context, tpl *entity.ItemTemplate) error
	// GetByID devuelve la plantilla activa o (nil, nil).
	GetByID(ctx context.Context, family entity.Family, id string) (*entity.ItemTemplate, error)
	// GetActiveByCode devuelve la plantilla activa con ese código o (nil, nil).
	GetActiveByCode(ctx context.Context, family entity.Family, code string) (*entity.ItemTemplate, error)
	SoftDelete(ctx context.Context, family entity.Family, id, userID string, at time.Time) (bool, error)
	List(ctx context.Context, family entity.Family, f TemplateFilter) ([]*entity.ItemTemplate, int, error)
}
