package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// DocumentFilter filtros del listado de documentos activos.
type DocumentFilter struct {
	Search  string // número, descripción o comentarios (case-insensitive)
	Status  entity.Status
	PartyID string
	Limit   int
	Offset  int
}

// DocumentRepository define el puerto de persistencia para documentos y sus líneas.
// Todas las lecturas excluyen filas con deleted_at; las líneas nunca se borran físicamente.
type DocumentRepository interface {
	// Create inserta la cabecera. Si el número ya está activo en la familia devuelve *domain.ConflictError.
	Create(ctx context.Context, doc *entity.Document) error
	// CreateItems inserta líneas nuevas (append-only).
	CreateItems(ctx context.Context, items []*entity.DocumentItem) error
	// UpdateHeader sobrescribe cabecera y totales. Si el número choca devuelve *domain.ConflictError.
	UpdateHeader(ctx context.Context, doc *entity.Document) error

	// GetByID devuelve el documento activo o (nil, nil) si no existe o fue eliminado.
	GetByID(ctx context.Context, family entity.Family, id string) (*entity.Document, error)
	// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, family entity.Family, id string) (*entity.Document, error)
	// ListActiveItems devuelve las líneas vigentes en orden de posición.
	ListActiveItems(ctx context.Context, documentID string) ([]*entity.DocumentItem, error)

	// SoftDeleteItems marca todas las líneas activas del documento; devuelve cuántas se retiraron.
	SoftDeleteItems(ctx context.Context, documentID string, at time.Time) (int64, error)
	// SoftDelete marca la cabecera; false si ya no estaba activa.
	SoftDelete(ctx context.Context, family entity.Family, id, userID string, at time.Time) (bool, error)

	// ExistsActiveNumber informa si el número está usado por otro documento activo (excludeID se ignora).
	ExistsActiveNumber(ctx context.Context, family entity.Family, number, excludeID string) (bool, error)
	// RecentNumbers devuelve los últimos números emitidos (incluye eliminados), más reciente primero.
	RecentNumbers(ctx context.Context, family entity.Family, limit int) ([]string, error)

	// List devuelve una página de documentos activos (más recientes primero) y el total filtrado.
	List(ctx context.Context, family entity.Family, f DocumentFilter) ([]*entity.Document, int, error)
}
