package documents

import (
	"context"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio de documentos atado a ella.
// Si fn devuelve error se hace rollback: cabecera, totales y líneas se confirman juntos o nada.
type TxRunner interface {
	RunDocuments(ctx context.Context, fn func(docs repository.DocumentRepository) error) error
}

// DocumentPDFGenerator genera la representación PDF de un documento ya resuelto
// (cabecera, contraparte, gestor y líneas activas).
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, cfg entity.FamilyConfig, doc *entity.Document) ([]byte, error)
}
