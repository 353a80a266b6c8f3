package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// PDFUseCase genera la representación PDF de cualquier documento de las familias registradas.
type PDFUseCase struct {
	generator DocumentPDFGenerator
	families  map[entity.Family]*DocumentUseCase
}

// NewPDFUseCase construye el caso de uso inyectando el generador y los motores por familia.
func NewPDFUseCase(generator DocumentPDFGenerator, useCases ...*DocumentUseCase) *PDFUseCase {
	families := make(map[entity.Family]*DocumentUseCase, len(useCases))
	for _, uc := range useCases {
		families[uc.cfg.Family] = uc
	}
	return &PDFUseCase{generator: generator, families: families}
}

// Download carga el documento activo con sus líneas vigentes y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - *domain.NotFoundError      si el documento no existe o fue eliminado.
func (uc *PDFUseCase) Download(ctx context.Context, family entity.Family, id string) (pdfBytes []byte, filename string, err error) {
	docs, ok := uc.families[family]
	if !ok {
		return nil, "", domain.NewValidationError("family", "familia no soportada")
	}

	// ── 1. Cargar documento, líneas y referencias ─────────────────────────────
	doc, err := docs.load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	// ── 2. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateDocumentPDF(ctx, docs.cfg, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("%s_%s.pdf", strings.ReplaceAll(string(family), "_", "-"), doc.Number)
	docs.log.Debug().Str("id", doc.ID).Int("bytes", len(pdfBytes)).Msg("pdf generado")
	return pdfBytes, filename, nil
}
