package dto

import (
	"math"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
)

// Valores por defecto de paginación.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxOffset tope del OFFSET (entero de 32 bits en PostgreSQL).
	MaxOffset = math.MaxInt32
)

// PageRequest paginación por página (skip = (page-1) × limit).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y límites.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	// Páginas fuera de rango se fijan en la última posible; evita desbordar (page-1)*limit.
	if maxPage := MaxOffset/p.Limit + 1; p.Page > maxPage {
		p.Page = maxPage
	}
}

// Offset filas a saltar para la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse calcula el número de páginas.
func NewPageResponse(p PageRequest, total int) PageResponse {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return PageResponse{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}

// ErrorResponse cuerpo de error HTTP.
// Fields detalla los campos inválidos (VALIDATION); Field el campo en conflicto (CONFLICT).
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
	Field   string              `json:"field,omitempty"`
}
