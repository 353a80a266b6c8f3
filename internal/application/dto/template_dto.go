package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTemplateRequest body para POST /api/<familia>-templates.
type CreateTemplateRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Days        *int            `json:"days,omitempty"`
}

// UpdateTemplateRequest body para PUT /api/<familia>-templates/:id (campos nil quedan igual).
type UpdateTemplateRequest struct {
	Code        *string          `json:"code,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Days        *int             `json:"days,omitempty"`
}

// TemplateListQuery filtros de GET /api/<familia>-templates.
type TemplateListQuery struct {
	PageRequest
	Search string `query:"search"`
}

// TemplateResponse plantilla en respuestas.
type TemplateResponse struct {
	ID          string          `json:"id"`
	Family      string          `json:"family"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Days        *int            `json:"days,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TemplateListResponse lista paginada de plantillas.
type TemplateListResponse struct {
	Items []TemplateResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
