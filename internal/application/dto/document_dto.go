package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas en requests y responses.
const DateLayout = "2006-01-02"

// DocumentItemRequest línea enviada por el cliente. ID se ignora: cada actualización crea filas nuevas.
type DocumentItemRequest struct {
	ID          string          `json:"id,omitempty"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Days        *int            `json:"days,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateDocumentRequest body para POST /api/<familia>.
// Number es opcional: si va vacío se asigna el siguiente correlativo de la familia.
type CreateDocumentRequest struct {
	Number      string `json:"number,omitempty"`
	PartyID     string `json:"party_id"`
	GestorID    string `json:"gestor_id,omitempty"`
	Date        string `json:"date"`
	Currency    string `json:"currency,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Comments    string `json:"comments,omitempty"`

	ValidityDays       *int   `json:"validity_days,omitempty"`
	ReturnDate         string `json:"return_date,omitempty"`
	MonitoringLocation string `json:"monitoring_location,omitempty"`
	MonitoringType     string `json:"monitoring_type,omitempty"`

	PaymentTerms string `json:"payment_terms,omitempty"`
	DeliveryDate string `json:"delivery_date,omitempty"`

	Items []DocumentItemRequest `json:"items"`
}

// UpdateDocumentRequest body para PUT /api/<familia>/:id. Campos nil quedan igual.
// Items nil deja líneas y totales intactos; una lista presente reemplaza todas las líneas.
type UpdateDocumentRequest struct {
	Number      *string `json:"number,omitempty"`
	PartyID     *string `json:"party_id,omitempty"`
	GestorID    *string `json:"gestor_id,omitempty"`
	Date        *string `json:"date,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
	Comments    *string `json:"comments,omitempty"`

	ValidityDays       *int    `json:"validity_days,omitempty"`
	ReturnDate         *string `json:"return_date,omitempty"`
	MonitoringLocation *string `json:"monitoring_location,omitempty"`
	MonitoringType     *string `json:"monitoring_type,omitempty"`

	PaymentTerms *string `json:"payment_terms,omitempty"`
	DeliveryDate *string `json:"delivery_date,omitempty"`

	Items *[]DocumentItemRequest `json:"items,omitempty"`
}

// DocumentListQuery filtros de GET /api/<familia>.
type DocumentListQuery struct {
	PageRequest
	Search  string `query:"search"`
	Status  string `query:"status"`
	PartyID string `query:"party_id"`
}

// PartyRefResponse contraparte resuelta.
type PartyRefResponse struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PersonRefResponse gestor resuelto.
type PersonRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// DocumentItemResponse línea activa del documento.
type DocumentItemResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Days        *int            `json:"days,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Position    int             `json:"position"`
}

// DocumentResponse documento con cabecera, totales, referencias resueltas y líneas activas.
type DocumentResponse struct {
	ID          string             `json:"id"`
	Family      string             `json:"family"`
	Number      string             `json:"number"`
	PartyID     string             `json:"party_id"`
	Party       *PartyRefResponse  `json:"party,omitempty"`
	GestorID    string             `json:"gestor_id,omitempty"`
	Gestor      *PersonRefResponse `json:"gestor,omitempty"`
	Date        string             `json:"date"`
	Currency    string             `json:"currency"`
	Status      string             `json:"status"`
	Description string             `json:"description,omitempty"`
	Comments    string             `json:"comments,omitempty"`

	ValidityDays       *int   `json:"validity_days,omitempty"`
	ReturnDate         string `json:"return_date,omitempty"`
	MonitoringLocation string `json:"monitoring_location,omitempty"`
	MonitoringType     string `json:"monitoring_type,omitempty"`

	PaymentTerms string `json:"payment_terms,omitempty"`
	DeliveryDate string `json:"delivery_date,omitempty"`

	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`

	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []DocumentItemResponse `json:"items,omitempty"`
}

// DocumentListResponse lista paginada de documentos (sin líneas).
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// NextNumberResponse respuesta de GET /api/<familia>/next-number.
type NextNumberResponse struct {
	Number string `json:"number"`
}
