package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document cabecera de un documento comercial (cotización, orden de servicio u orden de compra).
// Subtotal, Tax y Total son derivados: se recalculan desde los ítems activos en cada transacción.
type Document struct {
	ID          string
	Family      Family
	Number      string
	PartyID     string // cliente o proveedor según FamilyConfig.PartyKind
	GestorID    string // responsable (órdenes)
	Date        time.Time
	Currency    Currency
	Status      Status
	Description string
	Comments    string

	// Cotización
	ValidityDays       *int
	ReturnDate         *time.Time
	MonitoringLocation string
	MonitoringType     string

	// Órdenes
	PaymentTerms string
	DeliveryDate *time.Time

	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal

	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Resueltos en lectura; no se persisten con la cabecera.
	Items  []*DocumentItem
	Party  *Party
	Gestor *Person
}

// IsActive informa si el documento no fue eliminado.
func (d *Document) IsActive() bool { return d.DeletedAt == nil }

// DocumentItem línea de un documento. Nunca se edita en sitio: cada actualización con ítems
// retira (soft delete) las filas activas e inserta filas nuevas.
type DocumentItem struct {
	ID          string
	DocumentID  string
	Code        string
	Name        string
	Description string
	Quantity    int
	Days        *int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Position    int
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// IsActive informa si la línea pertenece al conjunto vigente.
func (i *DocumentItem) IsActive() bool { return i.DeletedAt == nil }
