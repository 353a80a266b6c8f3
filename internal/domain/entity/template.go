package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemTemplate plantilla reutilizable de línea. Copiarla a un ítem no crea vínculo alguno.
type ItemTemplate struct {
	ID          string
	Family      Family
	Code        string // único entre plantillas activas de la familia
	Name        string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Days        *int
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
