package document

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// ValidateItems revisa cada línea contra las reglas de la familia y acumula los campos inválidos
// en verr con rutas del tipo items[0].quantity.
func ValidateItems(cfg entity.FamilyConfig, items []*entity.DocumentItem, verr *domain.ValidationError) {
	if len(items) == 0 {
		verr.Add("items", "debe incluir al menos un ítem")
		return
	}
	for i, it := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		requireText(verr, prefix+"code", it.Code)
		requireText(verr, prefix+"name", it.Name)
		requireText(verr, prefix+"description", it.Description)
		if it.Quantity < 1 {
			verr.Add(prefix+"quantity", "debe ser un entero mayor o igual a 1")
		}
		ValidatePrice(it.UnitPrice, prefix+"unit_price", verr)
		ValidateDays(cfg, it.Days, prefix+"days", verr)
	}
}

// MaxPriceScale decimales que admite el precio unitario (NUMERIC(18,4) en PostgreSQL).
const MaxPriceScale = 4

// ValidatePrice exige un precio no negativo con a lo sumo MaxPriceScale decimales.
func ValidatePrice(price decimal.Decimal, field string, verr *domain.ValidationError) {
	if price.LessThan(decimal.Zero) {
		verr.Add(field, "no puede ser negativo")
		return
	}
	if price.Exponent() < -MaxPriceScale && !price.Equal(price.Truncate(MaxPriceScale)) {
		verr.Add(field, fmt.Sprintf("admite como máximo %d decimales", MaxPriceScale))
	}
}

// ValidateDays aplica la política de días de la familia (requerido, opcional o prohibido).
func ValidateDays(cfg entity.FamilyConfig, days *int, field string, verr *domain.ValidationError) {
	switch cfg.Days {
	case entity.DaysForbidden:
		if days != nil {
			verr.Add(field, "no aplica para "+cfg.Label)
		}
	case entity.DaysRequired:
		if days == nil {
			verr.Add(field, "es obligatorio para "+cfg.Label)
			return
		}
		fallthrough
	default:
		if days != nil && *days < 1 {
			verr.Add(field, "debe ser un entero mayor o igual a 1")
		}
	}
}

// NormalizeItems recorta espacios y fija la posición según el orden recibido.
func NormalizeItems(items []*entity.DocumentItem) {
	for i, it := range items {
		it.Code = strings.TrimSpace(it.Code)
		it.Name = strings.TrimSpace(it.Name)
		it.Description = strings.TrimSpace(it.Description)
		it.Position = i
	}
}

func requireText(verr *domain.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		verr.Add(field, "es obligatorio")
	}
}
