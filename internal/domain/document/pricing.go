package document

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// TaxRate IGV (Perú) aplicado sobre el subtotal. Fijo: no se configura por documento.
var TaxRate = decimal.RequireFromString("0.18")

// Totals resultado del recálculo de un conjunto de líneas.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineTotal aplica la fórmula de precio de la familia.
// Órdenes de compra: cantidad × precio. Cotizaciones y órdenes de servicio: cantidad × días × precio
// (días ausente cuenta como 1).
func LineTotal(cfg entity.FamilyConfig, item *entity.DocumentItem) decimal.Decimal {
	total := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	if cfg.Pricing == entity.PricingQuantityDays {
		days := 1
		if item.Days != nil {
			days = *item.Days
		}
		total = total.Mul(decimal.NewFromInt(int64(days)))
	}
	return total
}

// Recompute calcula subtotal, impuesto y total sumando en orden de inserción.
// Además fija LineTotal en cada ítem para que la fila persistida refleje la misma fórmula.
func Recompute(cfg entity.FamilyConfig, items []*entity.DocumentItem) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, domain.NewValidationError("items", "debe incluir al menos un ítem")
	}
	subtotal := decimal.Zero
	for _, it := range items {
		it.LineTotal = LineTotal(cfg, it)
		subtotal = subtotal.Add(it.LineTotal)
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

// Apply copia los totales a la cabecera.
func (t Totals) Apply(doc *entity.Document) {
	doc.Subtotal = t.Subtotal
	doc.Tax = t.Tax
	doc.Total = t.Total
}
