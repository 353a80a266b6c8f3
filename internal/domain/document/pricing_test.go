package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/document"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRecompute_OrdenDeCompra(t *testing.T) {
	cfg := entity.MustConfig(entity.FamilyPurchaseOrder)
	items := []*entity.DocumentItem{
		{Code: "A", Quantity: 2, UnitPrice: dec("100")},
		{Code: "B", Quantity: 1, UnitPrice: dec("50")},
	}

	totals, err := document.Recompute(cfg, items)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(dec("250")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(dec("45")), "tax = %s", totals.Tax)
	assert.True(t, totals.Total.Equal(dec("295")), "total = %s", totals.Total)
	assert.True(t, items[0].LineTotal.Equal(dec("200")))
	assert.True(t, items[1].LineTotal.Equal(dec("50")))
}

func TestRecompute_CotizacionMultiplicaPorDias(t *testing.T) {
	cfg := entity.MustConfig(entity.FamilyQuotation)
	items := []*entity.DocumentItem{
		{Code: "SON-01", Quantity: 2, Days: intPtr(3), UnitPrice: dec("150.50")},
	}

	totals, err := document.Recompute(cfg, items)
	require.NoError(t, err)

	// 2 × 3 × 150.50 = 903.00; IGV 18% = 162.54
	assert.True(t, totals.Subtotal.Equal(dec("903")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(dec("162.54")), "tax = %s", totals.Tax)
	assert.True(t, totals.Total.Equal(dec("1065.54")), "total = %s", totals.Total)
}

func TestRecompute_OrdenDeServicioSinDiasCuentaUno(t *testing.T) {
	cfg := entity.MustConfig(entity.FamilyServiceOrder)
	items := []*entity.DocumentItem{
		{Code: "MUE-01", Quantity: 4, UnitPrice: dec("25")},
		{Code: "MUE-02", Quantity: 1, Days: intPtr(5), UnitPrice: dec("10")},
	}

	totals, err := document.Recompute(cfg, items)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(dec("150")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(dec("27")))
}

func TestRecompute_OrdenDeCompraIgnoraDias(t *testing.T) {
	cfg := entity.MustConfig(entity.FamilyPurchaseOrder)
	item := &entity.DocumentItem{Quantity: 3, Days: intPtr(10), UnitPrice: dec("2")}

	assert.True(t, document.LineTotal(cfg, item).Equal(dec("6")))
}

func TestRecompute_SinItemsEsErrorDeValidacion(t *testing.T) {
	cfg := entity.MustConfig(entity.FamilyPurchaseOrder)

	_, err := document.Recompute(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Fields[0].Field)
}

// El recálculo debe ser determinista: mismo conjunto, mismos totales, sin importar cuántas veces se ejecute.
func TestRecompute_Determinista(t *testing.T) {
	cfg := entity.MustConfig(entity.FamilyQuotation)
	build := func() []*entity.DocumentItem {
		return []*entity.DocumentItem{
			{Quantity: 3, Days: intPtr(7), UnitPrice: dec("0.10")},
			{Quantity: 1, Days: intPtr(1), UnitPrice: dec("0.20")},
			{Quantity: 11, Days: intPtr(2), UnitPrice: dec("33.33")},
		}
	}

	first, err := document.Recompute(cfg, build())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := document.Recompute(cfg, build())
		require.NoError(t, err)
		assert.True(t, first.Total.Equal(again.Total))
	}
	assert.True(t, first.Total.Equal(first.Subtotal.Add(first.Tax)))
}

func TestTotals_Apply(t *testing.T) {
	doc := &entity.Document{}
	document.Totals{Subtotal: dec("10"), Tax: dec("1.8"), Total: dec("11.8")}.Apply(doc)

	assert.True(t, doc.Subtotal.Equal(dec("10")))
	assert.True(t, doc.Tax.Equal(dec("1.8")))
	assert.True(t, doc.Total.Equal(dec("11.8")))
}
