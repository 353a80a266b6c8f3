// Package pdf genera la representación imprimible de cotizaciones, órdenes de servicio
// y órdenes de compra con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + RUC        │  Tipo + N° + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Cliente/Proveedor + RUC + contacto            │
//	│  DATOS: campos propios de la familia (vigencia, gestor...)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Cant | Días | P.Unit | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IGV 18% / TOTAL                        │
//	│  OBSERVACIONES                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Monitoreo-api/internal/application/documents"
	"github.com/jhoicas/Monitoreo-api/internal/domain/document"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	appconfig "github.com/jhoicas/Monitoreo-api/pkg/config"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ documents.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa documents.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company appconfig.CompanyConfig
}

// NewMarotoPDFGenerator construye el generador con los datos de la empresa emisora.
func NewMarotoPDFGenerator(company appconfig.CompanyConfig) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{company: company}
}

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(_ context.Context, fam entity.FamilyConfig, doc *entity.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fam.Label+" "+doc.Number, true).
		WithAuthor(g.company.Name, true).
		Build()

	m := maroto.New(cfg)
	money := newMoneyFormatter(doc.Currency)

	m.AddRows(g.headerRow(fam, doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(fam, doc.Party))
	m.AddRows(detailRows(fam, doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(fam))
	m.AddRows(itemRows(fam, doc.Items, money)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc, money))
	if doc.Comments != "" {
		m.AddRows(commentsRow(doc.Comments))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(fam entity.FamilyConfig, doc *entity.Document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.company.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(companyLine(g.company), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(upper(fam.Label), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(doc.Number, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Fecha: "+doc.Date.Format("02/01/2006")+"   Estado: "+string(doc.Status),
				props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func partyRow(fam entity.FamilyConfig, party *entity.Party) core.Row {
	title := "CLIENTE"
	if fam.PartyKind == entity.PartyProvider {
		title = "PROVEEDOR"
	}
	name, detail := "—", ""
	if party != nil {
		name = party.Name
		detail = fmt.Sprintf("RUC: %s   |   Email: %s   |   Tel: %s",
			nonEmpty(party.TaxID, "—"), nonEmpty(party.Email, "—"), nonEmpty(party.Phone, "—"))
	}
	return row.New(16).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
	))
}

// detailRows campos de cabecera propios de la familia, uno por fila.
func detailRows(fam entity.FamilyConfig, doc *entity.Document) []core.Row {
	var pairs [][2]string
	if doc.Description != "" {
		pairs = append(pairs, [2]string{"Descripción", doc.Description})
	}
	for _, f := range fam.HeaderFields {
		switch f {
		case entity.FieldValidityDays:
			if doc.ValidityDays != nil {
				pairs = append(pairs, [2]string{"Vigencia", strconv.Itoa(*doc.ValidityDays) + " días"})
			}
		case entity.FieldReturnDate:
			if doc.ReturnDate != nil {
				pairs = append(pairs, [2]string{"Fecha de retorno", doc.ReturnDate.Format("02/01/2006")})
			}
		case entity.FieldMonitoringLocation:
			pairs = appendIf(pairs, "Lugar de monitoreo", doc.MonitoringLocation)
		case entity.FieldMonitoringType:
			pairs = appendIf(pairs, "Tipo de monitoreo", doc.MonitoringType)
		case entity.FieldGestor:
			if doc.Gestor != nil {
				pairs = append(pairs, [2]string{"Gestor", doc.Gestor.Name})
			}
		case entity.FieldPaymentTerms:
			pairs = appendIf(pairs, "Condiciones de pago", doc.PaymentTerms)
		case entity.FieldDeliveryDate:
			if doc.DeliveryDate != nil {
				pairs = append(pairs, [2]string{"Fecha de entrega", doc.DeliveryDate.Format("02/01/2006")})
			}
		}
	}
	pairs = append(pairs, [2]string{"Moneda", string(doc.Currency)})

	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(p[0]+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(9).Add(text.New(p[1], props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

func tableHeaderRow(fam entity.FamilyConfig) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	cols := []core.Col{h("Código", 2, align.Left), h("Descripción", descSize(fam), align.Left), h("Cant.", 1, align.Center)}
	if fam.Days != entity.DaysForbidden {
		cols = append(cols, h("Días", 1, align.Center))
	}
	cols = append(cols, h("P. Unit.", 2, align.Right), h("Total", 2, align.Right))
	return row.New(8).Add(cols...)
}

func itemRows(fam entity.FamilyConfig, items []*entity.DocumentItem, money moneyFormatter) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		cols := []core.Col{
			cell(it.Code, 2, align.Left),
			cell(it.Name+" - "+it.Description, descSize(fam), align.Left),
			cell(strconv.Itoa(it.Quantity), 1, align.Center),
		}
		if fam.Days != entity.DaysForbidden {
			days := "1"
			if it.Days != nil {
				days = strconv.Itoa(*it.Days)
			}
			cols = append(cols, cell(days, 1, align.Center))
		}
		cols = append(cols, cell(money.format(it.UnitPrice), 2, align.Right), cell(money.format(it.LineTotal), 2, align.Right))
		rows = append(rows, row.New(7).Add(cols...))
	}
	return rows
}

func totalsRow(doc *entity.Document, money moneyFormatter) core.Row {
	label := func(s string, size float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2})
	}
	taxLabel := fmt.Sprintf("IGV %s%%:", document.TaxRate.Shift(2).String())
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 9),
			text.New(taxLabel, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 10, Color: colorPrimary}),
		),
		col.New(3).Add(
			text.New(money.format(doc.Subtotal), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(money.format(doc.Tax), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			text.New(money.format(doc.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 10, Color: colorPrimary}),
		),
	)
}

func commentsRow(comments string) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("OBSERVACIONES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		text.New(comments, props.Text{Size: 8, Top: 7, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func descSize(fam entity.FamilyConfig) int {
	if fam.Days == entity.DaysForbidden {
		return 5
	}
	return 4
}

func companyLine(c appconfig.CompanyConfig) string {
	return fmt.Sprintf("RUC: %s   |   %s   |   Tel: %s",
		nonEmpty(c.RUC, "—"), nonEmpty(c.Address, "—"), nonEmpty(c.Phone, "—"))
}

func appendIf(pairs [][2]string, label, value string) [][2]string {
	if value == "" {
		return pairs
	}
	return append(pairs, [2]string{label, value})
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
