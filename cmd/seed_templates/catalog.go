package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// catalogRow plantilla leída del catálogo con la familia a la que pertenece.
type catalogRow struct {
	Line    int
	Family  entity.Family
	Request dto.CreateTemplateRequest
}

// familyAliases nombres aceptados en la columna familia.
var familyAliases = map[string]entity.Family{
	"quotation":       entity.FamilyQuotation,
	"quotations":      entity.FamilyQuotation,
	"cotizacion":      entity.FamilyQuotation,
	"service_order":   entity.FamilyServiceOrder,
	"service-orders":  entity.FamilyServiceOrder,
	"os":              entity.FamilyServiceOrder,
	"purchase_order":  entity.FamilyPurchaseOrder,
	"purchase-orders": entity.FamilyPurchaseOrder,
	"oc":              entity.FamilyPurchaseOrder,
}

var catalogHeader = []string{"familia", "codigo", "nombre", "descripcion", "cantidad", "precio_unitario", "dias"}

// parseCatalog lee el CSV separado por ';' exportado desde la hoja de cálculo.
// latin1 decodifica archivos guardados en ISO-8859-1.
func parseCatalog(r io.Reader, latin1 bool) ([]catalogRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = len(catalogHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	for i, col := range catalogHeader {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")), col) {
			return nil, fmt.Errorf("cabecera: columna %d debe ser %q", i+1, col)
		}
	}

	var rows []catalogRow
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row, err := parseRecord(line, rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(line int, rec []string) (catalogRow, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	family, ok := familyAliases[strings.ToLower(rec[0])]
	if !ok {
		return catalogRow{}, fmt.Errorf("línea %d: familia %q desconocida", line, rec[0])
	}
	req := dto.CreateTemplateRequest{Code: rec[1], Name: rec[2], Description: rec[3]}
	if rec[4] != "" {
		qty, err := strconv.Atoi(rec[4])
		if err != nil {
			return catalogRow{}, fmt.Errorf("línea %d: cantidad %q: %w", line, rec[4], err)
		}
		req.Quantity = qty
	}
	// Excel en es-PE puede exportar la coma como separador decimal
	price, err := decimal.NewFromString(strings.ReplaceAll(rec[5], ",", "."))
	if err != nil {
		return catalogRow{}, fmt.Errorf("línea %d: precio %q: %w", line, rec[5], err)
	}
	req.UnitPrice = price
	if rec[6] != "" {
		days, err := strconv.Atoi(rec[6])
		if err != nil {
			return catalogRow{}, fmt.Errorf("línea %d: días %q: %w", line, rec[6], err)
		}
		req.Days = &days
	}
	return catalogRow{Line: line, Family: family, Request: req}, nil
}
