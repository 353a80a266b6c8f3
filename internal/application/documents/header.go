package documents

import (
	"strings"
	"time"

	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// field valor opcional de un cambio de cabecera: set=false deja el campo como está.
type field[T any] struct {
	set bool
	val T
}

func (f field[T]) applyTo(dst *T) {
	if f.set {
		*dst = f.val
	}
}

// rawHeader forma común de los campos de cabecera en create y update (nil = no enviado).
type rawHeader struct {
	Number, PartyID, GestorID, Date, Currency, Status *string
	Description, Comments                             *string
	ValidityDays                                      *int
	ReturnDate, MonitoringLocation, MonitoringType    *string
	PaymentTerms, DeliveryDate                        *string
}

// headerChange cabecera ya validada y tipada, lista para aplicarse sobre un documento.
type headerChange struct {
	number             field[string]
	partyID            field[string]
	gestorID           field[string]
	date               field[time.Time]
	currency           field[entity.Currency]
	status             field[entity.Status]
	description        field[string]
	comments           field[string]
	validityDays       field[*int]
	returnDate         field[*time.Time]
	monitoringLocation field[string]
	monitoringType     field[string]
	paymentTerms       field[string]
	deliveryDate       field[*time.Time]
}

func (h headerChange) applyTo(doc *entity.Document) {
	h.number.applyTo(&doc.Number)
	h.partyID.applyTo(&doc.PartyID)
	h.gestorID.applyTo(&doc.GestorID)
	h.date.applyTo(&doc.Date)
	h.currency.applyTo(&doc.Currency)
	h.status.applyTo(&doc.Status)
	h.description.applyTo(&doc.Description)
	h.comments.applyTo(&doc.Comments)
	h.validityDays.applyTo(&doc.ValidityDays)
	h.returnDate.applyTo(&doc.ReturnDate)
	h.monitoringLocation.applyTo(&doc.MonitoringLocation)
	h.monitoringType.applyTo(&doc.MonitoringType)
	h.paymentTerms.applyTo(&doc.PaymentTerms)
	h.deliveryDate.applyTo(&doc.DeliveryDate)
}

func rawFromCreate(in dto.CreateDocumentRequest) rawHeader {
	return rawHeader{
		Number:             optional(in.Number),
		PartyID:            &in.PartyID,
		GestorID:           optional(in.GestorID),
		Date:               &in.Date,
		Currency:           optional(in.Currency),
		Status:             optional(in.Status),
		Description:        optional(in.Description),
		Comments:           optional(in.Comments),
		ValidityDays:       in.ValidityDays,
		ReturnDate:         optional(in.ReturnDate),
		MonitoringLocation: optional(in.MonitoringLocation),
		MonitoringType:     optional(in.MonitoringType),
		PaymentTerms:       optional(in.PaymentTerms),
		DeliveryDate:       optional(in.DeliveryDate),
	}
}

func rawFromUpdate(in dto.UpdateDocumentRequest) rawHeader {
	return rawHeader{
		Number:             in.Number,
		PartyID:            in.PartyID,
		GestorID:           in.GestorID,
		Date:               in.Date,
		Currency:           in.Currency,
		Status:             in.Status,
		Description:        in.Description,
		Comments:           in.Comments,
		ValidityDays:       in.ValidityDays,
		ReturnDate:         in.ReturnDate,
		MonitoringLocation: in.MonitoringLocation,
		MonitoringType:     in.MonitoringType,
		PaymentTerms:       in.PaymentTerms,
		DeliveryDate:       in.DeliveryDate,
	}
}

// parseHeader valida la forma de cada campo enviado contra la configuración de la familia.
// Los campos de otra familia se rechazan; los obligatorios enviados vacíos también.
func parseHeader(cfg entity.FamilyConfig, raw rawHeader, verr *domain.ValidationError) headerChange {
	var h headerChange

	h.number = requiredText(raw.Number, "number", verr)
	h.partyID = requiredText(raw.PartyID, "party_id", verr)
	h.description = text(raw.Description)
	h.comments = text(raw.Comments)

	if raw.Date != nil {
		if d, ok := parseDate(*raw.Date, "date", verr); ok && d != nil {
			h.date = field[time.Time]{set: true, val: *d}
		} else if ok {
			verr.Add("date", "es obligatorio")
		}
	}
	if raw.Currency != nil {
		c := entity.Currency(strings.ToUpper(strings.TrimSpace(*raw.Currency)))
		if c.IsValid() {
			h.currency = field[entity.Currency]{set: true, val: c}
		} else {
			verr.Add("currency", "moneda no soportada (PEN, USD)")
		}
	}
	if raw.Status != nil {
		s := entity.Status(strings.TrimSpace(*raw.Status))
		if cfg.AllowsStatus(s) {
			h.status = field[entity.Status]{set: true, val: s}
		} else {
			verr.Add("status", "estado no válido para "+cfg.Label)
		}
	}

	if raw.GestorID != nil && allowed(cfg, entity.FieldGestor, verr) {
		if cfg.Requires(entity.FieldGestor) {
			h.gestorID = requiredText(raw.GestorID, string(entity.FieldGestor), verr)
		} else {
			h.gestorID = text(raw.GestorID)
		}
	}
	if raw.ValidityDays != nil && allowed(cfg, entity.FieldValidityDays, verr) {
		if *raw.ValidityDays < 1 {
			verr.Add(string(entity.FieldValidityDays), "debe ser un entero mayor o igual a 1")
		} else {
			v := *raw.ValidityDays
			h.validityDays = field[*int]{set: true, val: &v}
		}
	}
	if raw.ReturnDate != nil && allowed(cfg, entity.FieldReturnDate, verr) {
		if d, ok := parseDate(*raw.ReturnDate, string(entity.FieldReturnDate), verr); ok {
			h.returnDate = field[*time.Time]{set: true, val: d}
		}
	}
	if raw.MonitoringLocation != nil && allowed(cfg, entity.FieldMonitoringLocation, verr) {
		h.monitoringLocation = text(raw.MonitoringLocation)
	}
	if raw.MonitoringType != nil && allowed(cfg, entity.FieldMonitoringType, verr) {
		h.monitoringType = text(raw.MonitoringType)
	}
	if raw.PaymentTerms != nil && allowed(cfg, entity.FieldPaymentTerms, verr) {
		h.paymentTerms = text(raw.PaymentTerms)
	}
	if raw.DeliveryDate != nil && allowed(cfg, entity.FieldDeliveryDate, verr) {
		if d, ok := parseDate(*raw.DeliveryDate, string(entity.FieldDeliveryDate), verr); ok {
			h.deliveryDate = field[*time.Time]{set: true, val: d}
		}
	}
	return h
}

// validateRequired comprueba los obligatorios de la familia sobre el documento ya armado (create).
func validateRequired(cfg entity.FamilyConfig, doc *entity.Document, verr *domain.ValidationError) {
	if doc.PartyID == "" && !verr.Has("party_id") {
		verr.Add("party_id", "es obligatorio")
	}
	if doc.Date.IsZero() && !verr.Has("date") {
		verr.Add("date", "es obligatorio")
	}
	if cfg.Requires(entity.FieldGestor) && doc.GestorID == "" && !verr.Has(string(entity.FieldGestor)) {
		verr.Add(string(entity.FieldGestor), "es obligatorio para "+cfg.Label)
	}
}

func allowed(cfg entity.FamilyConfig, f entity.HeaderField, verr *domain.ValidationError) bool {
	if cfg.HasField(f) {
		return true
	}
	verr.Add(string(f), "no aplica para "+cfg.Label)
	return false
}

func requiredText(p *string, name string, verr *domain.ValidationError) field[string] {
	if p == nil {
		return field[string]{}
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		verr.Add(name, "no puede estar vacío")
		return field[string]{}
	}
	return field[string]{set: true, val: v}
}

func text(p *string) field[string] {
	if p == nil {
		return field[string]{}
	}
	return field[string]{set: true, val: strings.TrimSpace(*p)}
}

// parseDate interpreta YYYY-MM-DD. Cadena vacía es válida y significa "sin fecha" (nil).
func parseDate(s, name string, verr *domain.ValidationError) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	d, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		verr.Add(name, "formato de fecha inválido (YYYY-MM-DD)")
		return nil, false
	}
	return &d, true
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
