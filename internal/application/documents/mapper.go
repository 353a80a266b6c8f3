package documents

import (
	"time"

	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// ToDocumentResponse arma la respuesta con cabecera, referencias resueltas y líneas activas.
func ToDocumentResponse(doc *entity.Document) *dto.DocumentResponse {
	out := &dto.DocumentResponse{
		ID:                 doc.ID,
		Family:             string(doc.Family),
		Number:             doc.Number,
		PartyID:            doc.PartyID,
		GestorID:           doc.GestorID,
		Date:               doc.Date.Format(dto.DateLayout),
		Currency:           string(doc.Currency),
		Status:             string(doc.Status),
		Description:        doc.Description,
		Comments:           doc.Comments,
		ValidityDays:       doc.ValidityDays,
		ReturnDate:         formatDate(doc.ReturnDate),
		MonitoringLocation: doc.MonitoringLocation,
		MonitoringType:     doc.MonitoringType,
		PaymentTerms:       doc.PaymentTerms,
		DeliveryDate:       formatDate(doc.DeliveryDate),
		Subtotal:           doc.Subtotal,
		Tax:                doc.Tax,
		Total:              doc.Total,
		CreatedBy:          doc.CreatedBy,
		UpdatedBy:          doc.UpdatedBy,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}
	if doc.Party != nil {
		out.Party = &dto.PartyRefResponse{
			ID:    doc.Party.ID,
			Kind:  string(doc.Party.Kind),
			Name:  doc.Party.Name,
			TaxID: doc.Party.TaxID,
			Email: doc.Party.Email,
			Phone: doc.Party.Phone,
		}
	}
	if doc.Gestor != nil {
		out.Gestor = &dto.PersonRefResponse{ID: doc.Gestor.ID, Name: doc.Gestor.Name, Email: doc.Gestor.Email}
	}
	if len(doc.Items) > 0 {
		out.Items = make([]dto.DocumentItemResponse, 0, len(doc.Items))
		for _, it := range doc.Items {
			out.Items = append(out.Items, dto.DocumentItemResponse{
				ID:          it.ID,
				Code:        it.Code,
				Name:        it.Name,
				Description: it.Description,
				Quantity:    it.Quantity,
				Days:        it.Days,
				UnitPrice:   it.UnitPrice,
				LineTotal:   it.LineTotal,
				Position:    it.Position,
			})
		}
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.DateLayout)
}
