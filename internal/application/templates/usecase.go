package templates

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/document"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

// TemplateUseCase catálogo de plantillas de ítems de una familia.
// Las plantillas solo pre-llenan líneas; nunca participan en los totales.
type TemplateUseCase struct {
	cfg   entity.FamilyConfig
	repo  repository.TemplateRepository
	log   zerolog.Logger
	clock func() time.Time
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(family entity.Family, repo repository.TemplateRepository, log zerolog.Logger) *TemplateUseCase {
	return &TemplateUseCase{
		cfg:   entity.MustConfig(family),
		repo:  repo,
		log:   log.With().Str("family", string(family)).Str("resource", "template").Logger(),
		clock: time.Now,
	}
}

// Config configuración de la familia atendida.
func (uc *TemplateUseCase) Config() entity.FamilyConfig { return uc.cfg }

// Create registra una plantilla. El código debe ser único entre las activas de la familia.
func (uc *TemplateUseCase) Create(ctx context.Context, userID string, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl := &entity.ItemTemplate{
		Family:      uc.cfg.Family,
		Code:        strings.TrimSpace(in.Code),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Days:        in.Days,
	}
	if tpl.Quantity == 0 {
		tpl.Quantity = 1
	}
	if err := uc.validate(tpl); err != nil {
		return nil, err
	}
	if err := uc.ensureCodeFree(ctx, tpl.Code, ""); err != nil {
		return nil, err
	}

	now := uc.clock()
	tpl.ID = uuid.New().String()
	tpl.CreatedBy, tpl.UpdatedBy = userID, userID
	tpl.CreatedAt, tpl.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", tpl.ID).Str("code", tpl.Code).Str("user_id", userID).Msg("plantilla creada")
	return toTemplateResponse(tpl), nil
}

// Update aplica los campos enviados; si cambia el código vuelve a comprobar la unicidad.
func (uc *TemplateUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl, err := uc.repo.GetByID(ctx, uc.cfg.Family, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, uc.notFound(id)
	}

	previousCode := tpl.Code
	if in.Code != nil {
		tpl.Code = strings.TrimSpace(*in.Code)
	}
	if in.Name != nil {
		tpl.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		tpl.Description = strings.TrimSpace(*in.Description)
	}
	if in.Quantity != nil {
		tpl.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		tpl.UnitPrice = *in.UnitPrice
	}
	if in.Days != nil {
		tpl.Days = in.Days
	}
	if err := uc.validate(tpl); err != nil {
		return nil, err
	}
	if tpl.Code != previousCode {
		if err := uc.ensureCodeFree(ctx, tpl.Code, tpl.ID); err != nil {
			return nil, err
		}
	}

	tpl.UpdatedBy = userID
	tpl.UpdatedAt = uc.clock()
	if err := uc.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", tpl.ID).Str("code", tpl.Code).Str("user_id", userID).Msg("plantilla actualizada")
	return toTemplateResponse(tpl), nil
}

// SoftDelete retira la plantilla; su código queda libre para una nueva.
func (uc *TemplateUseCase) SoftDelete(ctx context.Context, userID, id string) error {
	ok, err := uc.repo.SoftDelete(ctx, uc.cfg.Family, id, userID, uc.clock())
	if err != nil {
		return err
	}
	if !ok {
		return uc.notFound(id)
	}
	uc.log.Info().Str("id", id).Str("user_id", userID).Msg("plantilla eliminada")
	return nil
}

// GetByID devuelve la plantilla activa.
func (uc *TemplateUseCase) GetByID(ctx context.Context, id string) (*dto.TemplateResponse, error) {
	tpl, err := uc.repo.GetByID(ctx, uc.cfg.Family, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, uc.notFound(id)
	}
	return toTemplateResponse(tpl), nil
}

// List lista plantillas activas ordenadas por código.
func (uc *TemplateUseCase) List(ctx context.Context, q dto.TemplateListQuery) (*dto.TemplateListResponse, error) {
	q.PageRequest.Normalize()
	list, total, err := uc.repo.List(ctx, uc.cfg.Family, repository.TemplateFilter{
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: q.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return &dto.TemplateListResponse{Items: items, Page: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// Materialize copia los campos de la plantilla a una línea lista para enviar en un documento.
// La copia no guarda referencia a la plantilla: editarla después no afecta documentos existentes.
func (uc *TemplateUseCase) Materialize(ctx context.Context, id string) (*dto.DocumentItemRequest, error) {
	tpl, err := uc.repo.GetByID(ctx, uc.cfg.Family, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, uc.notFound(id)
	}
	item := &dto.DocumentItemRequest{
		Code:        tpl.Code,
		Name:        tpl.Name,
		Description: tpl.Description,
		Quantity:    tpl.Quantity,
		UnitPrice:   tpl.UnitPrice,
	}
	// Las líneas exigen descripción; la plantilla puede no tenerla.
	if item.Description == "" {
		item.Description = tpl.Name
	}
	if tpl.Days != nil && uc.cfg.Days != entity.DaysForbidden {
		d := *tpl.Days
		item.Days = &d
	}
	return item, nil
}

func (uc *TemplateUseCase) validate(tpl *entity.ItemTemplate) error {
	verr := &domain.ValidationError{}
	if tpl.Code == "" {
		verr.Add("code", "es obligatorio")
	}
	if tpl.Name == "" {
		verr.Add("name", "es obligatorio")
	}
	if tpl.Quantity < 1 {
		verr.Add("quantity", "debe ser un entero mayor o igual a 1")
	}
	document.ValidatePrice(tpl.UnitPrice, "unit_price", verr)
	// En plantillas los días nunca son obligatorios: se completan al armar el documento.
	if uc.cfg.Days == entity.DaysForbidden || tpl.Days != nil {
		document.ValidateDays(uc.cfg, tpl.Days, "days", verr)
	}
	return verr.OrNil()
}

func (uc *TemplateUseCase) ensureCodeFree(ctx context.Context, code, excludeID string) error {
	existing, err := uc.repo.GetActiveByCode(ctx, uc.cfg.Family, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return &domain.ConflictError{Resource: "plantilla", Field: "code", Value: code}
	}
	return nil
}

func (uc *TemplateUseCase) notFound(id string) error {
	return &domain.NotFoundError{Resource: "plantilla", ID: id}
}

func toTemplateResponse(t *entity.ItemTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:          t.ID,
		Family:      string(t.Family),
		Code:        t.Code,
		Name:        t.Name,
		Description: t.Description,
		Quantity:    t.Quantity,
		UnitPrice:   t.UnitPrice,
		Days:        t.Days,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
