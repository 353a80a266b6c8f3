package documents

import (
	"context"
	"fmt"
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

// Options parámetros del caso de uso que vienen de configuración.
type Options struct {
	NumberWindow    int             // documentos recientes que mira el generador de números
	DefaultCurrency entity.Currency // moneda si el request no la envía
	Clock           func() time.Time
}

// DocumentUseCase motor de documentos de una familia: alta, edición, baja lógica, lectura,
// listado y siguiente número. Las tres familias comparten este código y solo cambia FamilyConfig.
type DocumentUseCase struct {
	cfg     entity.FamilyConfig
	tx      TxRunner
	docs    repository.DocumentRepository
	parties repository.PartyDirectory
	opts    Options
	log     zerolog.Logger
}

// NewDocumentUseCase construye el caso de uso para la familia indicada.
func NewDocumentUseCase(
	family entity.Family,
	tx TxRunner,
	docs repository.DocumentRepository,
	parties repository.PartyDirectory,
	opts Options,
	log zerolog.Logger,
) *DocumentUseCase {
	if opts.NumberWindow <= 0 {
		opts.NumberWindow = document.DefaultNumberWindow
	}
	if !opts.DefaultCurrency.IsValid() {
		opts.DefaultCurrency = entity.CurrencyPEN
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	cfg := entity.MustConfig(family)
	return &DocumentUseCase{
		cfg:     cfg,
		tx:      tx,
		docs:    docs,
		parties: parties,
		opts:    opts,
		log:     log.With().Str("family", string(family)).Logger(),
	}
}

// Config configuración de la familia que atiende el caso de uso.
func (uc *DocumentUseCase) Config() entity.FamilyConfig { return uc.cfg }

// Create valida la cabecera y las líneas, recalcula totales y persiste todo en una transacción.
// Si el número va vacío se asigna el siguiente correlativo dentro de la misma transacción.
func (uc *DocumentUseCase) Create(ctx context.Context, userID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	verr := &domain.ValidationError{}
	change := parseHeader(uc.cfg, rawFromCreate(in), verr)

	doc := &entity.Document{
		Family:   uc.cfg.Family,
		Currency: uc.opts.DefaultCurrency,
		Status:   uc.cfg.DefaultStatus,
	}
	change.applyTo(doc)
	validateRequired(uc.cfg, doc, verr)

	items := itemsFromRequest(in.Items)
	document.NormalizeItems(items)
	document.ValidateItems(uc.cfg, items, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	totals, err := document.Recompute(uc.cfg, items)
	if err != nil {
		return nil, err
	}
	totals.Apply(doc)

	now := uc.opts.Clock()
	doc.ID = uuid.New().String()
	doc.CreatedBy, doc.UpdatedBy = userID, userID
	doc.CreatedAt, doc.UpdatedAt = now, now
	stampItems(doc.ID, items, now)

	err = uc.tx.RunDocuments(ctx, func(docs repository.DocumentRepository) error {
		// 1) Número: el enviado o el siguiente de la ventana reciente
		if doc.Number == "" {
			recent, err := docs.RecentNumbers(ctx, uc.cfg.Family, uc.opts.NumberWindow)
			if err != nil {
				return fmt.Errorf("números recientes: %w", err)
			}
			doc.Number = document.NextNumber(uc.cfg, recent, now.Year())
		}
		if err := uc.ensureNumberFree(ctx, docs, doc.Number, ""); err != nil {
			return err
		}
		// 2) Cabecera con totales y 3) líneas, en la misma transacción
		if err := docs.Create(ctx, doc); err != nil {
			return err
		}
		return docs.CreateItems(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	doc.Items = items
	uc.resolveRefs(ctx, doc)
	uc.log.Info().
		Str("id", doc.ID).
		Str("number", doc.Number).
		Str("user_id", userID).
		Str("total", doc.Total.StringFixed(2)).
		Msg("documento creado")
	return ToDocumentResponse(doc), nil
}

// Update aplica los campos enviados. Si trae ítems, retira las líneas activas, inserta las nuevas
// y recalcula totales; sin ítems, líneas y totales quedan exactamente como estaban.
func (uc *DocumentUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	verr := &domain.ValidationError{}
	change := parseHeader(uc.cfg, rawFromUpdate(in), verr)

	var items []*entity.DocumentItem
	if in.Items != nil {
		items = itemsFromRequest(*in.Items)
		document.NormalizeItems(items)
		document.ValidateItems(uc.cfg, items, verr)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var totals document.Totals
	if in.Items != nil {
		var err error
		if totals, err = document.Recompute(uc.cfg, items); err != nil {
			return nil, err
		}
	}

	now := uc.opts.Clock()
	var updated *entity.Document
	err := uc.tx.RunDocuments(ctx, func(docs repository.DocumentRepository) error {
		current, err := docs.GetForUpdate(ctx, uc.cfg.Family, id)
		if err != nil {
			return err
		}
		if current == nil {
			return uc.notFound(id)
		}

		previousNumber := current.Number
		change.applyTo(current)
		if current.Number != previousNumber {
			if err := uc.ensureNumberFree(ctx, docs, current.Number, current.ID); err != nil {
				return err
			}
		}

		if in.Items != nil {
			retired, err := docs.SoftDeleteItems(ctx, current.ID, now)
			if err != nil {
				return err
			}
			stampItems(current.ID, items, now)
			if err := docs.CreateItems(ctx, items); err != nil {
				return err
			}
			totals.Apply(current)
			current.Items = items
			uc.log.Debug().Str("id", current.ID).Int64("retired_items", retired).Int("new_items", len(items)).Msg("líneas reemplazadas")
		} else {
			active, err := docs.ListActiveItems(ctx, current.ID)
			if err != nil {
				return err
			}
			current.Items = active
		}

		current.UpdatedBy = userID
		current.UpdatedAt = now
		if err := docs.UpdateHeader(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.resolveRefs(ctx, updated)
	uc.log.Info().
		Str("id", updated.ID).
		Str("number", updated.Number).
		Str("user_id", userID).
		Bool("items_replaced", in.Items != nil).
		Msg("documento actualizado")
	return ToDocumentResponse(updated), nil
}

// SoftDelete marca el documento y sus líneas activas como eliminados con la misma marca de tiempo.
func (uc *DocumentUseCase) SoftDelete(ctx context.Context, userID, id string) error {
	now := uc.opts.Clock()
	err := uc.tx.RunDocuments(ctx, func(docs repository.DocumentRepository) error {
		ok, err := docs.SoftDelete(ctx, uc.cfg.Family, id, userID, now)
		if err != nil {
			return err
		}
		if !ok {
			return uc.notFound(id)
		}
		_, err = docs.SoftDeleteItems(ctx, id, now)
		return err
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Str("user_id", userID).Msg("documento eliminado")
	return nil
}

// GetByID devuelve el documento activo con sus líneas activas y referencias resueltas.
func (uc *DocumentUseCase) GetByID(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDocumentResponse(doc), nil
}

// load lectura completa usada por GetByID y por la exportación PDF.
func (uc *DocumentUseCase) load(ctx context.Context, id string) (*entity.Document, error) {
	doc, err := uc.docs.GetByID(ctx, uc.cfg.Family, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, uc.notFound(id)
	}
	items, err := uc.docs.ListActiveItems(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	uc.resolveRefs(ctx, doc)
	return doc, nil
}

// List lista documentos activos, más recientes primero, con búsqueda y filtros opcionales.
func (uc *DocumentUseCase) List(ctx context.Context, q dto.DocumentListQuery) (*dto.DocumentListResponse, error) {
	q.PageRequest.Normalize()
	filter := repository.DocumentFilter{
		Search:  strings.TrimSpace(q.Search),
		PartyID: strings.TrimSpace(q.PartyID),
		Limit:   q.Limit,
		Offset:  q.Offset(),
	}
	if s := strings.TrimSpace(q.Status); s != "" {
		if !uc.cfg.AllowsStatus(entity.Status(s)) {
			return nil, domain.NewValidationError("status", "estado no válido para "+uc.cfg.Label)
		}
		filter.Status = entity.Status(s)
	}

	list, total, err := uc.docs.List(ctx, uc.cfg.Family, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DocumentResponse, 0, len(list))
	parties := map[string]*entity.Party{}
	for _, doc := range list {
		if p, seen := parties[doc.PartyID]; seen {
			doc.Party = p
		} else {
			doc.Party = uc.party(ctx, doc.PartyID)
			parties[doc.PartyID] = doc.Party
		}
		out = append(out, *ToDocumentResponse(doc))
	}
	return &dto.DocumentListResponse{Items: out, Page: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// NextNumber sugiere el siguiente número para el año en curso. Es solo una sugerencia:
// la unicidad se garantiza al guardar.
func (uc *DocumentUseCase) NextNumber(ctx context.Context) (*dto.NextNumberResponse, error) {
	recent, err := uc.docs.RecentNumbers(ctx, uc.cfg.Family, uc.opts.NumberWindow)
	if err != nil {
		return nil, fmt.Errorf("números recientes: %w", err)
	}
	return &dto.NextNumberResponse{Number: document.NextNumber(uc.cfg, recent, uc.opts.Clock().Year())}, nil
}

func (uc *DocumentUseCase) ensureNumberFree(ctx context.Context, docs repository.DocumentRepository, number, excludeID string) error {
	exists, err := docs.ExistsActiveNumber(ctx, uc.cfg.Family, number, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return &domain.ConflictError{Resource: uc.cfg.Label, Field: "number", Value: number}
	}
	return nil
}

func (uc *DocumentUseCase) notFound(id string) error {
	return &domain.NotFoundError{Resource: uc.cfg.Label, ID: id}
}

// resolveRefs completa contraparte y gestor. Si el directorio falla el documento se devuelve igual.
func (uc *DocumentUseCase) resolveRefs(ctx context.Context, doc *entity.Document) {
	doc.Party = uc.party(ctx, doc.PartyID)
	if doc.GestorID == "" || uc.parties == nil {
		return
	}
	person, err := uc.parties.GetPerson(ctx, doc.GestorID)
	if err != nil {
		uc.log.Warn().Err(err).Str("gestor_id", doc.GestorID).Msg("no se pudo resolver el gestor")
		return
	}
	doc.Gestor = person
}

func (uc *DocumentUseCase) party(ctx context.Context, id string) *entity.Party {
	if id == "" || uc.parties == nil {
		return nil
	}
	p, err := uc.parties.GetParty(ctx, uc.cfg.PartyKind, id)
	if err != nil {
		uc.log.Warn().Err(err).Str("party_id", id).Msg("no se pudo resolver la contraparte")
		return nil
	}
	return p
}

func itemsFromRequest(in []dto.DocumentItemRequest) []*entity.DocumentItem {
	items := make([]*entity.DocumentItem, 0, len(in))
	for _, r := range in {
		var days *int
		if r.Days != nil {
			d := *r.Days
			days = &d
		}
		items = append(items, &entity.DocumentItem{
			Code:        r.Code,
			Name:        r.Name,
			Description: r.Description,
			Quantity:    r.Quantity,
			Days:        days,
			UnitPrice:   r.UnitPrice,
		})
	}
	return items
}

// stampItems asigna identidad nueva a cada línea; los IDs enviados por el cliente no se reutilizan.
func stampItems(documentID string, items []*entity.DocumentItem, now time.Time) {
	for _, it := range items {
		it.ID = uuid.New().String()
		it.DocumentID = documentID
		it.CreatedAt = now
		it.DeletedAt = nil
	}
}
