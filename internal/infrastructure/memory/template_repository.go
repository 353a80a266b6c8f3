package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

// TemplateRepo implementación en memoria de repository.TemplateRepository.
type TemplateRepo struct {
	s *Store
}

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// codeTaken emula el índice único parcial (family, code) WHERE deleted_at IS NULL.
func (r *TemplateRepo) codeTaken(family entity.Family, code, excludeID string) bool {
	for _, t := range r.s.templates {
		if t.Family == family && t.Code == code && t.DeletedAt == nil && t.ID != excludeID {
			return true
		}
	}
	return false
}

// Create inserta la plantilla.
func (r *TemplateRepo) Create(_ context.Context, tpl *entity.ItemTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(tpl.Family, tpl.Code, "") {
		return &domain.ConflictError{Resource: "plantilla", Field: "code", Value: tpl.Code}
	}
	r.s.templates[tpl.ID] = copyTemplate(tpl)
	return nil
}

// Update sobrescribe la plantilla activa.
func (r *TemplateRepo) Update(_ context.Context, tpl *entity.ItemTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.templates[tpl.ID]
	if !ok || current.DeletedAt != nil {
		return &domain.NotFoundError{Resource: "plantilla", ID: tpl.ID}
	}
	if r.codeTaken(tpl.Family, tpl.Code, tpl.ID) {
		return &domain.ConflictError{Resource: "plantilla", Field: "code", Value: tpl.Code}
	}
	r.s.templates[tpl.ID] = copyTemplate(tpl)
	return nil
}

// GetByID plantilla activa o (nil, nil).
func (r *TemplateRepo) GetByID(_ context.Context, family entity.Family, id string) (*entity.ItemTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if t, ok := r.s.templates[id]; ok && t.Family == family && t.DeletedAt == nil {
		return copyTemplate(t), nil
	}
	return nil, nil
}

// GetActiveByCode plantilla activa con ese código o (nil, nil).
func (r *TemplateRepo) GetActiveByCode(_ context.Context, family entity.Family, code string) (*entity.ItemTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.templates {
		if t.Family == family && t.Code == code && t.DeletedAt == nil {
			return copyTemplate(t), nil
		}
	}
	return nil, nil
}

// SoftDelete marca la plantilla activa.
func (r *TemplateRepo) SoftDelete(_ context.Context, family entity.Family, id, userID string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.templates[id]
	if !ok || t.Family != family || t.DeletedAt != nil {
		return false, nil
	}
	deleted := at
	t.DeletedAt = &deleted
	t.UpdatedAt = at
	t.UpdatedBy = userID
	return true, nil
}

// List plantillas activas ordenadas por código.
func (r *TemplateRepo) List(_ context.Context, family entity.Family, f repository.TemplateFilter) ([]*entity.ItemTemplate, int, error) {
	r.s.mu.RLock()
	var all []*entity.ItemTemplate
	for _, t := range r.s.templates {
		if t.Family == family && t.DeletedAt == nil && matches(f.Search, t.Code, t.Name, t.Description) {
			all = append(all, copyTemplate(t))
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return page(all, f.Limit, f.Offset), len(all), nil
}

func copyTemplate(t *entity.ItemTemplate) *entity.ItemTemplate {
	c := *t
	c.Days = copyInt(t.Days)
	c.DeletedAt = copyTime(t.DeletedAt)
	return &c
}
