package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

// docState tablas de documentos y líneas.
type docState struct {
	docs  map[string]*entity.Document
	items map[string][]*entity.DocumentItem // por documento, append-only
	order []string                          // ids en orden de inserción
}

func newDocState() *docState {
	return &docState{docs: map[string]*entity.Document{}, items: map[string][]*entity.DocumentItem{}}
}

func (st *docState) clone() *docState {
	c := &docState{
		docs:  make(map[string]*entity.Document, len(st.docs)),
		items: make(map[string][]*entity.DocumentItem, len(st.items)),
		order: append([]string(nil), st.order...),
	}
	for id, d := range st.docs {
		c.docs[id] = copyDocument(d)
	}
	for id, list := range st.items {
		cp := make([]*entity.DocumentItem, 0, len(list))
		for _, it := range list {
			cp = append(cp, copyItem(it))
		}
		c.items[id] = cp
	}
	return c
}

// activeNumberTaken emula el índice único parcial (family, number) WHERE deleted_at IS NULL.
func (st *docState) activeNumberTaken(family entity.Family, number, excludeID string) bool {
	for _, d := range st.docs {
		if d.Family == family && d.Number == number && d.DeletedAt == nil && d.ID != excludeID {
			return true
		}
	}
	return false
}

// DocumentRepo implementación en memoria de repository.DocumentRepository.
type DocumentRepo struct {
	s  *Store
	tx *docState // nil fuera de transacción
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

func (r *DocumentRepo) read(fn func(st *docState)) {
	if r.tx != nil {
		fn(r.tx)
		return
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	fn(r.s.docs)
}

func (r *DocumentRepo) write(fn func(st *docState) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(r.s.docs)
}

// Create inserta la cabecera.
func (r *DocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	return r.write(func(st *docState) error {
		if st.activeNumberTaken(doc.Family, doc.Number, "") {
			return &domain.ConflictError{Resource: "documento", Field: "number", Value: doc.Number}
		}
		st.docs[doc.ID] = copyDocument(doc)
		st.order = append(st.order, doc.ID)
		return nil
	})
}

// CreateItems inserta líneas nuevas.
func (r *DocumentRepo) CreateItems(_ context.Context, items []*entity.DocumentItem) error {
	return r.write(func(st *docState) error {
		for _, it := range items {
			st.items[it.DocumentID] = append(st.items[it.DocumentID], copyItem(it))
		}
		return nil
	})
}

// UpdateHeader sobrescribe cabecera y totales del documento activo.
func (r *DocumentRepo) UpdateHeader(_ context.Context, doc *entity.Document) error {
	return r.write(func(st *docState) error {
		current, ok := st.docs[doc.ID]
		if !ok || current.DeletedAt != nil {
			return &domain.NotFoundError{Resource: "documento", ID: doc.ID}
		}
		if st.activeNumberTaken(doc.Family, doc.Number, doc.ID) {
			return &domain.ConflictError{Resource: "documento", Field: "number", Value: doc.Number}
		}
		updated := copyDocument(doc)
		updated.CreatedAt, updated.CreatedBy = current.CreatedAt, current.CreatedBy
		st.docs[doc.ID] = updated
		return nil
	})
}

// GetByID documento activo o (nil, nil).
func (r *DocumentRepo) GetByID(_ context.Context, family entity.Family, id string) (*entity.Document, error) {
	var out *entity.Document
	r.read(func(st *docState) {
		if d, ok := st.docs[id]; ok && d.Family == family && d.DeletedAt == nil {
			out = copyDocument(d)
		}
	})
	return out, nil
}

// GetForUpdate las transacciones en memoria ya son serializadas.
func (r *DocumentRepo) GetForUpdate(ctx context.Context, family entity.Family, id string) (*entity.Document, error) {
	return r.GetByID(ctx, family, id)
}

// ListActiveItems líneas vigentes por posición.
func (r *DocumentRepo) ListActiveItems(_ context.Context, documentID string) ([]*entity.DocumentItem, error) {
	var out []*entity.DocumentItem
	r.read(func(st *docState) {
		for _, it := range st.items[documentID] {
			if it.DeletedAt == nil {
				out = append(out, copyItem(it))
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// SoftDeleteItems retira las líneas activas del documento.
func (r *DocumentRepo) SoftDeleteItems(_ context.Context, documentID string, at time.Time) (int64, error) {
	var n int64
	err := r.write(func(st *docState) error {
		for _, it := range st.items[documentID] {
			if it.DeletedAt == nil {
				t := at
				it.DeletedAt = &t
				n++
			}
		}
		return nil
	})
	return n, err
}

// SoftDelete marca la cabecera activa.
func (r *DocumentRepo) SoftDelete(_ context.Context, family entity.Family, id, userID string, at time.Time) (bool, error) {
	var ok bool
	err := r.write(func(st *docState) error {
		d, found := st.docs[id]
		if !found || d.Family != family || d.DeletedAt != nil {
			return nil
		}
		t := at
		d.DeletedAt = &t
		d.UpdatedAt = at
		d.UpdatedBy = userID
		ok = true
		return nil
	})
	return ok, err
}

// ExistsActiveNumber consulta el índice único parcial emulado.
func (r *DocumentRepo) ExistsActiveNumber(_ context.Context, family entity.Family, number, excludeID string) (bool, error) {
	var taken bool
	r.read(func(st *docState) { taken = st.activeNumberTaken(family, number, excludeID) })
	return taken, nil
}

// RecentNumbers últimos números emitidos de la familia, incluidos los eliminados.
func (r *DocumentRepo) RecentNumbers(_ context.Context, family entity.Family, limit int) ([]string, error) {
	var out []string
	r.read(func(st *docState) {
		for i := len(st.order) - 1; i >= 0 && len(out) < limit; i-- {
			if d := st.docs[st.order[i]]; d.Family == family {
				out = append(out, d.Number)
			}
		}
	})
	return out, nil
}

// List página de documentos activos, fecha descendente y luego creación descendente.
func (r *DocumentRepo) List(_ context.Context, family entity.Family, f repository.DocumentFilter) ([]*entity.Document, int, error) {
	var all []*entity.Document
	r.read(func(st *docState) {
		for _, d := range st.docs {
			if d.Family != family || d.DeletedAt != nil {
				continue
			}
			if f.Status != "" && d.Status != f.Status {
				continue
			}
			if f.PartyID != "" && d.PartyID != f.PartyID {
				continue
			}
			if !matches(f.Search, d.Number, d.Description, d.Comments) {
				continue
			}
			all = append(all, copyDocument(d))
		}
	})
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return page(all, f.Limit, f.Offset), len(all), nil
}

func copyDocument(d *entity.Document) *entity.Document {
	c := *d
	c.Items, c.Party, c.Gestor = nil, nil, nil
	c.ValidityDays = copyInt(d.ValidityDays)
	c.ReturnDate = copyTime(d.ReturnDate)
	c.DeliveryDate = copyTime(d.DeliveryDate)
	c.DeletedAt = copyTime(d.DeletedAt)
	return &c
}

func copyItem(it *entity.DocumentItem) *entity.DocumentItem {
	c := *it
	c.Days = copyInt(it.Days)
	c.DeletedAt = copyTime(it.DeletedAt)
	return &c
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ItemHistory todas las filas de líneas del documento, incluidas las retiradas, en orden de inserción.
func (r *DocumentRepo) ItemHistory(documentID string) []*entity.DocumentItem {
	var out []*entity.DocumentItem
	r.read(func(st *docState) {
		for _, it := range st.items[documentID] {
			out = append(out, copyItem(it))
		}
	})
	return out
}

// DeletedAt marca de eliminación de la cabecera (nil si está activa o no existe).
func (r *DocumentRepo) DeletedAt(id string) *time.Time {
	var out *time.Time
	r.read(func(st *docState) {
		if d, ok := st.docs[id]; ok {
			out = copyTime(d.DeletedAt)
		}
	})
	return out
}
