package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Monitoreo-api/internal/domain"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `
	id, family, number, client_id, provider_id, gestor_id, date, currency, status,
	description, comments, validity_days, return_date, monitoring_location, monitoring_type,
	payment_terms, delivery_date, subtotal, tax, total,
	created_by, updated_by, created_at, updated_at, deleted_at`

const itemColumns = `
	id, document_id, code, name, description, quantity, days, unit_price, line_total, position, created_at, deleted_at`

// partyColumns reparte PartyID entre client_id y provider_id según la familia.
func partyColumns(doc *entity.Document) (clientID, providerID *string) {
	if entity.MustConfig(doc.Family).PartyKind == entity.PartyProvider {
		return nil, nullIfEmpty(doc.PartyID)
	}
	return nullIfEmpty(doc.PartyID), nil
}

func numberConflict(err error, number string) error {
	if isUniqueViolation(err) && violatedConstraint(err) != templateCodeIndex {
		return &domain.ConflictError{Resource: "documento", Field: "number", Value: number}
	}
	return nil
}

// Create persiste la cabecera con sus totales.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	clientID, providerID := partyColumns(doc)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	_, err := r.q.Exec(ctx, query,
		doc.ID, doc.Family, doc.Number, clientID, providerID, nullIfEmpty(doc.GestorID),
		doc.Date, doc.Currency, doc.Status,
		doc.Description, doc.Comments, doc.ValidityDays, doc.ReturnDate, doc.MonitoringLocation, doc.MonitoringType,
		doc.PaymentTerms, doc.DeliveryDate, doc.Subtotal, doc.Tax, doc.Total,
		doc.CreatedBy, doc.UpdatedBy, doc.CreatedAt, doc.UpdatedAt, doc.DeletedAt,
	)
	if err != nil {
		if cerr := numberConflict(err, doc.Number); cerr != nil {
			return cerr
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateItems inserta las líneas en un batch.
func (r *DocumentRepo) CreateItems(ctx context.Context, items []*entity.DocumentItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO document_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query,
			it.ID, it.DocumentID, it.Code, it.Name, it.Description, it.Quantity, it.Days,
			it.UnitPrice, it.LineTotal, it.Position, it.CreatedAt, it.DeletedAt,
		)
	}
	br := r.sendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert document item: %w", err)
		}
	}
	return br.Close()
}

// sendBatch el pool y la tx exponen SendBatch aunque Querier no lo declare.
func (r *DocumentRepo) sendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	type batcher interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	}
	return r.q.(batcher).SendBatch(ctx, b)
}

// UpdateHeader sobrescribe cabecera y totales del documento activo.
func (r *DocumentRepo) UpdateHeader(ctx context.Context, doc *entity.Document) error {
	clientID, providerID := partyColumns(doc)
	query := `
		UPDATE documents
		SET number = $2, client_id = $3, provider_id = $4, gestor_id = $5, date = $6,
		    currency = $7, status = $8, description = $9, comments = $10,
		    validity_days = $11, return_date = $12, monitoring_location = $13, monitoring_type = $14,
		    payment_terms = $15, delivery_date = $16,
		    subtotal = $17, tax = $18, total = $19,
		    updated_by = $20, updated_at = $21
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(ctx, query,
		doc.ID, doc.Number, clientID, providerID, nullIfEmpty(doc.GestorID), doc.Date,
		doc.Currency, doc.Status, doc.Description, doc.Comments,
		doc.ValidityDays, doc.ReturnDate, doc.MonitoringLocation, doc.MonitoringType,
		doc.PaymentTerms, doc.DeliveryDate,
		doc.Subtotal, doc.Tax, doc.Total,
		doc.UpdatedBy, doc.UpdatedAt,
	)
	if err != nil {
		if cerr := numberConflict(err, doc.Number); cerr != nil {
			return cerr
		}
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "documento", ID: doc.ID}
	}
	return nil
}

// GetByID obtiene el documento activo de la familia.
func (r *DocumentRepo) GetByID(ctx context.Context, family entity.Family, id string) (*entity.Document, error) {
	return r.getOne(ctx, family, id, "")
}

// GetForUpdate igual que GetByID con SELECT ... FOR UPDATE (solo tiene efecto dentro de una tx).
func (r *DocumentRepo) GetForUpdate(ctx context.Context, family entity.Family, id string) (*entity.Document, error) {
	return r.getOne(ctx, family, id, " FOR UPDATE")
}

func (r *DocumentRepo) getOne(ctx context.Context, family entity.Family, id, suffix string) (*entity.Document, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + documentColumns + `
		FROM documents WHERE id = $1 AND family = $2 AND deleted_at IS NULL` + suffix
	doc, err := scanDocument(r.q.QueryRow(ctx, query, id, family))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListActiveItems líneas vigentes en orden de posición.
func (r *DocumentRepo) ListActiveItems(ctx context.Context, documentID string) ([]*entity.DocumentItem, error) {
	query := `SELECT ` + itemColumns + `
		FROM document_items WHERE document_id = $1 AND deleted_at IS NULL
		ORDER BY position, created_at`
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentItem
	for rows.Next() {
		var it entity.DocumentItem
		if err := rows.Scan(&it.ID, &it.DocumentID, &it.Code, &it.Name, &it.Description, &it.Quantity, &it.Days,
			&it.UnitPrice, &it.LineTotal, &it.Position, &it.CreatedAt, &it.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// SoftDeleteItems retira las líneas activas del documento.
func (r *DocumentRepo) SoftDeleteItems(ctx context.Context, documentID string, at time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE document_items SET deleted_at = $2 WHERE document_id = $1 AND deleted_at IS NULL`,
		documentID, at)
	if err != nil {
		return 0, fmt.Errorf("soft delete document items: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SoftDelete marca la cabecera activa.
func (r *DocumentRepo) SoftDelete(ctx context.Context, family entity.Family, id, userID string, at time.Time) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE documents SET deleted_at = $3, updated_at = $3, updated_by = $4
		WHERE id = $1 AND family = $2 AND deleted_at IS NULL`,
		id, family, at, userID)
	if err != nil {
		return false, fmt.Errorf("soft delete document: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistsActiveNumber consulta el mismo predicado que el índice único parcial.
func (r *DocumentRepo) ExistsActiveNumber(ctx context.Context, family entity.Family, number, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM documents
			WHERE family = $1 AND number = $2 AND deleted_at IS NULL
			  AND ($3 = '' OR id::text <> $3)
		)`, family, number, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists document number: %w", err)
	}
	return exists, nil
}

// RecentNumbers últimos números emitidos de la familia, incluidos los eliminados.
func (r *DocumentRepo) RecentNumbers(ctx context.Context, family entity.Family, limit int) ([]string, error) {
	rows, err := r.q.Query(ctx, `
		SELECT number FROM documents
		WHERE family = $1
		ORDER BY created_at DESC
		LIMIT $2`, family, limit)
	if err != nil {
		return nil, fmt.Errorf("recent document numbers: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan document number: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// List página de documentos activos, más recientes primero, con el total filtrado.
func (r *DocumentRepo) List(ctx context.Context, family entity.Family, f repository.DocumentFilter) ([]*entity.Document, int, error) {
	where := ` WHERE family = $1 AND deleted_at IS NULL`
	args := []any{family}
	pos := 2
	if f.Search != "" {
		where += fmt.Sprintf(" AND (number ILIKE $%d OR description ILIKE $%d OR comments ILIKE $%d)", pos, pos, pos)
		args = append(args, likePattern(f.Search))
		pos++
	}
	if f.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.PartyID != "" {
		if !validID(f.PartyID) {
			return []*entity.Document{}, 0, nil
		}
		where += fmt.Sprintf(" AND COALESCE(client_id, provider_id) = $%d", pos)
		args = append(args, f.PartyID)
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM documents`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	query := `SELECT ` + documentColumns + ` FROM documents` + where +
		fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Document, 0, f.Limit)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	return list, total, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	var clientID, providerID, gestorID *string
	err := row.Scan(
		&d.ID, &d.Family, &d.Number, &clientID, &providerID, &gestorID, &d.Date, &d.Currency, &d.Status,
		&d.Description, &d.Comments, &d.ValidityDays, &d.ReturnDate, &d.MonitoringLocation, &d.MonitoringType,
		&d.PaymentTerms, &d.DeliveryDate, &d.Subtotal, &d.Tax, &d.Total,
		&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	d.PartyID = derefStr(clientID)
	if providerID != nil {
		d.PartyID = *providerID
	}
	d.GestorID = derefStr(gestorID)
	return &d, nil
}
