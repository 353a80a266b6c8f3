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

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación de TemplateRepository (usable con pool o tx).
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

const templateColumns = `
	id, family, code, name, description, quantity, unit_price, days,
	created_by, updated_by, created_at, updated_at, deleted_at`

// Create persiste una plantilla; el índice parcial garantiza código único entre activas.
func (r *TemplateRepo) Create(ctx context.Context, tpl *entity.ItemTemplate) error {
	query := `INSERT INTO item_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		tpl.ID, tpl.Family, tpl.Code, tpl.Name, tpl.Description, tpl.Quantity, tpl.UnitPrice, tpl.Days,
		tpl.CreatedBy, tpl.UpdatedBy, tpl.CreatedAt, tpl.UpdatedAt, tpl.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "plantilla", Field: "code", Value: tpl.Code}
		}
		return fmt.Errorf("insert item template: %w", err)
	}
	return nil
}

// Update sobrescribe la plantilla activa.
func (r *TemplateRepo) Update(ctx context.Context, tpl *entity.ItemTemplate) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE item_templates
		SET code = $2, name = $3, description = $4, quantity = $5, unit_price = $6, days = $7,
		    updated_by = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`,
		tpl.ID, tpl.Code, tpl.Name, tpl.Description, tpl.Quantity, tpl.UnitPrice, tpl.Days,
		tpl.UpdatedBy, tpl.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "plantilla", Field: "code", Value: tpl.Code}
		}
		return fmt.Errorf("update item template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "plantilla", ID: tpl.ID}
	}
	return nil
}

// GetByID obtiene la plantilla activa de la familia.
func (r *TemplateRepo) GetByID(ctx context.Context, family entity.Family, id string) (*entity.ItemTemplate, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `id = $2`, family, id)
}

// GetActiveByCode obtiene la plantilla activa con ese código.
func (r *TemplateRepo) GetActiveByCode(ctx context.Context, family entity.Family, code string) (*entity.ItemTemplate, error) {
	return r.getOne(ctx, `code = $2`, family, code)
}

func (r *TemplateRepo) getOne(ctx context.Context, cond string, family entity.Family, value string) (*entity.ItemTemplate, error) {
	query := `SELECT ` + templateColumns + `
		FROM item_templates WHERE family = $1 AND ` + cond + ` AND deleted_at IS NULL`
	tpl, err := scanTemplate(r.q.QueryRow(ctx, query, family, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item template: %w", err)
	}
	return tpl, nil
}

// SoftDelete marca la plantilla activa.
func (r *TemplateRepo) SoftDelete(ctx context.Context, family entity.Family, id, userID string, at time.Time) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE item_templates SET deleted_at = $3, updated_at = $3, updated_by = $4
		WHERE id = $1 AND family = $2 AND deleted_at IS NULL`,
		id, family, at, userID)
	if err != nil {
		return false, fmt.Errorf("soft delete item template: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List plantillas activas ordenadas por código.
func (r *TemplateRepo) List(ctx context.Context, family entity.Family, f repository.TemplateFilter) ([]*entity.ItemTemplate, int, error) {
	where := ` WHERE family = $1 AND deleted_at IS NULL`
	args := []any{family}
	pos := 2
	if f.Search != "" {
		where += fmt.Sprintf(" AND (code ILIKE $%d OR name ILIKE $%d OR description ILIKE $%d)", pos, pos, pos)
		args = append(args, likePattern(f.Search))
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM item_templates`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count item templates: %w", err)
	}

	query := `SELECT ` + templateColumns + ` FROM item_templates` + where +
		fmt.Sprintf(" ORDER BY code LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list item templates: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ItemTemplate, 0, f.Limit)
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item template: %w", err)
		}
		list = append(list, tpl)
	}
	return list, total, rows.Err()
}

func scanTemplate(row pgx.Row) (*entity.ItemTemplate, error) {
	var t entity.ItemTemplate
	err := row.Scan(&t.ID, &t.Family, &t.Code, &t.Name, &t.Description, &t.Quantity, &t.UnitPrice, &t.Days,
		&t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
