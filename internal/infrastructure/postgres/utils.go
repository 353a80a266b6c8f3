package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Índices únicos parciales definidos en migrations/0001_init.up.sql.
const (
	documentNumberIndex = "documents_family_number_active_idx"
	templateCodeIndex   = "item_templates_family_code_active_idx"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// violatedConstraint nombre del constraint reportado por PostgreSQL (vacío si no aplica).
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// validID descarta ids que no son UUID antes de llegar a la base (evita el 22P02 como error opaco).
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

// likePattern escapa comodines de ILIKE y envuelve el término en %...%.
func likePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(search) + "%"
}
