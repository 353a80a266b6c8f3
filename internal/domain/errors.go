package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnauthorized = errors.New("no autorizado")
)

// FieldError describe un campo rechazado por la validación.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los campos inválidos de una petición.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier *ValidationError.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye el error con un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add registra un campo inválido.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has informa si el campo ya fue reportado.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// HasErrors informa si se registró algún campo.
func (e *ValidationError) HasErrors() bool { return e != nil && len(e.Fields) > 0 }

// OrNil devuelve nil si no hay campos registrados; evita el clásico nil tipado en interfaces.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NotFoundError indica que el recurso no existe o fue eliminado (soft delete).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s no encontrado", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError indica una violación de unicidad (número de documento, código de plantilla).
// Field permite al cliente elegir otro valor o regenerar el número.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: ya existe un %s activo con %s=%q", ErrConflict.Error(), e.Resource, e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
