// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory).
// Emula transacciones serializadas y los índices únicos parciales de PostgreSQL.
package memory

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	// txMu serializa las escrituras de documentos; mu protege el estado confirmado.
	txMu sync.Mutex
	mu   sync.RWMutex

	docs      *docState
	templates map[string]*entity.ItemTemplate
	parties   map[string]*entity.Party
	persons   map[string]*entity.Person
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		docs:      newDocState(),
		templates: map[string]*entity.ItemTemplate{},
		parties:   map[string]*entity.Party{},
		persons:   map[string]*entity.Person{},
	}
}

// Documents repositorio de documentos fuera de transacción (lecturas del estado confirmado).
func (s *Store) Documents() *DocumentRepo { return &DocumentRepo{s: s} }

// Templates repositorio de plantillas.
func (s *Store) Templates() *TemplateRepo { return &TemplateRepo{s: s} }

// Directory directorio de clientes, proveedores y usuarios.
func (s *Store) Directory() *Directory { return &Directory{s: s} }

// RunDocuments ejecuta fn sobre una copia del estado y la confirma solo si fn no falla.
// Los lectores nunca ven estados intermedios.
func (s *Store) RunDocuments(ctx context.Context, fn func(docs repository.DocumentRepository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	work := s.docs.clone()
	s.mu.RUnlock()

	if err := fn(&DocumentRepo{s: s, tx: work}); err != nil {
		return err
	}

	s.mu.Lock()
	s.docs = work
	s.mu.Unlock()
	return nil
}

// Ping siempre disponible.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// foldText normaliza para búsquedas: minúsculas y sin tildes.
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := foldText(search)
	for _, f := range fields {
		if strings.Contains(foldText(f), needle) {
			return true
		}
	}
	return false
}

func page[T any](list []T, limit, offset int) []T {
	if offset < 0 || offset >= len(list) {
		return []T{}
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}
