package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

// Directory directorio de contrapartes y usuarios en memoria.
type Directory struct {
	s *Store
}

var _ repository.PartyDirectory = (*Directory)(nil)

// AddParty registra un cliente o proveedor.
func (d *Directory) AddParty(p entity.Party) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.parties[p.ID] = &p
}

// AddPerson registra un usuario.
func (d *Directory) AddPerson(p entity.Person) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.persons[p.ID] = &p
}

// GetParty contraparte del tipo indicado o (nil, nil).
func (d *Directory) GetParty(_ context.Context, kind entity.PartyKind, id string) (*entity.Party, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	if p, ok := d.s.parties[id]; ok && p.Kind == kind {
		c := *p
		return &c, nil
	}
	return nil, nil
}

// GetPerson usuario o (nil, nil).
func (d *Directory) GetPerson(_ context.Context, id string) (*entity.Person, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	if p, ok := d.s.persons[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

// Demo ids de los registros creados por SeedDemo.
type Demo struct {
	ClientID   string
	ProviderID string
	GestorID   string
}

// SeedDemo carga un cliente, un proveedor y un gestor para probar la API sin base de datos.
func (d *Directory) SeedDemo() Demo {
	now := time.Now()
	demo := Demo{ClientID: uuid.New().String(), ProviderID: uuid.New().String(), GestorID: uuid.New().String()}
	d.AddParty(entity.Party{ID: demo.ClientID, Kind: entity.PartyClient, Name: "Minera Andina S.A.C.", TaxID: "20123456789", CreatedAt: now})
	d.AddParty(entity.Party{ID: demo.ProviderID, Kind: entity.PartyProvider, Name: "Laboratorios del Sur E.I.R.L.", TaxID: "20987654321", CreatedAt: now})
	d.AddPerson(entity.Person{ID: demo.GestorID, Name: "Gestor Demo", Email: "gestor@example.com"})
	return demo
}
