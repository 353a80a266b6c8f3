package repository

import (
	"context"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// PartyDirectory lectura del directorio de clientes, proveedores y usuarios.
// El motor solo resuelve nombres para las respuestas; no valida existencia (eso lo hacen las FK).
type PartyDirectory interface {
	// GetParty devuelve (nil, nil) si no existe.
	GetParty(ctx context.Context, kind entity.PartyKind, id string) (*entity.Party, error)
	// GetPerson devuelve (nil, nil) si no existe.
	GetPerson(ctx context.Context, id string) (*entity.Person, error)
}
