package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/domain/repository"
)

var _ repository.PartyDirectory = (*PartyDirectory)(nil)

// PartyDirectory lectura de clients, providers y users para resolver nombres.
type PartyDirectory struct {
	q Querier
}

// NewPartyDirectory construye el adaptador.
func NewPartyDirectory(q Querier) *PartyDirectory {
	return &PartyDirectory{q: q}
}

// GetParty obtiene el cliente o proveedor según kind.
func (d *PartyDirectory) GetParty(ctx context.Context, kind entity.PartyKind, id string) (*entity.Party, error) {
	if !validID(id) {
		return nil, nil
	}
	table := "clients"
	if kind == entity.PartyProvider {
		table = "providers"
	}
	query := `SELECT id, name, ruc, email, phone, address, created_at FROM ` + table + ` WHERE id = $1`
	p := entity.Party{Kind: kind}
	err := d.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.TaxID, &p.Email, &p.Phone, &p.Address, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return &p, nil
}

// GetPerson obtiene el usuario.
func (d *PartyDirectory) GetPerson(ctx context.Context, id string) (*entity.Person, error) {
	if !validID(id) {
		return nil, nil
	}
	var p entity.Person
	err := d.q.QueryRow(ctx, `SELECT id, name, email FROM users WHERE id = $1`, id).Scan(&p.ID, &p.Name, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &p, nil
}
