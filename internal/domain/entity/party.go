package entity

import "time"

// Party contraparte del documento (cliente o proveedor). El motor solo guarda la referencia.
type Party struct {
	ID        string
	Kind      PartyKind
	Name      string
	TaxID     string // RUC o DNI
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// Person usuario del directorio (gestor responsable de órdenes).
type Person struct {
	ID    string
	Name  string
	Email string
}
