package entity

// Status estado de un documento. Cada familia admite un subconjunto (ver FamilyConfig.Statuses).
// No hay tabla de transiciones: cualquier estado del conjunto puede asignarse desde cualquier otro.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

// Currency moneda del documento.
type Currency string

const (
	CurrencyPEN Currency = "PEN"
	CurrencyUSD Currency = "USD"
)

// IsValid informa si la moneda es soportada.
func (c Currency) IsValid() bool {
	return c == CurrencyPEN || c == CurrencyUSD
}
