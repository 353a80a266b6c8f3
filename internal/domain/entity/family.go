package entity

// Family identifica el tipo de documento comercial.
type Family string

const (
	FamilyQuotation     Family = "quotation"
	FamilyServiceOrder  Family = "service_order"
	FamilyPurchaseOrder Family = "purchase_order"
)

// Families lista las familias en orden estable (rutas, migraciones, tests).
var Families = []Family{FamilyQuotation, FamilyServiceOrder, FamilyPurchaseOrder}

// IsValid informa si la familia pertenece al enum cerrado.
func (f Family) IsValid() bool {
	_, ok := familyConfigs[f]
	return ok
}

func (f Family) String() string { return string(f) }

// PricingFormula define cómo se calcula el total de una línea.
type PricingFormula int

const (
	// PricingQuantity: cantidad × precio unitario (órdenes de compra).
	PricingQuantity PricingFormula = iota
	// PricingQuantityDays: cantidad × días × precio unitario (cotizaciones, órdenes de servicio).
	PricingQuantityDays
)

// DaysPolicy indica si la línea lleva el factor de días.
type DaysPolicy int

const (
	DaysForbidden DaysPolicy = iota
	DaysOptional
	DaysRequired
)

// PartyKind tipo de contraparte referenciada por el documento.
type PartyKind string

const (
	PartyClient   PartyKind = "client"
	PartyProvider PartyKind = "provider"
)

// HeaderField campos de cabecera propios de cada familia.
type HeaderField string

const (
	FieldValidityDays       HeaderField = "validity_days"
	FieldReturnDate         HeaderField = "return_date"
	FieldMonitoringLocation HeaderField = "monitoring_location"
	FieldMonitoringType     HeaderField = "monitoring_type"
	FieldGestor             HeaderField = "gestor_id"
	FieldPaymentTerms       HeaderField = "payment_terms"
	FieldDeliveryDate       HeaderField = "delivery_date"
)

// FamilyConfig parametriza el motor de documentos: numeración, fórmula de precio,
// estados y campos de cabecera. Es la única diferencia entre las tres familias.
type FamilyConfig struct {
	Family         Family
	Label          string // nombre visible (PDF, logs)
	NumberPrefix   string
	NumberWidth    int
	Pricing        PricingFormula
	Days           DaysPolicy
	PartyKind      PartyKind
	Statuses       []Status
	DefaultStatus  Status
	HeaderFields   []HeaderField
	RequiredFields []HeaderField
}

var familyConfigs = map[Family]FamilyConfig{
	FamilyQuotation: {
		Family:        FamilyQuotation,
		Label:         "Cotización",
		NumberPrefix:  "COT",
		NumberWidth:   3,
		Pricing:       PricingQuantityDays,
		Days:          DaysRequired,
		PartyKind:     PartyClient,
		Statuses:      []Status{StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusCancelled},
		DefaultStatus: StatusDraft,
		HeaderFields:  []HeaderField{FieldValidityDays, FieldReturnDate, FieldMonitoringLocation, FieldMonitoringType},
	},
	FamilyServiceOrder: {
		Family:         FamilyServiceOrder,
		Label:          "Orden de servicio",
		NumberPrefix:   "OS",
		NumberWidth:    3,
		Pricing:        PricingQuantityDays,
		Days:           DaysOptional,
		PartyKind:      PartyClient,
		Statuses:       []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled},
		DefaultStatus:  StatusPending,
		HeaderFields:   []HeaderField{FieldGestor, FieldPaymentTerms},
		RequiredFields: []HeaderField{FieldGestor},
	},
	FamilyPurchaseOrder: {
		Family:         FamilyPurchaseOrder,
		Label:          "Orden de compra",
		NumberPrefix:   "OC",
		NumberWidth:    3,
		Pricing:        PricingQuantity,
		Days:           DaysForbidden,
		PartyKind:      PartyProvider,
		Statuses:       []Status{StatusDraft, StatusPending, StatusApproved, StatusCompleted, StatusCancelled},
		DefaultStatus:  StatusDraft,
		HeaderFields:   []HeaderField{FieldGestor, FieldPaymentTerms, FieldDeliveryDate},
		RequiredFields: []HeaderField{FieldGestor},
	},
}

// ConfigFor devuelve la configuración de la familia. ok es false si la familia no existe.
func ConfigFor(f Family) (FamilyConfig, bool) {
	cfg, ok := familyConfigs[f]
	return cfg, ok
}

// MustConfig igual que ConfigFor pero entra en pánico ante una familia desconocida.
// Solo para el cableado en main y tests.
func MustConfig(f Family) FamilyConfig {
	cfg, ok := familyConfigs[f]
	if !ok {
		panic("familia de documento desconocida: " + string(f))
	}
	return cfg
}

// AllowsStatus informa si el estado pertenece al conjunto de la familia.
func (c FamilyConfig) AllowsStatus(s Status) bool {
	for _, st := range c.Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// HasField informa si la familia admite el campo de cabecera.
func (c FamilyConfig) HasField(f HeaderField) bool {
	for _, h := range c.HeaderFields {
		if h == f {
			return true
		}
	}
	return false
}

// Requires informa si el campo de cabecera es obligatorio en la familia.
func (c FamilyConfig) Requires(f HeaderField) bool {
	for _, h := range c.RequiredFields {
		if h == f {
			return true
		}
	}
	return false
}
