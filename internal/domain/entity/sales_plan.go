package entity

import "fmt"

// PlanStatus is the lifecycle state of a sales plan.
type PlanStatus string

// Sales plan states.
const (
	PlanDraft  PlanStatus = "borrador"
	PlanActive PlanStatus = "activo"
	PlanClosed PlanStatus = "cerrado"
)

// Valid reports whether s is a known state.
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanDraft, PlanActive, PlanClosed:
		return true
	}
	return false
}

// SalesPlan is a revenue target assigned to a seller over a period
// (/planes-venta).
type SalesPlan struct {
	ID           int64      `json:"id" yaml:"id"`
	Name         string     `json:"nombre" yaml:"nombre"`
	SellerID     int64      `json:"vendedor_id" yaml:"vendedor_id"`
	StartDate    string     `json:"fecha_inicio" yaml:"fecha_inicio"`
	EndDate      string     `json:"fecha_fin" yaml:"fecha_fin"`
	TargetAmount float64    `json:"monto_objetivo" yaml:"monto_objetivo"`
	Status       PlanStatus `json:"estado" yaml:"estado"`
}

// Validate checks names, dates and the status. An empty status is accepted
// and left for the backend to default.
func (p SalesPlan) Validate() error {
	if err := ValidateName("nombre", p.Name); err != nil {
		return err
	}
	if p.SellerID <= 0 {
		return &ValidationError{Field: "vendedor_id", Message: "is required"}
	}
	start, err := ParseDate("fecha_inicio", p.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseDate("fecha_fin", p.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return &ValidationError{Field: "fecha_fin", Message: "must not be before fecha_inicio"}
	}
	if err := validateNonNegative("monto_objetivo", p.TargetAmount); err != nil {
		return err
	}
	if p.Status != "" && !p.Status.Valid() {
		return &ValidationError{
			Field:   "estado",
			Message: fmt.Sprintf("unknown state %q (must be borrador, activo or cerrado)", p.Status),
		}
	}
	return nil
}
