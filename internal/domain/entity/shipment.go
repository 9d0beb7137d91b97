package entity

import (
	"fmt"
	"strings"
)

// ShipmentStatus is the delivery state of a shipment.
type ShipmentStatus string

// Shipment states.
const (
	ShipmentPending   ShipmentStatus = "pendiente"
	ShipmentInTransit ShipmentStatus = "en_transito"
	ShipmentDelivered ShipmentStatus = "entregado"
	ShipmentCanceled  ShipmentStatus = "cancelado"
)

// Valid reports whether s is a known state.
func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentPending, ShipmentInTransit, ShipmentDelivered, ShipmentCanceled:
		return true
	}
	return false
}

// Shipment tracks the delivery of an order (/logistica).
type Shipment struct {
	ID          int64          `json:"id" yaml:"id"`
	Order       string         `json:"pedido" yaml:"pedido"`
	Carrier     string         `json:"transportista" yaml:"transportista"`
	Status      ShipmentStatus `json:"estado" yaml:"estado"`
	Origin      string         `json:"origen" yaml:"origen"`
	Destination string         `json:"destino" yaml:"destino"`
	ShippedAt   string         `json:"fecha_envio,omitempty" yaml:"fecha_envio,omitempty"`
	DeliveredAt string         `json:"fecha_entrega,omitempty" yaml:"fecha_entrega,omitempty"`
}

// Validate checks the shipment. A delivered shipment needs a delivery date
// that is not before the shipping date.
func (s Shipment) Validate() error {
	if strings.TrimSpace(s.Order) == "" {
		return &ValidationError{Field: "pedido", Message: "is required"}
	}
	if err := ValidateName("transportista", s.Carrier); err != nil {
		return err
	}
	if !s.Status.Valid() {
		return &ValidationError{
			Field:   "estado",
			Message: fmt.Sprintf("unknown state %q", s.Status),
		}
	}
	if strings.TrimSpace(s.Origin) == "" {
		return &ValidationError{Field: "origen", Message: "is required"}
	}
	if strings.TrimSpace(s.Destination) == "" {
		return &ValidationError{Field: "destino", Message: "is required"}
	}

	if s.ShippedAt != "" {
		if _, err := ParseDate("fecha_envio", s.ShippedAt); err != nil {
			return err
		}
	}
	if s.Status == ShipmentDelivered && s.DeliveredAt == "" {
		return &ValidationError{Field: "fecha_entrega", Message: "is required for delivered shipments"}
	}
	if s.DeliveredAt != "" {
		delivered, err := ParseDate("fecha_entrega", s.DeliveredAt)
		if err != nil {
			return err
		}
		if s.ShippedAt != "" {
			shipped, _ := ParseDate("fecha_envio", s.ShippedAt)
			if delivered.Before(shipped) {
				return &ValidationError{Field: "fecha_entrega", Message: "must not be before fecha_envio"}
			}
		}
	}
	return nil
}
