package entity

import "strings"

// Product is a catalog item (/productos).
type Product struct {
	ID         int64   `json:"id" yaml:"id"`
	SKU        string  `json:"sku" yaml:"sku"`
	Name       string  `json:"nombre" yaml:"nombre"`
	Price      float64 `json:"precio" yaml:"precio"`
	Stock      int     `json:"stock" yaml:"stock"`
	SupplierID int64   `json:"proveedor_id,omitempty" yaml:"proveedor_id,omitempty"`
	Active     bool    `json:"activo" yaml:"activo"`
}

// Validate checks the fields a product needs before it is sent to the backend.
func (p Product) Validate() error {
	if strings.TrimSpace(p.SKU) == "" {
		return &ValidationError{Field: "sku", Message: "is required"}
	}
	if err := ValidateName("nombre", p.Name); err != nil {
		return err
	}
	if err := validateNonNegative("precio", p.Price); err != nil {
		return err
	}
	if p.Stock < 0 {
		return &ValidationError{Field: "stock", Message: "must not be negative"}
	}
	return nil
}
