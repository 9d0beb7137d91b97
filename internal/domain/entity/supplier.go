package entity

// Supplier provides products (/proveedores).
type Supplier struct {
	ID      int64  `json:"id" yaml:"id"`
	Name    string `json:"nombre" yaml:"nombre"`
	CUIT    string `json:"cuit" yaml:"cuit"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone   string `json:"telefono,omitempty" yaml:"telefono,omitempty"`
	Address string `json:"direccion,omitempty" yaml:"direccion,omitempty"`
}

// Validate checks the fields a supplier needs before it is sent to the backend.
func (s Supplier) Validate() error {
	if err := ValidateName("nombre", s.Name); err != nil {
		return err
	}
	if err := ValidateCUIT("cuit", s.CUIT); err != nil {
		return err
	}
	return ValidateEmail("email", s.Email)
}
