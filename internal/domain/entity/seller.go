// Package entity defines the records managed through the sales
// administration backend, their JSON form and their validation rules.
package entity

// Seller is a member of the sales force (/vendedores).
type Seller struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"nombre" yaml:"nombre"`
	Email  string `json:"email" yaml:"email"`
	Phone  string `json:"telefono,omitempty" yaml:"telefono,omitempty"`
	Zone   string `json:"zona,omitempty" yaml:"zona,omitempty"`
	Active bool   `json:"activo" yaml:"activo"`
}

// Validate checks the fields a seller needs before it is sent to the backend.
func (s Seller) Validate() error {
	if err := ValidateName("nombre", s.Name); err != nil {
		return err
	}
	if s.Email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	return ValidateEmail("email", s.Email)
}
