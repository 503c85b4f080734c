package dto

import "time"

// CreateClientRequest alta manual de cliente.
type CreateClientRequest struct {
	TaxID     string `json:"tax_id"`
	LegalName string `json:"legal_name"`
	Email     string `json:"email"`
}

// UpdateClientRequest corrección de razón social o email. El RUC no se edita:
// es la clave de negocio.
type UpdateClientRequest struct {
	LegalName *string `json:"legal_name"`
	Email     *string `json:"email"`
}

// ClientResponse representación HTTP de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	TaxID     string    `json:"tax_id"`
	LegalName string    `json:"legal_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
