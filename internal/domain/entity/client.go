package entity

import "time"

// Client representa un cliente del negocio. TaxID (RUC) es la clave de negocio
// única; se crea automáticamente la primera vez que una solicitud referencia un
// RUC desconocido.
type Client struct {
	ID        string
	TaxID     string // RUC paraguayo, con o sin dígito verificador separado por guion
	LegalName string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
