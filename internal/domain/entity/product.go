package entity

import "time"

// Product representa un producto facturable. Name es la clave de negocio única;
// se crea en la primera referencia por nombre y se renombra vía edición explícita.
type Product struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
