package dto

import "time"

// CreateProductRequest alta de producto por nombre.
type CreateProductRequest struct {
	Name string `json:"name"`
}

// UpdateProductRequest renombrado explícito.
type UpdateProductRequest struct {
	Name string `json:"name"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
