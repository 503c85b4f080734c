package repository

import "github.com/tu-usuario/solicitudes-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByName busca por igualdad exacta (sensible a mayúsculas). El matching
	// insensible a mayúsculas lo hace el caso de uso sobre List().
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
