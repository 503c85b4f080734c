package repository

import "github.com/tu-usuario/solicitudes-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// GetByTaxID busca por igualdad exacta de RUC y devuelve el primero o nil.
	// La unicidad no está garantizada por el almacén: duplicados más allá del
	// primero se ignoran silenciosamente.
	GetByTaxID(taxID string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
