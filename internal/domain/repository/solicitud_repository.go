package repository

import "github.com/tu-usuario/solicitudes-api/internal/domain/entity"

// SolicitudRepository define el puerto de persistencia para Solicitud.
type SolicitudRepository interface {
	Create(s *entity.Solicitud) error
	GetByID(id string) (*entity.Solicitud, error)
	// List devuelve todas las solicitudes ordenadas por created_at descendente,
	// con sus líneas de detalle cargadas.
	List() ([]*entity.Solicitud, error)
	// UpdateStatus persiste status, issued_at, cancelled_at y comentario de
	// anulación. El UPDATE está condicionado a status='pending': si la fila ya
	// es terminal retorna ErrInvalidTransition.
	UpdateStatus(s *entity.Solicitud) error
	// CountByProduct cuenta las solicitudes que referencian el producto, tanto
	// en líneas de detalle como en el campo legado product_id.
	CountByProduct(productID string) (int, error)
	// CountByClientTaxID cuenta las solicitudes cuyo snapshot embebido de
	// cliente lleva ese RUC.
	CountByClientTaxID(taxID string) (int, error)
}
