package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/application/watch"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	"github.com/tu-usuario/solicitudes-api/internal/domain/repository"
	"github.com/tu-usuario/solicitudes-api/pkg/ruc"
	"github.com/tu-usuario/solicitudes-api/pkg/validate"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo          repository.ClientRepository
	solicitudRepo repository.SolicitudRepository
	hub           *watch.Hub
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, solicitudRepo repository.SolicitudRepository, hub *watch.Hub) *ClientUseCase {
	return &ClientUseCase{repo: repo, solicitudRepo: solicitudRepo, hub: hub}
}

// Create crea un cliente. Valida RUC y email antes de tocar el almacén y
// rechaza RUC duplicado con un chequeo previo.
//
// El chequeo existencia→insert no es transaccional: dos sesiones concurrentes
// pueden crear el mismo RUC. Ventana conocida; el índice único de la tabla la
// cierra en esta implementación.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if !ruc.IsValid(in.TaxID) {
		return nil, fmt.Errorf("%w: ruc con formato inválido", domain.ErrInvalidInput)
	}
	if in.LegalName == "" {
		return nil, fmt.Errorf("%w: razón social requerida", domain.ErrInvalidInput)
	}
	if in.Email != "" && !validate.IsValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
	}
	existing, _ := uc.repo.GetByTaxID(in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		TaxID:     in.TaxID,
		LegalName: in.LegalName,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	uc.publishSnapshot()
	return toClientResponse(client), nil
}

// GetByTaxID busca por RUC exacto; nil si no existe.
func (uc *ClientUseCase) GetByTaxID(taxID string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List() ([]*dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update corrige razón social o email. El RUC nunca se modifica.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.LegalName != nil {
		if *in.LegalName == "" {
			return nil, fmt.Errorf("%w: razón social requerida", domain.ErrInvalidInput)
		}
		client.LegalName = *in.LegalName
	}
	if in.Email != nil {
		if *in.Email != "" && !validate.IsValidEmail(*in.Email) {
			return nil, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
		}
		client.Email = *in.Email
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	uc.publishSnapshot()
	return toClientResponse(client), nil
}

// Delete elimina un cliente solo si ninguna solicitud lo referencia.
// Chequeo y delete no son atómicos: una solicitud creada en el medio puede
// dejar la referencia colgando. Carrera conocida, no corregida.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	n, err := uc.solicitudRepo.CountByClientTaxID(client.TaxID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrClientReferenced
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.publishSnapshot()
	return nil
}

// publishSnapshot difunde el snapshot completo de clientes tras cada mutación.
// Un fallo de lectura aquí no aborta la operación ya confirmada.
func (uc *ClientUseCase) publishSnapshot() {
	if uc.hub == nil {
		return
	}
	if list, err := uc.repo.List(); err == nil {
		uc.hub.Publish(watch.CollectionClients, list)
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		TaxID:     c.TaxID,
		LegalName: c.LegalName,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
