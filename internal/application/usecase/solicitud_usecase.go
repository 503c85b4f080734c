package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/application/notify"
	"github.com/tu-usuario/solicitudes-api/internal/application/watch"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	"github.com/tu-usuario/solicitudes-api/internal/domain/repository"
	"github.com/tu-usuario/solicitudes-api/pkg/ruc"
	"github.com/tu-usuario/solicitudes-api/pkg/validate"
)

// SolicitudUseCase casos de uso del ciclo de vida de solicitudes: alta,
// listado, emisión y anulación.
type SolicitudUseCase struct {
	repo        repository.SolicitudRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	hub         *watch.Hub
	notifier    notify.Notifier
	now         func() time.Time
}

// NewSolicitudUseCase construye el caso de uso.
func NewSolicitudUseCase(
	repo repository.SolicitudRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	hub *watch.Hub,
	notifier notify.Notifier,
) *SolicitudUseCase {
	return &SolicitudUseCase{
		repo:        repo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		hub:         hub,
		notifier:    notifier,
		now:         time.Now,
	}
}

// Create da de alta una solicitud en estado pending.
//
// El cliente se resuelve por RUC: si no existe se crea con los datos enviados
// (chequeo→insert no transaccional, carrera conocida). Cada línea resuelve su
// producto por nombre, insensible a mayúsculas, creándolo en la primera
// referencia. La solicitud guarda un snapshot del cliente y de los nombres de
// producto al momento del alta; ese snapshot nunca se re-sincroniza.
func (uc *SolicitudUseCase) Create(in dto.CreateSolicitudRequest) (*dto.SolicitudResponse, error) {
	if !ruc.IsValid(in.TaxID) {
		return nil, fmt.Errorf("%w: ruc con formato inválido", domain.ErrInvalidInput)
	}
	if in.LegalName == "" {
		return nil, fmt.Errorf("%w: razón social requerida", domain.ErrInvalidInput)
	}
	if in.Email != "" && !validate.IsValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos una línea", domain.ErrInvalidInput)
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductName) == "" {
			return nil, fmt.Errorf("%w: línea sin producto", domain.ErrInvalidInput)
		}
		if it.Quantity.LessThanOrEqual(decimal.Zero) || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: cantidad o precio inválido", domain.ErrInvalidInput)
		}
	}

	client, err := uc.findOrCreateClient(in)
	if err != nil {
		return nil, err
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.findOrCreateProduct(strings.TrimSpace(it.ProductName))
		if err != nil {
			return nil, err
		}
		items = append(items, entity.NewLineItem(product.ID, product.Name, it.Quantity, it.UnitPrice))
	}

	s := &entity.Solicitud{
		ID:       uuid.New().String(),
		ClientID: client.ID,
		Client: entity.ClientSnapshot{
			TaxID:     client.TaxID,
			LegalName: client.LegalName,
			Email:     client.Email,
		},
		LineItems:         items,
		Status:            entity.StatusPending,
		ShippingReference: in.ShippingReference,
		CreatedAt:         uc.now(),
	}
	s.TotalAmount = s.ComputeTotal()

	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	uc.publishSnapshot()
	notify.Success(uc.notifier, "solicitud registrada para "+client.LegalName)
	return toSolicitudResponse(s), nil
}

// List devuelve todas las solicitudes, más reciente primero.
func (uc *SolicitudUseCase) List() ([]*dto.SolicitudResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SolicitudResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSolicitudResponse(s))
	}
	return out, nil
}

// GetByID obtiene una solicitud.
func (uc *SolicitudUseCase) GetByID(id string) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSolicitudResponse(s), nil
}

// Issue emite una solicitud pendiente. La transición se valida en la entidad y
// el UPDATE queda además condicionado a status='pending' en el repositorio.
func (uc *SolicitudUseCase) Issue(id string) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.Issue(uc.now()); err != nil {
		notify.Warning(uc.notifier, "la solicitud ya no está pendiente")
		return nil, err
	}
	if err := uc.repo.UpdateStatus(s); err != nil {
		return nil, err
	}
	uc.publishSnapshot()
	notify.Success(uc.notifier, "solicitud emitida")
	return toSolicitudResponse(s), nil
}

// Cancel anula una solicitud pendiente con un comentario opcional.
func (uc *SolicitudUseCase) Cancel(id, comment string) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.Cancel(uc.now(), comment); err != nil {
		notify.Warning(uc.notifier, "la solicitud ya no está pendiente")
		return nil, err
	}
	if err := uc.repo.UpdateStatus(s); err != nil {
		return nil, err
	}
	uc.publishSnapshot()
	notify.Success(uc.notifier, "solicitud anulada")
	return toSolicitudResponse(s), nil
}

// ListEntities expone las entidades crudas para exportación y estadísticas.
func (uc *SolicitudUseCase) ListEntities() ([]*entity.Solicitud, error) {
	return uc.repo.List()
}

func (uc *SolicitudUseCase) findOrCreateClient(in dto.CreateSolicitudRequest) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByTaxID(in.TaxID)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}
	now := uc.now()
	client = &entity.Client{
		ID:        uuid.New().String(),
		TaxID:     in.TaxID,
		LegalName: in.LegalName,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	if uc.hub != nil {
		if list, err := uc.clientRepo.List(); err == nil {
			uc.hub.Publish(watch.CollectionClients, list)
		}
	}
	return client, nil
}

func (uc *SolicitudUseCase) findOrCreateProduct(name string) (*entity.Product, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	now := uc.now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	if uc.hub != nil {
		if list, err := uc.productRepo.List(); err == nil {
			uc.hub.Publish(watch.CollectionProducts, list)
		}
	}
	return product, nil
}

func (uc *SolicitudUseCase) publishSnapshot() {
	if uc.hub == nil {
		return
	}
	if list, err := uc.repo.List(); err == nil {
		uc.hub.Publish(watch.CollectionSolicitudes, list)
	}
}

func toSolicitudResponse(s *entity.Solicitud) *dto.SolicitudResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.LineItemResponse, 0, len(s.LineItems))
	for _, it := range s.LineItems {
		items = append(items, dto.LineItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &dto.SolicitudResponse{
		ID:                  s.ID,
		ClientID:            s.ClientID,
		ClientTaxID:         s.Client.TaxID,
		ClientLegalName:     s.Client.LegalName,
		ClientEmail:         s.Client.Email,
		Items:               items,
		ProductName:         s.ProductName,
		Amount:              s.Amount,
		TotalAmount:         s.TotalAmount,
		Status:              s.Status,
		ShippingReference:   s.ShippingReference,
		CancellationComment: s.CancellationComment,
		CreatedAt:           s.CreatedAt,
		IssuedAt:            s.IssuedAt,
		CancelledAt:         s.CancelledAt,
	}
}
