package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/application/notify"
	"github.com/tu-usuario/solicitudes-api/internal/application/watch"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	"github.com/tu-usuario/solicitudes-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El nombre es la clave de
// negocio: el almacén compara por igualdad exacta, el matching insensible a
// mayúsculas se hace acá sobre la lista completa.
type ProductUseCase struct {
	repo          repository.ProductRepository
	solicitudRepo repository.SolicitudRepository
	hub           *watch.Hub
	notifier      notify.Notifier
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, solicitudRepo repository.SolicitudRepository, hub *watch.Hub, notifier notify.Notifier) *ProductUseCase {
	return &ProductUseCase{repo: repo, solicitudRepo: solicitudRepo, hub: hub, notifier: notifier}
}

// Create crea un producto, rechazando nombres duplicados (insensible a
// mayúsculas). Chequeo→insert no transaccional; carrera conocida cerrada por
// el índice único en esta implementación.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.findByNameFold(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.publishSnapshot()
	notify.Success(uc.notifier, "producto creado: "+product.Name)
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Rename renombra un producto vía edición explícita. Las solicitudes que ya lo
// referencian conservan el nombre viejo en su snapshot: es registro histórico.
func (uc *ProductUseCase) Rename(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	other, err := uc.findByNameFold(name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	product.Name = name
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.publishSnapshot()
	return toProductResponse(product), nil
}

// Delete elimina un producto solo si ninguna solicitud lo referencia: primero
// se cuentan las referencias y, si hay alguna, se rechaza localmente sin
// emitir el delete.
//
// Chequeo y delete no son atómicos: una solicitud creada entre ambos puede
// dejar una referencia colgando. Carrera conocida, no corregida.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	n, err := uc.solicitudRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if n > 0 {
		notify.Error(uc.notifier, "no se puede eliminar: el producto tiene solicitudes asociadas")
		return domain.ErrProductReferenced
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.publishSnapshot()
	notify.Success(uc.notifier, "producto eliminado: "+product.Name)
	return nil
}

// findByNameFold trae la lista completa y compara insensible a mayúsculas,
// igual que hacía el formulario original sobre la colección descargada.
func (uc *ProductUseCase) findByNameFold(name string) (*entity.Product, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (uc *ProductUseCase) publishSnapshot() {
	if uc.hub == nil {
		return
	}
	if list, err := uc.repo.List(); err == nil {
		uc.hub.Publish(watch.CollectionProducts, list)
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
