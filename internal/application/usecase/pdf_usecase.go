package usecase

import (
	"context"

	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	"github.com/tu-usuario/solicitudes-api/internal/domain/repository"
)

// SolicitudPDFGenerator puerto de generación de la vista imprimible de una
// solicitud. La implementación concreta vive en infrastructure/pdf.
type SolicitudPDFGenerator interface {
	GenerateSolicitudPDF(ctx context.Context, s *entity.Solicitud) ([]byte, error)
}

// PDFUseCase carga la solicitud y delega el render en el generador.
type PDFUseCase struct {
	repo repository.SolicitudRepository
	gen  SolicitudPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.SolicitudRepository, gen SolicitudPDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, gen: gen}
}

// Generate devuelve los bytes del PDF de la solicitud indicada.
func (uc *PDFUseCase) Generate(ctx context.Context, id string) ([]byte, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return uc.gen.GenerateSolicitudPDF(ctx, s)
}
