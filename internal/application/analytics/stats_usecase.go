// Package analytics expone los resúmenes estadísticos como casos de uso HTTP.
// El cálculo en sí vive en internal/domain/stats: acá solo se carga la lista
// completa de solicitudes y se traduce a DTOs.
package analytics

import (
	"sort"
	"time"

	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/domain/repository"
	"github.com/tu-usuario/solicitudes-api/internal/domain/stats"
)

// StatsUseCase deriva dashboard y estadísticas por cliente/producto escaneando
// la lista completa de solicitudes en cada llamada. Sin caché: O(n) por pedido,
// suficiente para el volumen de un comercio chico.
type StatsUseCase struct {
	solicitudRepo repository.SolicitudRepository
	now           func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(solicitudRepo repository.SolicitudRepository) *StatsUseCase {
	return &StatsUseCase{solicitudRepo: solicitudRepo, now: time.Now}
}

// Dashboard resumen global: conteos por estado y ventas del mes en curso.
func (uc *StatsUseCase) Dashboard() (*dto.DashboardResponse, error) {
	list, err := uc.solicitudRepo.List()
	if err != nil {
		return nil, err
	}
	d := stats.ComputeDashboard(list, uc.now())
	return &dto.DashboardResponse{
		TotalSolicitudes: d.TotalSolicitudes,
		PendingCount:     d.PendingCount,
		IssuedCount:      d.IssuedCount,
		CancelledCount:   d.CancelledCount,
		MonthSales:       d.MonthSales,
		MonthSolicitudes: d.MonthSolicitudes,
	}, nil
}

// ClientStats resumen de un cliente por RUC del snapshot embebido.
func (uc *StatsUseCase) ClientStats(taxID string) (*dto.ClientStatsResponse, error) {
	list, err := uc.solicitudRepo.List()
	if err != nil {
		return nil, err
	}
	c := stats.ComputeClient(list, taxID)
	return &dto.ClientStatsResponse{
		TaxID:            taxID,
		TotalSolicitudes: c.TotalSolicitudes,
		PendingCount:     c.PendingCount,
		IssuedCount:      c.IssuedCount,
		CancelledCount:   c.CancelledCount,
		TotalBilled:      c.TotalBilled,
	}, nil
}

// ProductStats resumen por nombre de producto, ordenado por facturado
// descendente para el listado.
func (uc *StatsUseCase) ProductStats() ([]dto.ProductStatsItem, error) {
	list, err := uc.solicitudRepo.List()
	if err != nil {
		return nil, err
	}
	perProduct := stats.ComputePerProduct(list)
	out := make([]dto.ProductStatsItem, 0, len(perProduct))
	for _, p := range perProduct {
		out = append(out, dto.ProductStatsItem{
			Name:             p.Name,
			TotalSolicitudes: p.TotalSolicitudes,
			IssuedCount:      p.IssuedCount,
			PendingCount:     p.PendingCount,
			TotalBilled:      p.TotalBilled,
			LastSaleDate:     p.LastSaleDate,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalBilled.Equal(out[j].TotalBilled) {
			return out[i].TotalBilled.GreaterThan(out[j].TotalBilled)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
