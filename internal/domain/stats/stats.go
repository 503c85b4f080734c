// Package stats deriva estadísticas a partir de la lista completa de
// solicitudes ya cargada en memoria. Todas las funciones son puras, O(n) sobre
// la lista y se recalculan en cada llamada; no hay caché.
package stats

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
)

// Dashboard resumen global para el tablero principal.
type Dashboard struct {
	TotalSolicitudes int
	PendingCount     int
	IssuedCount      int
	CancelledCount   int
	// MonthSales suma de montos emitidos cuyo IssuedAt cae en el mes calendario
	// de referencia.
	MonthSales       decimal.Decimal
	MonthSolicitudes int // creadas en el mes de referencia
}

// ClientSummary estadísticas de un cliente, por RUC del snapshot embebido.
type ClientSummary struct {
	TotalSolicitudes int
	PendingCount     int
	IssuedCount      int
	CancelledCount   int
	TotalBilled      decimal.Decimal // solo solicitudes emitidas
}

// ProductSummary estadísticas de un producto, agrupadas por nombre.
type ProductSummary struct {
	Name             string
	TotalSolicitudes int
	IssuedCount      int
	PendingCount     int
	TotalBilled      decimal.Decimal
	LastSaleDate     *time.Time // IssuedAt más reciente
}

// ComputeDashboard calcula el resumen global. now define el mes calendario de
// referencia para MonthSales y MonthSolicitudes.
func ComputeDashboard(solicitudes []*entity.Solicitud, now time.Time) Dashboard {
	d := Dashboard{
		TotalSolicitudes: len(solicitudes),
		MonthSales:       decimal.Zero,
	}
	for _, s := range solicitudes {
		switch s.Status {
		case entity.StatusPending:
			d.PendingCount++
		case entity.StatusIssued:
			d.IssuedCount++
		case entity.StatusCancelled:
			d.CancelledCount++
		}
		if sameMonth(s.CreatedAt, now) {
			d.MonthSolicitudes++
		}
		if s.Status == entity.StatusIssued && s.IssuedAt != nil && sameMonth(*s.IssuedAt, now) {
			d.MonthSales = d.MonthSales.Add(s.TotalAmount)
		}
	}
	return d
}

// ComputeClient calcula el resumen de un cliente. Matchea contra el RUC del
// snapshot embebido en cada solicitud, no contra la colección de clientes.
func ComputeClient(solicitudes []*entity.Solicitud, taxID string) ClientSummary {
	c := ClientSummary{TotalBilled: decimal.Zero}
	for _, s := range solicitudes {
		if s.Client.TaxID != taxID {
			continue
		}
		c.TotalSolicitudes++
		switch s.Status {
		case entity.StatusPending:
			c.PendingCount++
		case entity.StatusIssued:
			c.IssuedCount++
			c.TotalBilled = c.TotalBilled.Add(s.TotalAmount)
		case entity.StatusCancelled:
			c.CancelledCount++
		}
	}
	return c
}

// ComputePerProduct acumula en una sola pasada un resumen por nombre de
// producto. La clave es el NOMBRE, no el id: dos productos distintos con el
// mismo nombre colapsan en una sola entrada. Comportamiento heredado del
// modelo de datos y preservado a propósito.
func ComputePerProduct(solicitudes []*entity.Solicitud) map[string]*ProductSummary {
	out := make(map[string]*ProductSummary)

	accumulate := func(name string, s *entity.Solicitud, amount decimal.Decimal) {
		p, ok := out[name]
		if !ok {
			p = &ProductSummary{Name: name, TotalBilled: decimal.Zero}
			out[name] = p
		}
		p.TotalSolicitudes++
		switch s.Status {
		case entity.StatusPending:
			p.PendingCount++
		case entity.StatusIssued:
			p.IssuedCount++
			p.TotalBilled = p.TotalBilled.Add(amount)
			if s.IssuedAt != nil && (p.LastSaleDate == nil || s.IssuedAt.After(*p.LastSaleDate)) {
				t := *s.IssuedAt
				p.LastSaleDate = &t
			}
		}
	}

	for _, s := range solicitudes {
		if len(s.LineItems) == 0 {
			if s.ProductName != "" {
				accumulate(s.ProductName, s, s.Amount)
			}
			continue
		}
		for _, it := range s.LineItems {
			accumulate(it.ProductName, s, it.Subtotal)
		}
	}
	return out
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
