// Package export arma el snapshot tabular CSV de solicitudes que descarga el
// back-office. Cada campo va entre comillas dobles, incluso los numéricos:
// el formato es un contrato con planillas existentes y se preserva tal cual,
// por eso no se usa encoding/csv (que solo cita cuando hace falta).
package export

import (
	"strings"
	"time"

	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	"github.com/tu-usuario/solicitudes-api/pkg/format"
)

const header = `"ID","Cliente","RUC","Email","Producto","Monto","Estado","Fecha Solicitud","Fecha Emision"`

const dateLayout = "02/01/2006 15:04"

// SolicitudesCSV genera el CSV completo, una fila por solicitud, en el orden
// recibido (más reciente primero si viene del repositorio).
func SolicitudesCSV(solicitudes []*entity.Solicitud) []byte {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, s := range solicitudes {
		row := []string{
			s.ID,
			s.Client.LegalName,
			s.Client.TaxID,
			s.Client.Email,
			s.PrimaryProductName(),
			format.AmountGs(s.TotalAmount),
			statusLabel(s.Status),
			s.CreatedAt.Format(dateLayout),
			formatOptional(s.IssuedAt),
		}
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func statusLabel(status string) string {
	switch status {
	case entity.StatusPending:
		return "Pendiente"
	case entity.StatusIssued:
		return "Emitida"
	case entity.StatusCancelled:
		return "Anulada"
	default:
		return status
	}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
