package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
)

// Estados del ciclo de vida de una solicitud. pending es el estado inicial;
// issued y cancelled son terminales.
const (
	StatusPending   = "pending"
	StatusIssued    = "issued"
	StatusCancelled = "cancelled"
)

// ClientSnapshot copia desnormalizada del cliente al momento de crear la
// solicitud. Es un registro histórico: nunca se re-sincroniza con la colección
// de clientes aunque el cliente se corrija después.
type ClientSnapshot struct {
	TaxID     string
	LegalName string
	Email     string
}

// LineItem línea de detalle de una solicitud.
type LineItem struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // Quantity × UnitPrice
}

// Solicitud representa una solicitud de facturación.
//
// Las solicitudes nuevas llevan al menos una línea en LineItems; los registros
// legados llevan en su lugar un único producto (ProductID/ProductName/Amount).
// TotalAmount siempre es la suma de los subtotales, o el Amount legado.
type Solicitud struct {
	ID       string
	ClientID string // opcional: referencia relacional al cliente
	Client   ClientSnapshot

	LineItems []LineItem

	// Campos legados: solicitudes antiguas con un único producto sin líneas.
	ProductID   string
	ProductName string
	Amount      decimal.Decimal

	TotalAmount         decimal.Decimal
	Status              string
	ShippingReference   string
	CancellationComment string
	CreatedAt           time.Time
	IssuedAt            *time.Time
	CancelledAt         *time.Time
}

// ComputeTotal calcula el total: suma de subtotales si hay líneas, si no el
// monto único legado.
func (s *Solicitud) ComputeTotal() decimal.Decimal {
	if len(s.LineItems) == 0 {
		return s.Amount
	}
	total := decimal.Zero
	for _, it := range s.LineItems {
		total = total.Add(it.Subtotal)
	}
	return total
}

// IsTerminal indica si la solicitud ya fue emitida o anulada.
func (s *Solicitud) IsTerminal() bool {
	return s.Status == StatusIssued || s.Status == StatusCancelled
}

// Issue transiciona pending → issued y fija IssuedAt. Sobre una solicitud no
// pendiente retorna ErrInvalidTransition sin modificar nada: el ciclo de vida
// es de un solo disparo.
func (s *Solicitud) Issue(now time.Time) error {
	if s.Status != StatusPending {
		return domain.ErrInvalidTransition
	}
	s.Status = StatusIssued
	s.IssuedAt = &now
	return nil
}

// Cancel transiciona pending → cancelled, fija CancelledAt y guarda el
// comentario (puede ser vacío). Sobre una solicitud no pendiente retorna
// ErrInvalidTransition.
func (s *Solicitud) Cancel(now time.Time, comment string) error {
	if s.Status != StatusPending {
		return domain.ErrInvalidTransition
	}
	s.Status = StatusCancelled
	s.CancelledAt = &now
	s.CancellationComment = comment
	return nil
}

// PrimaryProductName nombre del producto a mostrar en listados y exports:
// el de la primera línea, o el producto único legado.
func (s *Solicitud) PrimaryProductName() string {
	if len(s.LineItems) > 0 {
		return s.LineItems[0].ProductName
	}
	return s.ProductName
}

// NewLineItem construye una línea calculando el subtotal.
func NewLineItem(productID, productName string, quantity, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    quantity.Mul(unitPrice),
	}
}
