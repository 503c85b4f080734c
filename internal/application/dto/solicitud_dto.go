package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de una solicitud nueva. El producto se referencia por
// nombre; si no existe se crea.
type LineItemRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSolicitudRequest alta de solicitud. El cliente se identifica por RUC;
// si no existe se crea con los datos enviados.
type CreateSolicitudRequest struct {
	TaxID             string            `json:"tax_id"`
	LegalName         string            `json:"legal_name"`
	Email             string            `json:"email"`
	ShippingReference string            `json:"shipping_reference"`
	Items             []LineItemRequest `json:"items"`
}

// CancelSolicitudRequest anulación con comentario opcional.
type CancelSolicitudRequest struct {
	Comment string `json:"comment"`
}

// LineItemResponse línea de detalle en respuestas.
type LineItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SolicitudResponse representación HTTP de una solicitud. Client es el snapshot
// tomado al crearla, no el cliente vivo.
type SolicitudResponse struct {
	ID                  string             `json:"id"`
	ClientID            string             `json:"client_id,omitempty"`
	ClientTaxID         string             `json:"client_tax_id"`
	ClientLegalName     string             `json:"client_legal_name"`
	ClientEmail         string             `json:"client_email"`
	Items               []LineItemResponse `json:"items,omitempty"`
	ProductName         string             `json:"product_name,omitempty"` // legado
	Amount              decimal.Decimal    `json:"amount,omitempty"`       // legado
	TotalAmount         decimal.Decimal    `json:"total_amount"`
	Status              string             `json:"status"`
	ShippingReference   string             `json:"shipping_reference,omitempty"`
	CancellationComment string             `json:"cancellation_comment,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	IssuedAt            *time.Time         `json:"issued_at,omitempty"`
	CancelledAt         *time.Time         `json:"cancelled_at,omitempty"`
}
