package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")

	// ErrInvalidTransition: la solicitud ya fue emitida o anulada; el ciclo de vida
	// es monótono y no admite reaperturas.
	ErrInvalidTransition = errors.New("la solicitud no está pendiente")

	// ErrProductReferenced: el producto aparece en solicitudes existentes y no
	// puede eliminarse.
	ErrProductReferenced = errors.New("el producto está referenciado por solicitudes existentes")

	// ErrClientReferenced: el cliente aparece en solicitudes existentes.
	ErrClientReferenced = errors.New("el cliente está referenciado por solicitudes existentes")
)
