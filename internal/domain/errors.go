package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidMessage     = errors.New("mensaje de chat vacío")
	ErrUnknownBloodType   = errors.New("tipo de sangre desconocido")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// InsufficientStockError lleva la cantidad disponible al momento del rechazo,
// para que la capa de presentación pueda informarla al usuario.
// errors.Is(err, ErrInsufficientStock) devuelve true.
type InsufficientStockError struct {
	BloodType string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: %d unidades disponibles", e.BloodType, e.Available)
}

// Is permite que el error tipado responda al sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
