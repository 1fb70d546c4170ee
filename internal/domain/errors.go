package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateName     = errors.New("el nombre de la categoría ya existe")
	ErrCategoryNotFound  = errors.New("la categoría referenciada no existe")
	ErrCategoryInUse     = errors.New("la categoría tiene productos asociados")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que una venta pide más unidades de las
// disponibles. Available es el stock del producto al momento de la operación,
// para que el caller pueda informarlo.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d", e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
