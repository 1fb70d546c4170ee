package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven el producto con CategoryName resuelto vía join;
// GetByID devuelve nil, nil si el id no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve productos ordenados por fecha de creación descendente.
	// categoryID vacío lista todo el catálogo.
	List(categoryID string) ([]*entity.Product, error)
	// Delete elimina y devuelve el producto borrado; nil si no existe.
	Delete(id string) (*entity.Product, error)

	// DecrementStock descuenta quantity solo si el stock alcanza
	// (update condicional en el store, sin read-modify-write en cliente).
	// Devuelve false si no hubo match (producto inexistente o stock corto).
	DecrementStock(id string, quantity int) (bool, error)
	// IncrementStock suma quantity sin tope superior. Devuelve false si el
	// producto no existe.
	IncrementStock(id string, quantity int) (bool, error)
}
