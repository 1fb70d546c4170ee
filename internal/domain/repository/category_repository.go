package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Create y Update devuelven domain.ErrDuplicateName si el nombre ya existe
// (constraint único del store, sin pre-chequeo en cliente).
// Delete devuelve domain.ErrCategoryInUse si hay productos que la referencian.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List devuelve todas las categorías ordenadas por nombre ascendente.
	List() ([]*entity.Category, error)
	// Delete elimina y devuelve la categoría borrada; nil si no existe.
	Delete(id string) (*entity.Category, error)
}
