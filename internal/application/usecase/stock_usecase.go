package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockUseCase transiciones de stock: venta (decremento con guarda de
// suficiencia) y reposición (incremento sin tope). El decremento se emite
// como update condicional al store ("stock = stock - q WHERE stock >= q"),
// así dos ventas concurrentes sobre el mismo producto no pueden dejar el
// stock en negativo ni perder una escritura.
type StockUseCase struct {
	repo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Sell descuenta quantity unidades del producto. quantity debe ser > 0.
// Si el stock no alcanza devuelve InsufficientStockError con el disponible
// actual y no modifica nada.
func (uc *StockUseCase) Sell(productID string, quantity int) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if uuid.Validate(productID) != nil {
		return nil, domain.ErrNotFound
	}
	ok, err := uc.repo.DecrementStock(productID, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Sin match: o el producto no existe, o el stock no alcanza.
		product, err := uc.repo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.InsufficientStockError{Available: product.Stock}
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Restock suma quantity unidades al producto. quantity debe ser > 0.
// No hay tope superior de stock.
func (uc *StockUseCase) Restock(productID string, quantity int) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if uuid.Validate(productID) != nil {
		return nil, domain.ErrNotFound
	}
	ok, err := uc.repo.IncrementStock(productID, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}
