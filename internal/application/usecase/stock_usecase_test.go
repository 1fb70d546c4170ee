package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests StockUseCase (venta y reposición)
// ──────────────────────────────────────────────────────────────────────────────

func setupStock(t *testing.T, stock int) (*usecase.StockUseCase, *usecase.ProductUseCase, string) {
	t.Helper()
	catRepo := newStubCategoryRepo()
	prodRepo := newStubProductRepo(catRepo)
	catUC := usecase.NewCategoryUseCase(catRepo)
	prodUC := usecase.NewProductUseCase(prodRepo, catRepo)
	stockUC := usecase.NewStockUseCase(prodRepo)

	category, err := catUC.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	in := validProduct(category.ID)
	in.Stock = &stock
	product, err := prodUC.Create(in)
	require.NoError(t, err)
	return stockUC, prodUC, product.ID
}

func TestSell_DescuentaStock(t *testing.T) {
	stockUC, _, productID := setupStock(t, 25)

	out, err := stockUC.Sell(productID, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, out.Stock)
}

// Venta exacta deja el stock en cero; la siguiente venta falla informando
// disponible = 0 y no modifica nada.
func TestSell_HastaCeroYLuegoInsuficiente(t *testing.T) {
	stockUC, prodUC, productID := setupStock(t, 5)

	out, err := stockUC.Sell(productID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)

	_, err = stockUC.Sell(productID, 1)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := prodUC.GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock) // sin cambios
}

func TestSell_CantidadMayorQueStock(t *testing.T) {
	stockUC, prodUC, productID := setupStock(t, 7)

	_, err := stockUC.Sell(productID, 8)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 7, insufficient.Available)

	got, err := prodUC.GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)
}

func TestSell_CantidadInvalida(t *testing.T) {
	stockUC, _, productID := setupStock(t, 5)

	for _, q := range []int{0, -3} {
		_, err := stockUC.Sell(productID, q)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestSell_ProductoInexistente(t *testing.T) {
	stockUC, _, _ := setupStock(t, 5)

	_, err := stockUC.Sell("018f3a2b-0000-7000-8000-000000000000", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSell_IDMalformado(t *testing.T) {
	stockUC, _, _ := setupStock(t, 5)

	_, err := stockUC.Sell("no-es-un-uuid", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestock_SumaStock(t *testing.T) {
	stockUC, _, productID := setupStock(t, 5)

	out, err := stockUC.Restock(productID, 20)
	require.NoError(t, err)
	assert.Equal(t, 25, out.Stock)

	// sin tope superior
	out, err = stockUC.Restock(productID, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 1_000_025, out.Stock)
}

func TestRestock_CantidadInvalida(t *testing.T) {
	stockUC, _, productID := setupStock(t, 5)

	for _, q := range []int{0, -1} {
		_, err := stockUC.Restock(productID, q)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRestock_ProductoInexistente(t *testing.T) {
	stockUC, _, _ := setupStock(t, 5)

	_, err := stockUC.Restock("018f3a2b-0000-7000-8000-000000000000", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La venta preserva todos los campos salvo stock, incluida la referencia
// a la categoría.
func TestSell_PreservaCampos(t *testing.T) {
	stockUC, prodUC, productID := setupStock(t, 25)

	before, err := prodUC.GetByID(productID)
	require.NoError(t, err)

	out, err := stockUC.Sell(productID, 1)
	require.NoError(t, err)
	assert.Equal(t, before.Name, out.Name)
	assert.Equal(t, before.Brand, out.Brand)
	assert.Equal(t, before.Model, out.Model)
	assert.Equal(t, before.Location, out.Location)
	assert.Equal(t, before.CategoryID, out.CategoryID)
	assert.Equal(t, before.Stock-1, out.Stock)
}
