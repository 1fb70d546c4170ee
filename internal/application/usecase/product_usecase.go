package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock nunca baja de
// cero y toda referencia a categoría debe resolver en el momento de
// crear/actualizar. Las ventas y reposiciones van por StockUseCase.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. Exige name, brand, model, location y category no
// vacíos, y stock explícito >= 0. La categoría debe existir; si no resuelve
// no se persiste nada.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Brand == "" || in.Model == "" || in.Location == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock == nil || *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if uuid.Validate(in.CategoryID) != nil {
		return nil, domain.ErrCategoryNotFound
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Brand:      in.Brand,
		Model:      in.Model,
		Stock:      *in.Stock,
		Location:   in.Location,
		Remarks:    in.Remarks,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	// Enriquecer con el nombre de la categoría ya resuelta (join de lectura).
	product.CategoryName = category.Name
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID con el nombre de categoría resuelto.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto; solo los campos presentes cambian. Un stock
// negativo es entrada inválida; una categoría que no resuelve, referencia
// inválida. Devuelve el registro actualizado con la categoría re-resuelta.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Brand != nil {
		if *in.Brand == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		if *in.Model == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Model = *in.Model
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Location != nil {
		if *in.Location == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Location = *in.Location
	}
	if in.Remarks != nil {
		product.Remarks = *in.Remarks
	}
	if in.CategoryID != nil {
		if uuid.Validate(*in.CategoryID) != nil {
			return nil, domain.ErrCategoryNotFound
		}
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
		product.CategoryID = *in.CategoryID
		product.CategoryName = category.Name
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve productos (más reciente primero) con su nombre de categoría.
// Un filtro de categoría malformado se ignora en silencio: lista completa.
func (uc *ProductUseCase) List(categoryFilter string) (*dto.ProductListResponse, error) {
	if categoryFilter != "" && uuid.Validate(categoryFilter) != nil {
		categoryFilter = ""
	}
	list, err := uc.repo.List(categoryFilter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Delete elimina un producto y devuelve el registro borrado, sin importar
// el estado de su categoría.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	product, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Model:        p.Model,
		Stock:        p.Stock,
		Location:     p.Location,
		Remarks:      p.Remarks,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
