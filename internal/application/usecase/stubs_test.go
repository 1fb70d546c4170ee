package usecase_test

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs in-memory de los puertos de persistencia. Reproducen el contrato del
// store real: constraint único sobre el nombre de categoría, FK con RESTRICT
// al borrar, decremento condicional de stock y join del nombre de categoría
// en lectura.
// ──────────────────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[string]*entity.Category
	products   *stubProductRepo // para simular el RESTRICT del FK en Delete
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*entity.Category)}
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

func (r *stubCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicateName
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) Update(c *entity.Category) error {
	for id, existing := range r.categories {
		if id != c.ID && existing.Name == c.Name {
			return domain.ErrDuplicateName
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		cp := *c
		list = append(list, &cp)
	}
	// orden por nombre ascendente, como el store real
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].Name < list[j-1].Name; j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
	return list, nil
}

func (r *stubCategoryRepo) Delete(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	if r.products != nil {
		for _, p := range r.products.order {
			if r.products.products[p].CategoryID == id {
				return nil, domain.ErrCategoryInUse
			}
		}
	}
	delete(r.categories, id)
	return c, nil
}

type stubProductRepo struct {
	products   map[string]*entity.Product
	order      []string // orden de inserción; List devuelve el inverso
	categories *stubCategoryRepo
}

func newStubProductRepo(categories *stubCategoryRepo) *stubProductRepo {
	r := &stubProductRepo{
		products:   make(map[string]*entity.Product),
		categories: categories,
	}
	if categories != nil {
		categories.products = r
	}
	return r
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

func (r *stubProductRepo) joined(p *entity.Product) *entity.Product {
	cp := *p
	if r.categories != nil {
		if c := r.categories.categories[p.CategoryID]; c != nil {
			cp.CategoryName = c.Name
		}
	}
	return &cp
}

func (r *stubProductRepo) Create(p *entity.Product) error {
	if r.categories != nil {
		if _, ok := r.categories.categories[p.CategoryID]; !ok {
			return domain.ErrCategoryNotFound
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return r.joined(p), nil
}

func (r *stubProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return nil
	}
	if r.categories != nil {
		if _, ok := r.categories.categories[p.CategoryID]; !ok {
			return domain.ErrCategoryNotFound
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) List(categoryID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.products[r.order[i]]
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		list = append(list, r.joined(p))
	}
	return list, nil
}

func (r *stubProductRepo) Delete(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return p, nil
}

func (r *stubProductRepo) DecrementStock(id string, quantity int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}

func (r *stubProductRepo) IncrementStock(id string, quantity int) (bool, error) {
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	p.Stock += quantity
	return true, nil
}

// stubStatsRepo deriva los agregados del estado actual de los stubs, con la
// misma clasificación que las consultas reales (0 / <10 / >=10).
type stubStatsRepo struct {
	categories *stubCategoryRepo
	products   *stubProductRepo
}

var _ repository.StatsRepository = (*stubStatsRepo)(nil)

func (r *stubStatsRepo) CountProducts() (int, error) {
	return len(r.products.products), nil
}

func (r *stubStatsRepo) CountCategories() (int, error) {
	return len(r.categories.categories), nil
}

func (r *stubStatsRepo) CategoryBreakdown() ([]repository.CategoryStatsResult, error) {
	byCategory := make(map[string]*repository.CategoryStatsResult)
	var ids []string
	for _, id := range r.products.order {
		p := r.products.products[id]
		row, ok := byCategory[p.CategoryID]
		if !ok {
			row = &repository.CategoryStatsResult{
				CategoryName: r.categories.categories[p.CategoryID].Name,
			}
			byCategory[p.CategoryID] = row
			ids = append(ids, p.CategoryID)
		}
		row.Count++
		row.TotalStock += p.Stock
	}
	results := make([]repository.CategoryStatsResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, *byCategory[id])
	}
	return results, nil
}

func (r *stubStatsRepo) StockSummary() (*repository.StockSummaryResult, error) {
	var s repository.StockSummaryResult
	for _, p := range r.products.products {
		s.TotalStock += p.Stock
		switch {
		case p.Stock == 0:
			s.OutOfStock++
		case p.Stock < 10:
			s.LowStock++
		default:
			s.InStock++
		}
	}
	return &s, nil
}
