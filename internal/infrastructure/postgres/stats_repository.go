package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura sobre el catálogo.
// Los agregados (conteos, sumas, buckets) se calculan en el servidor;
// nada se materializa ni se cachea.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountProducts devuelve el total de productos del catálogo.
func (r *StatsRepo) CountProducts() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountProducts: %w", err)
	}
	return n, nil
}

// CountCategories devuelve el total de categorías registradas.
func (r *StatsRepo) CountCategories() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountCategories: %w", err)
	}
	return n, nil
}

// CategoryBreakdown agrupa productos por categoría con conteo y stock total.
// Las categorías sin productos no aparecen (JOIN, no LEFT JOIN).
func (r *StatsRepo) CategoryBreakdown() ([]repository.CategoryStatsResult, error) {
	const query = `
	SELECT
	    c.name          AS category_name,
	    COUNT(*)        AS count,
	    SUM(p.stock)    AS total_stock
	FROM products p
	JOIN categories c ON c.id = p.category_id
	GROUP BY c.id, c.name`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stats.CategoryBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryStatsResult
	for rows.Next() {
		var row repository.CategoryStatsResult
		if err := rows.Scan(&row.CategoryName, &row.Count, &row.TotalStock); err != nil {
			return nil, fmt.Errorf("stats.CategoryBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockSummary clasifica cada producto en exactamente un bucket:
// stock = 0 → out_of_stock; 0 < stock < 10 → low_stock; stock >= 10 → in_stock.
// COALESCE devuelve ceros cuando el catálogo está vacío.
func (r *StatsRepo) StockSummary() (*repository.StockSummaryResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(stock), 0)                                  AS total_stock,
	    COUNT(*) FILTER (WHERE stock >= 10)                      AS in_stock,
	    COUNT(*) FILTER (WHERE stock > 0 AND stock < 10)         AS low_stock,
	    COUNT(*) FILTER (WHERE stock = 0)                        AS out_of_stock
	FROM products`

	var s repository.StockSummaryResult
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&s.TotalStock, &s.InStock, &s.LowStock, &s.OutOfStock,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.StockSummary: %w", err)
	}
	return &s, nil
}
