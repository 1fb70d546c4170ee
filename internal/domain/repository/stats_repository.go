package repository

// CategoryStatsResult resume los productos de una categoría: cuántos hay
// y cuánto stock suman. Solo aparecen categorías con al menos un producto.
type CategoryStatsResult struct {
	CategoryName string
	Count        int
	TotalStock   int
}

// StockSummaryResult clasifica cada producto en exactamente un bucket:
// OutOfStock si stock == 0, LowStock si 0 < stock < 10, InStock si stock >= 10.
type StockSummaryResult struct {
	TotalStock int
	InStock    int
	LowStock   int
	OutOfStock int
}

// StatsRepository define el puerto de consultas agregadas de solo lectura.
// Los agregados se calculan en el store (GROUP BY / sumas condicionales),
// nunca se materializan ni cachean.
type StatsRepository interface {
	CountProducts() (int, error)
	CountCategories() (int, error)
	CategoryBreakdown() ([]CategoryStatsResult, error)
	StockSummary() (*StockSummaryResult, error)
}
