package dto

// CategoryStatDTO conteo y stock total de una categoría con productos.
type CategoryStatDTO struct {
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
	TotalStock   int    `json:"totalStock"`
}

// StockSummaryDTO clasificación de todo el catálogo por nivel de stock.
type StockSummaryDTO struct {
	TotalStock int `json:"totalStock"`
	InStock    int `json:"inStock"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
}

// StatsResponse documento combinado de estadísticas del catálogo.
// Derivado por completo del estado actual; nunca se persiste.
type StatsResponse struct {
	TotalProducts   int               `json:"totalProducts"`
	TotalCategories int               `json:"totalCategories"`
	CategoryStats   []CategoryStatDTO `json:"categoryStats"`
	StockSummary    StockSummaryDTO   `json:"stockSummary"`
}
