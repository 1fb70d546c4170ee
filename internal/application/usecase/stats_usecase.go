package usecase

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StatsUseCase genera el documento de estadísticas del catálogo.
//
// Fuente de datos: StatsRepository (consultas read-only agregadas en el
// store). No toca los repos de escritura; no muta nada.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetStats construye el StatsResponse con las cuatro consultas en paralelo:
//  1. CountProducts      → TotalProducts
//  2. CountCategories    → TotalCategories
//  3. CategoryBreakdown  → CategoryStats (solo categorías con productos)
//  4. StockSummary       → StockSummary (buckets 0 / <10 / >=10)
func (uc *StatsUseCase) GetStats() (*dto.StatsResponse, error) {
	type countResult struct {
		n   int
		err error
	}
	type breakdownResult struct {
		rows []repository.CategoryStatsResult
		err  error
	}
	type summaryResult struct {
		s   *repository.StockSummaryResult
		err error
	}

	productsCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)
	breakdownCh := make(chan breakdownResult, 1)
	summaryCh := make(chan summaryResult, 1)

	go func() {
		n, err := uc.statsRepo.CountProducts()
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountCategories()
		categoriesCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.statsRepo.CategoryBreakdown()
		breakdownCh <- breakdownResult{rows, err}
	}()
	go func() {
		s, err := uc.statsRepo.StockSummary()
		summaryCh <- summaryResult{s, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	breakdown := <-breakdownCh
	summary := <-summaryCh

	if products.err != nil {
		return nil, fmt.Errorf("stats: total de productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("stats: total de categorías: %w", categories.err)
	}
	if breakdown.err != nil {
		return nil, fmt.Errorf("stats: desglose por categoría: %w", breakdown.err)
	}
	if summary.err != nil {
		return nil, fmt.Errorf("stats: resumen de stock: %w", summary.err)
	}

	stats := make([]dto.CategoryStatDTO, 0, len(breakdown.rows))
	for _, row := range breakdown.rows {
		stats = append(stats, dto.CategoryStatDTO{
			CategoryName: row.CategoryName,
			Count:        row.Count,
			TotalStock:   row.TotalStock,
		})
	}

	return &dto.StatsResponse{
		TotalProducts:   products.n,
		TotalCategories: categories.n,
		CategoryStats:   stats,
		StockSummary: dto.StockSummaryDTO{
			TotalStock: summary.s.TotalStock,
			InStock:    summary.s.InStock,
			LowStock:   summary.s.LowStock,
			OutOfStock: summary.s.OutOfStock,
		},
	}, nil
}
