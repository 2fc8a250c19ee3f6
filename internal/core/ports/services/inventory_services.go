package services

import (
	"context"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
)

// CostingOptions configures the inventory costing engine.
type CostingOptions struct {
	// NegativeStock decides how to treat sales exceeding available stock.
	// The zero value falls back to NegativeStockReject.
	NegativeStock domain.NegativeStockPolicy
}

// EndingInventoryParams is the full input snapshot for a homogeneous-currency
// ending inventory valuation.
type EndingInventoryParams struct {
	Products      []domain.Product
	Movements     []domain.StockMovement
	Method        domain.CostingMethod
	ClosingPeriod string // YYYY-MM
	Indices       []domain.IndexRow
	Costing       CostingOptions
}

// CostingSvc computes per-product stock valuations from movement histories.
type CostingSvc interface {
	CalculateAllValuations(ctx context.Context, products []domain.Product, movements []domain.StockMovement, method domain.CostingMethod, opts CostingOptions) ([]domain.ProductValuation, error)
}

// ReexpressionSvc reexpresses costing output into inflation-adjusted currency.
type ReexpressionSvc interface {
	ComputeEndingInventoryValuation(ctx context.Context, params EndingInventoryParams) (*domain.EndingInventoryValuation, error)
}
