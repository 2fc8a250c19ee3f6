package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
)

// ErrClosingPeriodMissing is returned when no closing period is supplied.
var ErrClosingPeriodMissing = errors.New("closing period is required")

var oneHundred = decimal.NewFromInt(100)

// reexpressionService converts historical-cost valuations into closing-date
// homogeneous currency using monthly price indices.
type reexpressionService struct {
	BaseService
	costingSvc portssvc.CostingSvc
}

// NewReexpressionService creates a new ReexpressionSvc on top of the costing
// engine.
func NewReexpressionService(costingSvc portssvc.CostingSvc) portssvc.ReexpressionSvc {
	return &reexpressionService{costingSvc: costingSvc}
}

var _ portssvc.ReexpressionSvc = (*reexpressionService)(nil)

// ComputeEndingInventoryValuation runs the costing engine and reexpresses the
// surviving cost layers into the closing period's currency.
//
// FIFO/LIFO layers are reexpressed independently from their own origin month.
// For weighted-average a single origin date does not exist, so the underlying
// layers are reexpressed individually and collapsed into one blended
// coefficient applied to the average cost. The blend is a deliberate
// approximation and the synthetic layer is tagged as such.
//
// A missing index is a data gap, not an error: the affected layer keeps
// coefficient one, the period is recorded in MissingPeriods and HasIndices
// goes false so the caller can warn the user.
func (s *reexpressionService) ComputeEndingInventoryValuation(ctx context.Context, params portssvc.EndingInventoryParams) (*domain.EndingInventoryValuation, error) {
	if params.ClosingPeriod == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrClosingPeriodMissing)
	}

	valuations, err := s.costingSvc.CalculateAllValuations(ctx, params.Products, params.Movements, params.Method, params.Costing)
	if err != nil {
		return nil, err
	}

	table := domain.NewIndexTable(params.Indices)
	missing := make(map[string]bool)

	result := &domain.EndingInventoryValuation{
		ClosingPeriod: params.ClosingPeriod,
		Method:        params.Method,
		Products:      make([]domain.ProductReexpression, 0, len(valuations)),
		TotalQuantity: decimal.Zero,
		TotalOrigin:   decimal.Zero,
		TotalHomog:    decimal.Zero,
	}

	for _, valuation := range valuations {
		product := s.reexpressProduct(valuation, params.ClosingPeriod, table, missing)
		result.TotalQuantity = result.TotalQuantity.Add(product.CurrentStock)
		result.TotalOrigin = result.TotalOrigin.Add(product.TotalOrigin)
		result.TotalHomog = result.TotalHomog.Add(product.TotalHomog)
		result.Products = append(result.Products, product)
	}

	result.Adjustment = result.TotalHomog.Sub(result.TotalOrigin)
	if result.TotalOrigin.IsZero() {
		result.AdjustmentPct = decimal.Zero
	} else {
		result.AdjustmentPct = result.Adjustment.Div(result.TotalOrigin).Mul(oneHundred)
	}

	result.MissingPeriods = make([]string, 0, len(missing))
	for period := range missing {
		result.MissingPeriods = append(result.MissingPeriods, period)
	}
	sort.Strings(result.MissingPeriods)
	result.HasIndices = len(table) > 0 && len(result.MissingPeriods) == 0

	if len(result.MissingPeriods) > 0 {
		s.LogInfo(ctx, "Price index gaps encountered during reexpression",
			slog.String("closing_period", params.ClosingPeriod),
			slog.Any("missing_periods", result.MissingPeriods))
	}
	s.LogDebug(ctx, "Ending inventory reexpressed",
		slog.String("closing_period", params.ClosingPeriod),
		slog.String("adjustment", result.Adjustment.String()))
	return result, nil
}

func (s *reexpressionService) reexpressProduct(valuation domain.ProductValuation, closingPeriod string, table domain.IndexTable, missing map[string]bool) domain.ProductReexpression {
	product := domain.ProductReexpression{
		ProductID:    valuation.ProductID,
		Method:       valuation.Method,
		CurrentStock: valuation.CurrentStock,
		TotalOrigin:  decimal.Zero,
		TotalHomog:   decimal.Zero,
	}

	reexpressed := make([]domain.HomogeneousLayer, 0, len(valuation.Layers))
	for _, layer := range valuation.Layers {
		reexpressed = append(reexpressed, s.reexpressLayer(layer, closingPeriod, table, missing))
	}

	if valuation.Method == domain.MethodPPP {
		// Blend: value-weighted coefficient over the underlying lots,
		// applied uniformly to the moving average.
		layerOrigin := decimal.Zero
		layerHomog := decimal.Zero
		for _, layer := range reexpressed {
			layerOrigin = layerOrigin.Add(layer.TotalOrigin)
			layerHomog = layerHomog.Add(layer.TotalHomog)
		}
		blendedCoef := decimal.NewFromInt(1)
		if !layerOrigin.IsZero() {
			blendedCoef = layerHomog.Div(layerOrigin)
		}

		unitCostHomog := valuation.AverageCost.Mul(blendedCoef)
		blended := domain.HomogeneousLayer{
			CostLayer: domain.CostLayer{
				Quantity: valuation.CurrentStock,
				UnitCost: valuation.AverageCost,
			},
			ClosingPeriod: closingPeriod,
			Coef:          blendedCoef,
			UnitCostHomog: unitCostHomog,
			TotalOrigin:   valuation.TotalValue,
			TotalHomog:    valuation.TotalValue.Mul(blendedCoef),
			IsBlended:     true,
		}
		product.Layers = []domain.HomogeneousLayer{blended}
		product.TotalOrigin = blended.TotalOrigin
		product.TotalHomog = blended.TotalHomog
		return product
	}

	product.Layers = reexpressed
	for _, layer := range reexpressed {
		product.TotalOrigin = product.TotalOrigin.Add(layer.TotalOrigin)
		product.TotalHomog = product.TotalHomog.Add(layer.TotalHomog)
	}
	return product
}

func (s *reexpressionService) reexpressLayer(layer domain.CostLayer, closingPeriod string, table domain.IndexTable, missing map[string]bool) domain.HomogeneousLayer {
	originPeriod := domain.PeriodOf(layer.Date)

	out := domain.HomogeneousLayer{
		CostLayer:     layer,
		OriginPeriod:  originPeriod,
		ClosingPeriod: closingPeriod,
		Coef:          decimal.NewFromInt(1),
		TotalOrigin:   layer.LayerValue(),
	}

	originIndex, originOK := table[originPeriod]
	closingIndex, closingOK := table[closingPeriod]
	if !originOK {
		missing[originPeriod] = true
	}
	if !closingOK {
		missing[closingPeriod] = true
	}
	if originOK && closingOK {
		out.OriginIndex = originIndex
		out.ClosingIndex = closingIndex
		out.Coef = closingIndex.Div(originIndex)
	}

	out.UnitCostHomog = layer.UnitCost.Mul(out.Coef)
	out.TotalHomog = out.TotalOrigin.Mul(out.Coef)
	return out
}
