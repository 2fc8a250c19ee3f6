package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
	"github.com/sumaconta/sumaconta_backend/internal/core/services"
)

func newReexpressionService() portssvc.ReexpressionSvc {
	return services.NewReexpressionService(services.NewCostingService())
}

func indices(rows ...domain.IndexRow) []domain.IndexRow {
	return rows
}

func index(period, value string) domain.IndexRow {
	return domain.IndexRow{Period: period, Value: dec(value)}
}

func TestReexpression_FIFOLayerCoefficient(t *testing.T) {
	result, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products:      mercaderia,
			Movements:     []domain.StockMovement{purchase("m1", 1, "10", "10")},
			Method:        domain.MethodFIFO,
			ClosingPeriod: "2023-06",
			Indices:       indices(index("2023-03", "100"), index("2023-06", "150")),
		})
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	product := result.Products[0]
	require.Len(t, product.Layers, 1)
	layer := product.Layers[0]

	assert.Equal(t, "2023-03", layer.OriginPeriod)
	assert.True(t, layer.Coef.Equal(dec("1.5")))
	assert.True(t, layer.UnitCostHomog.Equal(dec("15")))
	assert.True(t, layer.TotalOrigin.Equal(dec("100")))
	assert.True(t, layer.TotalHomog.Equal(dec("150")))

	assert.True(t, result.TotalOrigin.Equal(dec("100")))
	assert.True(t, result.TotalHomog.Equal(dec("150")))
	assert.True(t, result.Adjustment.Equal(dec("50")))
	assert.True(t, result.AdjustmentPct.Equal(dec("50")))
	assert.True(t, result.HasIndices)
	assert.Empty(t, result.MissingPeriods)
}

func TestReexpression_LayersKeepOwnOriginMonth(t *testing.T) {
	result, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products: mercaderia,
			Movements: []domain.StockMovement{
				purchase("m1", 1, "10", "10"),
				{MovementID: "m2", ProductID: "p1", Type: domain.MovementPurchase,
					Date: day(1).AddDate(0, 2, 0), Quantity: dec("10"), UnitCost: dec("12")},
			},
			Method:        domain.MethodFIFO,
			ClosingPeriod: "2023-06",
			Indices: indices(
				index("2023-03", "100"),
				index("2023-05", "120"),
				index("2023-06", "150"),
			),
		})
	require.NoError(t, err)

	product := result.Products[0]
	require.Len(t, product.Layers, 2)
	assert.True(t, product.Layers[0].Coef.Equal(dec("1.5")))
	assert.True(t, product.Layers[1].Coef.Equal(dec("1.25")))
	// 100*1.5 + 120*1.25 = 300 homogeneous against 220 origin.
	assert.True(t, result.TotalOrigin.Equal(dec("220")))
	assert.True(t, result.TotalHomog.Equal(dec("300")))
}

func TestReexpression_MissingIndexKeepsCoefOne(t *testing.T) {
	result, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products:      mercaderia,
			Movements:     []domain.StockMovement{purchase("m1", 1, "10", "10")},
			Method:        domain.MethodFIFO,
			ClosingPeriod: "2023-06",
			Indices:       indices(index("2023-06", "150")),
		})
	require.NoError(t, err)

	layer := result.Products[0].Layers[0]
	assert.True(t, layer.Coef.Equal(dec("1")))
	assert.True(t, layer.TotalHomog.Equal(layer.TotalOrigin))
	assert.False(t, result.HasIndices)
	assert.Equal(t, []string{"2023-03"}, result.MissingPeriods)
	assert.True(t, result.Adjustment.IsZero())
}

func TestReexpression_NoIndicesAtAll(t *testing.T) {
	result, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products:      mercaderia,
			Movements:     []domain.StockMovement{purchase("m1", 1, "10", "10")},
			Method:        domain.MethodFIFO,
			ClosingPeriod: "2023-06",
		})
	require.NoError(t, err)

	assert.False(t, result.HasIndices)
	assert.True(t, result.TotalHomog.Equal(result.TotalOrigin))
}

func TestReexpression_PPPBlendedCoefficient(t *testing.T) {
	result, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products: mercaderia,
			Movements: []domain.StockMovement{
				purchase("m1", 1, "10", "10"),
				{MovementID: "m2", ProductID: "p1", Type: domain.MovementPurchase,
					Date: day(1).AddDate(0, 2, 0), Quantity: dec("10"), UnitCost: dec("10")},
			},
			Method:        domain.MethodPPP,
			ClosingPeriod: "2023-06",
			Indices: indices(
				index("2023-03", "100"),
				index("2023-05", "125"),
				index("2023-06", "150"),
			),
		})
	require.NoError(t, err)

	product := result.Products[0]
	require.Len(t, product.Layers, 1, "weighted average collapses to one blended layer")
	blended := product.Layers[0]

	// Lot coefficients 1.5 and 1.2, equal values: blend is 1.35.
	assert.True(t, blended.IsBlended)
	assert.True(t, blended.Coef.Equal(dec("1.35")))
	assert.True(t, blended.UnitCostHomog.Equal(dec("13.5")))
	assert.True(t, product.TotalOrigin.Equal(dec("200")))
	assert.True(t, product.TotalHomog.Equal(dec("270")))
}

func TestReexpression_ClosingPeriodRequired(t *testing.T) {
	_, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products: mercaderia,
			Method:   domain.MethodFIFO,
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrClosingPeriodMissing)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReexpression_CostingErrorPropagates(t *testing.T) {
	_, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products:      mercaderia,
			Movements:     []domain.StockMovement{sale("m1", 1, "5")},
			Method:        domain.MethodFIFO,
			ClosingPeriod: "2023-06",
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestReexpression_ZeroStockHasZeroPct(t *testing.T) {
	result, err := newReexpressionService().ComputeEndingInventoryValuation(context.Background(),
		portssvc.EndingInventoryParams{
			Products: mercaderia,
			Movements: []domain.StockMovement{
				purchase("m1", 1, "10", "10"),
				sale("m2", 2, "10"),
			},
			Method:        domain.MethodFIFO,
			ClosingPeriod: "2023-06",
			Indices:       indices(index("2023-03", "100"), index("2023-06", "150")),
		})
	require.NoError(t, err)

	assert.True(t, result.TotalOrigin.IsZero())
	assert.True(t, result.AdjustmentPct.IsZero())
}
