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

var (
	ErrUnknownMethod      = errors.New("unknown costing method")
	ErrUnknownProduct     = errors.New("movement references an unknown product")
	ErrZeroQuantity       = errors.New("movement quantity must be nonzero")
	ErrValueAdjustmentQty = errors.New("value adjustment must not carry a quantity")
	ErrNegativeUnitCost   = errors.New("movement unit cost must not be negative")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrUnknownStockPolicy = errors.New("unknown negative stock policy")
)

// costingService computes per-product stock valuations under FIFO, LIFO or
// weighted-average from chronological movement histories.
type costingService struct {
	BaseService
}

// NewCostingService creates a new CostingSvc.
func NewCostingService() portssvc.CostingSvc {
	return &costingService{}
}

var _ portssvc.CostingSvc = (*costingService)(nil)

// CalculateAllValuations recomputes one valuation per product from scratch,
// processing each product's movements strictly in chronological order
// (insertion order breaks date ties). Movements referencing a product absent
// from the product list are fatal, mirroring ledger posting.
func (s *costingService) CalculateAllValuations(ctx context.Context, products []domain.Product, movements []domain.StockMovement, method domain.CostingMethod, opts portssvc.CostingOptions) ([]domain.ProductValuation, error) {
	switch method {
	case domain.MethodFIFO, domain.MethodLIFO, domain.MethodPPP:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	policy := opts.NegativeStock
	if policy == "" {
		policy = domain.NegativeStockReject
	}
	switch policy {
	case domain.NegativeStockReject, domain.NegativeStockAllow, domain.NegativeStockClamp:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStockPolicy, policy)
	}

	known := make(map[string]bool, len(products))
	byProduct := make(map[string][]domain.StockMovement)
	for _, p := range products {
		known[p.ProductID] = true
	}
	for _, m := range movements {
		if !known[m.ProductID] {
			return nil, fmt.Errorf("%w: %w: movement %s references product %s",
				apperrors.ErrNotFound, ErrUnknownProduct, m.MovementID, m.ProductID)
		}
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}

	valuations := make([]domain.ProductValuation, 0, len(products))
	for _, product := range products {
		valuation, err := s.valueProduct(product, byProduct[product.ProductID], method, policy)
		if err != nil {
			s.LogError(ctx, err, "Inventory valuation aborted",
				slog.String("product_id", product.ProductID),
				slog.String("method", string(method)))
			return nil, err
		}
		valuations = append(valuations, valuation)
	}

	s.LogDebug(ctx, "Inventory valuations computed",
		slog.Int("product_count", len(valuations)),
		slog.String("method", string(method)))
	return valuations, nil
}

// productState accumulates one product's costing pass.
type productState struct {
	layers         []domain.CostLayer
	stock          decimal.Decimal // PPP running stock (may go negative under ALLOW)
	average        decimal.Decimal // PPP moving average
	totalValue     decimal.Decimal // PPP running value
	shortfallQty   decimal.Decimal // FIFO/LIFO uncovered quantity under ALLOW
	shortfallValue decimal.Decimal
	lastUnitCost   decimal.Decimal
}

func (s *costingService) valueProduct(product domain.Product, movements []domain.StockMovement, method domain.CostingMethod, policy domain.NegativeStockPolicy) (domain.ProductValuation, error) {
	ordered := make([]domain.StockMovement, len(movements))
	copy(ordered, movements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	state := &productState{
		stock:      decimal.Zero,
		average:    decimal.Zero,
		totalValue: decimal.Zero,
	}

	for _, movement := range ordered {
		if err := s.applyMovement(state, movement, method, policy); err != nil {
			return domain.ProductValuation{}, err
		}
	}

	return s.finish(product, state, method), nil
}

func (s *costingService) applyMovement(state *productState, m domain.StockMovement, method domain.CostingMethod, policy domain.NegativeStockPolicy) error {
	switch m.Type {
	case domain.MovementValueAdjustment:
		if !m.Quantity.IsZero() {
			return fmt.Errorf("%w: %w: movement %s", apperrors.ErrValidation, ErrValueAdjustmentQty, m.MovementID)
		}
		return s.applyValueAdjustment(state, m, method)

	case domain.MovementPurchase, domain.MovementSale, domain.MovementAdjustment:
		if m.Quantity.IsZero() {
			return fmt.Errorf("%w: %w: movement %s", apperrors.ErrValidation, ErrZeroQuantity, m.MovementID)
		}
		if m.UnitCost.IsNegative() {
			return fmt.Errorf("%w: %w: movement %s", apperrors.ErrValidation, ErrNegativeUnitCost, m.MovementID)
		}

		inbound := m.Quantity.IsPositive()
		if m.Type == domain.MovementSale {
			inbound = false
		}
		if inbound {
			return s.applyInbound(state, m, method)
		}
		return s.applyOutbound(state, m, method, policy)

	default:
		return fmt.Errorf("%w: unknown movement type %q for movement %s", apperrors.ErrValidation, m.Type, m.MovementID)
	}
}

func (s *costingService) applyInbound(state *productState, m domain.StockMovement, method domain.CostingMethod) error {
	quantity := m.Quantity.Abs()
	unitCost := m.UnitCost
	// A positive adjustment without a cost enters at the current average,
	// so it does not distort the valuation.
	if m.Type == domain.MovementAdjustment && unitCost.IsZero() {
		unitCost = state.average
	}

	state.layers = append(state.layers, domain.CostLayer{
		Date:       m.Date,
		Quantity:   quantity,
		UnitCost:   unitCost,
		MovementID: m.MovementID,
	})
	state.lastUnitCost = unitCost

	if method == domain.MethodPPP {
		newStock := state.stock.Add(quantity)
		if newStock.IsPositive() {
			state.average = state.stock.Mul(state.average).
				Add(quantity.Mul(unitCost)).
				Div(newStock)
		}
		state.stock = newStock
		state.totalValue = state.stock.Mul(state.average)
	}
	return nil
}

func (s *costingService) applyOutbound(state *productState, m domain.StockMovement, method domain.CostingMethod, policy domain.NegativeStockPolicy) error {
	quantity := m.Quantity.Abs()

	available := decimal.Zero
	for _, layer := range state.layers {
		if !layer.IsValueOnly {
			available = available.Add(layer.Quantity)
		}
	}
	if method == domain.MethodPPP {
		available = state.stock
	}

	uncovered := decimal.Zero
	if quantity.GreaterThan(available) {
		switch policy {
		case domain.NegativeStockReject:
			return fmt.Errorf("%w: %w for product movement %s: available %s, requested %s",
				apperrors.ErrValidation, ErrInsufficientStock, m.MovementID, available.String(), quantity.String())
		case domain.NegativeStockClamp:
			quantity = available
			if quantity.IsNegative() {
				quantity = decimal.Zero
			}
		case domain.NegativeStockAllow:
			uncovered = quantity.Sub(available)
			if available.IsNegative() {
				uncovered = quantity
			}
			quantity = quantity.Sub(uncovered)
		}
	}

	s.consumeLayers(state, quantity, method)

	if method == domain.MethodPPP {
		// Weighted average: sales shrink stock and value, never the average.
		state.stock = state.stock.Sub(quantity).Sub(uncovered)
		state.totalValue = state.stock.Mul(state.average)
		return nil
	}

	if uncovered.IsPositive() {
		cost := state.lastUnitCost
		state.shortfallQty = state.shortfallQty.Add(uncovered)
		state.shortfallValue = state.shortfallValue.Add(uncovered.Mul(cost))
	}
	return nil
}

// consumeLayers eats quantity from the open lots: head first for FIFO, tail
// first for LIFO. PPP uses the FIFO order purely for its audit layer view.
// Value-only layers are never consumed.
func (s *costingService) consumeLayers(state *productState, quantity decimal.Decimal, method domain.CostingMethod) {
	remaining := quantity

	indexes := make([]int, 0, len(state.layers))
	for i := range state.layers {
		if !state.layers[i].IsValueOnly {
			indexes = append(indexes, i)
		}
	}
	if method == domain.MethodLIFO {
		for l, r := 0, len(indexes)-1; l < r; l, r = l+1, r-1 {
			indexes[l], indexes[r] = indexes[r], indexes[l]
		}
	}

	for _, i := range indexes {
		if remaining.IsZero() || remaining.IsNegative() {
			break
		}
		layer := &state.layers[i]
		if layer.Quantity.IsZero() {
			continue
		}
		consumed := decimal.Min(layer.Quantity, remaining)
		layer.Quantity = layer.Quantity.Sub(consumed)
		remaining = remaining.Sub(consumed)
		state.lastUnitCost = layer.UnitCost
	}

	// Drop exhausted lots from the active view.
	active := state.layers[:0]
	for _, layer := range state.layers {
		if layer.IsValueOnly || layer.Quantity.IsPositive() {
			active = append(active, layer)
		}
	}
	state.layers = active
}

func (s *costingService) applyValueAdjustment(state *productState, m domain.StockMovement, method domain.CostingMethod) error {
	// Value-only revaluations are tracked as their own layer rather than
	// prorated over the existing lots, which keeps each lot's historical
	// cost intact for audit and reexpression.
	state.layers = append(state.layers, domain.CostLayer{
		Date:        m.Date,
		Quantity:    decimal.Zero,
		UnitCost:    decimal.Zero,
		MovementID:  m.MovementID,
		IsValueOnly: true,
		Value:       m.Amount,
	})

	if method == domain.MethodPPP {
		state.totalValue = state.totalValue.Add(m.Amount)
		if state.stock.IsPositive() {
			state.average = state.totalValue.Div(state.stock)
		}
	}
	return nil
}

func (s *costingService) finish(product domain.Product, state *productState, method domain.CostingMethod) domain.ProductValuation {
	valuation := domain.ProductValuation{
		ProductID: product.ProductID,
		Method:    method,
		Layers:    state.layers,
	}

	if method == domain.MethodPPP {
		valuation.CurrentStock = state.stock
		valuation.AverageCost = state.average
		valuation.TotalValue = state.totalValue
		return valuation
	}

	stock := decimal.Zero
	total := decimal.Zero
	for _, layer := range state.layers {
		stock = stock.Add(layer.Quantity)
		total = total.Add(layer.LayerValue())
	}
	valuation.CurrentStock = stock.Sub(state.shortfallQty)
	valuation.TotalValue = total.Sub(state.shortfallValue)
	if !valuation.CurrentStock.IsZero() {
		valuation.AverageCost = valuation.TotalValue.Div(valuation.CurrentStock)
	} else {
		valuation.AverageCost = decimal.Zero
	}
	return valuation
}
