package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
)

// ProductInput identifies one inventory product (bienes de cambio).
type ProductInput struct {
	ProductID string `json:"productID" binding:"required"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
}

// ToDomain converts the product to its domain representation.
func (p ProductInput) ToDomain() domain.Product {
	return domain.Product{
		ProductID: p.ProductID,
		Code:      p.Code,
		Name:      p.Name,
		Unit:      p.Unit,
	}
}

// MovementInput is one chronological stock event.
type MovementInput struct {
	MovementID string          `json:"movementID" binding:"required"`
	ProductID  string          `json:"productID" binding:"required"`
	Type       string          `json:"type" binding:"required,oneof=PURCHASE SALE ADJUSTMENT VALUE_ADJUSTMENT"`
	Date       time.Time       `json:"date" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	Amount     decimal.Decimal `json:"amount"`
}

// ToDomain converts the movement to its domain representation.
func (m MovementInput) ToDomain() domain.StockMovement {
	return domain.StockMovement{
		MovementID: m.MovementID,
		ProductID:  m.ProductID,
		Type:       domain.MovementType(m.Type),
		Date:       m.Date,
		Quantity:   m.Quantity,
		UnitCost:   m.UnitCost,
		Amount:     m.Amount,
	}
}

// IndexRowInput is one monthly price-index observation.
type IndexRowInput struct {
	Period string          `json:"period" binding:"required"`
	Value  decimal.Decimal `json:"value" binding:"required"`
}

// ProductsToDomain converts a batch of product inputs.
func ProductsToDomain(inputs []ProductInput) []domain.Product {
	products := make([]domain.Product, len(inputs))
	for i, input := range inputs {
		products[i] = input.ToDomain()
	}
	return products
}

// MovementsToDomain converts a batch of movement inputs.
func MovementsToDomain(inputs []MovementInput) []domain.StockMovement {
	movements := make([]domain.StockMovement, len(inputs))
	for i, input := range inputs {
		movements[i] = input.ToDomain()
	}
	return movements
}

// IndicesToDomain converts a batch of index rows.
func IndicesToDomain(inputs []IndexRowInput) []domain.IndexRow {
	rows := make([]domain.IndexRow, len(inputs))
	for i, input := range inputs {
		rows[i] = domain.IndexRow{Period: input.Period, Value: input.Value}
	}
	return rows
}

// ValuationsRequest asks for per-product stock valuations.
type ValuationsRequest struct {
	Products  []ProductInput  `json:"products" binding:"required,min=1,dive"`
	Movements []MovementInput `json:"movements" binding:"required,dive"`
	Method    string          `json:"method" binding:"required,oneof=FIFO LIFO PPP"`
	// NegativeStockPolicy overrides the server default when set.
	NegativeStockPolicy string `json:"negativeStockPolicy" binding:"omitempty,oneof=REJECT ALLOW CLAMP"`
}

// ValuationsResponse lists the recomputed valuations.
type ValuationsResponse struct {
	Method     string                    `json:"method"`
	Valuations []domain.ProductValuation `json:"valuations"`
}

// EndingInventoryRequest asks for a homogeneous-currency ending inventory
// valuation at a closing period.
type EndingInventoryRequest struct {
	Products            []ProductInput  `json:"products" binding:"required,min=1,dive"`
	Movements           []MovementInput `json:"movements" binding:"required,dive"`
	Method              string          `json:"method" binding:"required,oneof=FIFO LIFO PPP"`
	ClosingPeriod       string          `json:"closingPeriod" binding:"required"`
	Indices             []IndexRowInput `json:"indices" binding:"dive"`
	NegativeStockPolicy string          `json:"negativeStockPolicy" binding:"omitempty,oneof=REJECT ALLOW CLAMP"`
}

// ToParams converts the request to engine parameters, applying the server
// default policy when the request leaves it unset.
func (r EndingInventoryRequest) ToParams(defaultPolicy domain.NegativeStockPolicy) portssvc.EndingInventoryParams {
	policy := domain.NegativeStockPolicy(r.NegativeStockPolicy)
	if policy == "" {
		policy = defaultPolicy
	}
	return portssvc.EndingInventoryParams{
		Products:      ProductsToDomain(r.Products),
		Movements:     MovementsToDomain(r.Movements),
		Method:        domain.CostingMethod(r.Method),
		ClosingPeriod: r.ClosingPeriod,
		Indices:       IndicesToDomain(r.Indices),
		Costing:       portssvc.CostingOptions{NegativeStock: policy},
	}
}
