package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostingMethod selects the cost-allocation strategy for inventory valuation.
type CostingMethod string

const (
	MethodFIFO CostingMethod = "FIFO"
	MethodLIFO CostingMethod = "LIFO"
	// MethodPPP is the weighted-average method (precio promedio ponderado).
	MethodPPP CostingMethod = "PPP"
)

// MovementType enumerates the supported stock events.
type MovementType string

const (
	MovementPurchase MovementType = "PURCHASE"
	MovementSale     MovementType = "SALE"
	// MovementAdjustment is a signed physical stock correction. Positive
	// quantities enter at the given unit cost, negative quantities are
	// consumed like a sale.
	MovementAdjustment MovementType = "ADJUSTMENT"
	// MovementValueAdjustment revalues stock on hand without changing any
	// quantity: Amount is added to the product's total value.
	MovementValueAdjustment MovementType = "VALUE_ADJUSTMENT"
)

// Product is the inventory master-data identity (bienes de cambio).
type Product struct {
	ProductID string `json:"productID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
}

// StockMovement is one chronological stock event for a product.
// Quantity must be nonzero for PURCHASE/SALE/ADJUSTMENT; UnitCost applies to
// inbound quantities; Amount applies only to VALUE_ADJUSTMENT.
type StockMovement struct {
	MovementID string          `json:"movementID"`
	ProductID  string          `json:"productID"`
	Type       MovementType    `json:"type"`
	Date       time.Time       `json:"date"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	Amount     decimal.Decimal `json:"amount"`
}

// CostLayer is an open lot of stock at a specific historical unit cost.
// Value-only layers (from VALUE_ADJUSTMENT movements) carry no quantity;
// their whole worth sits in Value and they are never consumed by sales.
type CostLayer struct {
	Date        time.Time       `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	MovementID  string          `json:"movementID"`
	IsValueOnly bool            `json:"isValueOnly"`
	Value       decimal.Decimal `json:"value,omitempty"` // set for value-only layers
}

// LayerValue returns the layer's contribution to total stock value.
func (l CostLayer) LayerValue() decimal.Decimal {
	if l.IsValueOnly {
		return l.Value
	}
	return l.Quantity.Mul(l.UnitCost)
}

// ProductValuation is the recomputed stock valuation of one product.
// Layers hold the remaining lots for FIFO/LIFO; under PPP they are retained
// for audit and reexpression but do not drive cost allocation.
type ProductValuation struct {
	ProductID    string          `json:"productID"`
	Method       CostingMethod   `json:"method"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	Layers       []CostLayer     `json:"layers"`
	AverageCost  decimal.Decimal `json:"averageCost"`
	TotalValue   decimal.Decimal `json:"totalValue"`
}

// NegativeStockPolicy decides what happens when a sale (or negative
// adjustment) exceeds the stock on hand.
type NegativeStockPolicy string

const (
	// NegativeStockReject fails the computation for that product.
	NegativeStockReject NegativeStockPolicy = "REJECT"
	// NegativeStockAllow lets CurrentStock go below zero; the uncovered
	// quantity is costed at the last known unit cost.
	NegativeStockAllow NegativeStockPolicy = "ALLOW"
	// NegativeStockClamp consumes only what is available and ignores the
	// excess quantity.
	NegativeStockClamp NegativeStockPolicy = "CLAMP"
)
