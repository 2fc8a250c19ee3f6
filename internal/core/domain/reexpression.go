package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IndexRow is one monthly price-index observation supplied by an external
// data source. Period uses the "YYYY-MM" form.
type IndexRow struct {
	Period string          `json:"period"`
	Value  decimal.Decimal `json:"value"`
}

// IndexTable is the period keyed lookup over a price-index series.
type IndexTable map[string]decimal.Decimal

// NewIndexTable builds the lookup, keeping the last value when a period
// repeats. Non-positive index values are ignored.
func NewIndexTable(rows []IndexRow) IndexTable {
	table := make(IndexTable, len(rows))
	for _, row := range rows {
		if row.Value.IsPositive() {
			table[row.Period] = row.Value
		}
	}
	return table
}

// PeriodOf formats a date as its "YYYY-MM" index period.
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}

// HomogeneousLayer is a cost layer reexpressed from historical ("origin")
// currency into closing-date homogeneous currency. Coef is
// ClosingIndex/OriginIndex, or one when either index is missing.
// IsBlended marks the single synthetic layer produced for weighted-average
// valuations, where the coefficient is a value-weighted blend over the
// underlying lots rather than a per-date ratio.
type HomogeneousLayer struct {
	CostLayer
	OriginPeriod  string          `json:"originPeriod"`
	ClosingPeriod string          `json:"closingPeriod"`
	OriginIndex   decimal.Decimal `json:"originIndex"`
	ClosingIndex  decimal.Decimal `json:"closingIndex"`
	Coef          decimal.Decimal `json:"coef"`
	UnitCostHomog decimal.Decimal `json:"unitCostHomog"`
	TotalOrigin   decimal.Decimal `json:"totalOrigin"`
	TotalHomog    decimal.Decimal `json:"totalHomog"`
	IsBlended     bool            `json:"isBlended"`
}

// ProductReexpression is one product's valuation in both currencies.
type ProductReexpression struct {
	ProductID    string             `json:"productID"`
	Method       CostingMethod      `json:"method"`
	CurrentStock decimal.Decimal    `json:"currentStock"`
	Layers       []HomogeneousLayer `json:"layers"`
	TotalOrigin  decimal.Decimal    `json:"totalOrigin"`
	TotalHomog   decimal.Decimal    `json:"totalHomog"`
}

// EndingInventoryValuation aggregates the homogeneous-currency ending
// inventory over all products. Missing index periods are surfaced, never
// swallowed: affected layers fall back to coefficient one and HasIndices
// turns false so the caller can warn the user.
type EndingInventoryValuation struct {
	ClosingPeriod  string                `json:"closingPeriod"`
	Method         CostingMethod         `json:"method"`
	Products       []ProductReexpression `json:"products"`
	TotalQuantity  decimal.Decimal       `json:"totalQuantity"`
	TotalOrigin    decimal.Decimal       `json:"totalOrigin"`
	TotalHomog     decimal.Decimal       `json:"totalHomog"`
	Adjustment     decimal.Decimal       `json:"adjustment"`    // TotalHomog - TotalOrigin (the "ajuste")
	AdjustmentPct  decimal.Decimal       `json:"adjustmentPct"` // zero when TotalOrigin is zero
	MissingPeriods []string              `json:"missingPeriods"`
	HasIndices     bool                  `json:"hasIndices"`
}
