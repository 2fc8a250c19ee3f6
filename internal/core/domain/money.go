package domain

import "github.com/shopspring/decimal"

// BalanceTolerance is the shared two-decimal monetary tolerance used by the
// journal validator, the trial balance builder and the statement assembler.
// It is declared once here so the components cannot drift apart.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// WithinTolerance reports whether a debit/credit difference is small enough
// to be considered balanced.
func WithinTolerance(diff decimal.Decimal) bool {
	return diff.Abs().LessThanOrEqual(BalanceTolerance)
}
