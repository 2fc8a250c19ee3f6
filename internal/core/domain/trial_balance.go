package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow summarises one ledger account: total posted debits and
// credits plus the net balance split onto the side its sign indicates.
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Kind          AccountKind     `json:"kind"`
	SumDebit      decimal.Decimal `json:"sumDebit"`
	SumCredit     decimal.Decimal `json:"sumCredit"`
	BalanceDebit  decimal.Decimal `json:"balanceDebit"`
	BalanceCredit decimal.Decimal `json:"balanceCredit"`
}

// TrialBalance is the summed debit/credit view of a ledger. TotalDebit and
// TotalCredit must agree within the shared tolerance when the ledger was
// built from validated entries only.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
}

// RowByAccount returns the row for an account, if present.
func (tb TrialBalance) RowByAccount(accountID string) (TrialBalanceRow, bool) {
	for _, row := range tb.Rows {
		if row.AccountID == accountID {
			return row, true
		}
	}
	return TrialBalanceRow{}, false
}
