package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerMovement is one posted line inside an account's movement history,
// annotated with the running balance after applying it.
type LedgerMovement struct {
	EntryID        string          `json:"entryID"`
	Date           time.Time       `json:"date"`
	Memo           string          `json:"memo"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerAccount is the derived per-account view of the journal: its movement
// history in posting order plus debit/credit totals and the signed balance.
// The balance is expressed relative to the account's normal side.
type LedgerAccount struct {
	AccountID   string           `json:"accountID"`
	Movements   []LedgerMovement `json:"movements"`
	TotalDebit  decimal.Decimal  `json:"totalDebit"`
	TotalCredit decimal.Decimal  `json:"totalCredit"`
	Balance     decimal.Decimal  `json:"balance"`
}

// Ledger maps accountID to the account's aggregated movement history.
// A Ledger is always recomputed or copied whole; it is never mutated in place
// across independent computations.
type Ledger map[string]*LedgerAccount

// Clone returns a deep copy of the ledger so incremental posting can produce
// a fresh result without touching the input.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for id, acc := range l {
		cp := *acc
		cp.Movements = make([]LedgerMovement, len(acc.Movements))
		copy(cp.Movements, acc.Movements)
		out[id] = &cp
	}
	return out
}

// TotalDebit sums posted debits across every account in the ledger.
func (l Ledger) TotalDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, acc := range l {
		sum = sum.Add(acc.TotalDebit)
	}
	return sum
}

// TotalCredit sums posted credits across every account in the ledger.
func (l Ledger) TotalCredit() decimal.Decimal {
	sum := decimal.Zero
	for _, acc := range l {
		sum = sum.Add(acc.TotalCredit)
	}
	return sum
}
