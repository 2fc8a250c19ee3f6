package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySourceType discriminates the module that produced a journal entry.
type EntrySourceType string

const (
	SourceManual     EntrySourceType = "MANUAL"
	SourceVoucher    EntrySourceType = "VOUCHER"
	SourcePayment    EntrySourceType = "PAYMENT"
	SourceAdjustment EntrySourceType = "ADJUSTMENT"
)

// EntrySource carries per-module metadata for a journal entry as a tagged
// union: Type selects exactly one of the variant pointers. This replaces the
// open key/value dictionaries the surrounding modules used to attach.
type EntrySource struct {
	Type       EntrySourceType       `json:"type"`
	Voucher    *VoucherSourceMeta    `json:"voucher,omitempty"`
	Payment    *PaymentSourceMeta    `json:"payment,omitempty"`
	Adjustment *AdjustmentSourceMeta `json:"adjustment,omitempty"`
}

// VoucherSourceMeta identifies the sales/purchase voucher behind an entry.
type VoucherSourceMeta struct {
	VoucherID     string `json:"voucherID"`
	VoucherNumber string `json:"voucherNumber"`
	Counterparty  string `json:"counterparty"`
}

// PaymentSourceMeta identifies the payment order behind an entry.
type PaymentSourceMeta struct {
	PaymentID string `json:"paymentID"`
	Method    string `json:"method"`
}

// AdjustmentSourceMeta describes an inflation or valuation adjustment entry.
type AdjustmentSourceMeta struct {
	Reason        string `json:"reason"`
	ClosingPeriod string `json:"closingPeriod"` // YYYY-MM
}

// EntryLine is a single debit or credit against one account. Exactly one of
// Debit/Credit is expected to be nonzero; both are carried so malformed
// external input can still be diagnosed by the validator.
type EntryLine struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntry represents a single financial event composed of balanced lines.
// Entries are created and persisted by external modules; the computation core
// only ever reads them.
type JournalEntry struct {
	EntryID string       `json:"entryID"`
	Date    time.Time    `json:"date"`
	Memo    string       `json:"memo"`
	Lines   []EntryLine  `json:"lines"`
	Source  *EntrySource `json:"source,omitempty"`
}

// TotalDebit sums the debit column of the entry.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range e.Lines {
		sum = sum.Add(line.Debit)
	}
	return sum
}

// TotalCredit sums the credit column of the entry.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range e.Lines {
		sum = sum.Add(line.Credit)
	}
	return sum
}

// ValidationResult is the outcome of validating a proposed journal entry.
// Diff is the signed debit minus credit difference regardless of outcome.
type ValidationResult struct {
	OK     bool            `json:"ok"`
	Errors []string        `json:"errors"`
	Diff   decimal.Decimal `json:"diff"`
}
