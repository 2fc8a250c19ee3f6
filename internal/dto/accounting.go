package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
)

// AccountInput is one chart-of-accounts row as supplied by the caller.
type AccountInput struct {
	AccountID       string `json:"accountID" binding:"required"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Kind            string `json:"kind" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	NormalSide      string `json:"normalSide" binding:"omitempty,oneof=DEBIT CREDIT"`
	IsContra        bool   `json:"isContra"`
	IsHeader        bool   `json:"isHeader"`
	ParentAccountID string `json:"parentAccountID"`
	StatementGroup  string `json:"statementGroup"`
}

// ToDomain converts the input row to its domain representation.
func (a AccountInput) ToDomain() domain.Account {
	return domain.Account{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		Kind:            domain.AccountKind(a.Kind),
		NormalSide:      domain.NormalSide(a.NormalSide),
		IsContra:        a.IsContra,
		IsHeader:        a.IsHeader,
		ParentAccountID: a.ParentAccountID,
		StatementGroup:  domain.StatementGroup(a.StatementGroup),
	}
}

// EntryLineInput is one debit/credit line of a proposed journal entry.
type EntryLineInput struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntryInput is a proposed or recorded journal entry.
type JournalEntryInput struct {
	EntryID string              `json:"entryID" binding:"required"`
	Date    time.Time           `json:"date" binding:"required"`
	Memo    string              `json:"memo"`
	Lines   []EntryLineInput    `json:"lines" binding:"required,min=1,dive"`
	Source  *domain.EntrySource `json:"source"`
}

// ToDomain converts the input entry to its domain representation.
func (e JournalEntryInput) ToDomain() domain.JournalEntry {
	lines := make([]domain.EntryLine, len(e.Lines))
	for i, line := range e.Lines {
		lines[i] = domain.EntryLine{
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
		}
	}
	return domain.JournalEntry{
		EntryID: e.EntryID,
		Date:    e.Date,
		Memo:    e.Memo,
		Lines:   lines,
		Source:  e.Source,
	}
}

// AccountsToDomain converts a batch of account inputs.
func AccountsToDomain(inputs []AccountInput) []domain.Account {
	accounts := make([]domain.Account, len(inputs))
	for i, input := range inputs {
		accounts[i] = input.ToDomain()
	}
	return accounts
}

// EntriesToDomain converts a batch of entry inputs.
func EntriesToDomain(inputs []JournalEntryInput) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, len(inputs))
	for i, input := range inputs {
		entries[i] = input.ToDomain()
	}
	return entries
}

// ValidateEntryRequest asks the validator to check one entry against a chart
// of accounts.
type ValidateEntryRequest struct {
	Entry    JournalEntryInput `json:"entry" binding:"required"`
	Accounts []AccountInput    `json:"accounts" binding:"required,min=1,dive"`
}

// ComputeLedgerRequest carries the full input snapshot for a ledger
// computation. The same shape feeds the trial balance and statement
// endpoints, which extend the pipeline one stage further.
type ComputeLedgerRequest struct {
	Accounts []AccountInput      `json:"accounts" binding:"required,min=1,dive"`
	Entries  []JournalEntryInput `json:"entries" binding:"required,dive"`
}

// LedgerResponse is the computed ledger keyed by accountID.
type LedgerResponse struct {
	Accounts    map[string]*domain.LedgerAccount `json:"accounts"`
	TotalDebit  decimal.Decimal                  `json:"totalDebit"`
	TotalCredit decimal.Decimal                  `json:"totalCredit"`
}

// ToLedgerResponse wraps a computed ledger with its global totals.
func ToLedgerResponse(ledger domain.Ledger) LedgerResponse {
	return LedgerResponse{
		Accounts:    ledger,
		TotalDebit:  ledger.TotalDebit(),
		TotalCredit: ledger.TotalCredit(),
	}
}

// StatementsResponse bundles the statements with the trial balance they were
// assembled from, so report pages can drill down without a second call.
type StatementsResponse struct {
	TrialBalance domain.TrialBalance        `json:"trialBalance"`
	Statements   domain.FinancialStatements `json:"statements"`
}
