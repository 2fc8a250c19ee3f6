package services

import (
	"context"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
)

// JournalValidationSvc checks proposed journal entries before acceptance.
type JournalValidationSvc interface {
	// Validate is side-effect free: it reports the debit/credit difference
	// and any unknown or header account references without mutating anything.
	Validate(ctx context.Context, entry domain.JournalEntry, accounts map[string]domain.Account) domain.ValidationResult
}

// LedgerSvc folds journal entries into per-account movement histories.
type LedgerSvc interface {
	// ComputeLedger builds a fresh ledger from the full entry sequence, in
	// entry order. An unknown accountID in any line is fatal.
	ComputeLedger(ctx context.Context, entries []domain.JournalEntry, accounts map[string]domain.Account) (domain.Ledger, error)
	// PostEntry folds one additional entry into a copy of an existing
	// ledger, leaving the input untouched.
	PostEntry(ctx context.Context, entry domain.JournalEntry, ledger domain.Ledger, accounts map[string]domain.Account) (domain.Ledger, error)
}
