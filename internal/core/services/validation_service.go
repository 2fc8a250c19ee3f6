package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
)

var (
	ErrEntryUnbalanced     = errors.New("entry debits and credits do not balance")
	ErrEntryNoLines        = errors.New("entry must have at least one line")
	ErrLineBothSides       = errors.New("entry line carries both a debit and a credit")
	ErrLineNegativeAmount  = errors.New("entry line amounts must not be negative")
	ErrUnknownAccount      = errors.New("entry line references an unknown account")
	ErrHeaderAccountPosted = errors.New("entry line references a header account")
)

// journalValidationService checks proposed entries before acceptance.
// It never mutates its inputs and never corrects an entry silently.
type journalValidationService struct {
	BaseService
}

// NewJournalValidationService creates a new JournalValidationSvc.
func NewJournalValidationService() portssvc.JournalValidationSvc {
	return &journalValidationService{}
}

var _ portssvc.JournalValidationSvc = (*journalValidationService)(nil)

// Validate reports whether an entry balances within the shared tolerance and
// whether every line references a postable, known account. Diff is always the
// signed sum(debit) - sum(credit), even for rejected entries, so callers can
// show the direction of the imbalance.
func (s *journalValidationService) Validate(ctx context.Context, entry domain.JournalEntry, accounts map[string]domain.Account) domain.ValidationResult {
	result := domain.ValidationResult{
		OK:   true,
		Diff: decimal.Zero,
	}

	if len(entry.Lines) == 0 {
		result.OK = false
		result.Errors = append(result.Errors, ErrEntryNoLines.Error())
		return result
	}

	for i, line := range entry.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			result.OK = false
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", i+1, ErrLineNegativeAmount))
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			result.OK = false
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", i+1, ErrLineBothSides))
		}

		account, found := accounts[line.AccountID]
		if !found {
			result.OK = false
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s: %s", i+1, ErrUnknownAccount, line.AccountID))
			continue
		}
		if account.IsHeader {
			result.OK = false
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s: %s (%s)", i+1, ErrHeaderAccountPosted, account.Code, account.Name))
		}
	}

	result.Diff = entry.TotalDebit().Sub(entry.TotalCredit())
	if !domain.WithinTolerance(result.Diff) {
		result.OK = false
		result.Errors = append(result.Errors, fmt.Sprintf("%s: diff is %s", ErrEntryUnbalanced, result.Diff.String()))
	}

	if !result.OK {
		s.LogDebug(ctx, "Journal entry rejected by validator",
			slog.String("entry_id", entry.EntryID),
			slog.String("diff", result.Diff.String()),
			slog.Int("error_count", len(result.Errors)))
	}
	return result
}
