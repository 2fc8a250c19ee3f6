package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
	"github.com/sumaconta/sumaconta_backend/internal/utils/accounting"
)

// ErrAccountNotFound is returned when a posted line references an accountID
// absent from the chart of accounts. Posting does not silently skip lines.
var ErrAccountNotFound = errors.New("account not found")

// ledgerService folds journal entries into per-account movement histories.
type ledgerService struct {
	BaseService
}

// NewLedgerService creates a new LedgerSvc.
func NewLedgerService() portssvc.LedgerSvc {
	return &ledgerService{}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// ComputeLedger builds a fresh ledger from the full entry sequence.
// Entries are processed in array order, not date order: movement histories and
// running balances reflect the insertion sequence the journal was recorded in.
func (s *ledgerService) ComputeLedger(ctx context.Context, entries []domain.JournalEntry, accounts map[string]domain.Account) (domain.Ledger, error) {
	ledger := make(domain.Ledger)
	for _, entry := range entries {
		if err := s.foldEntry(entry, ledger, accounts); err != nil {
			s.LogError(ctx, err, "Ledger computation aborted",
				slog.String("entry_id", entry.EntryID))
			return nil, err
		}
	}
	s.LogDebug(ctx, "Ledger computed",
		slog.Int("entry_count", len(entries)),
		slog.Int("account_count", len(ledger)))
	return ledger, nil
}

// PostEntry folds one additional entry into a deep copy of an existing
// ledger. The input ledger is left untouched, so independent computations
// never share mutable state.
func (s *ledgerService) PostEntry(ctx context.Context, entry domain.JournalEntry, ledger domain.Ledger, accounts map[string]domain.Account) (domain.Ledger, error) {
	next := ledger.Clone()
	if err := s.foldEntry(entry, next, accounts); err != nil {
		s.LogError(ctx, err, "Incremental posting aborted",
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}
	return next, nil
}

func (s *ledgerService) foldEntry(entry domain.JournalEntry, ledger domain.Ledger, accounts map[string]domain.Account) error {
	for _, line := range entry.Lines {
		account, found := accounts[line.AccountID]
		if !found {
			return fmt.Errorf("%w: %w: entry %s references account %s",
				apperrors.ErrNotFound, ErrAccountNotFound, entry.EntryID, line.AccountID)
		}

		ledgerAccount, exists := ledger[line.AccountID]
		if !exists {
			ledgerAccount = &domain.LedgerAccount{AccountID: line.AccountID}
			ledger[line.AccountID] = ledgerAccount
		}

		ledgerAccount.TotalDebit = ledgerAccount.TotalDebit.Add(line.Debit)
		ledgerAccount.TotalCredit = ledgerAccount.TotalCredit.Add(line.Credit)
		ledgerAccount.Balance = ledgerAccount.Balance.Add(
			accounting.SignedAmount(line, account.EffectiveNormalSide()))

		ledgerAccount.Movements = append(ledgerAccount.Movements, domain.LedgerMovement{
			EntryID:        entry.EntryID,
			Date:           entry.Date,
			Memo:           entry.Memo,
			Debit:          line.Debit,
			Credit:         line.Credit,
			RunningBalance: ledgerAccount.Balance,
		})
	}
	return nil
}
