package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
)

// trialBalanceService summarises a ledger into balanced debit/credit columns.
type trialBalanceService struct {
	BaseService
}

// NewTrialBalanceService creates a new TrialBalanceSvc.
func NewTrialBalanceService() portssvc.TrialBalanceSvc {
	return &trialBalanceService{}
}

var _ portssvc.TrialBalanceSvc = (*trialBalanceService)(nil)

// ComputeTrialBalance emits one row per ledger account, splitting each net
// balance onto the side its sign indicates, and totals all columns. Rows are
// ordered by account code so output is deterministic across runs.
//
// A ledger built only from validated entries must balance; an imbalance here
// is an invariant violation reported loudly, alongside the (still complete)
// trial balance so the caller can inspect the damage.
func (s *trialBalanceService) ComputeTrialBalance(ctx context.Context, ledger domain.Ledger, accounts map[string]domain.Account) (domain.TrialBalance, error) {
	tb := domain.TrialBalance{
		Rows:        make([]domain.TrialBalanceRow, 0, len(ledger)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for accountID, ledgerAccount := range ledger {
		account := accounts[accountID]

		row := domain.TrialBalanceRow{
			AccountID: accountID,
			Code:      account.Code,
			Name:      account.Name,
			Kind:      account.Kind,
			SumDebit:  ledgerAccount.TotalDebit,
			SumCredit: ledgerAccount.TotalCredit,
		}

		net := ledgerAccount.TotalDebit.Sub(ledgerAccount.TotalCredit)
		if net.IsNegative() {
			row.BalanceCredit = net.Neg()
			row.BalanceDebit = decimal.Zero
		} else {
			row.BalanceDebit = net
			row.BalanceCredit = decimal.Zero
		}

		tb.TotalDebit = tb.TotalDebit.Add(row.SumDebit)
		tb.TotalCredit = tb.TotalCredit.Add(row.SumCredit)
		tb.Rows = append(tb.Rows, row)
	}

	sort.Slice(tb.Rows, func(i, j int) bool {
		if tb.Rows[i].Code != tb.Rows[j].Code {
			return tb.Rows[i].Code < tb.Rows[j].Code
		}
		return tb.Rows[i].AccountID < tb.Rows[j].AccountID
	})

	diff := tb.TotalDebit.Sub(tb.TotalCredit)
	tb.IsBalanced = domain.WithinTolerance(diff)
	if !tb.IsBalanced {
		err := fmt.Errorf("%w: trial balance off by %s (debits %s, credits %s)",
			apperrors.ErrInvariant, diff.String(), tb.TotalDebit.String(), tb.TotalCredit.String())
		s.LogError(ctx, err, "Trial balance does not balance after validated postings")
		return tb, err
	}

	s.LogDebug(ctx, "Trial balance computed",
		slog.Int("row_count", len(tb.Rows)),
		slog.String("total_debit", tb.TotalDebit.String()))
	return tb, nil
}
