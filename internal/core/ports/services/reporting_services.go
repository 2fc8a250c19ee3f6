package services

import (
	"context"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
)

// TrialBalanceSvc summarises a ledger into balanced debit/credit columns.
type TrialBalanceSvc interface {
	ComputeTrialBalance(ctx context.Context, ledger domain.Ledger, accounts map[string]domain.Account) (domain.TrialBalance, error)
}

// StatementSvc assembles a trial balance into the financial statements.
type StatementSvc interface {
	ComputeStatements(ctx context.Context, trialBalance domain.TrialBalance, accounts map[string]domain.Account) (domain.FinancialStatements, error)
}
