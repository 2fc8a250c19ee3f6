package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
)

// sectionSpec fixes the presentation order, label and orientation of every
// statement section. Asset sections are debit oriented; everything else,
// including all income-statement sections, is credit oriented, which makes
// expense and contra balances come out negative without special cases.
type sectionSpec struct {
	group domain.StatementGroup
	label string
	side  domain.NormalSide
}

var balanceSheetSpecs = []sectionSpec{
	{domain.GroupCurrentAssets, "Current Assets", domain.DebitSide},
	{domain.GroupNonCurrentAssets, "Non-Current Assets", domain.DebitSide},
	{domain.GroupCurrentLiabilities, "Current Liabilities", domain.CreditSide},
	{domain.GroupNonCurrentLiabilities, "Non-Current Liabilities", domain.CreditSide},
	{domain.GroupEquity, "Equity", domain.CreditSide},
}

var incomeStatementSpecs = []sectionSpec{
	{domain.GroupSales, "Sales", domain.CreditSide},
	{domain.GroupCostOfGoodsSold, "Cost of Goods Sold", domain.CreditSide},
	{domain.GroupAdminExpenses, "Administrative Expenses", domain.CreditSide},
	{domain.GroupSellingExpenses, "Selling Expenses", domain.CreditSide},
	{domain.GroupFinancialResults, "Financial Results", domain.CreditSide},
	{domain.GroupOtherResults, "Other Results", domain.CreditSide},
}

// statementService groups trial-balance rows into financial statements.
type statementService struct {
	BaseService
}

// NewStatementService creates a new StatementSvc.
func NewStatementService() portssvc.StatementSvc {
	return &statementService{}
}

var _ portssvc.StatementSvc = (*statementService)(nil)

// ComputeStatements assembles the balance sheet and income statement from a
// trial balance snapshot. Accounts without a statementGroup tag (and header
// accounts, which never appear in a ledger) are left out.
//
// The balance sheet identity totalAssets == totalLiabilities + totalEquity
// holds within the shared tolerance, with the current-period net income
// carried into equity.
func (s *statementService) ComputeStatements(ctx context.Context, trialBalance domain.TrialBalance, accounts map[string]domain.Account) (domain.FinancialStatements, error) {
	sections := make(map[domain.StatementGroup]*domain.StatementSection)
	specs := make(map[domain.StatementGroup]sectionSpec)
	for _, spec := range append(append([]sectionSpec{}, balanceSheetSpecs...), incomeStatementSpecs...) {
		specs[spec.group] = spec
		sections[spec.group] = &domain.StatementSection{
			Label:    spec.label,
			Group:    spec.group,
			Subtotal: decimal.Zero,
			NetTotal: decimal.Zero,
		}
	}

	for _, row := range trialBalance.Rows {
		account, found := accounts[row.AccountID]
		if !found || account.StatementGroup == "" {
			continue
		}
		spec, known := specs[account.StatementGroup]
		if !known {
			s.LogDebug(ctx, "Account tagged with unknown statement group, skipping",
				slog.String("account_id", row.AccountID),
				slog.String("group", string(account.StatementGroup)))
			continue
		}

		// Orient the net balance to the section's side. A contra account's
		// balance sits on the opposite side, so it lands here negative.
		balance := row.BalanceDebit.Sub(row.BalanceCredit)
		if spec.side == domain.CreditSide {
			balance = balance.Neg()
		}

		section := sections[spec.group]
		section.Lines = append(section.Lines, domain.StatementLine{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
			Balance:   balance,
			IsContra:  account.IsContra,
		})
		if !account.IsContra {
			section.Subtotal = section.Subtotal.Add(balance)
		}
		section.NetTotal = section.NetTotal.Add(balance)
	}

	income := domain.IncomeStatement{
		Sales:            *sections[domain.GroupSales],
		CostOfGoodsSold:  *sections[domain.GroupCostOfGoodsSold],
		AdminExpenses:    *sections[domain.GroupAdminExpenses],
		SellingExpenses:  *sections[domain.GroupSellingExpenses],
		FinancialResults: *sections[domain.GroupFinancialResults],
		OtherResults:     *sections[domain.GroupOtherResults],
	}
	// Expense sections arrive negative, so the cascade is pure addition.
	income.GrossProfit = income.Sales.NetTotal.Add(income.CostOfGoodsSold.NetTotal)
	income.OperatingIncome = income.GrossProfit.
		Add(income.AdminExpenses.NetTotal).
		Add(income.SellingExpenses.NetTotal)
	income.NetIncome = income.OperatingIncome.
		Add(income.FinancialResults.NetTotal).
		Add(income.OtherResults.NetTotal)

	balanceSheet := domain.BalanceSheet{
		CurrentAssets:         *sections[domain.GroupCurrentAssets],
		NonCurrentAssets:      *sections[domain.GroupNonCurrentAssets],
		CurrentLiabilities:    *sections[domain.GroupCurrentLiabilities],
		NonCurrentLiabilities: *sections[domain.GroupNonCurrentLiabilities],
		Equity:                *sections[domain.GroupEquity],
	}
	balanceSheet.TotalAssets = balanceSheet.CurrentAssets.NetTotal.
		Add(balanceSheet.NonCurrentAssets.NetTotal)
	balanceSheet.TotalLiabilities = balanceSheet.CurrentLiabilities.NetTotal.
		Add(balanceSheet.NonCurrentLiabilities.NetTotal)
	balanceSheet.TotalEquity = balanceSheet.Equity.NetTotal.Add(income.NetIncome)

	identityDiff := balanceSheet.TotalAssets.
		Sub(balanceSheet.TotalLiabilities).
		Sub(balanceSheet.TotalEquity)
	balanceSheet.IsBalanced = domain.WithinTolerance(identityDiff)
	if !balanceSheet.IsBalanced {
		err := fmt.Errorf("%w: assets and liabilities+equity differ by %s",
			apperrors.ErrInvariant, identityDiff.String())
		s.LogError(ctx, err, "Balance sheet identity broken",
			slog.String("total_assets", balanceSheet.TotalAssets.String()),
			slog.String("total_liabilities", balanceSheet.TotalLiabilities.String()),
			slog.String("total_equity", balanceSheet.TotalEquity.String()))
	}

	s.LogDebug(ctx, "Statements assembled",
		slog.String("net_income", income.NetIncome.String()),
		slog.Bool("is_balanced", balanceSheet.IsBalanced))

	return domain.FinancialStatements{
		BalanceSheet:    balanceSheet,
		IncomeStatement: income,
	}, nil
}
