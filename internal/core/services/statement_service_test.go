package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	"github.com/sumaconta/sumaconta_backend/internal/core/services"
)

func computeStatements(t *testing.T, entries []domain.JournalEntry) domain.FinancialStatements {
	t.Helper()
	chart := testChart()
	ctx := context.Background()

	ledger, err := services.NewLedgerService().ComputeLedger(ctx, entries, chart)
	require.NoError(t, err)
	tb, err := services.NewTrialBalanceService().ComputeTrialBalance(ctx, ledger, chart)
	require.NoError(t, err)
	statements, err := services.NewStatementService().ComputeStatements(ctx, tb, chart)
	require.NoError(t, err)
	return statements
}

func TestComputeStatements_FullPeriod(t *testing.T) {
	statements := computeStatements(t, []domain.JournalEntry{
		entry("e1", debit("caja", "10000"), credit("capital", "10000")),
		entry("e2", debit("muebles", "5000"), credit("caja", "5000")),
		entry("e3", debit("sueldos", "500"), credit("amort-acum", "500")),
		entry("e4", debit("caja", "5000"), credit("ventas", "5000")),
		entry("e5", debit("cmv", "2000"), credit("caja", "2000")),
	})

	income := statements.IncomeStatement
	assert.True(t, income.Sales.NetTotal.Equal(dec("5000")))
	assert.True(t, income.CostOfGoodsSold.NetTotal.Equal(dec("-2000")),
		"expense sections carry negative totals, got %s", income.CostOfGoodsSold.NetTotal)
	assert.True(t, income.GrossProfit.Equal(dec("3000")))
	assert.True(t, income.AdminExpenses.NetTotal.Equal(dec("-500")))
	assert.True(t, income.OperatingIncome.Equal(dec("2500")))
	assert.True(t, income.NetIncome.Equal(dec("2500")))

	bs := statements.BalanceSheet
	assert.True(t, bs.CurrentAssets.NetTotal.Equal(dec("8000")))
	assert.True(t, bs.TotalAssets.Equal(dec("12500")))
	assert.True(t, bs.TotalLiabilities.IsZero())
	assert.True(t, bs.TotalEquity.Equal(dec("12500")),
		"equity must absorb the period's net income, got %s", bs.TotalEquity)
	assert.True(t, bs.IsBalanced)
}

func TestComputeStatements_ContraAccountNetting(t *testing.T) {
	statements := computeStatements(t, []domain.JournalEntry{
		entry("e1", debit("muebles", "5000"), credit("capital", "5000")),
		entry("e2", debit("sueldos", "500"), credit("amort-acum", "500")),
	})

	nonCurrent := statements.BalanceSheet.NonCurrentAssets
	require.Len(t, nonCurrent.Lines, 2)
	assert.True(t, nonCurrent.Subtotal.Equal(dec("5000")),
		"subtotal skips contra lines, got %s", nonCurrent.Subtotal)
	assert.True(t, nonCurrent.NetTotal.Equal(dec("4500")),
		"net total nets the accumulated depreciation, got %s", nonCurrent.NetTotal)

	var contra domain.StatementLine
	for _, line := range nonCurrent.Lines {
		if line.IsContra {
			contra = line
		}
	}
	assert.Equal(t, "amort-acum", contra.AccountID)
	assert.True(t, contra.Balance.Equal(dec("-500")))
}

func TestComputeStatements_CascadeWithOperatingExpenses(t *testing.T) {
	statements := computeStatements(t, []domain.JournalEntry{
		entry("e1", debit("caja", "8000"), credit("ventas", "8000")),
		entry("e2", debit("sueldos", "3000"), credit("caja", "3000")),
	})

	income := statements.IncomeStatement
	assert.True(t, income.GrossProfit.Equal(dec("8000")))
	assert.True(t, income.OperatingIncome.Equal(dec("5000")))
	assert.True(t, income.NetIncome.Equal(dec("5000")))
	assert.True(t, statements.BalanceSheet.IsBalanced)
}

func TestComputeStatements_NetLoss(t *testing.T) {
	statements := computeStatements(t, []domain.JournalEntry{
		entry("e1", debit("caja", "5000"), credit("capital", "5000")),
		entry("e2", debit("caja", "1000"), credit("ventas", "1000")),
		entry("e3", debit("sueldos", "3000"), credit("caja", "3000")),
	})

	income := statements.IncomeStatement
	assert.True(t, income.NetIncome.Equal(dec("-2000")))

	bs := statements.BalanceSheet
	assert.True(t, bs.TotalAssets.Equal(dec("3000")))
	assert.True(t, bs.TotalEquity.Equal(dec("3000")),
		"a loss shrinks equity below contributed capital, got %s", bs.TotalEquity)
	assert.True(t, bs.IsBalanced)
}

func TestComputeStatements_UntaggedAccountsSkipped(t *testing.T) {
	chart := testChart()
	// Strip the group so the account appears in the trial balance but no
	// statement section.
	untagged := chart["banco"]
	untagged.StatementGroup = ""
	chart["banco"] = untagged
	ctx := context.Background()

	ledger, err := services.NewLedgerService().ComputeLedger(ctx, []domain.JournalEntry{
		entry("e1", debit("banco", "700"), credit("capital", "700")),
	}, chart)
	require.NoError(t, err)
	tb, err := services.NewTrialBalanceService().ComputeTrialBalance(ctx, ledger, chart)
	require.NoError(t, err)
	statements, err := services.NewStatementService().ComputeStatements(ctx, tb, chart)
	require.NoError(t, err)

	assert.Empty(t, statements.BalanceSheet.CurrentAssets.Lines)
	// The identity cannot hold once a posted account is dropped.
	assert.False(t, statements.BalanceSheet.IsBalanced)
}
