package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	"github.com/sumaconta/sumaconta_backend/internal/core/services"
)

func TestComputeTrialBalance_RowsAndTotals(t *testing.T) {
	ledgerSvc := services.NewLedgerService()
	tbSvc := services.NewTrialBalanceService()
	chart := testChart()

	ledger, err := ledgerSvc.ComputeLedger(context.Background(), openingEntries(), chart)
	require.NoError(t, err)

	tb, err := tbSvc.ComputeTrialBalance(context.Background(), ledger, chart)
	require.NoError(t, err)

	assert.True(t, tb.IsBalanced)
	assert.True(t, tb.TotalDebit.Equal(dec("12500")))
	assert.True(t, tb.TotalCredit.Equal(dec("12500")))
	require.Len(t, tb.Rows, 4)

	// Rows come out in chart-of-accounts code order.
	codes := make([]string, 0, len(tb.Rows))
	for _, row := range tb.Rows {
		codes = append(codes, row.Code)
	}
	assert.Equal(t, []string{"1.1.01", "3.1.01", "4.1.01", "5.1.01"}, codes)

	caja, found := tb.RowByAccount("caja")
	require.True(t, found)
	assert.True(t, caja.SumDebit.Equal(dec("12000")))
	assert.True(t, caja.SumCredit.Equal(dec("500")))
	assert.True(t, caja.BalanceDebit.Equal(dec("11500")))
	assert.True(t, caja.BalanceCredit.IsZero())

	capital, found := tb.RowByAccount("capital")
	require.True(t, found)
	assert.True(t, capital.BalanceDebit.IsZero())
	assert.True(t, capital.BalanceCredit.Equal(dec("10000")))
}

func TestComputeTrialBalance_EmptyLedger(t *testing.T) {
	tbSvc := services.NewTrialBalanceService()

	tb, err := tbSvc.ComputeTrialBalance(context.Background(), domain.Ledger{}, testChart())
	require.NoError(t, err)

	assert.True(t, tb.IsBalanced)
	assert.Empty(t, tb.Rows)
	assert.True(t, tb.TotalDebit.IsZero())
}

func TestComputeTrialBalance_ImbalanceReported(t *testing.T) {
	tbSvc := services.NewTrialBalanceService()

	// A ledger that could only arise from skipping validation.
	ledger := domain.Ledger{
		"caja": &domain.LedgerAccount{
			AccountID:  "caja",
			TotalDebit: dec("100"),
			Balance:    dec("100"),
		},
		"ventas": &domain.LedgerAccount{
			AccountID:   "ventas",
			TotalCredit: dec("60"),
			Balance:     dec("60"),
		},
	}

	tb, err := tbSvc.ComputeTrialBalance(context.Background(), ledger, testChart())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvariant)
	assert.False(t, tb.IsBalanced)
	// The trial balance is still returned complete for inspection.
	require.Len(t, tb.Rows, 2)
	assert.True(t, tb.TotalDebit.Sub(tb.TotalCredit).Equal(decimal.NewFromInt(40)))
}
