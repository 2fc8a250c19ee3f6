package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	"github.com/sumaconta/sumaconta_backend/internal/core/services"
)

func openingEntries() []domain.JournalEntry {
	return []domain.JournalEntry{
		entry("e1", debit("caja", "10000"), credit("capital", "10000")),
		entry("e2", debit("caja", "2000"), credit("ventas", "2000")),
		entry("e3", debit("sueldos", "500"), credit("caja", "500")),
	}
}

func TestComputeLedger_BalancesAndMovements(t *testing.T) {
	svc := services.NewLedgerService()

	ledger, err := svc.ComputeLedger(context.Background(), openingEntries(), testChart())
	require.NoError(t, err)

	caja := ledger["caja"]
	require.NotNil(t, caja)
	assert.True(t, caja.TotalDebit.Equal(dec("12000")))
	assert.True(t, caja.TotalCredit.Equal(dec("500")))
	assert.True(t, caja.Balance.Equal(dec("11500")))

	require.Len(t, caja.Movements, 3)
	assert.True(t, caja.Movements[0].RunningBalance.Equal(dec("10000")))
	assert.True(t, caja.Movements[1].RunningBalance.Equal(dec("12000")))
	assert.True(t, caja.Movements[2].RunningBalance.Equal(dec("11500")))

	// Credit-normal accounts accumulate on their own side.
	assert.True(t, ledger["capital"].Balance.Equal(dec("10000")))
	assert.True(t, ledger["ventas"].Balance.Equal(dec("2000")))
	assert.True(t, ledger["sueldos"].Balance.Equal(dec("500")))
}

func TestComputeLedger_DebitsEqualCredits(t *testing.T) {
	svc := services.NewLedgerService()

	ledger, err := svc.ComputeLedger(context.Background(), openingEntries(), testChart())
	require.NoError(t, err)

	assert.True(t, ledger.TotalDebit().Equal(ledger.TotalCredit()),
		"ledger totals must match: debits %s, credits %s", ledger.TotalDebit(), ledger.TotalCredit())
}

func TestComputeLedger_Deterministic(t *testing.T) {
	svc := services.NewLedgerService()
	entries := openingEntries()
	chart := testChart()

	first, err := svc.ComputeLedger(context.Background(), entries, chart)
	require.NoError(t, err)
	second, err := svc.ComputeLedger(context.Background(), entries, chart)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeLedger_UnknownAccountIsFatal(t *testing.T) {
	svc := services.NewLedgerService()
	entries := []domain.JournalEntry{
		entry("e1", debit("caja", "100"), credit("fantasma", "100")),
	}

	ledger, err := svc.ComputeLedger(context.Background(), entries, testChart())

	require.Error(t, err)
	assert.Nil(t, ledger)
	assert.ErrorIs(t, err, services.ErrAccountNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostEntry_LeavesInputUntouched(t *testing.T) {
	svc := services.NewLedgerService()
	chart := testChart()

	base, err := svc.ComputeLedger(context.Background(), openingEntries(), chart)
	require.NoError(t, err)
	balanceBefore := base["caja"].Balance
	movementsBefore := len(base["caja"].Movements)

	next, err := svc.PostEntry(context.Background(),
		entry("e4", debit("banco", "300"), credit("caja", "300")),
		base, chart)
	require.NoError(t, err)

	assert.True(t, base["caja"].Balance.Equal(balanceBefore))
	assert.Len(t, base["caja"].Movements, movementsBefore)
	assert.Nil(t, base["banco"])

	assert.True(t, next["caja"].Balance.Equal(dec("11200")))
	assert.True(t, next["banco"].Balance.Equal(dec("300")))
	assert.Len(t, next["caja"].Movements, movementsBefore+1)
}

func TestPostEntry_UnknownAccountLeavesBaseUsable(t *testing.T) {
	svc := services.NewLedgerService()
	chart := testChart()

	base, err := svc.ComputeLedger(context.Background(), openingEntries(), chart)
	require.NoError(t, err)

	next, err := svc.PostEntry(context.Background(),
		entry("e4", debit("fantasma", "1"), credit("caja", "1")),
		base, chart)

	require.Error(t, err)
	assert.Nil(t, next)
	assert.True(t, base["caja"].Balance.Equal(dec("11500")))
}
