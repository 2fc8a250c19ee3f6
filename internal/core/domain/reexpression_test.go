package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
)

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, "2023-03", domain.PeriodOf(time.Date(2023, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2023-12", domain.PeriodOf(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNewIndexTable(t *testing.T) {
	table := domain.NewIndexTable([]domain.IndexRow{
		{Period: "2023-03", Value: decimal.NewFromInt(100)},
		{Period: "2023-04", Value: decimal.Zero},
		{Period: "2023-05", Value: decimal.NewFromInt(-5)},
		{Period: "2023-03", Value: decimal.NewFromInt(110)}, // repeat wins
	})

	require.Len(t, table, 1)
	assert.True(t, table["2023-03"].Equal(decimal.NewFromInt(110)))
	_, hasApril := table["2023-04"]
	assert.False(t, hasApril)
}

func TestLedgerClone_Independence(t *testing.T) {
	original := domain.Ledger{
		"caja": &domain.LedgerAccount{
			AccountID:  "caja",
			TotalDebit: decimal.NewFromInt(100),
			Balance:    decimal.NewFromInt(100),
			Movements: []domain.LedgerMovement{
				{EntryID: "e1", Debit: decimal.NewFromInt(100), RunningBalance: decimal.NewFromInt(100)},
			},
		},
	}

	clone := original.Clone()
	clone["caja"].Balance = decimal.NewFromInt(999)
	clone["caja"].Movements = append(clone["caja"].Movements, domain.LedgerMovement{EntryID: "e2"})

	assert.True(t, original["caja"].Balance.Equal(decimal.NewFromInt(100)))
	assert.Len(t, original["caja"].Movements, 1)
}

func TestCostLayerValue(t *testing.T) {
	lot := domain.CostLayer{Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(5)}
	assert.True(t, lot.LayerValue().Equal(decimal.NewFromInt(50)))

	revaluation := domain.CostLayer{IsValueOnly: true, Value: decimal.NewFromInt(30)}
	assert.True(t, revaluation.LayerValue().Equal(decimal.NewFromInt(30)))
}
