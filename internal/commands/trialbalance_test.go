package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumaconta/sumaconta_backend/internal/commands"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const balancedDataset = `{
  "accounts": [
    {"accountID": "caja", "code": "1.1.01", "name": "Caja", "kind": "ASSET", "statementGroup": "CURRENT_ASSETS"},
    {"accountID": "capital", "code": "3.1.01", "name": "Capital", "kind": "EQUITY", "statementGroup": "EQUITY"}
  ],
  "entries": [
    {"entryID": "e1", "date": "2023-03-15T00:00:00Z", "lines": [
      {"accountID": "caja", "debit": "1000"},
      {"accountID": "capital", "credit": "1000"}
    ]}
  ],
  "products": [
    {"productID": "p1", "code": "M-001", "name": "Mercaderia A"}
  ],
  "movements": [
    {"movementID": "m1", "productID": "p1", "type": "PURCHASE",
     "date": "2023-03-01T00:00:00Z", "quantity": "10", "unitCost": "10"}
  ],
  "indices": [
    {"period": "2023-03", "value": "100"},
    {"period": "2023-06", "value": "150"}
  ]
}`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTrialBalanceCommand(t *testing.T) {
	path := writeDataset(t, balancedDataset)

	out, err := runCommand(t, "trial-balance", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Caja")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "TOTALS")
}

func TestTrialBalanceCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, "trial-balance", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestValuationCommand(t *testing.T) {
	path := writeDataset(t, balancedDataset)

	out, err := runCommand(t, "valuation", path, "--method", "FIFO")
	require.NoError(t, err)

	assert.Contains(t, out, "p1")
	assert.Contains(t, out, "100.00")
}

func TestValuationCommand_Reexpressed(t *testing.T) {
	path := writeDataset(t, balancedDataset)

	out, err := runCommand(t, "valuation", path, "--closing", "2023-06")
	require.NoError(t, err)

	assert.Contains(t, out, "150.00")
	assert.Contains(t, out, "ADJUSTMENT")
	assert.NotContains(t, out, "warning")
}
