package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sumaconta/sumaconta_backend/internal/dto"
)

// dataset is the JSON snapshot the surrounding application exports for
// offline reporting: the chart of accounts, the journal, inventory master
// data and the price-index table.
type dataset struct {
	Accounts  []dto.AccountInput      `json:"accounts"`
	Entries   []dto.JournalEntryInput `json:"entries"`
	Products  []dto.ProductInput      `json:"products"`
	Movements []dto.MovementInput     `json:"movements"`
	Indices   []dto.IndexRowInput     `json:"indices"`
}

func loadDataset(path string) (*dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return &ds, nil
}
