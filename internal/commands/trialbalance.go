package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	"github.com/sumaconta/sumaconta_backend/internal/core/services"
	"github.com/sumaconta/sumaconta_backend/internal/dto"
)

func newTrialBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trial-balance <dataset.json>",
		Short: "Print the trial balance for a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			return runTrialBalance(cmd, ds)
		},
	}
}

func runTrialBalance(cmd *cobra.Command, ds *dataset) error {
	ctx := context.Background()
	container := services.NewServicesContainer()
	accounts := domain.AccountIndex(dto.AccountsToDomain(ds.Accounts))

	ledger, err := container.Ledger.ComputeLedger(ctx, dto.EntriesToDomain(ds.Entries), accounts)
	if err != nil {
		return fmt.Errorf("computing ledger: %w", err)
	}
	trialBalance, err := container.TrialBalance.ComputeTrialBalance(ctx, ledger, accounts)
	if err != nil {
		return fmt.Errorf("computing trial balance: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tACCOUNT\tDEBIT\tCREDIT\tBAL DEBIT\tBAL CREDIT")
	for _, row := range trialBalance.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Code, row.Name,
			row.SumDebit.StringFixed(2), row.SumCredit.StringFixed(2),
			row.BalanceDebit.StringFixed(2), row.BalanceCredit.StringFixed(2))
	}
	fmt.Fprintf(w, "\tTOTALS\t%s\t%s\t\t\n",
		trialBalance.TotalDebit.StringFixed(2), trialBalance.TotalCredit.StringFixed(2))
	if err := w.Flush(); err != nil {
		return err
	}

	if !trialBalance.IsBalanced {
		return fmt.Errorf("trial balance does not balance")
	}
	return nil
}
