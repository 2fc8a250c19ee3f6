package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
	"github.com/sumaconta/sumaconta_backend/internal/core/services"
	"github.com/sumaconta/sumaconta_backend/internal/dto"
)

func newValuationCommand() *cobra.Command {
	var method string
	var closingPeriod string
	var policy string

	cmd := &cobra.Command{
		Use:   "valuation <dataset.json>",
		Short: "Print stock valuations, optionally reexpressed at a closing period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			opts := portssvc.CostingOptions{
				NegativeStock: domain.NegativeStockPolicy(strings.ToUpper(policy)),
			}
			if closingPeriod != "" {
				return runEndingValuation(cmd, ds, domain.CostingMethod(method), closingPeriod, opts)
			}
			return runValuation(cmd, ds, domain.CostingMethod(method), opts)
		},
	}

	cmd.Flags().StringVar(&method, "method", string(domain.MethodFIFO), "costing method: FIFO, LIFO or PPP")
	cmd.Flags().StringVar(&closingPeriod, "closing", "", "closing period (YYYY-MM) for homogeneous reexpression")
	cmd.Flags().StringVar(&policy, "policy", string(domain.NegativeStockReject), "negative stock policy: REJECT, ALLOW or CLAMP")

	return cmd
}

func runValuation(cmd *cobra.Command, ds *dataset, method domain.CostingMethod, opts portssvc.CostingOptions) error {
	container := services.NewServicesContainer()
	valuations, err := container.Costing.CalculateAllValuations(
		context.Background(),
		dto.ProductsToDomain(ds.Products),
		dto.MovementsToDomain(ds.Movements),
		method, opts)
	if err != nil {
		return fmt.Errorf("computing valuations: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tSTOCK\tAVG COST\tTOTAL VALUE")
	for _, v := range valuations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			v.ProductID,
			v.CurrentStock.String(),
			v.AverageCost.StringFixed(4),
			v.TotalValue.StringFixed(2))
	}
	return w.Flush()
}

func runEndingValuation(cmd *cobra.Command, ds *dataset, method domain.CostingMethod, closingPeriod string, opts portssvc.CostingOptions) error {
	container := services.NewServicesContainer()
	result, err := container.Reexpression.ComputeEndingInventoryValuation(context.Background(), portssvc.EndingInventoryParams{
		Products:      dto.ProductsToDomain(ds.Products),
		Movements:     dto.MovementsToDomain(ds.Movements),
		Method:        method,
		ClosingPeriod: closingPeriod,
		Indices:       dto.IndicesToDomain(ds.Indices),
		Costing:       opts,
	})
	if err != nil {
		return fmt.Errorf("computing ending valuation: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tSTOCK\tORIGIN VALUE\tHOMOG VALUE")
	for _, p := range result.Products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.ProductID,
			p.CurrentStock.String(),
			p.TotalOrigin.StringFixed(2),
			p.TotalHomog.StringFixed(2))
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\n",
		result.TotalQuantity.String(),
		result.TotalOrigin.StringFixed(2),
		result.TotalHomog.StringFixed(2))
	fmt.Fprintf(w, "ADJUSTMENT\t\t%s\t(%s%%)\n",
		result.Adjustment.StringFixed(2),
		result.AdjustmentPct.StringFixed(2))
	if err := w.Flush(); err != nil {
		return err
	}

	if !result.HasIndices {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: missing price indices for periods: %s\n",
			strings.Join(result.MissingPeriods, ", "))
	}
	return nil
}
