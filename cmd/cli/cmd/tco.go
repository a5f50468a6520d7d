package cmd

import (
	"github.com/spf13/cobra"

	"cloud-cost/core/analysis"
	"cloud-cost/core/types"
)

func (c *cli) newTCOCmd() *cobra.Command {
	var (
		computeA, computeB       float64
		storageA, storageB       float64
		additionalA, additionalB float64
		months                   int
	)

	cmd := &cobra.Command{
		Use:   "tco",
		Short: "Project total cost of ownership over a time horizon",
		Long: `Project the total cost of ownership of both providers from monthly
compute, storage and additional costs. Each provider's operational overhead
is added on top.

Examples:
  cloud-cost tco --compute-a 100 --compute-b 150 --storage-a 23 --storage-b 20
  cloud-cost tco --compute-a 700 --compute-b 650 --months 12 --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.components()
			if err != nil {
				return err
			}

			pa, pb := comp.Policy.Providers()
			result, err := comp.Analyzer.Engine().CalculateTCO(
				types.CostsByProvider{pa: computeA, pb: computeB},
				types.CostsByProvider{pa: storageA, pb: storageB},
				types.CostsByProvider{pa: additionalA, pb: additionalB},
				months,
			)
			if err != nil {
				return err
			}
			return c.render(cmd, result)
		},
	}

	cmd.Flags().Float64Var(&computeA, "compute-a", 0, "monthly compute cost of provider A")
	cmd.Flags().Float64Var(&computeB, "compute-b", 0, "monthly compute cost of provider B")
	cmd.Flags().Float64Var(&storageA, "storage-a", 0, "monthly storage cost of provider A")
	cmd.Flags().Float64Var(&storageB, "storage-b", 0, "monthly storage cost of provider B")
	cmd.Flags().Float64Var(&additionalA, "additional-a", 0, "other monthly costs of provider A")
	cmd.Flags().Float64Var(&additionalB, "additional-b", 0, "other monthly costs of provider B")
	cmd.Flags().IntVarP(&months, "months", "m", analysis.DefaultHorizonMonths, "time horizon in months")
	return cmd
}
