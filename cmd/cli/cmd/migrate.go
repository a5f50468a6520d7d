package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"cloud-cost/core/types"
)

func (c *cli) newMigrateCmd() *cobra.Command {
	var (
		from, to string
		budget   string
	)

	cmd := &cobra.Command{
		Use:   "migrate [workload description]",
		Short: "Sketch a migration plan between providers",
		Long: `Estimate the complexity, duration and cost of moving a workload from one
provider to the other, with phases, risks and next steps.

The complexity estimate is derived from the length of the description.

Examples:
  cloud-cost migrate --from aws --to gcp "web app with postgres and redis"
  cloud-cost migrate --from gcp --to aws --budget tight "batch pipeline"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.components()
			if err != nil {
				return err
			}

			current, _ := types.ParseProvider(from)
			target, _ := types.ParseProvider(to)
			plan, err := comp.Analyzer.Engine().RecommendMigration(
				current,
				target,
				strings.Join(args, " "),
				types.BudgetTier(strings.ToLower(budget)),
			)
			if err != nil {
				return err
			}
			return c.render(cmd, plan)
		},
	}

	cmd.Flags().StringVar(&from, "from", string(types.ProviderAWS), "current provider")
	cmd.Flags().StringVar(&to, "to", string(types.ProviderGCP), "target provider")
	cmd.Flags().StringVarP(&budget, "budget", "b", string(types.BudgetModerate), "budget constraint (tight, moderate, flexible)")
	return cmd
}
