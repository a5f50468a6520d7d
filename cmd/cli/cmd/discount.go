package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"cloud-cost/core/pricing"
	cerrors "cloud-cost/internal/errors"
)

func (c *cli) newDiscountCmd() *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "discount <hourly-rate>",
		Short: "Compute the Google Cloud sustained use discount",
		Long: `Compute the sustained use discount for an instance running part or all
of a month. The discount starts at 25% usage and caps at 30%.

Examples:
  cloud-cost discount 0.0475
  cloud-cost discount 0.097 --hours 360`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return cerrors.Validation("hourly_rate", "not a number: %q", args[0])
			}

			d, err := pricing.SustainedUseDiscount(rate, hours)
			if err != nil {
				return err
			}
			return c.render(cmd, d)
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", pricing.HoursPerMonth, "hours the instance runs per month")
	return cmd
}
