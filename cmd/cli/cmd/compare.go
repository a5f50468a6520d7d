package cmd

import (
	"github.com/spf13/cobra"

	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// sideFlags describe one side of a two-sided comparison
type sideFlags struct {
	region string
	price  float64
	hourly float64
}

func (s *sideFlags) bind(cmd *cobra.Command, side, unit string) {
	cmd.Flags().StringVar(&s.region, "region-"+side, "", "region for side "+side+" (default from config)")
	cmd.Flags().Float64Var(&s.price, "price-"+side, 0, "known price for side "+side+" in USD "+unit+", skips the catalog")
}

// quote builds the side's quote. Prices are only set when their flag was given.
func (s *sideFlags) quote(cmd *cobra.Command, side, resource string, priceField func(*types.PriceQuote, *float64)) types.PriceQuote {
	q := types.PriceQuote{Resource: resource, Region: s.region}
	if cmd.Flags().Changed("price-" + side) {
		v := s.price
		priceField(&q, &v)
	}
	if cmd.Flags().Lookup("hourly-"+side) != nil && cmd.Flags().Changed("hourly-"+side) {
		v := s.hourly
		q.PricePerHour = &v
	}
	return q
}

func (c *cli) newCompareCmd() *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare prices between providers",
	}
	compareCmd.AddCommand(
		c.newCompareComputeCmd(),
		c.newCompareStorageCmd(),
		c.newCompareInstancesCmd(),
	)
	return compareCmd
}

func (c *cli) newCompareComputeCmd() *cobra.Command {
	var (
		a, b     sideFlags
		workload string
	)

	cmd := &cobra.Command{
		Use:   "compute <instance-a> <instance-b>",
		Short: "Compare two compute instances on cost and fit",
		Long: `Score two compute instances on cost, performance, scalability,
reliability and maintenance for a workload.

Prices come from the built-in catalogs unless given with --price-a/--price-b
(monthly) or --hourly-a/--hourly-b.

Examples:
  cloud-cost compare compute t3.medium e2-medium
  cloud-cost compare compute m5.large n2-standard-2 --workload machine_learning
  cloud-cost compare compute m5.large n2-standard-2 --price-a 100 --price-b 150`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.components()
			if err != nil {
				return err
			}

			monthly := func(q *types.PriceQuote, v *float64) { q.PricePerMonth = v }
			qa, qb, err := comp.Analyzer.FillCompute(cmd.Context(),
				a.quote(cmd, "a", args[0], monthly),
				b.quote(cmd, "b", args[1], monthly),
			)
			if err != nil {
				return err
			}

			result, err := comp.Analyzer.Engine().CompareCompute(qa, qb, types.WorkloadRequirements{Type: types.WorkloadType(workload)})
			if err != nil {
				return err
			}
			return c.render(cmd, result)
		},
	}

	a.bind(cmd, "a", "per month")
	b.bind(cmd, "b", "per month")
	cmd.Flags().Float64Var(&a.hourly, "hourly-a", 0, "known hourly price for side a")
	cmd.Flags().Float64Var(&b.hourly, "hourly-b", 0, "known hourly price for side b")
	cmd.Flags().StringVarP(&workload, "workload", "w", string(types.WorkloadGeneral), "workload type (general, compute_intensive, data_intensive, web_application, batch_processing, machine_learning)")
	return cmd
}

func (c *cli) newCompareStorageCmd() *cobra.Command {
	var a, b sideFlags

	cmd := &cobra.Command{
		Use:   "storage <type-a> <type-b>",
		Short: "Compare two storage classes",
		Long: `Compare two object storage classes on price per GB-month, durability
and availability, with cost projections for common sizes.

Examples:
  cloud-cost compare storage s3_standard standard
  cloud-cost compare storage s3_ia nearline --region-a eu-west-1 --region-b europe-west1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.components()
			if err != nil {
				return err
			}

			perGB := func(q *types.PriceQuote, v *float64) { q.PricePerGBMonth = v }
			qa, qb, err := comp.Analyzer.FillStorage(cmd.Context(),
				a.quote(cmd, "a", args[0], perGB),
				b.quote(cmd, "b", args[1], perGB),
			)
			if err != nil {
				return err
			}

			result, err := comp.Analyzer.Engine().CompareStorage(qa, qb)
			if err != nil {
				return err
			}
			return c.render(cmd, result)
		},
	}

	a.bind(cmd, "a", "per GB-month")
	b.bind(cmd, "b", "per GB-month")
	return cmd
}

func (c *cli) newCompareInstancesCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "instances <provider> <instance-type>...",
		Short: "Rank instance types of one provider by price",
		Example: `  cloud-cost compare instances aws t3.medium m5.large c5.large
  cloud-cost compare instances gcp e2-medium n2-standard-2 --region europe-west1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.components()
			if err != nil {
				return err
			}

			provider, _ := types.ParseProvider(args[0])
			plugin, ok := comp.Registry.GetPlugin(provider)
			if !ok {
				return cerrors.Validation("provider", "unknown provider %q", args[0])
			}
			if region == "" {
				region = plugin.DefaultRegion()
			}

			ranked, err := pricing.RankCompute(cmd.Context(), plugin.PricingSource(), region, args[1:])
			if err != nil {
				return err
			}
			return c.render(cmd, ranked)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "region (default is the provider's default region)")
	return cmd
}
