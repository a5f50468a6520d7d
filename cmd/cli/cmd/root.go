// Package cmd provides the CLI commands for cloud-cost.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cloud-cost/core/output"
	"cloud-cost/core/ui"
	"cloud-cost/internal/app"
	"cloud-cost/internal/config"
	"cloud-cost/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

// cli holds the state shared by all subcommands
type cli struct {
	cfgFile string
	verbose bool
	format  string
	noColor bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "cloud-cost",
		Short: "Compare AWS and Google Cloud costs",
		Long: `cloud-cost compares compute and storage pricing between AWS and
Google Cloud, projects total cost of ownership and sketches migration plans.

Examples:
  cloud-cost compare compute t3.medium e2-medium
  cloud-cost compare storage s3_standard standard --format json
  cloud-cost tco --compute-a 100 --compute-b 150 --months 12
  cloud-cost analyze --template startup_web_app
  cloud-cost serve --address :9090`,
		SilenceUsage:      true,
		PersistentPreRunE: c.initConfig,
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&c.format, "format", "f", "", "output format (cli, json, yaml, markdown)")
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		c.newCompareCmd(),
		c.newTCOCmd(),
		c.newMigrateCmd(),
		c.newAnalyzeCmd(),
		c.newTemplatesCmd(),
		c.newDiscountCmd(),
		c.newProvidersCmd(),
		c.newVersionCmd(),
		c.newServeCmd(),
	)
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func (c *cli) initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	config.Set(cfg)

	if c.format == "" {
		c.format = cfg.Output.DefaultFormat
	}
	if cfg.Output.NoColor {
		c.noColor = true
	}
	c.cfg = cfg
	c.logger = logging.Named("cli")
	return nil
}

// components builds the analyzer over the configured catalogs
func (c *cli) components() (*app.Components, error) {
	return app.Build(c.cfg, c.logger, nil)
}

// render writes result in the selected output format
func (c *cli) render(cmd *cobra.Command, result interface{}) error {
	format, err := output.ParseFormat(c.format)
	if err != nil {
		return err
	}
	formatter, err := output.New(format, output.Options{NoColor: c.noColor})
	if err != nil {
		return err
	}
	return formatter.Render(cmd.OutOrStdout(), result)
}

func (c *cli) writer(out io.Writer) *ui.Writer {
	w := ui.NewWriter(out, c.noColor)
	if c.verbose {
		w.SetVerbosity(2)
	}
	return w
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cloud-cost version %s\n", Version)
		},
	}
}
