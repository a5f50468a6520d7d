package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cloud-cost/core/analysis"
	"cloud-cost/core/output"
	cerrors "cloud-cost/internal/errors"
)

func (c *cli) newAnalyzeCmd() *cobra.Command {
	var (
		template     string
		scenarioFile string
		months       int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a full comparison for a scenario",
		Long: `Resolve catalog prices for a scenario, compare compute and storage and
project the total cost of ownership.

A scenario comes from a built-in template or a YAML (or JSON) file:

  name: api-backend
  workload_type: web_application
  compute_a: {resource: m5.large, region: us-east-1}
  compute_b: {resource: n2-standard-2}
  storage_a: {resource: s3_standard}
  storage_b: {resource: standard}
  storage_size_gb: 500
  monthly_budget: 400

Examples:
  cloud-cost analyze --template startup_web_app
  cloud-cost analyze --scenario scenario.yaml --months 12 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(template, scenarioFile)
			if err != nil {
				return err
			}
			if months != 0 {
				scenario.HorizonMonths = months
			}

			comp, err := c.components()
			if err != nil {
				return err
			}
			report, err := comp.Analyzer.Analyze(cmd.Context(), scenario)
			if err != nil {
				return err
			}
			return c.render(cmd, report)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "built-in scenario template (see 'cloud-cost templates')")
	cmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "scenario file (.yaml, .yml or .json)")
	cmd.Flags().IntVarP(&months, "months", "m", 0, "time horizon in months (default 36)")
	cmd.MarkFlagsMutuallyExclusive("template", "scenario")
	cmd.MarkFlagsOneRequired("template", "scenario")
	return cmd
}

func loadScenario(template, path string) (analysis.Scenario, error) {
	if template != "" {
		tmpl, err := analysis.LookupTemplate(template)
		if err != nil {
			return analysis.Scenario{}, err
		}
		return tmpl.Scenario, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return analysis.Scenario{}, cerrors.Wrap(cerrors.TypeConfig, "failed to read scenario file", err).WithContext("path", path)
	}
	var s analysis.Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return analysis.Scenario{}, cerrors.Wrap(cerrors.TypeParsing, "failed to parse scenario file", err).WithContext("path", path)
	}
	return s, nil
}

func (c *cli) newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the built-in scenario templates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := c.writer(cmd.OutOrStdout())
			table := w.NewTable("ID", "WORKLOAD", "COMPUTE", "STORAGE", "SIZE")
			for _, t := range analysis.Templates() {
				s := t.Scenario
				table.AddRow(
					t.ID,
					string(s.Workload),
					s.ComputeA.Resource+" / "+s.ComputeB.Resource,
					s.StorageA.Resource+" / "+s.StorageB.Resource,
					output.Size(s.StorageGB),
				)
			}
			table.Render()
		},
	}
}
