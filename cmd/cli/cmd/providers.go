package cmd

import (
	"github.com/spf13/cobra"

	"cloud-cost/core/output"
)

func (c *cli) newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported providers, regions and catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.components()
			if err != nil {
				return err
			}
			return c.render(cmd, output.Providers(comp.Registry))
		},
	}
}
