package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func categoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <country>",
		Short: "Resolve a country to a marketplace category",
		Example: `  stampdesk category Romania
  stampdesk category "Deutsches Reich"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := newClient().ResolveCategory(
				context.Background(),
				strings.Join(args, " "),
			)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printCategory(resp)
		},
	}
}
