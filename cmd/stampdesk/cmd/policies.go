package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func policiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "Show the seller's business policy set",
		Long: "Look up the shipping, payment, and return policy ids on the\n" +
			"seller account. An incomplete set means submissions fall back\n" +
			"to inline shipping and return terms.",
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := newClient().GetPolicies(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printPolicies(resp)
		},
	}
}
