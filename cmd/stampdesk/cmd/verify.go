package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	var flags listingFlags

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a listing without creating it",
		Long: "Run the marketplace's dry-run validation over an assembled\n" +
			"listing. Fees and policy problems surface here without an item\n" +
			"being created or an attempt recorded.",
		RunE: func(_ *cobra.Command, _ []string) error {
			params, err := flags.toParams()
			if err != nil {
				return err
			}

			result, err := newClient().VerifyListing(context.Background(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}
			return printResult(result)
		},
	}

	flags.register(cmd)
	return cmd
}
