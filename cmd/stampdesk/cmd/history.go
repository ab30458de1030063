package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/stampdesk/stampdesk/internal/api/client"
)

func historyCmd() *cobra.Command {
	historyRoot := &cobra.Command{
		Use:   "history",
		Short: "Query recorded submission attempts",
	}

	historyRoot.AddCommand(
		historyListCmd(),
		historyGetCmd(),
	)

	return historyRoot
}

func historyListCmd() *cobra.Command {
	var (
		status      string
		environment string
		listingType string
		skuPrefix   string
		limit       int
		offset      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attempts with optional filters",
		Example: `  # Recent attempts
  stampdesk history list

  # Failed production auctions
  stampdesk history list --status failed --environment production --type auction

  # Stamps only, paginated
  stampdesk history list --sku-prefix STAMP- --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := newClient().ListAttempts(context.Background(), &apiclient.ListAttemptsParams{
				Status:      status,
				Environment: environment,
				ListingType: listingType,
				SKUPrefix:   skuPrefix,
				Limit:       limit,
				Offset:      offset,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Attempts) == 0 {
				fmt.Println("No attempts found.")
				return nil
			}

			fmt.Printf("Showing %d of %d attempts\n\n", len(resp.Attempts), resp.Total)
			return printAttemptsTable(resp.Attempts)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by outcome (succeeded, failed)")
	cmd.Flags().StringVar(&environment, "environment", "", "filter by environment (sandbox, production)")
	cmd.Flags().StringVar(&listingType, "type", "", "filter by listing format (fixed_price, auction)")
	cmd.Flags().StringVar(&skuPrefix, "sku-prefix", "", "filter by SKU prefix")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")

	return cmd
}

func historyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <sku>",
		Short: "Show one attempt by SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			attempt, err := newClient().GetAttempt(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(attempt)
			}
			return printAttemptDetail(attempt)
		},
	}
}
