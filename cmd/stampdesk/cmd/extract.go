package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Draft listing details from a photo",
		Long: "Send a photograph to the vision backend and print the drafted\n" +
			"title, description, and attributes for review before listing.",
		Example: `  stampdesk extract front.jpg
  stampdesk extract --family stamp scan.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			mimeType := mime.TypeByExtension(filepath.Ext(args[0]))

			details, err := newClient().Extract(
				context.Background(), family, data, mimeType,
			)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(details)
			}
			return printCardDetails(details)
		},
	}

	cmd.Flags().StringVar(&family, "family", "postcard", "item family: postcard or stamp")
	return cmd
}
