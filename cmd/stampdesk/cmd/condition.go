package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func conditionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "condition <grade>",
		Short: "Map a grade to the marketplace condition code",
		Example: `  stampdesk condition MNH
  stampdesk condition "postally used"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := newClient().MapCondition(
				context.Background(),
				strings.Join(args, " "),
			)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if resp.ConditionID != 0 {
				fmt.Printf("%s (condition id %d)\n", resp.Code, resp.ConditionID)
			} else {
				fmt.Printf("%s (no condition id emitted)\n", resp.Code)
			}
			return nil
		},
	}
}
