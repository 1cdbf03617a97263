package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRankingsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rankings <difficulty>",
		Short: "Show the leaderboard for a difficulty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/rankings/%s", args[0])
			if cmd.Flags().Changed("limit") {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			var result Rankings
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries")

	return cmd
}
