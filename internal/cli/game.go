package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Report game results",
	}

	cmd.AddCommand(newGameFinishCmd())
	cmd.AddCommand(newGameFailCmd())
	cmd.AddCommand(newGameRecoverCmd())

	return cmd
}

func newGameFinishCmd() *cobra.Command {
	var difficulty string
	var timeSeconds int

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Report a won game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if difficulty == "" {
				return fmt.Errorf("--difficulty is required")
			}

			req := map[string]any{
				"difficulty": difficulty,
				"time":       timeSeconds,
			}
			var result FinishResult

			if err := client.Post("/api/v1/games/finish", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty: easy, normal, hard (required)")
	cmd.Flags().IntVar(&timeSeconds, "time", 0, "Elapsed time in seconds")
	_ = cmd.MarkFlagRequired("difficulty")

	return cmd
}

func newGameFailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fail",
		Short: "Report a lost game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AckResult

			if err := client.Post("/api/v1/games/fail", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Loss recorded")
			return nil
		},
	}
}

func newGameRecoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Spend coins to continue after hitting a mine",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BalanceResult

			if err := client.Post("/api/v1/games/recover", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
