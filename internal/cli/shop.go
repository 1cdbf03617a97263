package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Shop and cosmetics commands",
	}

	cmd.AddCommand(newShopBuyCmd())
	cmd.AddCommand(newShopEquipSkinCmd())
	cmd.AddCommand(newShopEquipTitleCmd())

	return cmd
}

func newShopBuyCmd() *cobra.Command {
	var skinID string
	var cost int

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Purchase a skin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if skinID == "" {
				return fmt.Errorf("--skin is required")
			}

			req := map[string]any{"skin_id": skinID}
			if cmd.Flags().Changed("cost") {
				req["cost"] = cost
			}
			var result BalanceResult

			if err := client.Post("/api/v1/shop/skins/purchase", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&skinID, "skin", "", "Skin ID (required)")
	cmd.Flags().IntVar(&cost, "cost", 0, "Expected price, rejected if it disagrees with the server")
	_ = cmd.MarkFlagRequired("skin")

	return cmd
}

func newShopEquipSkinCmd() *cobra.Command {
	var skinID string

	cmd := &cobra.Command{
		Use:   "equip-skin",
		Short: "Equip an owned skin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if skinID == "" {
				return fmt.Errorf("--skin is required")
			}

			req := map[string]string{"skin_id": skinID}
			var result AckResult

			if err := client.Post("/api/v1/shop/skins/equip", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Equipped skin %s", skinID))
			return nil
		},
	}

	cmd.Flags().StringVar(&skinID, "skin", "", "Skin ID (required)")
	_ = cmd.MarkFlagRequired("skin")

	return cmd
}

func newShopEquipTitleCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "equip-title",
		Short: "Equip an unlocked title",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			req := map[string]string{"title": title}
			var result AckResult

			if err := client.Post("/api/v1/titles/equip", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Equipped title %s", title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title name (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
