package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List rewards in the shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.H2.Render(ui.IconShop+" Reward Shop"), ui.Muted.Render("balance "+ui.Number(st.UserStats.Gold)+" G"))
			if len(st.Rewards) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
			}
			for _, r := range st.Rewards {
				cost := ui.GoldAmount(r.Cost)
				if st.UserStats.Gold < r.Cost {
					cost = ui.Muted.Render(ui.Number(r.Cost) + " G")
				}
				fmt.Fprintf(out, "- %s %s %s\n", ui.Muted.Render(fmt.Sprintf("#%d", r.ID)), r.Name, cost)
			}
			return nil
		},
	}

	cmd.AddCommand(newShopAddCmd(), newShopRemoveCmd())
	return cmd
}

func newShopAddCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a reward to the shop",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := svc.AddReward(ctx, strings.Join(args, " "), cost)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconPlus+" Reward added"), ui.Muted.Render(fmt.Sprintf("#%d", id)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", 50, "Price in gold")
	return cmd
}

func newShopRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a reward from the shop",
		Args: func(cmd *cobra.Command, args []string) error {
			return idArg(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RemoveReward(ctx, parseID(args)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Reward removed"))
			return nil
		},
	}

	return cmd
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <id>",
		Short: "Spend gold on a reward",
		Args: func(cmd *cobra.Command, args []string) error {
			return idArg(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Purchase(ctx, parseID(args))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Gold.Render(ui.IconShop+" Purchased: "+res.Name), ui.Muted.Render(fmt.Sprintf("(-%d G, %d left)", res.Cost, res.Stats.Gold)))
			return nil
		},
	}

	return cmd
}
