package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"questboard/internal/engine"
	"questboard/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
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

			res, err := svc.CompleteQuest(ctx, parseID(args))
			if err != nil {
				return err
			}
			printReward(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily <id>",
		Short: "Complete a daily quest for today",
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

			res, err := svc.CompleteDaily(ctx, parseID(args))
			if err != nil {
				return err
			}
			printReward(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}

func printReward(out io.Writer, res *engine.RewardResult) {
	fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" "+res.Title), ui.Muted.Render(ui.CompletionMessage(res)))
	if res.LevelUp {
		fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
	}
	fmt.Fprintln(out, ui.LabelValue("Gold", ui.GoldAmount(res.Stats.Gold)))
}
