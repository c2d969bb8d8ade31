package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"questboard/internal/engine"
	"questboard/internal/ui"
)

func newAddCmd() *cobra.Command {
	var diff string
	var daily bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest (or a daily quest with --daily)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := svc.AddQuest(ctx, strings.Join(args, " "), d, daily)
			if err != nil {
				return err
			}
			msg := "Quest Added!"
			if daily {
				msg = "Daily Quest Added!"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPlus+" "+msg), ui.Muted.Render(fmt.Sprintf("#%d", id)), ui.DifficultyBadge(d))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", string(engine.DifficultyMedium), "Difficulty (easy|medium|hard|boss)")
	cmd.Flags().BoolVar(&daily, "daily", false, "Create a daily quest that can be completed once per day")

	return cmd
}
