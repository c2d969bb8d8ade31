package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/engine"
	"questboard/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent activity (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries := svc.History()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" History"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No history yet. Start completing quests!"))
				return nil
			}
			if limit > 0 && limit < len(entries) {
				entries = entries[:limit]
			}
			for _, e := range entries {
				fmt.Fprintf(out, "- %s %s %s %s\n", ui.Muted.Render(ui.HistoryDate(e.Date)), ui.ActionText(e.ActionType), e.Title, ui.RewardsText(e.Rewards))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", engine.HistoryLimit, "Number of entries to show")
	return cmd
}
