package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/engine"
	"questboard/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests and daily quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Quests"))
			if len(st.Tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
			}
			for _, q := range st.Tasks {
				r := engine.DifficultySettings[q.Difficulty]
				fmt.Fprintf(out, "- %s %s %s %s\n", ui.Muted.Render(fmt.Sprintf("#%d", q.ID)), q.Title, ui.DifficultyBadge(q.Difficulty), ui.Muted.Render(fmt.Sprintf("(+%d XP, +%d G)", r.XP, r.Gold)))
			}
			fmt.Fprintln(out, "")

			now := svc.Now()
			fmt.Fprintln(out, ui.H2.Render(ui.IconLoop+" Daily Quests"))
			if len(st.Dailies) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
			}
			for _, d := range st.Dailies {
				status := ui.Warn.Render("ready")
				if engine.IsDailyCompleted(d.LastCompleted, now) {
					status = ui.Good.Render("done today")
				}
				fmt.Fprintf(out, "- %s %s %s %s\n", ui.Muted.Render(fmt.Sprintf("#%d", d.ID)), d.Title, ui.DifficultyBadge(d.Difficulty), status)
			}
			return nil
		},
	}

	return cmd
}
