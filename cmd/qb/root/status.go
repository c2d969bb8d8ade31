package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, experience and gold",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := svc.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Adventurer Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", s.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%s %s / %s (%s to next level)",
				ui.ProgressBar(s.XP, s.XPToNextLevel, 20), ui.Number(s.XP), ui.Number(s.XPToNextLevel), ui.Number(s.XPToNextLevel-s.XP))))
			fmt.Fprintln(out, ui.LabelValue("Gold", ui.GoldAmount(s.Gold)))
			return nil
		},
	}

	return cmd
}
