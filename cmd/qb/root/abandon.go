package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

func newAbandonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abandon <id>",
		Short: "Abandon a quest without reward",
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

			if err := svc.AbandonQuest(ctx, parseID(args)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconFlag+" Quest abandoned"))
			return nil
		},
	}

	return cmd
}

func newDropDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop-daily <id>",
		Short: "Remove a daily quest permanently",
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

			if err := svc.DeleteDaily(ctx, parseID(args)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconFlag+" Daily quest removed"))
			return nil
		},
	}

	return cmd
}
