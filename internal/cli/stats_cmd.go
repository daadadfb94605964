package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfontes/prazo/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Global task tallies and the overdue alert",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stats, err := app.Query.Stats(ctx, date)
			if err != nil {
				return err
			}
			overdue, err := app.Query.OverdueCount(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStats(stats, date, overdue))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Restrict tallies to tasks due on this date (YYYY-MM-DD)")
	return cmd
}
