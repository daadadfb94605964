package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfontes/prazo/internal/cli/formatter"
)

func newCountdownCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "countdown <client>",
		Short: "Days remaining until a client's deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			cd, err := app.Query.Countdown(ctx, c.Code)
			if err != nil {
				return err
			}
			summary, err := app.Query.Summary(ctx, c.Code)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCountdown(c.Code, c.Name, cd))
			fmt.Println(formatter.FormatSummary(summary))
			return nil
		},
	}
}
