package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfontes/prazo/internal/cli/formatter"
	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

func newAgendaCmd(app *App) *cobra.Command {
	var clientCode, date string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "agenda [overdue|today|future|report|all|completed|pending]",
		Short: "Filtered task views across clients",
		Long: `Agenda shows tasks filtered by temporal status or completion state,
across all clients or scoped to one. With --date and no filter argument it
lists every task due on that calendar date.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.FilterAll
			if len(args) == 1 {
				if !domain.ValidFilterKinds[args[0]] {
					return fmt.Errorf("unknown filter %q", args[0])
				}
				kind = domain.FilterKind(args[0])
			}

			scope := engine.AllClients()
			ctx := context.Background()
			if clientCode != "" {
				c, err := resolveClient(ctx, app, clientCode)
				if err != nil {
					return err
				}
				scope = engine.OneClient(c.Code)
			}

			if interactive && app.interactive() {
				return runAgendaView(app, scope, kind, date)
			}

			tasks, err := app.Query.FilterTasks(ctx, scope, kind, date)
			if err != nil {
				return err
			}

			title := formatter.FilterTitles[kind]
			if date != "" {
				title = fmt.Sprintf("%s on %s", title, domain.FormatDateBR(date))
			}
			fmt.Print(formatter.FormatTaskList(title, tasks, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientCode, "client", "", "Scope to one client by code")
	cmd.Flags().StringVar(&date, "date", "", "Only tasks due on this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the agenda in a TUI")
	return cmd
}
