package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dfontes/prazo/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clients   service.ClientService
	Tasks     service.TaskService
	Query     service.QueryService
	Reminders service.ReminderService

	// Now supplies the clock for display-side classification; nil means
	// time.Now.
	Now service.NowFunc

	// ReminderInterval drives the remind --watch loop.
	ReminderInterval time.Duration

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and confirms are skipped when it returns false.
	IsInteractive func() bool

	// AssumeYes answers every confirmation prompt with yes (--yes).
	AssumeYes bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "prazo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "prazo",
		Short: "Client and task deadline tracker",
	}

	root.PersistentFlags().BoolVarP(&app.AssumeYes, "yes", "y", false, "Answer yes to confirmation prompts")

	root.AddCommand(
		newClientCmd(app),
		newTaskCmd(app),
		newAgendaCmd(app),
		newStatsCmd(app),
		newCountdownCmd(app),
		newRemindCmd(app),
	)

	return root
}
