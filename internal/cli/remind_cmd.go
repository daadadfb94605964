package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Fire reminders for tasks due right now",
		Long: `Remind scans for tasks whose due date and time match the current minute
and delivers a notification for each. A task fires at most once per minute.
With --watch the scan repeats on the configured interval until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			scan := func() error {
				fired, err := app.Reminders.Scan(ctx)
				if err != nil {
					return err
				}
				if !watch && len(fired) == 0 {
					fmt.Println("No tasks due this minute.")
				}
				return nil
			}

			if err := scan(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			interval := app.ReminderInterval
			if interval <= 0 {
				interval = time.Minute
			}

			// The engine stays timer-free; this loop is the external
			// scheduler driving the pure scan.
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			defer signal.Stop(interrupt)

			fmt.Printf("Watching for due tasks every %s. Ctrl+C to stop.\n", interval)
			for {
				select {
				case <-ticker.C:
					if err := scan(); err != nil {
						return err
					}
				case <-interrupt:
					fmt.Println("\nStopped.")
					return nil
				}
			}
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep scanning on the configured interval")
	return cmd
}
