package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dfontes/prazo/internal/cli"
	"github.com/dfontes/prazo/internal/config"
	"github.com/dfontes/prazo/internal/db"
	"github.com/dfontes/prazo/internal/notify"
	"github.com/dfontes/prazo/internal/service"
	"github.com/dfontes/prazo/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	recordStore := store.NewRecordStore(store.NewSQLiteKV(database))

	var observers []service.UseCaseObserver
	if cfg.Logging.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	notifier := notify.NewWriterNotifier(os.Stdout, cfg.Reminders.Bell)

	app := &cli.App{
		Clients:   service.NewClientService(recordStore, observers...),
		Tasks:     service.NewTaskService(recordStore, nil, observers...),
		Query:     service.NewQueryService(recordStore, nil, cfg.Countdown.OffsetDays),
		Reminders: service.NewReminderService(recordStore, notifier, nil, observers...),

		ReminderInterval: cfg.Reminders.Interval,
	}

	// Detect interactive terminal for forms and confirmation prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
