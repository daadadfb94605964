package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfontes/prazo/internal/cli/formatter"
	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
	"github.com/dfontes/prazo/internal/service"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage a client's tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskEditCmd(app),
		newTaskDoneCmd(app),
		newTaskReopenCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var in service.TaskInput

	cmd := &cobra.Command{
		Use:   "add <client>",
		Short: "Add a task to a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}

			if app.interactive() && (in.Description == "" || in.DueDate == "") {
				if err := taskForm(&in.Description, &in.DueDate, &in.DueTime).Run(); err != nil {
					return err
				}
			}

			t, err := app.Tasks.Add(ctx, c.Code, in)
			if err != nil {
				return err
			}
			fmt.Printf("Added task for %s: %s\n", c.Code, formatter.FormatTaskLine(*t))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Description, "desc", "", "Task description")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.DueTime, "at", "", "Due time (HH:MM, optional)")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <client>",
		Short: "List a client's tasks in due order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Query.FilterTasks(ctx, engine.OneClient(c.Code), domain.FilterAll, "")
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Tasks for %s - %s", c.Code, c.Name)
			fmt.Print(formatter.FormatTaskList(title, tasks, app.now()))
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var desc, due, at string

	cmd := &cobra.Command{
		Use:   "edit <client> <task-id>",
		Short: "Edit an open task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, c.Code, args[1])
			if err != nil {
				return err
			}

			upd := service.TaskUpdate{}
			if cmd.Flags().Changed("desc") {
				upd.Description = &desc
			}
			if cmd.Flags().Changed("due") {
				upd.DueDate = &due
			}
			if cmd.Flags().Changed("at") {
				upd.DueTime = &at
			}

			t, err := app.Tasks.Edit(ctx, c.Code, id, upd)
			if err != nil {
				return err
			}
			fmt.Printf("Updated task: %s\n", formatter.FormatTaskLine(*t))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Task description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Due time (HH:MM, empty clears it)")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <client> <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, c.Code, args[1])
			if err != nil {
				return err
			}
			ok, err := app.confirm("Mark this task as completed?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := app.Tasks.Complete(ctx, c.Code, id); err != nil {
				return err
			}
			fmt.Println("Task completed.")
			return nil
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <client> <task-id>",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, c.Code, args[1])
			if err != nil {
				return err
			}
			if err := app.Tasks.Reopen(ctx, c.Code, id); err != nil {
				return err
			}
			fmt.Println("Task reopened.")
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <client> <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, c.Code, args[1])
			if err != nil {
				return err
			}
			ok, err := app.confirm("Permanently delete this task?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := app.Tasks.Delete(ctx, c.Code, id); err != nil {
				return err
			}
			fmt.Println("Task deleted.")
			return nil
		},
	}
}
