package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfontes/prazo/internal/cli/formatter"
	"github.com/dfontes/prazo/internal/service"
	"github.com/spf13/pflag"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage client records",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientShowCmd(app),
		newClientEditCmd(app),
		newClientRemoveCmd(app),
		newClientSearchCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var in service.ClientInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Open the form when run interactively without the required flags.
			if app.interactive() && (in.Code == "" || in.Name == "" || in.StartDate == "") {
				form := clientForm(&in.Code, &in.Name, &in.StartDate,
					&in.ContactPerson, &in.Email, &in.Phone, &in.ActionPlan)
				if err := form.Run(); err != nil {
					return err
				}
			}

			c, err := app.Clients.Create(context.Background(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Registered client %s - %s\n", c.Code, c.Name)
			return nil
		},
	}

	addClientFlags(cmd.Flags(), &in)
	return cmd
}

// addClientFlags registers the shared client field flags on a flag set.
func addClientFlags(flags *pflag.FlagSet, in *service.ClientInput) {
	flags.StringVar(&in.Code, "code", "", "Unique client code")
	flags.StringVar(&in.Name, "name", "", "Client name")
	flags.StringVar(&in.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	flags.StringVar(&in.ContactPerson, "contact", "", "Contact person")
	flags.StringVar(&in.Email, "email", "", "Contact email")
	flags.StringVar(&in.Phone, "phone", "", "Contact phone")
	flags.StringVar(&in.ActionPlan, "plan", "", "Free-text action plan")
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all clients sorted by code",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatClientList(clients, app.now()))
			return nil
		},
	}
}

func newClientShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show one client with counters and countdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			summary, err := app.Query.Summary(ctx, c.Code)
			if err != nil {
				return err
			}
			cd, err := app.Query.Countdown(ctx, c.Code)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatClient(*c, summary, cd))
			return nil
		},
	}
}

func newClientEditCmd(app *App) *cobra.Command {
	var name, start, contact, email, phone, plan string

	cmd := &cobra.Command{
		Use:   "edit <code>",
		Short: "Update client fields (task list is preserved)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upd := service.ClientUpdate{}
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("start") {
				upd.StartDate = &start
			}
			if cmd.Flags().Changed("contact") {
				upd.ContactPerson = &contact
			}
			if cmd.Flags().Changed("email") {
				upd.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				upd.Phone = &phone
			}
			if cmd.Flags().Changed("plan") {
				upd.ActionPlan = &plan
			}

			c, err := app.Clients.Update(context.Background(), args[0], upd)
			if err != nil {
				return err
			}
			fmt.Printf("Updated client %s - %s\n", c.Code, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact person")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&plan, "plan", "", "Free-text action plan")
	return cmd
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <code>",
		Short: "Delete a client and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(fmt.Sprintf("Permanently delete client %s and all of its tasks?", c.Code))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := app.Clients.Delete(ctx, c.Code); err != nil {
				return err
			}
			fmt.Printf("Deleted client %s and its tasks\n", c.Code)
			return nil
		},
	}
}

func newClientSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find a client by code or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.Clients.Search(ctx, args[0])
			if errors.Is(err, service.ErrClientNotFound) {
				fmt.Printf("No client matches %q. Register one with: prazo client add --code %s\n", args[0], args[0])
				return nil
			}
			if err != nil {
				return err
			}
			summary, err := app.Query.Summary(ctx, c.Code)
			if err != nil {
				return err
			}
			cd, err := app.Query.Countdown(ctx, c.Code)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatClient(*c, summary, cd))
			return nil
		},
	}
}
