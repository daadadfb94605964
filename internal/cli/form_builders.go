package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dfontes/prazo/internal/domain"
)

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateDate(s string) error {
	if !domain.ValidDate(s) {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalTime(s string) error {
	if s == "" {
		return nil
	}
	if !domain.ValidTime(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

// dateInput returns a huh.Input for a required date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-06-30").
		Value(value).
		Validate(validateDate)
}

// clientForm builds the interactive client registration form. Fields arrive
// pre-filled when the caller passed flags.
func clientForm(code, name, startDate, contact, email, phone, plan *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client code").Value(code).Validate(validateRequired("code")),
			huh.NewInput().Title("Client name").Value(name).Validate(validateRequired("name")),
			dateInput("Start date", startDate),
			huh.NewInput().Title("Contact person").Value(contact),
			huh.NewInput().Title("Email").Value(email),
			huh.NewInput().Title("Phone").Value(phone),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Action plan").
				Description(fmt.Sprintf("advisory limit %d characters, not enforced", domain.ActionPlanSoftCap)).
				Value(plan),
		),
	).WithTheme(prazoHuhTheme()).WithShowHelp(false)
}

// taskForm builds the interactive task add/edit form.
func taskForm(description, dueDate, dueTime *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(description).Validate(validateRequired("description")),
			dateInput("Due date", dueDate),
			huh.NewInput().Title("Due time (HH:MM, blank for none)").Placeholder("14:30").
				Value(dueTime).Validate(validateOptionalTime),
		),
	).WithTheme(prazoHuhTheme()).WithShowHelp(false)
}

// confirm asks a yes/no question before a destructive action. --yes answers
// without prompting; a non-interactive session without --yes refuses rather
// than guessing.
func (a *App) confirm(message string) (bool, error) {
	if a.AssumeYes {
		return true, nil
	}
	if !a.interactive() {
		return false, fmt.Errorf("confirmation required; re-run with --yes")
	}
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Confirm").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(prazoHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
