package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dfontes/prazo/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Bold renders s in the bold foreground style.
func Bold(s string) string { return StyleBold.Render(s) }

// Dim renders s in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// StatusColor returns the lipgloss style for a task's temporal status.
func StatusColor(status domain.TaskStatus) lipgloss.Style {
	switch status {
	case domain.StatusOverdue:
		return StyleRed
	case domain.StatusDueToday:
		return StyleYellow
	case domain.StatusFuture:
		return StyleBlue
	case domain.StatusCompleted:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status label such as "OVERDUE" or "TODAY".
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.StatusOverdue:
		return StyleRed.Render("OVERDUE")
	case domain.StatusDueToday:
		return StyleYellow.Render("TODAY")
	case domain.StatusFuture:
		return StyleBlue.Render("FUTURE")
	case domain.StatusCompleted:
		return StyleGreen.Render("DONE")
	default:
		return StyleDim.Render("UNDATED")
	}
}

// TierColor returns the lipgloss style for a countdown tier.
func TierColor(tier domain.CountdownTier) lipgloss.Style {
	switch tier {
	case domain.TierOverdue:
		return StyleRed
	case domain.TierDueToday, domain.TierWarning:
		return StyleYellow
	case domain.TierSafe:
		return StyleGreen
	default:
		return StyleDim
	}
}
