package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)

	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return boxStyle.Render(content)
}

// PlanRemaining phrases the action-plan character budget left under the soft
// cap; negative remainders read as "over".
func PlanRemaining(length, cap int) string {
	remaining := cap - length
	switch {
	case remaining < 0:
		return StyleRed.Render(fmt.Sprintf("%d characters over the advisory limit", -remaining))
	case remaining < 100:
		return StyleYellow.Render(fmt.Sprintf("%d characters remaining", remaining))
	default:
		return Dim(fmt.Sprintf("%d characters remaining", remaining))
	}
}
