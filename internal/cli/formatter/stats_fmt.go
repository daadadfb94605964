package formatter

import (
	"fmt"
	"strings"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

// FormatStats renders the global task tallies, optionally scoped to one
// calendar date, plus the overdue alert badge.
func FormatStats(stats engine.Stats, filterDate string, overdue int) string {
	var b strings.Builder

	title := "Task Statistics"
	if filterDate != "" {
		title = fmt.Sprintf("Task Statistics for %s", domain.FormatDateBR(filterDate))
	}
	b.WriteString(StyleHeader.Render(title) + "\n\n")

	rows := [][]string{
		{Bold("Total"), StyleFg.Render(fmt.Sprintf("%d", stats.Total))},
		{StyleGreen.Render("Completed"), StyleFg.Render(fmt.Sprintf("%d", stats.Completed))},
		{StyleYellow.Render("Pending"), StyleFg.Render(fmt.Sprintf("%d", stats.Pending))},
		{StyleBlue.Render("Future"), StyleFg.Render(fmt.Sprintf("%d", stats.Future))},
	}
	b.WriteString(RenderTable([]string{"STATUS", "COUNT"}, rows))

	b.WriteString("\n")
	if overdue > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("⚠ %d overdue task(s) need attention", overdue)) + "\n")
	} else {
		b.WriteString(StyleGreen.Render("No overdue tasks") + "\n")
	}
	return b.String()
}

// FormatSummary renders a single client's overdue/today/future counters.
func FormatSummary(s engine.ClientSummary) string {
	return fmt.Sprintf("%s, %s, %s",
		StyleRed.Render(fmt.Sprintf("%d overdue", s.Overdue)),
		StyleYellow.Render(fmt.Sprintf("%d due today", s.DueToday)),
		StyleBlue.Render(fmt.Sprintf("%d future", s.Future)),
	)
}
