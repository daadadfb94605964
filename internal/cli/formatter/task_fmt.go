package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

// FilterTitles maps filter kinds to their display headings.
var FilterTitles = map[domain.FilterKind]string{
	domain.FilterOverdue:   "Overdue Tasks",
	domain.FilterDueToday:  "Tasks Due Today",
	domain.FilterFuture:    "Future Tasks",
	domain.FilterReport:    "Daily Report (Completed Today)",
	domain.FilterAll:       "All Tasks",
	domain.FilterCompleted: "Completed Tasks",
	domain.FilterPending:   "Pending Tasks",
}

// FormatTaskList renders a filtered task set as a titled table. An empty set
// renders a "no tasks found" notice rather than an empty table.
func FormatTaskList(title string, tasks []engine.AnnotatedTask, now time.Time) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(title) + "\n\n")

	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks found for this filter.") + "\n")
		return b.String()
	}

	headers := []string{"CLIENT", "#", "STATUS", "DUE", "TIME", "DESCRIPTION"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		status := engine.Classify(t.Task, now)
		timeCell := Dim("--")
		if t.DueTime != "" {
			timeCell = StyleFg.Render(t.DueTime)
		}
		rows = append(rows, []string{
			Bold(t.ClientCode) + Dim(" "+t.ClientName),
			Dim(strconv.Itoa(t.Index + 1)),
			StatusPill(status),
			StatusColor(status).Render(domain.FormatDateBR(t.DueDate)),
			timeCell,
			StyleFg.Render(t.Description),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d task(s)", len(tasks))) + "\n")
	return b.String()
}

// FormatTaskLine renders a one-line task confirmation such as the output of
// task add.
func FormatTaskLine(t domain.Task) string {
	due := domain.FormatDateBR(t.DueDate)
	if t.DueTime != "" {
		due += " " + t.DueTime
	}
	return fmt.Sprintf("%s (due %s) [%s]", t.Description, due, ShortID(t.ID))
}

// ShortID truncates a task id for display; lookups accept the prefix.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
