package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

// FormatClientList renders the client roster with per-client task pressure.
func FormatClientList(clients []domain.Client, now time.Time) string {
	if len(clients) == 0 {
		return Dim("No clients registered.") + "\n"
	}

	headers := []string{"CODE", "NAME", "START", "TASKS", "OVERDUE"}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		summary := engine.Summarize(c, now)
		overdueCell := Dim("0")
		if summary.Overdue > 0 {
			overdueCell = StyleRed.Render(strconv.Itoa(summary.Overdue))
		}
		start := Dim("--")
		if c.StartDate != "" {
			start = StyleFg.Render(domain.FormatDateBR(c.StartDate))
		}
		rows = append(rows, []string{
			Bold(c.Code),
			StyleFg.Render(c.Name),
			start,
			StyleFg.Render(strconv.Itoa(len(c.Tasks))),
			overdueCell,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d client(s)", len(clients))) + "\n")
	return b.String()
}

// FormatClient renders one client's full record with its task counters and
// deadline countdown.
func FormatClient(c domain.Client, summary engine.ClientSummary, cd engine.CountdownResult) string {
	var b strings.Builder

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(label+":"), StyleFg.Render(value)))
	}

	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s - %s", c.Code, c.Name)) + "\n\n")
	field("Start date", domain.FormatDateBR(c.StartDate))
	field("Contact", c.ContactPerson)
	field("Email", c.Email)
	field("Phone", c.Phone)

	if c.ActionPlan != "" {
		b.WriteString("\n" + Dim("Action plan:") + "\n")
		b.WriteString(StyleFg.Render(c.ActionPlan) + "\n")
		b.WriteString(PlanRemaining(len(c.ActionPlan), domain.ActionPlanSoftCap) + "\n")
	}

	b.WriteString("\n" + FormatSummary(summary) + "\n\n")
	b.WriteString(FormatCountdown(c.Code, c.Name, cd) + "\n")
	return b.String()
}
