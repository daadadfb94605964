package formatter

import (
	"fmt"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

// FormatCountdown renders a client's deadline countdown as a boxed message.
func FormatCountdown(clientCode, clientName string, r engine.CountdownResult) string {
	title := fmt.Sprintf("%s - %s", clientCode, clientName)

	if r.Tier == domain.TierUnset {
		return RenderBox(title, Dim("No start date set; countdown unavailable."))
	}

	style := TierColor(r.Tier)
	var msg string
	switch r.Tier {
	case domain.TierOverdue:
		msg = style.Render(fmt.Sprintf("Deadline passed %d day(s) ago.", r.DaysLate))
	case domain.TierDueToday:
		msg = style.Render("Deadline is today.")
	default:
		msg = style.Render(fmt.Sprintf("%d day(s) remaining.", r.DaysRemaining))
	}

	body := msg + "\n" + Dim(fmt.Sprintf("Target: %s", domain.FormatDateBR(r.TargetDate)))
	return RenderBox(title, body)
}
