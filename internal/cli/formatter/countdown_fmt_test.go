package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

func TestFormatCountdown_Safe(t *testing.T) {
	r := engine.CountdownResult{Tier: domain.TierSafe, TargetDate: "2026-03-31", DaysRemaining: 16}
	out := FormatCountdown("ACME", "Acme Corporation", r)

	assert.Contains(t, out, "ACME - ACME CORPORATION")
	assert.Contains(t, out, "16 day(s) remaining.")
	assert.Contains(t, out, "Target: 31/03/2026")
}

func TestFormatCountdown_Overdue(t *testing.T) {
	r := engine.CountdownResult{Tier: domain.TierOverdue, TargetDate: "2026-03-01", DaysLate: 14}
	out := FormatCountdown("ACME", "Acme", r)
	assert.Contains(t, out, "Deadline passed 14 day(s) ago.")
}

func TestFormatCountdown_DueToday(t *testing.T) {
	r := engine.CountdownResult{Tier: domain.TierDueToday, TargetDate: "2026-03-15"}
	out := FormatCountdown("ACME", "Acme", r)
	assert.Contains(t, out, "Deadline is today.")
}

func TestFormatCountdown_Unset(t *testing.T) {
	out := FormatCountdown("ACME", "Acme", engine.CountdownResult{Tier: domain.TierUnset})
	assert.Contains(t, out, "No start date set; countdown unavailable.")
}
