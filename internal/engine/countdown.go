package engine

import (
	"math"
	"time"

	"github.com/dfontes/prazo/internal/domain"
)

// DefaultOffsetDays is the standard onboarding window added to a client's
// start date to obtain the countdown target.
const DefaultOffsetDays = 30

// CountdownResult describes how far a client is from its countdown target.
type CountdownResult struct {
	Tier       domain.CountdownTier
	TargetDate string // YYYY-MM-DD, empty when the tier is unset
	// DaysRemaining counts midnights until the target; negative once past it.
	// Meaningless when Tier is TierUnset.
	DaysRemaining int
	// DaysLate is abs(DaysRemaining) when overdue, zero otherwise.
	DaysLate int
}

// Countdown computes the deadline state for a client's start date plus a
// fixed calendar offset. Month and year rollover follow the calendar, not
// 24h multiples. An empty or malformed start date yields TierUnset and no
// numeric values.
func Countdown(startDate string, now time.Time, offsetDays int) CountdownResult {
	if startDate == "" {
		return CountdownResult{Tier: domain.TierUnset}
	}
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return CountdownResult{Tier: domain.TierUnset}
	}

	target := start.AddDate(0, 0, offsetDays)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Ceil(target.Sub(midnight).Hours() / 24))

	result := CountdownResult{
		TargetDate:    domain.DateOf(target),
		DaysRemaining: days,
	}
	switch {
	case days > 5:
		result.Tier = domain.TierSafe
	case days > 0:
		result.Tier = domain.TierWarning
	case days == 0:
		result.Tier = domain.TierDueToday
	default:
		result.Tier = domain.TierOverdue
		result.DaysLate = -days
	}
	return result
}
