package engine

import (
	"time"

	"github.com/dfontes/prazo/internal/domain"
)

// Stats tallies task counts across all clients. Pending covers incomplete
// tasks due today or earlier; Future covers incomplete tasks due after today.
// Incomplete tasks without a due date count only toward Total.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Future    int
}

// ComputeStats makes a single pass over every task of every client. If
// filterDate is non-empty, only tasks due on that exact date are tallied.
func ComputeStats(clients []domain.Client, now time.Time, filterDate string) Stats {
	today := domain.DateOf(now)
	var s Stats
	for _, c := range clients {
		for _, t := range c.Tasks {
			if filterDate != "" && t.DueDate != filterDate {
				continue
			}
			s.Total++
			switch {
			case t.Completed:
				s.Completed++
			case t.DueDate > today:
				s.Future++
			case t.DueDate != "":
				s.Pending++
			}
		}
	}
	return s
}

// ClientSummary holds the per-client counter row shown next to the countdown.
type ClientSummary struct {
	Overdue  int
	DueToday int
	Future   int
}

// Summarize counts a single client's incomplete tasks by temporal status.
func Summarize(c domain.Client, now time.Time) ClientSummary {
	var s ClientSummary
	for _, t := range c.Tasks {
		switch Classify(t, now) {
		case domain.StatusOverdue:
			s.Overdue++
		case domain.StatusDueToday:
			s.DueToday++
		case domain.StatusFuture:
			s.Future++
		}
	}
	return s
}

// OverdueCount counts incomplete overdue tasks across all clients, feeding
// the global alert badge.
func OverdueCount(clients []domain.Client, now time.Time) int {
	count := 0
	for _, c := range clients {
		for _, t := range c.Tasks {
			if !t.Completed && IsOverdue(t, now) {
				count++
			}
		}
	}
	return count
}
