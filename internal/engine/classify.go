package engine

import (
	"time"

	"github.com/dfontes/prazo/internal/domain"
)

// IsOverdue reports whether the task's deadline has passed as of now.
// Completed tasks and tasks without a due date are never overdue. A task due
// today with no due time stays on time for the remainder of the day: the date
// itself has to pass before it counts as overdue.
func IsOverdue(t domain.Task, now time.Time) bool {
	if t.Completed || t.DueDate == "" {
		return false
	}
	today := domain.DateOf(now)
	if t.DueDate < today {
		return true
	}
	return t.DueDate == today && t.DueTime != "" && domain.TimeOf(now) > t.DueTime
}

// Classify derives the task's temporal status as of now. Completed takes
// precedence over everything, then overdue, due today and future; tasks
// without a due date fall through to StatusNoDueDate.
func Classify(t domain.Task, now time.Time) domain.TaskStatus {
	today := domain.DateOf(now)
	switch {
	case t.Completed:
		return domain.StatusCompleted
	case IsOverdue(t, now):
		return domain.StatusOverdue
	case t.DueDate == today:
		return domain.StatusDueToday
	case t.DueDate > today:
		return domain.StatusFuture
	default:
		return domain.StatusNoDueDate
	}
}
