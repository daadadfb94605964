package engine

import (
	"time"

	"github.com/dfontes/prazo/internal/domain"
)

// DueReminders returns the tasks whose due date and time land exactly on the
// current minute and that have not yet been notified within that minute.
// The caller is responsible for stamping LastNotifiedTime and persisting;
// the scan itself is a pure function so an external scheduler can drive it.
func DueReminders(clients []domain.Client, now time.Time) []AnnotatedTask {
	today := domain.DateOf(now)
	minute := domain.TimeOf(now)
	var due []AnnotatedTask
	for _, c := range clients {
		for i, t := range c.Tasks {
			if t.Completed || t.DueDate != today || t.DueTime != minute {
				continue
			}
			if t.LastNotifiedTime == minute {
				continue
			}
			due = append(due, AnnotatedTask{
				Task:       t,
				ClientCode: c.Code,
				ClientName: c.Name,
				Index:      i,
			})
		}
	}
	return due
}
