package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/dfontes/prazo/internal/domain"
)

// Scope restricts a filter pass to one client's tasks or spans all clients.
// The zero value spans all clients.
type Scope struct {
	clientCode string
}

// AllClients returns a scope spanning every client in the store.
func AllClients() Scope { return Scope{} }

// OneClient returns a scope restricted to the client with the given code,
// matched case-insensitively.
func OneClient(code string) Scope { return Scope{clientCode: code} }

func (s Scope) matches(c domain.Client) bool {
	return s.clientCode == "" || strings.EqualFold(s.clientCode, c.Code)
}

// AnnotatedTask is a task joined with its owning client's identity and its
// position in that client's task list. Index is a presentation convenience
// computed at filter time; the stable task ID is the only durable reference.
type AnnotatedTask struct {
	domain.Task
	ClientCode string
	ClientName string
	Index      int
}

// FilterTasks collects tasks matching the filter kind within the given scope,
// sorted by due date then due time. If specificDate is non-empty, only tasks
// due on that exact calendar date are considered, independent of the kind.
// An empty result is a valid outcome, not an error.
func FilterTasks(clients []domain.Client, scope Scope, kind domain.FilterKind, specificDate string, now time.Time) []AnnotatedTask {
	today := domain.DateOf(now)
	var out []AnnotatedTask
	for _, c := range clients {
		if !scope.matches(c) {
			continue
		}
		for i, t := range c.Tasks {
			if specificDate != "" && t.DueDate != specificDate {
				continue
			}
			if !matchesKind(t, kind, today, now) {
				continue
			}
			out = append(out, AnnotatedTask{
				Task:       t,
				ClientCode: c.Code,
				ClientName: c.Name,
				Index:      i,
			})
		}
	}
	SortAnnotated(out)
	return out
}

func matchesKind(t domain.Task, kind domain.FilterKind, today string, now time.Time) bool {
	switch kind {
	case domain.FilterOverdue:
		return !t.Completed && IsOverdue(t, now)
	case domain.FilterDueToday:
		return !t.Completed && t.DueDate == today && !IsOverdue(t, now)
	case domain.FilterFuture:
		return !t.Completed && t.DueDate > today
	case domain.FilterReport:
		// Daily report: tasks completed with today's due date.
		return t.Completed && t.DueDate == today
	case domain.FilterAll:
		return true
	case domain.FilterCompleted:
		return t.Completed
	case domain.FilterPending:
		return !t.Completed && t.DueDate != "" && t.DueDate <= today
	default:
		return false
	}
}

// SortAnnotated orders tasks by due date ascending, then due time ascending
// with missing times last, then client code and list position for a
// deterministic total order.
func SortAnnotated(tasks []AnnotatedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		if (a.DueTime == "") != (b.DueTime == "") {
			return a.DueTime != "" // timed before untimed
		}
		if a.DueTime != b.DueTime {
			return a.DueTime < b.DueTime
		}
		if a.ClientCode != b.ClientCode {
			return a.ClientCode < b.ClientCode
		}
		return a.Index < b.Index
	})
}
