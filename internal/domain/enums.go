package domain

type TaskStatus string

const (
	StatusCompleted TaskStatus = "completed"
	StatusOverdue   TaskStatus = "overdue"
	StatusDueToday  TaskStatus = "due_today"
	StatusFuture    TaskStatus = "future"
	StatusNoDueDate TaskStatus = "no_due_date"
)

type CountdownTier string

const (
	TierSafe     CountdownTier = "safe"
	TierWarning  CountdownTier = "warning"
	TierDueToday CountdownTier = "due_today"
	TierOverdue  CountdownTier = "overdue"
	TierUnset    CountdownTier = "unset"
)

// FilterKind selects which tasks a filter pass returns. The first four are
// temporal filters over incomplete tasks (Report being the completed-today
// daily report); All, Completed and Pending are the status-only stat filters.
type FilterKind string

const (
	FilterOverdue   FilterKind = "overdue"
	FilterDueToday  FilterKind = "today"
	FilterFuture    FilterKind = "future"
	FilterReport    FilterKind = "report"
	FilterAll       FilterKind = "all"
	FilterCompleted FilterKind = "completed"
	FilterPending   FilterKind = "pending"
)

// ValidFilterKinds is the canonical set of accepted filter kind strings.
var ValidFilterKinds = map[string]bool{
	"overdue": true, "today": true, "future": true, "report": true,
	"all": true, "completed": true, "pending": true,
}
