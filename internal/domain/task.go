package domain

// Task is a dated to-do item owned by exactly one client. Dates are stored as
// zero-padded YYYY-MM-DD strings and clock times as zero-padded HH:MM strings,
// so lexicographic order is chronological order. An empty DueTime means the
// task has no intraday deadline.
type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	DueTime     string `json:"due_time,omitempty"`
	Completed   bool   `json:"completed"`

	// Provenance stamp, set when the task is created.
	CreatedDate string `json:"created_date,omitempty"`
	CreatedTime string `json:"created_time,omitempty"`

	// LastNotifiedTime records the HH:MM minute a due reminder last fired,
	// suppressing duplicate delivery within the same minute.
	LastNotifiedTime string `json:"last_notified_time,omitempty"`
}
