package service

import (
	"context"
	"time"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

// NowFunc supplies the current time. Injectable so every temporal decision
// is testable against a fixed clock.
type NowFunc func() time.Time

// ClientInput carries the full field set of a client create form.
type ClientInput struct {
	Code          string
	Name          string
	StartDate     string
	ContactPerson string
	Email         string
	Phone         string
	ActionPlan    string
}

// ClientUpdate carries a partial update; nil fields keep their stored value.
// The task list is always preserved.
type ClientUpdate struct {
	Name          *string
	StartDate     *string
	ContactPerson *string
	Email         *string
	Phone         *string
	ActionPlan    *string
}

type ClientService interface {
	Create(ctx context.Context, in ClientInput) (*domain.Client, error)
	Update(ctx context.Context, code string, upd ClientUpdate) (*domain.Client, error)
	Get(ctx context.Context, code string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Search(ctx context.Context, query string) (*domain.Client, error)
	Delete(ctx context.Context, code string) error
}

// TaskInput carries the field set of a task add form.
type TaskInput struct {
	Description string
	DueDate     string
	DueTime     string
}

// TaskUpdate carries a partial task edit; nil fields keep their stored value.
type TaskUpdate struct {
	Description *string
	DueDate     *string
	DueTime     *string
}

type TaskService interface {
	Add(ctx context.Context, clientCode string, in TaskInput) (*domain.Task, error)
	Edit(ctx context.Context, clientCode, taskID string, upd TaskUpdate) (*domain.Task, error)
	Complete(ctx context.Context, clientCode, taskID string) error
	Reopen(ctx context.Context, clientCode, taskID string) error
	Delete(ctx context.Context, clientCode, taskID string) error
}

type QueryService interface {
	FilterTasks(ctx context.Context, scope engine.Scope, kind domain.FilterKind, specificDate string) ([]engine.AnnotatedTask, error)
	Stats(ctx context.Context, filterDate string) (engine.Stats, error)
	Countdown(ctx context.Context, clientCode string) (engine.CountdownResult, error)
	Summary(ctx context.Context, clientCode string) (engine.ClientSummary, error)
	OverdueCount(ctx context.Context) (int, error)
}

type ReminderService interface {
	// Scan fires reminders for tasks due in the current minute, stamps them
	// and persists. Returns the tasks that fired.
	Scan(ctx context.Context) ([]engine.AnnotatedTask, error)
}
