package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dfontes/prazo/internal/domain"
)

var testCodeCounter atomic.Int64

// Client options
type ClientOption func(*domain.Client)

func WithCode(code string) ClientOption {
	return func(c *domain.Client) {
		c.Code = code
	}
}

func WithStartDate(d string) ClientOption {
	return func(c *domain.Client) {
		c.StartDate = d
	}
}

func WithTasks(tasks ...domain.Task) ClientOption {
	return func(c *domain.Client) {
		c.Tasks = tasks
	}
}

// NewTestClient builds a client with a generated unique code and a default
// start date.
func NewTestClient(name string, opts ...ClientOption) domain.Client {
	n := testCodeCounter.Add(1)
	c := domain.Client{
		Code:      fmt.Sprintf("C%03d", n),
		Name:      name,
		StartDate: "2026-01-01",
		Tasks:     []domain.Task{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Task options
type TaskOption func(*domain.Task)

func DueAt(date, clock string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = date
		t.DueTime = clock
	}
}

func Due(date string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = date
	}
}

func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func Undated() TaskOption {
	return func(t *domain.Task) {
		t.DueDate = ""
		t.DueTime = ""
	}
}

// NewTestTask builds a task due on a fixed date with no due time.
func NewTestTask(description string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:          uuid.New().String(),
		Description: description,
		DueDate:     "2026-03-15",
		CreatedDate: "2026-03-01",
		CreatedTime: "09:00",
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
