package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/store"
	"github.com/google/uuid"
)

type taskService struct {
	store *store.RecordStore
	now   NowFunc
	obs   UseCaseObserver
}

func NewTaskService(st *store.RecordStore, now NowFunc, observers ...UseCaseObserver) TaskService {
	if now == nil {
		now = time.Now
	}
	return &taskService{store: st, now: now, obs: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Add(ctx context.Context, clientCode string, in TaskInput) (task *domain.Task, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "task_add", start, err, map[string]any{"client": clientCode})
	}()

	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, ErrDescriptionRequired
	}
	if in.DueDate == "" {
		return nil, ErrDueDateRequired
	}
	if !domain.ValidDate(in.DueDate) {
		return nil, fmt.Errorf("due date %q: %w", in.DueDate, ErrInvalidDate)
	}
	if in.DueTime != "" && !domain.ValidTime(in.DueTime) {
		return nil, fmt.Errorf("due time %q: %w", in.DueTime, ErrInvalidTime)
	}

	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := store.FindByCode(clients, clientCode)
	if i == -1 {
		return nil, fmt.Errorf("client %q: %w", clientCode, ErrClientNotFound)
	}

	now := s.now()
	t := domain.Task{
		ID:          uuid.New().String(),
		Description: in.Description,
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		CreatedDate: domain.DateOf(now),
		CreatedTime: domain.TimeOf(now),
	}
	clients[i].Tasks = append(clients[i].Tasks, t)
	if err = s.store.Save(ctx, clients); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskService) Edit(ctx context.Context, clientCode, taskID string, upd TaskUpdate) (task *domain.Task, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "task_edit", start, err, map[string]any{"client": clientCode, "task": taskID})
	}()

	clients, t, err := s.resolve(ctx, clientCode, taskID)
	if err != nil {
		return nil, err
	}
	if t.Completed {
		return nil, fmt.Errorf("task %q: %w", taskID, ErrTaskCompleted)
	}

	desc := strings.TrimSpace(domain.StrFromPtrWithDefault(t.Description, upd.Description))
	if desc == "" {
		return nil, ErrDescriptionRequired
	}
	dueDate := domain.StrFromPtrWithDefault(t.DueDate, upd.DueDate)
	if dueDate == "" {
		return nil, ErrDueDateRequired
	}
	if !domain.ValidDate(dueDate) {
		return nil, fmt.Errorf("due date %q: %w", dueDate, ErrInvalidDate)
	}
	dueTime := domain.StrFromPtrWithDefault(t.DueTime, upd.DueTime)
	if dueTime != "" && !domain.ValidTime(dueTime) {
		return nil, fmt.Errorf("due time %q: %w", dueTime, ErrInvalidTime)
	}

	t.Description = desc
	t.DueDate = dueDate
	t.DueTime = dueTime
	if err = s.store.Save(ctx, clients); err != nil {
		return nil, err
	}
	copied := *t
	return &copied, nil
}

func (s *taskService) Complete(ctx context.Context, clientCode, taskID string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "task_complete", start, err, map[string]any{"client": clientCode, "task": taskID})
	}()

	clients, t, err := s.resolve(ctx, clientCode, taskID)
	if err != nil {
		return err
	}
	if t.Completed {
		return fmt.Errorf("task %q: %w", taskID, ErrTaskCompleted)
	}
	t.Completed = true
	return s.store.Save(ctx, clients)
}

func (s *taskService) Reopen(ctx context.Context, clientCode, taskID string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "task_reopen", start, err, map[string]any{"client": clientCode, "task": taskID})
	}()

	clients, t, err := s.resolve(ctx, clientCode, taskID)
	if err != nil {
		return err
	}
	t.Completed = false
	return s.store.Save(ctx, clients)
}

func (s *taskService) Delete(ctx context.Context, clientCode, taskID string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "task_delete", start, err, map[string]any{"client": clientCode, "task": taskID})
	}()

	clients, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	i := store.FindByCode(clients, clientCode)
	if i == -1 {
		return fmt.Errorf("client %q: %w", clientCode, ErrClientNotFound)
	}
	_, pos := clients[i].TaskByID(taskID)
	if pos == -1 {
		return fmt.Errorf("task %q: %w", taskID, ErrTaskNotFound)
	}
	clients[i].Tasks = append(clients[i].Tasks[:pos], clients[i].Tasks[pos+1:]...)
	return s.store.Save(ctx, clients)
}

// resolve loads a fresh snapshot and locates the task by its stable id,
// returning the snapshot so the caller can save it back. A task that vanished
// between views surfaces as ErrTaskNotFound, never as a mutation of the
// wrong entry.
func (s *taskService) resolve(ctx context.Context, clientCode, taskID string) ([]domain.Client, *domain.Task, error) {
	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	i := store.FindByCode(clients, clientCode)
	if i == -1 {
		return nil, nil, fmt.Errorf("client %q: %w", clientCode, ErrClientNotFound)
	}
	t, pos := clients[i].TaskByID(taskID)
	if pos == -1 {
		return nil, nil, fmt.Errorf("task %q: %w", taskID, ErrTaskNotFound)
	}
	return clients, t, nil
}
