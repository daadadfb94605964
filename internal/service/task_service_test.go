package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfontes/prazo/internal/service"
	"github.com/dfontes/prazo/internal/testutil"
)

func newTaskFixture(t *testing.T) (service.TaskService, service.ClientService) {
	t.Helper()
	st := testutil.NewTestStore(t,
		testutil.NewTestClient("Acme Corporation", testutil.WithCode("ACME")),
	)
	return service.NewTaskService(st, testutil.NowFunc), service.NewClientService(st)
}

func TestTaskService_Add(t *testing.T) {
	ctx := context.Background()
	tasks, clients := newTaskFixture(t)

	task, err := tasks.Add(ctx, "acme", service.TaskInput{
		Description: "send the report",
		DueDate:     "2026-03-20",
		DueTime:     "14:30",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "2026-03-15", task.CreatedDate)
	assert.Equal(t, "12:00", task.CreatedTime)
	assert.False(t, task.Completed)

	c, err := clients.Get(ctx, "ACME")
	require.NoError(t, err)
	require.Len(t, c.Tasks, 1)
	assert.Equal(t, task.ID, c.Tasks[0].ID)
}

func TestTaskService_AddValidation(t *testing.T) {
	ctx := context.Background()
	tasks, _ := newTaskFixture(t)

	tests := []struct {
		name    string
		in      service.TaskInput
		wantErr error
	}{
		{"missing description", service.TaskInput{DueDate: "2026-03-20"}, service.ErrDescriptionRequired},
		{"missing due date", service.TaskInput{Description: "x"}, service.ErrDueDateRequired},
		{"bad due date", service.TaskInput{Description: "x", DueDate: "20/03/2026"}, service.ErrInvalidDate},
		{"bad due time", service.TaskInput{Description: "x", DueDate: "2026-03-20", DueTime: "2pm"}, service.ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tasks.Add(ctx, "ACME", tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := tasks.Add(ctx, "NOPE", service.TaskInput{Description: "x", DueDate: "2026-03-20"})
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestTaskService_EditMerge(t *testing.T) {
	ctx := context.Background()
	tasks, _ := newTaskFixture(t)

	task, err := tasks.Add(ctx, "ACME", service.TaskInput{
		Description: "original",
		DueDate:     "2026-03-20",
		DueTime:     "14:30",
	})
	require.NoError(t, err)

	newDate := "2026-03-25"
	got, err := tasks.Edit(ctx, "ACME", task.ID, service.TaskUpdate{DueDate: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "original", got.Description)
	assert.Equal(t, "2026-03-25", got.DueDate)
	assert.Equal(t, "14:30", got.DueTime)
}

func TestTaskService_EditCompletedRejected(t *testing.T) {
	ctx := context.Background()
	tasks, _ := newTaskFixture(t)

	task, err := tasks.Add(ctx, "ACME", service.TaskInput{Description: "x", DueDate: "2026-03-20"})
	require.NoError(t, err)
	require.NoError(t, tasks.Complete(ctx, "ACME", task.ID))

	desc := "rewritten"
	_, err = tasks.Edit(ctx, "ACME", task.ID, service.TaskUpdate{Description: &desc})
	assert.ErrorIs(t, err, service.ErrTaskCompleted)
}

func TestTaskService_CompleteReopenCycle(t *testing.T) {
	ctx := context.Background()
	tasks, clients := newTaskFixture(t)

	task, err := tasks.Add(ctx, "ACME", service.TaskInput{Description: "x", DueDate: "2026-03-20"})
	require.NoError(t, err)

	require.NoError(t, tasks.Complete(ctx, "ACME", task.ID))
	assert.ErrorIs(t, tasks.Complete(ctx, "ACME", task.ID), service.ErrTaskCompleted)

	require.NoError(t, tasks.Reopen(ctx, "ACME", task.ID))
	c, err := clients.Get(ctx, "ACME")
	require.NoError(t, err)
	assert.False(t, c.Tasks[0].Completed)

	// Reopened tasks can be completed again.
	require.NoError(t, tasks.Complete(ctx, "ACME", task.ID))
}

func TestTaskService_DeleteAllowsCompleted(t *testing.T) {
	ctx := context.Background()
	tasks, clients := newTaskFixture(t)

	task, err := tasks.Add(ctx, "ACME", service.TaskInput{Description: "x", DueDate: "2026-03-20"})
	require.NoError(t, err)
	require.NoError(t, tasks.Complete(ctx, "ACME", task.ID))

	require.NoError(t, tasks.Delete(ctx, "ACME", task.ID))
	c, err := clients.Get(ctx, "ACME")
	require.NoError(t, err)
	assert.Empty(t, c.Tasks)
}

func TestTaskService_StaleID(t *testing.T) {
	ctx := context.Background()
	tasks, _ := newTaskFixture(t)

	task, err := tasks.Add(ctx, "ACME", service.TaskInput{Description: "x", DueDate: "2026-03-20"})
	require.NoError(t, err)
	require.NoError(t, tasks.Delete(ctx, "ACME", task.ID))

	// A second view acting on the removed task gets a clean failure.
	assert.ErrorIs(t, tasks.Complete(ctx, "ACME", task.ID), service.ErrTaskNotFound)
	assert.ErrorIs(t, tasks.Delete(ctx, "ACME", task.ID), service.ErrTaskNotFound)
	_, err = tasks.Edit(ctx, "ACME", task.ID, service.TaskUpdate{})
	assert.ErrorIs(t, err, service.ErrTaskNotFound)
}
