package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/service"
	"github.com/dfontes/prazo/internal/testutil"
)

func newTestApp(t *testing.T, clients ...domain.Client) *App {
	t.Helper()
	st := testutil.NewTestStore(t, clients...)
	return &App{
		Clients:   service.NewClientService(st),
		Tasks:     service.NewTaskService(st, testutil.NowFunc),
		Query:     service.NewQueryService(st, testutil.NowFunc, 0),
		Reminders: service.NewReminderService(st, nil, testutil.NowFunc),
		Now:       testutil.NowFunc,
	}
}

func TestResolveClient_ByCode(t *testing.T) {
	app := newTestApp(t, testutil.NewTestClient("Acme Corporation", testutil.WithCode("ACME")))

	c, err := resolveClient(context.Background(), app, "acme")
	require.NoError(t, err)
	assert.Equal(t, "ACME", c.Code)
}

func TestResolveClient_FallsBackToName(t *testing.T) {
	app := newTestApp(t, testutil.NewTestClient("Acme Corporation", testutil.WithCode("ACME")))

	c, err := resolveClient(context.Background(), app, "corpo")
	require.NoError(t, err)
	assert.Equal(t, "ACME", c.Code)
}

func TestResolveClient_NotFound(t *testing.T) {
	app := newTestApp(t)

	_, err := resolveClient(context.Background(), app, "ghost")
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	_, err = resolveClient(context.Background(), app, "   ")
	assert.Error(t, err)
}

func TestResolveTaskID(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, testutil.NewTestClient("Acme", testutil.WithCode("ACME")))

	first, err := app.Tasks.Add(ctx, "ACME", service.TaskInput{Description: "first", DueDate: "2026-03-20"})
	require.NoError(t, err)

	// Exact id.
	id, err := resolveTaskID(ctx, app, "ACME", first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)

	// Unique prefix, the truncated form shown in listings.
	id, err = resolveTaskID(ctx, app, "ACME", first.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)

	_, err = resolveTaskID(ctx, app, "ACME", "zzzz")
	assert.Error(t, err)

	_, err = resolveTaskID(ctx, app, "ACME", "")
	assert.Error(t, err)
}

func TestResolveTaskID_AmbiguousPrefix(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, testutil.NewTestClient("Acme", testutil.WithCode("ACME"), testutil.WithTasks(
		domain.Task{ID: "abc-1", Description: "one", DueDate: "2026-03-20"},
		domain.Task{ID: "abc-2", Description: "two", DueDate: "2026-03-20"},
	)))

	_, err := resolveTaskID(ctx, app, "ACME", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}
