package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfontes/prazo/internal/service"
	"github.com/dfontes/prazo/internal/testutil"
)

type recordingNotifier struct {
	titles []string
	bodies []string
}

func (r *recordingNotifier) Notify(title, body string) error {
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
	return nil
}

func TestReminderService_ScanFiresAndStamps(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t,
		testutil.NewTestClient("Acme Corporation", testutil.WithCode("ACME"), testutil.WithTasks(
			testutil.NewTestTask("call the client", testutil.DueAt("2026-03-15", "12:00")),
			testutil.NewTestTask("not yet", testutil.DueAt("2026-03-15", "15:00")),
		)),
	)
	rec := &recordingNotifier{}
	svc := service.NewReminderService(st, rec, testutil.NowFunc)

	fired, err := svc.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, fired, 1)
	assert.Equal(t, "call the client", fired[0].Description)

	require.Len(t, rec.titles, 1)
	assert.Equal(t, "Task due: ACME - Acme Corporation", rec.titles[0])
	assert.Equal(t, "call the client (due 15/03/2026 12:00)", rec.bodies[0])

	// The stamp persisted, so a second scan in the same minute is silent.
	clients, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12:00", clients[0].Tasks[0].LastNotifiedTime)

	fired, err = svc.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, fired)
	assert.Len(t, rec.titles, 1)
}

func TestReminderService_ScanNothingDue(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t,
		testutil.NewTestClient("Acme", testutil.WithCode("ACME"), testutil.WithTasks(
			testutil.NewTestTask("untimed", testutil.Due("2026-03-15")),
		)),
	)
	svc := service.NewReminderService(st, nil, testutil.NowFunc)

	fired, err := svc.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, fired)
}

func TestReminderService_SkipsCompleted(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t,
		testutil.NewTestClient("Acme", testutil.WithCode("ACME"), testutil.WithTasks(
			testutil.NewTestTask("done already", testutil.DueAt("2026-03-15", "12:00"), testutil.Completed()),
		)),
	)
	rec := &recordingNotifier{}
	svc := service.NewReminderService(st, rec, testutil.NowFunc)

	fired, err := svc.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, fired)
	assert.Empty(t, rec.titles)
}
