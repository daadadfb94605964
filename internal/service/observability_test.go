package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfontes/prazo/internal/service"
	"github.com/dfontes/prazo/internal/testutil"
)

type recordingObserver struct {
	events []service.UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e service.UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestUseCaseObserver_SeesMutations(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := service.NewClientService(testutil.NewTestStore(t), obs)

	_, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validClientInput())
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "client_create", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "ACME", obs.events[0].Fields["code"])
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, service.ErrCodeInUse)
}

func TestLogUseCaseObserver(t *testing.T) {
	ctx := context.Background()
	var buf strings.Builder
	svc := service.NewClientService(testutil.NewTestStore(t), service.NewLogUseCaseObserver(&buf))

	_, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=client_create")
	assert.Contains(t, out, "success=true")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	obs := service.NewLogUseCaseObserver(nil)
	assert.IsType(t, service.NoopUseCaseObserver{}, obs)
}
