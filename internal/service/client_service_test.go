package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
	"github.com/dfontes/prazo/internal/service"
	"github.com/dfontes/prazo/internal/testutil"
)

func validClientInput() service.ClientInput {
	return service.ClientInput{
		Code:      "ACME",
		Name:      "Acme Corporation",
		StartDate: "2026-02-01",
	}
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t)
	svc := service.NewClientService(st)

	c, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)
	assert.Equal(t, "ACME", c.Code)
	assert.NotNil(t, c.Tasks)

	got, err := svc.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", got.Name)
}

func TestClientService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := service.NewClientService(testutil.NewTestStore(t))

	tests := []struct {
		name    string
		mutate  func(*service.ClientInput)
		wantErr error
	}{
		{"missing code", func(in *service.ClientInput) { in.Code = "  " }, service.ErrCodeRequired},
		{"missing name", func(in *service.ClientInput) { in.Name = "" }, service.ErrNameRequired},
		{"missing start date", func(in *service.ClientInput) { in.StartDate = "" }, service.ErrStartDateRequired},
		{"bad start date", func(in *service.ClientInput) { in.StartDate = "01/02/2026" }, service.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validClientInput()
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientService_CreateDuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc := service.NewClientService(testutil.NewTestStore(t))

	_, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	in := validClientInput()
	in.Code = "acme"
	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, service.ErrCodeInUse)
}

func TestClientService_UpdateMergePreservesTasks(t *testing.T) {
	ctx := context.Background()
	seed := testutil.NewTestClient("Acme Corporation", testutil.WithCode("ACME"), testutil.WithTasks(
		testutil.NewTestTask("keep me"),
	))
	seed.Phone = "11 99999-0000"
	svc := service.NewClientService(testutil.NewTestStore(t, seed))

	newName := "Acme Holdings"
	c, err := svc.Update(ctx, "ACME", service.ClientUpdate{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings", c.Name)
	assert.Equal(t, "11 99999-0000", c.Phone)
	require.Len(t, c.Tasks, 1)
	assert.Equal(t, "keep me", c.Tasks[0].Description)
}

func TestClientService_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	seed := testutil.NewTestClient("Acme", testutil.WithCode("ACME"))
	svc := service.NewClientService(testutil.NewTestStore(t, seed))

	empty := "   "
	_, err := svc.Update(ctx, "ACME", service.ClientUpdate{Name: &empty})
	assert.ErrorIs(t, err, service.ErrNameRequired)

	bad := "not-a-date"
	_, err = svc.Update(ctx, "ACME", service.ClientUpdate{StartDate: &bad})
	assert.ErrorIs(t, err, service.ErrInvalidDate)

	_, err = svc.Update(ctx, "NOPE", service.ClientUpdate{})
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestClientService_ListSorted(t *testing.T) {
	ctx := context.Background()
	svc := service.NewClientService(testutil.NewTestStore(t,
		testutil.NewTestClient("ten", testutil.WithCode("C10")),
		testutil.NewTestClient("two", testutil.WithCode("C2")),
	))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C2", got[0].Code)
	assert.Equal(t, "C10", got[1].Code)
}

func TestClientService_Search(t *testing.T) {
	ctx := context.Background()
	svc := service.NewClientService(testutil.NewTestStore(t,
		testutil.NewTestClient("Acme Corporation", testutil.WithCode("AC")),
	))

	c, err := svc.Search(ctx, "corpo")
	require.NoError(t, err)
	assert.Equal(t, "AC", c.Code)

	_, err = svc.Search(ctx, "nobody")
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestClientService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t,
		testutil.NewTestClient("Acme", testutil.WithCode("ACME"), testutil.WithTasks(
			testutil.NewTestTask("doomed", testutil.Due("2026-03-10")),
		)),
		testutil.NewTestClient("Beta", testutil.WithCode("B1"), testutil.WithTasks(
			testutil.NewTestTask("survivor", testutil.Due("2026-03-10")),
		)),
	)
	svc := service.NewClientService(st)
	query := service.NewQueryService(st, testutil.NowFunc, 0)

	require.NoError(t, svc.Delete(ctx, "ACME"))

	_, err := svc.Get(ctx, "ACME")
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	// The deleted client's tasks fall out of every aggregate.
	stats, err := query.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	tasks, err := query.FilterTasks(ctx, engine.AllClients(), domain.FilterAll, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "survivor", tasks[0].Description)
}
