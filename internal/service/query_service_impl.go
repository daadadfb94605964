package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
	"github.com/dfontes/prazo/internal/store"
)

type queryService struct {
	store      *store.RecordStore
	now        NowFunc
	offsetDays int
}

// NewQueryService wraps the pure engine over fresh store snapshots. Every
// query re-loads so results always reflect the last save, including saves
// made by another open view.
func NewQueryService(st *store.RecordStore, now NowFunc, offsetDays int) QueryService {
	if now == nil {
		now = time.Now
	}
	if offsetDays <= 0 {
		offsetDays = engine.DefaultOffsetDays
	}
	return &queryService{store: st, now: now, offsetDays: offsetDays}
}

func (s *queryService) FilterTasks(ctx context.Context, scope engine.Scope, kind domain.FilterKind, specificDate string) ([]engine.AnnotatedTask, error) {
	if specificDate != "" && !domain.ValidDate(specificDate) {
		return nil, fmt.Errorf("filter date %q: %w", specificDate, ErrInvalidDate)
	}
	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return engine.FilterTasks(clients, scope, kind, specificDate, s.now()), nil
}

func (s *queryService) Stats(ctx context.Context, filterDate string) (engine.Stats, error) {
	if filterDate != "" && !domain.ValidDate(filterDate) {
		return engine.Stats{}, fmt.Errorf("filter date %q: %w", filterDate, ErrInvalidDate)
	}
	clients, err := s.store.Load(ctx)
	if err != nil {
		return engine.Stats{}, err
	}
	return engine.ComputeStats(clients, s.now(), filterDate), nil
}

func (s *queryService) Countdown(ctx context.Context, clientCode string) (engine.CountdownResult, error) {
	clients, err := s.store.Load(ctx)
	if err != nil {
		return engine.CountdownResult{}, err
	}
	i := store.FindByCode(clients, clientCode)
	if i == -1 {
		return engine.CountdownResult{}, fmt.Errorf("client %q: %w", clientCode, ErrClientNotFound)
	}
	return engine.Countdown(clients[i].StartDate, s.now(), s.offsetDays), nil
}

func (s *queryService) Summary(ctx context.Context, clientCode string) (engine.ClientSummary, error) {
	clients, err := s.store.Load(ctx)
	if err != nil {
		return engine.ClientSummary{}, err
	}
	i := store.FindByCode(clients, clientCode)
	if i == -1 {
		return engine.ClientSummary{}, fmt.Errorf("client %q: %w", clientCode, ErrClientNotFound)
	}
	return engine.Summarize(clients[i], s.now()), nil
}

func (s *queryService) OverdueCount(ctx context.Context) (int, error) {
	clients, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	return engine.OverdueCount(clients, s.now()), nil
}
