package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/store"
)

type clientService struct {
	store *store.RecordStore
	obs   UseCaseObserver
}

func NewClientService(st *store.RecordStore, observers ...UseCaseObserver) ClientService {
	return &clientService{store: st, obs: useCaseObserverOrNoop(observers)}
}

func (s *clientService) Create(ctx context.Context, in ClientInput) (client *domain.Client, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "client_create", start, err, map[string]any{"code": in.Code})
	}()

	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	if in.Code == "" {
		return nil, ErrCodeRequired
	}
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if in.StartDate == "" {
		return nil, ErrStartDateRequired
	}
	if !domain.ValidDate(in.StartDate) {
		return nil, fmt.Errorf("start date %q: %w", in.StartDate, ErrInvalidDate)
	}

	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if store.FindByCode(clients, in.Code) != -1 {
		return nil, fmt.Errorf("code %q: %w", in.Code, ErrCodeInUse)
	}

	c := domain.Client{
		Code:          in.Code,
		Name:          in.Name,
		StartDate:     in.StartDate,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		ActionPlan:    in.ActionPlan,
		Tasks:         []domain.Task{},
	}
	clients = append(clients, c)
	if err = s.store.Save(ctx, clients); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *clientService) Update(ctx context.Context, code string, upd ClientUpdate) (client *domain.Client, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "client_update", start, err, map[string]any{"code": code})
	}()

	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := store.FindByCode(clients, code)
	if i == -1 {
		return nil, fmt.Errorf("client %q: %w", code, ErrClientNotFound)
	}

	// Merge semantics: provided fields overwrite, the task list is preserved.
	c := clients[i]
	name := strings.TrimSpace(domain.StrFromPtrWithDefault(c.Name, upd.Name))
	if name == "" {
		return nil, ErrNameRequired
	}
	startDate := domain.StrFromPtrWithDefault(c.StartDate, upd.StartDate)
	if startDate == "" {
		return nil, ErrStartDateRequired
	}
	if !domain.ValidDate(startDate) {
		return nil, fmt.Errorf("start date %q: %w", startDate, ErrInvalidDate)
	}
	c.Name = name
	c.StartDate = startDate
	c.ContactPerson = domain.StrFromPtrWithDefault(c.ContactPerson, upd.ContactPerson)
	c.Email = domain.StrFromPtrWithDefault(c.Email, upd.Email)
	c.Phone = domain.StrFromPtrWithDefault(c.Phone, upd.Phone)
	c.ActionPlan = domain.StrFromPtrWithDefault(c.ActionPlan, upd.ActionPlan)

	clients[i] = c
	if err = s.store.Save(ctx, clients); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *clientService) Get(ctx context.Context, code string) (*domain.Client, error) {
	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := store.FindByCode(clients, code)
	if i == -1 {
		return nil, fmt.Errorf("client %q: %w", code, ErrClientNotFound)
	}
	return &clients[i], nil
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	store.SortByCode(clients)
	return clients, nil
}

func (s *clientService) Search(ctx context.Context, query string) (*domain.Client, error) {
	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := store.FindByNameOrCode(clients, query)
	if i == -1 {
		return nil, fmt.Errorf("query %q: %w", query, ErrClientNotFound)
	}
	return &clients[i], nil
}

func (s *clientService) Delete(ctx context.Context, code string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "client_delete", start, err, map[string]any{"code": code})
	}()

	clients, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	i := store.FindByCode(clients, code)
	if i == -1 {
		return fmt.Errorf("client %q: %w", code, ErrClientNotFound)
	}
	// Removing the client removes its tasks with it; tasks have exactly one
	// owner so nothing is orphaned.
	clients = append(clients[:i], clients[i+1:]...)
	return s.store.Save(ctx, clients)
}
