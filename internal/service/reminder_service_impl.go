package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
	"github.com/dfontes/prazo/internal/notify"
	"github.com/dfontes/prazo/internal/store"
)

type reminderService struct {
	store    *store.RecordStore
	notifier notify.Notifier
	now      NowFunc
	obs      UseCaseObserver
}

func NewReminderService(st *store.RecordStore, notifier notify.Notifier, now NowFunc, observers ...UseCaseObserver) ReminderService {
	if now == nil {
		now = time.Now
	}
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &reminderService{store: st, notifier: notifier, now: now, obs: useCaseObserverOrNoop(observers)}
}

// Scan runs one reminder pass: collect tasks due this minute, stamp their
// LastNotifiedTime, save, then deliver. Stamping before delivery makes the
// pass idempotent within the minute; a restart sharing the same minute will
// not re-fire stamped tasks.
func (s *reminderService) Scan(ctx context.Context) (fired []engine.AnnotatedTask, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "reminder_scan", start, err, map[string]any{"fired": len(fired)})
	}()

	now := s.now()
	clients, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	due := engine.DueReminders(clients, now)
	if len(due) == 0 {
		return nil, nil
	}

	minute := domain.TimeOf(now)
	for _, d := range due {
		i := store.FindByCode(clients, d.ClientCode)
		if i == -1 {
			continue
		}
		if t, pos := clients[i].TaskByID(d.ID); pos != -1 {
			t.LastNotifiedTime = minute
		}
	}
	if err = s.store.Save(ctx, clients); err != nil {
		return nil, err
	}

	for _, d := range due {
		title := fmt.Sprintf("Task due: %s - %s", d.ClientCode, d.ClientName)
		body := fmt.Sprintf("%s (due %s %s)", d.Description, domain.FormatDateBR(d.DueDate), d.DueTime)
		if nerr := s.notifier.Notify(title, body); nerr != nil {
			err = fmt.Errorf("delivering reminder: %w", nerr)
			return due, err
		}
	}
	return due, nil
}
