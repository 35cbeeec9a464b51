package local

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/brewtime/alarm-scheduler/pkg/types"
)

// Notifier delivers one fired trigger to the user.
type Notifier func(ctx context.Context, spec types.TriggerSpec)

// Scheduler is an in-process notification scheduler backed by a cron
// runner. Submitting a spec under an identifier that is already
// registered replaces the previous registration, which makes replanning
// after reload or reconciliation idempotent.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID

	notify Notifier
	log    *slog.Logger
}

func New(notify Notifier, log *slog.Logger) *Scheduler {
	c := cron.New()
	c.Start()

	return &Scheduler{
		cron:    c,
		entries: make(map[string]cron.EntryID),
		notify:  notify,
		log:     log,
	}
}

func LogNotifier(log *slog.Logger) Notifier {
	return func(ctx context.Context, spec types.TriggerSpec) {
		log.Info("alarm fired", "identifier", spec.Identifier, "kind", spec.Kind, "title", spec.Title, "body", spec.Body)
	}
}

func (s *Scheduler) Submit(ctx context.Context, spec types.TriggerSpec) error {
	// cron numbers weekdays 0..6 from Sunday, trigger specs 1..7
	if spec.Weekday < types.Sunday || spec.Weekday > types.Saturday {
		return fmt.Errorf("invalid weekday number %d on trigger %s", spec.Weekday, spec.Identifier)
	}

	schedule := fmt.Sprintf("CRON_TZ=%s %d %d * * %d", spec.TimeZone, spec.Minute, spec.Hour, spec.Weekday-1)

	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.notify(context.Background(), spec)
	})
	if err != nil {
		return fmt.Errorf("could not schedule trigger %s: %w", spec.Identifier, err)
	}

	if previous, ok := s.entries[spec.Identifier]; ok {
		s.cron.Remove(previous)
	}
	s.entries[spec.Identifier] = entryID

	s.log.Debug("trigger scheduled", "identifier", spec.Identifier, "schedule", schedule)

	return nil
}

func (s *Scheduler) Cancel(ctx context.Context, identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, ok := s.entries[identifier]
	if !ok {
		return
	}

	s.cron.Remove(entryID)
	delete(s.entries, identifier)

	s.log.Debug("trigger cancelled", "identifier", identifier)
}

// NextRun reports when the registered trigger fires next.
func (s *Scheduler) NextRun(identifier string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, ok := s.entries[identifier]
	if !ok {
		return time.Time{}, false
	}

	return s.cron.Entry(entryID).Next, true
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
