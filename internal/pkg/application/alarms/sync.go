package alarms

import (
	"context"
	"time"

	"log/slog"
)

// SyncReconciler periodically fetches the remote snapshot and replaces
// the local collection with it, last fetch wins. Fetch failures are
// reported and the cycle is skipped.
type SyncReconciler interface {
	Start()
	Stop()
}

type syncReconciler struct {
	done     chan bool
	interval time.Duration

	svc      AlarmService
	remote   RemoteStore
	reporter ErrorReporter
	log      *slog.Logger
}

func NewSyncReconciler(svc AlarmService, remote RemoteStore, reporter ErrorReporter, interval time.Duration, log *slog.Logger) SyncReconciler {
	return &syncReconciler{
		done:     make(chan bool),
		interval: interval,
		svc:      svc,
		remote:   remote,
		reporter: reporter,
		log:      log,
	}
}

func (s *syncReconciler) Start() {
	go s.run()
}

func (s *syncReconciler) Stop() {
	s.done <- true
}

func (s *syncReconciler) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.fetchAndReconcile(context.Background())
		}
	}
}

func (s *syncReconciler) fetchAndReconcile(ctx context.Context) {
	snapshot, err := s.remote.FetchAll(ctx)
	if err != nil {
		s.log.Error("could not fetch remote snapshot", "err", err.Error())
		s.reporter.Report(err.Error())
		return
	}

	s.log.Debug("reconciling from remote snapshot", "alarm_count", len(snapshot))

	s.svc.Reconcile(ctx, snapshot)
}
