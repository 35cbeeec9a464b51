package alarms

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/brewtime/alarm-scheduler/internal/pkg/application/planner"
	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	// DefaultSubtitle replaces an empty notification subtitle at creation.
	DefaultSubtitle string = "Time for tea"
	// DefaultTimeZone replaces a zone identifier that does not resolve.
	DefaultTimeZone string = "UTC"
)

var ErrAlarmNotFound = fmt.Errorf("alarm not found")

//go:generate moq -rm -out notificationscheduler_mock.go . NotificationScheduler
type NotificationScheduler interface {
	Submit(ctx context.Context, spec types.TriggerSpec) error
	Cancel(ctx context.Context, identifier string)
}

//go:generate moq -rm -out persistencestore_mock.go . PersistenceStore
type PersistenceStore interface {
	Save(ctx context.Context, alarms []types.Alarm) error
	Load(ctx context.Context) ([]types.Alarm, error)
}

//go:generate moq -rm -out remotestore_mock.go . RemoteStore
type RemoteStore interface {
	Upload(ctx context.Context, alarm types.Alarm) error
	Delete(ctx context.Context, alarmID string) error
	FetchAll(ctx context.Context) ([]types.Alarm, error)
}

//go:generate moq -rm -out errorreporter_mock.go . ErrorReporter
type ErrorReporter interface {
	Report(msg string)
}

//go:generate moq -rm -out alarmservice_mock.go . AlarmService
type AlarmService interface {
	Alarms(ctx context.Context) []types.Alarm
	GetByID(ctx context.Context, alarmID string) (types.Alarm, error)
	Add(ctx context.Context, timeOfDay types.TimeOfDay, timeZone, label, subtitle string, repeatDays []int) (types.Alarm, error)
	Remove(ctx context.Context, alarmID string) error
	Load(ctx context.Context)
	Reconcile(ctx context.Context, snapshot []types.Alarm)

	RegisterTopicMessageHandlers(ctx context.Context) error
}

type svc struct {
	mu         sync.RWMutex
	collection []types.Alarm

	scheduler NotificationScheduler
	store     PersistenceStore
	remote    RemoteStore
	reporter  ErrorReporter
	messenger messaging.MsgContext
}

func New(scheduler NotificationScheduler, store PersistenceStore, remote RemoteStore, reporter ErrorReporter, messenger messaging.MsgContext) AlarmService {
	return &svc{
		collection: make([]types.Alarm, 0),
		scheduler:  scheduler,
		store:      store,
		remote:     remote,
		reporter:   reporter,
		messenger:  messenger,
	}
}

func (s *svc) RegisterTopicMessageHandlers(ctx context.Context) error {
	return s.messenger.RegisterTopicMessageHandler("alarms.snapshotReceived", NewSnapshotReceivedHandler(s))
}

func (s *svc) Alarms(ctx context.Context) []types.Alarm {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.collection)
}

func (s *svc) GetByID(ctx context.Context, alarmID string) (types.Alarm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, alarm := range s.collection {
		if alarm.ID == alarmID {
			return alarm, nil
		}
	}

	return types.Alarm{}, ErrAlarmNotFound
}

// Add creates a new alarm, schedules its triggers and writes it through
// to the persistence and remote collaborators. Collaborator failures are
// reported and never abort the operation.
func (s *svc) Add(ctx context.Context, timeOfDay types.TimeOfDay, timeZone, label, subtitle string, repeatDays []int) (types.Alarm, error) {
	if !timeOfDay.Valid() {
		return types.Alarm{}, fmt.Errorf("time of day %s out of range", timeOfDay)
	}

	if subtitle == "" {
		subtitle = DefaultSubtitle
	}

	alarm := types.Alarm{
		ID:                   uuid.NewString(),
		Time:                 timeOfDay,
		TimeZone:             normalizeTimeZone(timeZone),
		Label:                label,
		NotificationSubtitle: subtitle,
		RepeatDays:           normalizeRepeatDays(repeatDays),
	}

	s.mu.Lock()
	s.collection = append(s.collection, alarm)
	snapshot := slices.Clone(s.collection)
	s.mu.Unlock()

	s.submitTriggers(ctx, alarm)
	s.save(ctx, snapshot)

	err := s.remote.Upload(ctx, alarm)
	if err != nil {
		s.reporter.Report(err.Error())
	}

	s.publish(ctx, &AlarmAdded{Alarm: alarm, Timestamp: time.Now().UTC()})

	return alarm, nil
}

// Remove cancels every trigger identifier the planner derives for the
// alarm, deletes it from the remote store and forgets it locally. The
// identifiers are recomputed before any cancellation is issued, so they
// always match what Add submitted.
func (s *svc) Remove(ctx context.Context, alarmID string) error {
	alarm, err := s.GetByID(ctx, alarmID)
	if err != nil {
		return err
	}

	for _, identifier := range planner.Identifiers(alarm) {
		s.scheduler.Cancel(ctx, identifier)
	}

	err = s.remote.Delete(ctx, alarm.ID)
	if err != nil {
		s.reporter.Report(err.Error())
	}

	s.mu.Lock()
	s.collection = slices.DeleteFunc(s.collection, func(a types.Alarm) bool {
		return a.ID == alarmID
	})
	snapshot := slices.Clone(s.collection)
	s.mu.Unlock()

	s.save(ctx, snapshot)
	s.publish(ctx, &AlarmRemoved{ID: alarmID, Timestamp: time.Now().UTC()})

	return nil
}

// Load replaces the collection wholesale with whatever the persistence
// store holds and resubmits triggers for every loaded alarm. A read or
// decode failure leaves the collection empty and is only reported, so
// Load is safe to call repeatedly.
func (s *svc) Load(ctx context.Context) {
	alarms, err := s.store.Load(ctx)
	if err != nil {
		s.reporter.Report(err.Error())
		alarms = []types.Alarm{}
	}

	s.replace(ctx, alarms)
}

// Reconcile replaces the collection with a remote snapshot, last fetch
// wins. Triggers are resubmitted for every alarm in the snapshot; stale
// triggers of alarms deleted elsewhere are not cancelled here and
// survive until the next full replan.
func (s *svc) Reconcile(ctx context.Context, snapshot []types.Alarm) {
	replaced := s.replace(ctx, snapshot)

	s.save(ctx, replaced)
	s.publish(ctx, &AlarmsReplaced{Alarms: replaced, Timestamp: time.Now().UTC()})
}

func (s *svc) replace(ctx context.Context, alarms []types.Alarm) []types.Alarm {
	s.mu.Lock()
	s.collection = slices.Clone(alarms)
	snapshot := slices.Clone(s.collection)
	s.mu.Unlock()

	for _, alarm := range snapshot {
		s.submitTriggers(ctx, alarm)
	}

	return snapshot
}

func (s *svc) submitTriggers(ctx context.Context, alarm types.Alarm) {
	log := logging.GetFromContext(ctx)

	for _, spec := range planner.Plan(alarm) {
		err := s.scheduler.Submit(ctx, spec)
		if err != nil {
			log.Error("could not submit trigger", "identifier", spec.Identifier, "err", err.Error())
			s.reporter.Report(err.Error())
		}
	}
}

func (s *svc) save(ctx context.Context, alarms []types.Alarm) {
	err := s.store.Save(ctx, alarms)
	if err != nil {
		s.reporter.Report(err.Error())
	}
}

func (s *svc) publish(ctx context.Context, message messaging.TopicMessage) {
	err := s.messenger.PublishOnTopic(ctx, message)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish message", "topic", message.TopicName(), "err", err.Error())
	}
}

func normalizeTimeZone(timeZone string) string {
	if timeZone == "" {
		return DefaultTimeZone
	}

	_, err := time.LoadLocation(timeZone)
	if err != nil {
		return DefaultTimeZone
	}

	return timeZone
}

// normalizeRepeatDays deduplicates and drops out-of-range day numbers.
// An empty result means the alarm repeats every day of the week.
func normalizeRepeatDays(repeatDays []int) []int {
	days := lo.Filter(lo.Uniq(repeatDays), func(day int, _ int) bool {
		return day >= types.Sunday && day <= types.Saturday
	})

	if len(days) == 0 {
		return types.AllWeekdays()
	}

	slices.Sort(days)

	return days
}
