package forwarder

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"

	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
)

// Scheduler hands trigger registrations over to an external delivery
// subsystem by publishing them on the message bus. Delivery itself, and
// any retry policy, is owned by whoever consumes the topics.
type Scheduler struct {
	messenger messaging.MsgContext
	log       *slog.Logger
}

func New(messenger messaging.MsgContext, log *slog.Logger) *Scheduler {
	return &Scheduler{
		messenger: messenger,
		log:       log,
	}
}

func (s *Scheduler) Submit(ctx context.Context, spec types.TriggerSpec) error {
	return s.messenger.PublishOnTopic(ctx, &TriggerScheduled{
		Spec:      spec,
		Timestamp: time.Now().UTC(),
	})
}

func (s *Scheduler) Cancel(ctx context.Context, identifier string) {
	err := s.messenger.PublishOnTopic(ctx, &TriggerCancelled{
		Identifier: identifier,
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		// best effort, nothing to surface to the caller
		s.log.Error("could not publish cancellation", "identifier", identifier, "err", err.Error())
	}
}

type TriggerScheduled struct {
	Spec      types.TriggerSpec `json:"spec"`
	Timestamp time.Time         `json:"timestamp"`
}

func (m *TriggerScheduled) ContentType() string {
	return "application/json"
}
func (m *TriggerScheduled) TopicName() string {
	return "notifications.triggerScheduled"
}
func (m *TriggerScheduled) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type TriggerCancelled struct {
	Identifier string    `json:"identifier"`
	Timestamp  time.Time `json:"timestamp"`
}

func (m *TriggerCancelled) ContentType() string {
	return "application/json"
}
func (m *TriggerCancelled) TopicName() string {
	return "notifications.triggerCancelled"
}
func (m *TriggerCancelled) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}
