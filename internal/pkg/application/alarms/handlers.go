package alarms

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("alarm-scheduler/alarms")

type snapshotReceived struct {
	Alarms    []types.Alarm `json:"alarms"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewSnapshotReceivedHandler feeds snapshots pushed by the remote store
// into the reconciliation path.
func NewSnapshotReceivedHandler(svc AlarmService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "snapshot-received")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := snapshotReceived{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		log.Debug("reconciling from pushed snapshot", "alarm_count", len(msg.Alarms))

		svc.Reconcile(ctx, msg.Alarms)
	}
}
