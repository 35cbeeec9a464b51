package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/brewtime/alarm-scheduler/internal/pkg/application/alarms"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/reporting"
	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("alarm-scheduler/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc alarms.AlarmService, reporter *reporting.LastError) *chi.Mux {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/alarms", func(r chi.Router) {
			r.Get("/", listAlarmsHandler(log, svc))
			r.Get("/{alarmID}", getAlarmHandler(log, svc))
			r.Post("/", createAlarmHandler(log, svc))
			r.Delete("/{alarmID}", deleteAlarmHandler(log, svc))
		})

		r.Route("/errors", func(r chi.Router) {
			r.Get("/last", lastErrorHandler(reporter))
			r.Delete("/last", clearErrorHandler(reporter))
		})
	})

	return router
}

type createAlarmRequest struct {
	Time                 string `json:"time"`
	TimeZone             string `json:"timeZone"`
	Label                string `json:"label"`
	NotificationSubtitle string `json:"notificationSubtitle"`
	RepeatDays           []int  `json:"repeatDays"`
}

func createAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req createAlarmRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		timeOfDay, err := types.ParseTimeOfDay(req.Time)
		if err != nil {
			requestLogger.Error("invalid time of day", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		alarm, err := svc.Add(ctx, timeOfDay, req.TimeZone, req.Label, req.NotificationSubtitle, req.RepeatDays)
		if err != nil {
			requestLogger.Error("unable to create alarm", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		respondWithJSON(w, http.StatusCreated, alarm)
	}
}

func listAlarmsHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "list-alarms")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection := svc.Alarms(ctx)

		respondWithJSON(w, http.StatusOK, struct {
			Data  []types.Alarm `json:"data"`
			Count int           `json:"count"`
		}{
			Data:  collection,
			Count: len(collection),
		})
	}
}

func getAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID := chi.URLParam(r, "alarmID")

		alarm, err := svc.GetByID(ctx, alarmID)
		if errors.Is(err, alarms.ErrAlarmNotFound) {
			requestLogger.Debug("alarm not found", "alarm_id", alarmID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alarm", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, alarm)
	}
}

func deleteAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID := chi.URLParam(r, "alarmID")

		err = svc.Remove(ctx, alarmID)
		if errors.Is(err, alarms.ErrAlarmNotFound) {
			requestLogger.Debug("alarm not found", "alarm_id", alarmID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not remove alarm", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func lastErrorHandler(reporter *reporting.LastError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, struct {
			Message string `json:"message"`
		}{
			Message: reporter.Last(),
		})
	}
}

func clearErrorHandler(reporter *reporting.LastError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reporter.Clear()
		w.WriteHeader(http.StatusNoContent)
	}
}

func respondWithJSON(w http.ResponseWriter, statusCode int, body any) {
	b, _ := json.Marshal(body)

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}
