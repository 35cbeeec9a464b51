package local

import (
	"context"
	"testing"
	"time"

	"log/slog"

	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/matryer/is"
)

func TestSubmitSchedulesWeeklyTriggerInDeclaredZone(t *testing.T) {
	is := is.New(t)

	s := New(func(ctx context.Context, spec types.TriggerSpec) {}, slog.Default())
	defer s.Stop()

	err := s.Submit(context.Background(), testSpec("alarm-1-2", types.Monday, 9, 3, "Europe/Stockholm"))
	is.NoErr(err)

	next, ok := s.NextRun("alarm-1-2")
	is.True(ok)

	loc, _ := time.LoadLocation("Europe/Stockholm")
	local := next.In(loc)

	is.Equal(time.Monday, local.Weekday())
	is.Equal(9, local.Hour())
	is.Equal(3, local.Minute())
}

func TestResubmissionReplacesPreviousRegistration(t *testing.T) {
	is := is.New(t)

	s := New(func(ctx context.Context, spec types.TriggerSpec) {}, slog.Default())
	defer s.Stop()

	ctx := context.Background()

	err := s.Submit(ctx, testSpec("alarm-1-2", types.Monday, 9, 3, "UTC"))
	is.NoErr(err)

	err = s.Submit(ctx, testSpec("alarm-1-2", types.Monday, 10, 30, "UTC"))
	is.NoErr(err)

	is.Equal(1, len(s.cron.Entries()))

	next, ok := s.NextRun("alarm-1-2")
	is.True(ok)
	is.Equal(10, next.UTC().Hour())
	is.Equal(30, next.UTC().Minute())
}

func TestCancelRemovesRegistration(t *testing.T) {
	is := is.New(t)

	s := New(func(ctx context.Context, spec types.TriggerSpec) {}, slog.Default())
	defer s.Stop()

	ctx := context.Background()

	err := s.Submit(ctx, testSpec("alarm-1-2", types.Monday, 9, 3, "UTC"))
	is.NoErr(err)

	s.Cancel(ctx, "alarm-1-2")

	_, ok := s.NextRun("alarm-1-2")
	is.True(!ok)
	is.Equal(0, len(s.cron.Entries()))

	// cancelling an unknown identifier is a no-op
	s.Cancel(ctx, "alarm-1-2")
}

func TestSubmitRejectsInvalidWeekday(t *testing.T) {
	is := is.New(t)

	s := New(func(ctx context.Context, spec types.TriggerSpec) {}, slog.Default())
	defer s.Stop()

	err := s.Submit(context.Background(), testSpec("alarm-1-8", 8, 9, 3, "UTC"))
	is.True(err != nil)
}

func testSpec(identifier string, weekday, hour, minute int, timeZone string) types.TriggerSpec {
	return types.TriggerSpec{
		Identifier: identifier,
		Kind:       types.TriggerKindMain,
		Weekday:    weekday,
		Hour:       hour,
		Minute:     minute,
		TimeZone:   timeZone,
		Title:      "Tea is ready",
	}
}
