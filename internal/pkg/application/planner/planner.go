package planner

import (
	"fmt"
	"time"

	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/teambition/rrule-go"
)

const (
	MainTitle     string = "Tea is ready"
	ReminderTitle string = "Tea time soon"
	ReminderBody  string = "Your tea alarm goes off in five minutes."

	// ActionCategory grants the snooze and dismiss actions on the main
	// notification.
	ActionCategory string = "TEA_ALARM"

	reminderLeadMinutes int = 5
)

// Plan derives the full set of trigger specs realizing an alarm's
// recurrence: one main and one reminder spec per repeat day. It is pure
// and deterministic; callers submit the specs themselves.
func Plan(alarm types.Alarm) []types.TriggerSpec {
	specs := make([]types.TriggerSpec, 0, 2*len(alarm.RepeatDays))

	for _, day := range alarm.RepeatDays {
		specs = append(specs, mainSpec(alarm, day), reminderSpec(alarm, day))
	}

	return specs
}

// Identifiers returns the exact identifiers Plan would produce, so that
// cancellation always matches what was submitted.
func Identifiers(alarm types.Alarm) []string {
	identifiers := make([]string, 0, 2*len(alarm.RepeatDays))

	for _, day := range alarm.RepeatDays {
		identifiers = append(identifiers, MainIdentifier(alarm.ID, day), ReminderIdentifier(alarm.ID, day))
	}

	return identifiers
}

func MainIdentifier(alarmID string, day int) string {
	return fmt.Sprintf("%s-%d", alarmID, day)
}

func ReminderIdentifier(alarmID string, day int) string {
	return fmt.Sprintf("%s-reminder-%d", alarmID, day)
}

func mainSpec(alarm types.Alarm, day int) types.TriggerSpec {
	return types.TriggerSpec{
		Identifier: MainIdentifier(alarm.ID, day),
		Kind:       types.TriggerKindMain,
		Weekday:    day,
		Hour:       alarm.Time.Hour,
		Minute:     alarm.Time.Minute,
		TimeZone:   alarm.TimeZone,
		Title:      MainTitle,
		Subtitle:   alarm.NotificationSubtitle,
		Body:       alarm.Label,
		Category:   ActionCategory,
	}
}

func reminderSpec(alarm types.Alarm, day int) types.TriggerSpec {
	return types.TriggerSpec{
		Identifier: ReminderIdentifier(alarm.ID, day),
		Kind:       types.TriggerKindReminder,
		Weekday:    day,
		Hour:       alarm.Time.Hour,
		Minute:     reminderMinute(alarm.Time.Minute),
		TimeZone:   alarm.TimeZone,
		Title:      ReminderTitle,
		Body:       ReminderBody,
	}
}

// reminderMinute clamps at the top of the hour instead of borrowing from
// the previous hour: an alarm at minute 0..4 reminds at minute 0 of the
// same hour. Downstream identifiers and registrations rely on this exact
// policy, so it must never be turned into true subtraction.
func reminderMinute(minute int) int {
	if minute < reminderLeadMinutes {
		return 0
	}

	return minute - reminderLeadMinutes
}

var rruleWeekdays = map[int]rrule.Weekday{
	types.Sunday:    rrule.SU,
	types.Monday:    rrule.MO,
	types.Tuesday:   rrule.TU,
	types.Wednesday: rrule.WE,
	types.Thursday:  rrule.TH,
	types.Friday:    rrule.FR,
	types.Saturday:  rrule.SA,
}

func recurrence(spec types.TriggerSpec, from time.Time) (*rrule.RRule, error) {
	weekday, ok := rruleWeekdays[spec.Weekday]
	if !ok {
		return nil, fmt.Errorf("invalid weekday number %d", spec.Weekday)
	}

	loc, err := time.LoadLocation(spec.TimeZone)
	if err != nil {
		loc = time.UTC
	}

	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{weekday},
		Byhour:    []int{spec.Hour},
		Byminute:  []int{spec.Minute},
		Bysecond:  []int{0},
		Dtstart:   from.In(loc).Truncate(time.Second),
	})
}

// NextOccurrence returns the first instant strictly after the given time
// at which the trigger fires, evaluated in the trigger's own zone.
func NextOccurrence(spec types.TriggerSpec, after time.Time) (time.Time, error) {
	r, err := recurrence(spec, after)
	if err != nil {
		return time.Time{}, err
	}

	return r.After(after, false), nil
}

// Occurrences expands the trigger into its next n occurrences on or
// after the given instant.
func Occurrences(spec types.TriggerSpec, from time.Time, n int) ([]time.Time, error) {
	r, err := recurrence(spec, from)
	if err != nil {
		return nil, err
	}

	occurrences := make([]time.Time, 0, n)
	next := r.Iterator()

	for len(occurrences) < n {
		t, ok := next()
		if !ok {
			break
		}
		occurrences = append(occurrences, t)
	}

	return occurrences, nil
}
