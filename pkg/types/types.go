package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday numbers run 1..7 with Sunday as the first day of the week,
// matching the numbering used by the notification subsystem.
const (
	Sunday int = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func AllWeekdays() []int {
	return []int{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// TimeOfDay is a wall-clock time. Any date component an alarm was
// created from is irrelevant and never stored.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay

	_, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}

	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}

	return t, nil
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

type Alarm struct {
	ID                   string    `json:"id"`
	Time                 TimeOfDay `json:"time"`
	TimeZone             string    `json:"timeZone"`
	Label                string    `json:"label,omitempty"`
	NotificationSubtitle string    `json:"notificationSubtitle,omitempty"`
	RepeatDays           []int     `json:"repeatDays"`
}

// Location resolves the alarm's IANA zone, falling back to UTC when the
// identifier does not resolve on this system.
func (a Alarm) Location() *time.Location {
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return time.UTC
	}

	return loc
}

const (
	TriggerKindMain     string = "main"
	TriggerKindReminder string = "reminder"
)

// TriggerSpec is a fully resolved instruction for one weekly recurring
// notification: identifier, schedule and payload.
type TriggerSpec struct {
	Identifier string `json:"identifier"`
	Kind       string `json:"kind"`

	Weekday  int    `json:"weekday"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	TimeZone string `json:"timeZone"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Body     string `json:"body,omitempty"`
	Category string `json:"category,omitempty"`
}
