package alarms

import (
	"encoding/json"
	"time"

	"github.com/brewtime/alarm-scheduler/pkg/types"
)

type AlarmAdded struct {
	Alarm     types.Alarm `json:"alarm"`
	Timestamp time.Time   `json:"timestamp"`
}

func (a *AlarmAdded) ContentType() string {
	return "application/json"
}
func (a *AlarmAdded) TopicName() string {
	return "alarms.alarmAdded"
}
func (a *AlarmAdded) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmRemoved struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmRemoved) ContentType() string {
	return "application/json"
}
func (a *AlarmRemoved) TopicName() string {
	return "alarms.alarmRemoved"
}
func (a *AlarmRemoved) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmsReplaced struct {
	Alarms    []types.Alarm `json:"alarms"`
	Timestamp time.Time     `json:"timestamp"`
}

func (a *AlarmsReplaced) ContentType() string {
	return "application/json"
}
func (a *AlarmsReplaced) TopicName() string {
	return "alarms.alarmsReplaced"
}
func (a *AlarmsReplaced) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
