package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	driver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brewtime/alarm-scheduler/pkg/types"
)

// alarmRecord is the row layout for one alarm. The weekday set is kept
// as a comma separated list since it never needs to be queried on.
type alarmRecord struct {
	AlarmID    string `gorm:"primaryKey;column:alarm_id"`
	Hour       int
	Minute     int
	TimeZone   string
	Label      string
	Subtitle   string
	RepeatDays string
}

type Store struct {
	db *gorm.DB
}

func New(filename string) (*Store, error) {
	db, err := gorm.Open(driver.Open(filename), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&alarmRecord{})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save replaces the stored collection wholesale, mirroring the write
// semantics of the file backed store.
func (s *Store) Save(ctx context.Context, alarms []types.Alarm) error {
	records := make([]alarmRecord, 0, len(alarms))
	for _, alarm := range alarms {
		records = append(records, toRecord(alarm))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("1 = 1").Delete(&alarmRecord{}).Error
		if err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		return tx.Create(&records).Error
	})
}

func (s *Store) Load(ctx context.Context) ([]types.Alarm, error) {
	var records []alarmRecord

	err := s.db.WithContext(ctx).Order("alarm_id").Find(&records).Error
	if err != nil {
		return nil, err
	}

	alarms := make([]types.Alarm, 0, len(records))
	for _, record := range records {
		alarm, err := fromRecord(record)
		if err != nil {
			return nil, err
		}
		alarms = append(alarms, alarm)
	}

	return alarms, nil
}

func toRecord(alarm types.Alarm) alarmRecord {
	days := make([]string, 0, len(alarm.RepeatDays))
	for _, day := range alarm.RepeatDays {
		days = append(days, strconv.Itoa(day))
	}

	return alarmRecord{
		AlarmID:    alarm.ID,
		Hour:       alarm.Time.Hour,
		Minute:     alarm.Time.Minute,
		TimeZone:   alarm.TimeZone,
		Label:      alarm.Label,
		Subtitle:   alarm.NotificationSubtitle,
		RepeatDays: strings.Join(days, ","),
	}
}

func fromRecord(record alarmRecord) (types.Alarm, error) {
	days := make([]int, 0)

	for _, s := range strings.Split(record.RepeatDays, ",") {
		if s == "" {
			continue
		}

		day, err := strconv.Atoi(s)
		if err != nil {
			return types.Alarm{}, fmt.Errorf("malformed weekday list %q on alarm %s", record.RepeatDays, record.AlarmID)
		}

		days = append(days, day)
	}

	return types.Alarm{
		ID:                   record.AlarmID,
		Time:                 types.TimeOfDay{Hour: record.Hour, Minute: record.Minute},
		TimeZone:             record.TimeZone,
		Label:                record.Label,
		NotificationSubtitle: record.Subtitle,
		RepeatDays:           days,
	}, nil
}
