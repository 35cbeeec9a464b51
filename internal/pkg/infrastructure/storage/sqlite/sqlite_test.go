package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/matryer/is"
)

func TestSaveAndLoadRoundtrip(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store, err := New(filepath.Join(t.TempDir(), "alarms.db"))
	is.NoErr(err)

	alarms := []types.Alarm{
		{
			ID:                   "alarm-1",
			Time:                 types.TimeOfDay{Hour: 9, Minute: 3},
			TimeZone:             "Europe/Stockholm",
			Label:                "Sencha",
			NotificationSubtitle: "Time for tea",
			RepeatDays:           []int{types.Monday, types.Wednesday},
		},
		{
			ID:         "alarm-2",
			Time:       types.TimeOfDay{Hour: 22, Minute: 30},
			TimeZone:   "UTC",
			RepeatDays: []int{types.Sunday},
		},
	}

	err = store.Save(ctx, alarms)
	is.NoErr(err)

	loaded, err := store.Load(ctx)
	is.NoErr(err)
	is.Equal(2, len(loaded))
	is.Equal("alarm-1", loaded[0].ID)
	is.Equal([]int{types.Monday, types.Wednesday}, loaded[0].RepeatDays)
	is.Equal(types.TimeOfDay{Hour: 22, Minute: 30}, loaded[1].Time)
}

func TestSaveReplacesWholesale(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store, err := New(filepath.Join(t.TempDir(), "alarms.db"))
	is.NoErr(err)

	err = store.Save(ctx, []types.Alarm{{ID: "alarm-1", TimeZone: "UTC", RepeatDays: []int{1}}})
	is.NoErr(err)

	err = store.Save(ctx, []types.Alarm{{ID: "alarm-2", TimeZone: "UTC", RepeatDays: []int{2}}})
	is.NoErr(err)

	loaded, err := store.Load(ctx)
	is.NoErr(err)
	is.Equal(1, len(loaded))
	is.Equal("alarm-2", loaded[0].ID)
}

func TestLoadFromEmptyDatabase(t *testing.T) {
	is := is.New(t)

	store, err := New(filepath.Join(t.TempDir(), "alarms.db"))
	is.NoErr(err)

	loaded, err := store.Load(context.Background())
	is.NoErr(err)
	is.Equal(0, len(loaded))
}
