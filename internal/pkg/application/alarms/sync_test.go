package alarms

import (
	"context"
	"fmt"
	"testing"
	"time"

	"log/slog"

	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/matryer/is"
)

func TestSyncReconcilerHandsSnapshotToService(t *testing.T) {
	is := is.New(t)

	snapshot := []types.Alarm{storedAlarm("remote-1", types.Monday)}

	remote := &RemoteStoreMock{
		FetchAllFunc: func(ctx context.Context) ([]types.Alarm, error) { return snapshot, nil },
	}
	reporter := &ErrorReporterMock{ReportFunc: func(msg string) {}}
	svc := &AlarmServiceMock{
		ReconcileFunc: func(ctx context.Context, snapshot []types.Alarm) {},
	}

	r := NewSyncReconciler(svc, remote, reporter, 10*time.Millisecond, slog.Default())
	r.Start()
	time.Sleep(55 * time.Millisecond)
	r.Stop()

	calls := svc.ReconcileCalls()
	is.True(len(calls) >= 1)
	is.Equal("remote-1", calls[0].Snapshot[0].ID)
	is.Equal(0, len(reporter.ReportCalls()))
}

func TestSyncReconcilerReportsFetchFailuresAndSkips(t *testing.T) {
	is := is.New(t)

	remote := &RemoteStoreMock{
		FetchAllFunc: func(ctx context.Context) ([]types.Alarm, error) {
			return nil, fmt.Errorf("remote unavailable")
		},
	}
	reporter := &ErrorReporterMock{ReportFunc: func(msg string) {}}
	svc := &AlarmServiceMock{
		ReconcileFunc: func(ctx context.Context, snapshot []types.Alarm) {},
	}

	r := NewSyncReconciler(svc, remote, reporter, 10*time.Millisecond, slog.Default())
	r.Start()
	time.Sleep(55 * time.Millisecond)
	r.Stop()

	is.Equal(0, len(svc.ReconcileCalls()))
	is.True(len(reporter.ReportCalls()) >= 1)
	is.Equal("remote unavailable", reporter.ReportCalls()[0].Msg)
}
