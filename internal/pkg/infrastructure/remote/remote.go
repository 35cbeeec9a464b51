package remote

import (
	"context"
	"errors"

	"github.com/brewtime/alarm-scheduler/pkg/types"
)

// ErrSyncDisabled is returned by FetchAll when no remote store has been
// configured for the service.
var ErrSyncDisabled = errors.New("remote sync is disabled")

// Disabled is the remote store used when the service runs standalone.
// Uploads and deletes are accepted and dropped so that local mutations
// behave exactly as they would with a real remote behind them.
type Disabled struct{}

func NewDisabled() *Disabled {
	return &Disabled{}
}

func (d *Disabled) Upload(ctx context.Context, alarm types.Alarm) error {
	return nil
}

func (d *Disabled) Delete(ctx context.Context, alarmID string) error {
	return nil
}

func (d *Disabled) FetchAll(ctx context.Context) ([]types.Alarm, error) {
	return nil, ErrSyncDisabled
}
