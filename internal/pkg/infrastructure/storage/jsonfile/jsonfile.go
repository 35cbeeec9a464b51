package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brewtime/alarm-scheduler/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var (
	ErrStoreFailed = errors.New("could not store alarms")
	ErrLoadFailed  = errors.New("could not load alarms")
)

// Store persists the alarm collection as one JSON document under the
// service's data directory.
type Store struct {
	filename string
}

func New(filename string) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(filename), 0o755)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return &Store{filename: filename}, nil
}

func (s *Store) Save(ctx context.Context, alarms []types.Alarm) error {
	b, err := json.MarshalIndent(alarms, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	// write and rename so a crash never leaves a truncated document
	tmp := s.filename + ".tmp"

	err = os.WriteFile(tmp, b, 0o600)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	err = os.Rename(tmp, s.filename)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Store) Load(ctx context.Context) ([]types.Alarm, error) {
	b, err := os.ReadFile(s.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.GetFromContext(ctx).Debug("no stored alarms found", "filename", s.filename)
			return []types.Alarm{}, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrLoadFailed, err.Error())
	}

	alarms := make([]types.Alarm, 0)

	err = json.Unmarshal(b, &alarms)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadFailed, err.Error())
	}

	return alarms, nil
}
