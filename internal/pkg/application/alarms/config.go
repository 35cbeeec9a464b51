package alarms

import (
	"io"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	StorageDriverFile   string = "file"
	StorageDriverSqlite string = "sqlite"

	DispatcherLocal     string = "local"
	DispatcherForwarder string = "forwarder"
)

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type NotificationsConfig struct {
	Dispatcher string `yaml:"dispatcher"`
}

type SyncConfig struct {
	Enabled         bool `yaml:"enabled"`
	IntervalSeconds int  `yaml:"intervalSeconds"`
}

type Configuration struct {
	Storage       StorageConfig       `yaml:"storage"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Sync          SyncConfig          `yaml:"sync"`
}

func (c Configuration) SyncInterval() time.Duration {
	return time.Duration(c.Sync.IntervalSeconds) * time.Second
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Storage: StorageConfig{
			Driver: StorageDriverFile,
			Path:   "/var/lib/alarm-scheduler/alarms.json",
		},
		Notifications: NotificationsConfig{
			Dispatcher: DispatcherLocal,
		},
		Sync: SyncConfig{
			Enabled:         false,
			IntervalSeconds: 300,
		},
	}
}

func LoadConfiguration(r io.Reader) (*Configuration, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfiguration()

	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
