package alarms

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(strings.NewReader(configYaml))
	is.NoErr(err)

	is.Equal(StorageDriverSqlite, cfg.Storage.Driver)
	is.Equal("/tmp/alarms.db", cfg.Storage.Path)
	is.Equal(DispatcherForwarder, cfg.Notifications.Dispatcher)
	is.True(cfg.Sync.Enabled)
	is.Equal(30*time.Second, cfg.SyncInterval())
}

func TestLoadConfigurationKeepsDefaultsForOmittedSections(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(strings.NewReader("storage:\n  driver: file\n"))
	is.NoErr(err)

	is.Equal(StorageDriverFile, cfg.Storage.Driver)
	is.Equal(DispatcherLocal, cfg.Notifications.Dispatcher)
	is.Equal(false, cfg.Sync.Enabled)
	is.Equal(300, cfg.Sync.IntervalSeconds)
}

const configYaml string = `
storage:
  driver: sqlite
  path: /tmp/alarms.db
notifications:
  dispatcher: forwarder
sync:
  enabled: true
  intervalSeconds: 30
`
