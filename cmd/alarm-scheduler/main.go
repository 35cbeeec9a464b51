package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/brewtime/alarm-scheduler/internal/pkg/application/alarms"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/notifications/forwarder"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/remote"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/reporting"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/router"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/storage/jsonfile"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/storage/sqlite"
	"github.com/brewtime/alarm-scheduler/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/notifications/local"
)

const serviceName string = "alarm-scheduler"

func main() {
	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	cfg := loadConfigurationOrDefaults(ctx, logger)

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	messenger.Start()
	defer messenger.Close()

	reporter := reporting.New()

	store, err := newPersistenceStore(cfg)
	exitIf(err, logger, "failed to create persistence store")

	scheduler := newNotificationScheduler(cfg, messenger, logger)
	remoteStore := remote.NewDisabled()

	svc := alarms.New(scheduler, store, remoteStore, reporter, messenger)

	err = svc.RegisterTopicMessageHandlers(ctx)
	exitIf(err, logger, "failed to register topic message handlers")

	svc.Load(ctx)

	if cfg.Sync.Enabled {
		syncer := alarms.NewSyncReconciler(svc, remoteStore, reporter, cfg.SyncInterval(), logger)
		syncer.Start()
		defer syncer.Stop()
	}

	r := router.New(serviceName)
	api.RegisterHandlers(ctx, r, svc, reporter)

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	logger.Info("starting to listen for incoming connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	exitIf(err, logger, "failed to start request router")
}

func loadConfigurationOrDefaults(ctx context.Context, logger *slog.Logger) *alarms.Configuration {
	filename := env.GetVariableOrDefault(ctx, "CONFIG_FILE", "/opt/brewtime/config/config.yaml")

	f, err := os.Open(filename)
	if err != nil {
		logger.Info("no configuration file found, using defaults", "file", filename)
		return alarms.DefaultConfiguration()
	}
	defer f.Close()

	cfg, err := alarms.LoadConfiguration(f)
	exitIf(err, logger, "failed to parse configuration file")

	return cfg
}

func newPersistenceStore(cfg *alarms.Configuration) (alarms.PersistenceStore, error) {
	switch cfg.Storage.Driver {
	case alarms.StorageDriverSqlite:
		return sqlite.New(cfg.Storage.Path)
	case alarms.StorageDriverFile:
		return jsonfile.New(cfg.Storage.Path)
	}

	return nil, fmt.Errorf("unknown storage driver %s", cfg.Storage.Driver)
}

func newNotificationScheduler(cfg *alarms.Configuration, messenger messaging.MsgContext, logger *slog.Logger) alarms.NotificationScheduler {
	if cfg.Notifications.Dispatcher == alarms.DispatcherForwarder {
		return forwarder.New(messenger, logger)
	}

	return local.New(local.LogNotifier(logger), logger)
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		os.Exit(1)
	}
}
