package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"log-viewer/internal/aggregators"
	"log-viewer/internal/events"
	internalhttp "log-viewer/internal/http"
	"log-viewer/internal/parsers"
	"log-viewer/internal/scanners"
	"log-viewer/internal/segments"
	"log-viewer/internal/shared/configs"
	"log-viewer/internal/shared/filestorages"
	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/streams"
	"log-viewer/internal/tailers"
	"log-viewer/internal/useragents"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	tailQueue         *streams.PartitionedQueue[events.TailBatchEvent]
	tailHub           *streams.Hub
	tailBatchConsumer streams.TailBatchConsumer
	watcher           *tailers.Watcher

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
	backgroundWg     sync.WaitGroup
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, loggers.WithFormat(config.Log.Format))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-viewer").
		Logger()

	location, err := loadLocation(config.LogStorage.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	// Initialize log directory access
	fileStorage, err := filestorages.NewFileStorage(config.LogStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	segmentLister := segments.NewSegmentLister(fileStorage, config.LogStorage.AccessFile, config.LogStorage.ErrorFile)
	normalizer := parsers.NewNormalizer(location)
	classifier := useragents.NewClassifier(config.UserAgent.CacheSize)

	// Initialize read side
	scanner := scanners.NewScanner(segmentLister, normalizer, classifier, config.Query.SafetyMargin)
	aggregator := aggregators.NewStatisticsAggregator(segmentLister, normalizer, classifier, aggregators.NewSnapshotRolluper())

	// Initialize tail push channel
	tailQueue := streams.NewPartitionedQueue[events.TailBatchEvent](config.Stream.Partitions, config.Stream.Buffer)
	hubLogger := appLogger.With().Str(loggers.FieldComponent, "hub").Logger()
	tailHub := streams.NewHub(config.Stream.SubscriberBuffer, hubLogger)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	tailBatchConsumer := streams.NewTailBatchConsumer(tailQueue, tailHub, consumerLogger)

	// Initialize live file follower
	follower := tailers.NewFollower(fileStorage, segmentLister, classifier, streams.NewTailBatchProducer(tailQueue))
	watcherLogger := appLogger.With().Str(loggers.FieldComponent, "tailer").Logger()
	watcher := tailers.NewWatcher(
		follower,
		fileStorage,
		segmentLister,
		time.Duration(config.Tail.PollIntervalMs)*time.Millisecond,
		time.Duration(config.Tail.DebounceMs)*time.Millisecond,
		watcherLogger,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	queryOptions := internalhttp.QueryOptions{
		DefaultPageSize: config.Query.DefaultPageSize,
		MaxPageSize:     config.Query.MaxPageSize,
		Location:        normalizer.Location(),
	}
	router := internalhttp.NewRouter(scanner, aggregator, tailHub, queryOptions, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:            config,
		appLogger:         appLogger,
		server:            server,
		tailQueue:         tailQueue,
		tailHub:           tailHub,
		tailBatchConsumer: tailBatchConsumer,
		watcher:           watcher,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-viewer service on port %d (log_level=%s, log_root_dir=%s, timezone=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.LogStorage.RootDir,
			app.config.LogStorage.Timezone)

	// start background workers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.backgroundWg.Add(1)
	go func() {
		defer app.backgroundWg.Done()
		app.tailHub.Run(app.backgroundCtx)
	}()
	app.tailBatchConsumer.Start(app.backgroundCtx)
	app.watcher.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Stop detecting growth so nothing new is produced
	app.watcher.Stop()
	app.appLogger.Info().Msg("Watcher stopped")

	// 2) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 3) Cancel background workers; the hub closes every tail subscriber on exit
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background workers cancelled")
	}

	// 4) Wait for background workers to finish
	app.tailBatchConsumer.Stop()
	app.backgroundWg.Wait()
	app.tailQueue.Close()
	app.appLogger.Info().Msg("Background workers stopped")

	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
