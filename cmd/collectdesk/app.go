package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/appstate"
	"github.com/ratulalahy/med-debt-collector/internal/config"
	"github.com/ratulalahy/med-debt-collector/internal/database"
	logpkg "github.com/ratulalahy/med-debt-collector/internal/logger"
	"github.com/ratulalahy/med-debt-collector/internal/repository"
	"github.com/ratulalahy/med-debt-collector/internal/store"
)

const serviceName = "collectdesk"

// app carries what every subcommand needs. Resources are opened lazily and
// released by close.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	closers []func() error
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logpkg.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &app{cfg: cfg, logger: log}, nil
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	_ = a.logger.Sync()
	return errors.Join(errs...)
}

// source opens the configured record source.
func (a *app) source(ctx context.Context) (repository.Source, error) {
	switch a.cfg.Source.Kind {
	case config.SourcePostgres:
		return a.postgres(ctx)
	case config.SourceRemote:
		return repository.NewRemote(repository.RemoteConfig{
			BaseURL:    a.cfg.Remote.BaseURL,
			Timeout:    a.cfg.RemoteTimeout(),
			RetryCount: a.cfg.Remote.RetryCount,
			PageSize:   a.cfg.Remote.PageSize,
		}, a.logger), nil
	default:
		return repository.NewMemory(), nil
	}
}

func (a *app) db(ctx context.Context) (*sql.DB, error) {
	db, err := database.NewPostgresDB(ctx, &a.cfg.Database)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	a.logger.Info("Connected to database",
		zap.String("host", a.cfg.Database.Host),
		zap.String("database", a.cfg.Database.Database),
	)
	return db, nil
}

func (a *app) postgres(ctx context.Context) (*repository.Postgres, error) {
	db, err := a.db(ctx)
	if err != nil {
		return nil, err
	}
	return repository.NewPostgres(db, a.logger), nil
}

// kv opens the preference backend.
func (a *app) kv(ctx context.Context) (store.KV, error) {
	switch a.cfg.Preferences.Backend {
	case config.BackendMemory:
		return store.NewMemoryKV(), nil
	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, &a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return store.NewRedisKV(client, a.cfg.Preferences.Prefix), nil
	default:
		return store.NewFileKV(a.cfg.Preferences.Path)
	}
}

// store builds the state store with persisted preferences.
func (a *app) store(ctx context.Context) (*appstate.Store, error) {
	kv, err := a.kv(ctx)
	if err != nil {
		return nil, err
	}
	s := appstate.NewStore(ctx, appstate.Config{
		DefaultDuration: a.cfg.NotificationDuration(),
	}, appstate.NewPreferenceStore(kv, a.logger), a.logger)
	a.closers = append(a.closers, func() error {
		s.Close()
		return nil
	})
	return s, nil
}
