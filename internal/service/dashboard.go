// Package service runs the long-lived parts of collectdesk: the dashboard
// refresh loop and the operations HTTP endpoint.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ratulalahy/med-debt-collector/internal/appstate"
	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/metrics"
	"github.com/ratulalahy/med-debt-collector/internal/repository"
	"github.com/ratulalahy/med-debt-collector/internal/stats"
)

// DashboardService periodically reloads the dashboard summary from a source
// into the state store.
type DashboardService struct {
	source   repository.Source
	store    *appstate.Store
	metrics  *metrics.Collector
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time

	failing bool
}

// NewDashboardService creates the service. collector may be nil.
func NewDashboardService(
	source repository.Source,
	store *appstate.Store,
	collector *metrics.Collector,
	interval time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		source:   source,
		store:    store,
		metrics:  collector,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start refreshes once immediately and then on every tick until ctx is done.
// Refresh failures are reported through the store and do not stop the loop.
func (s *DashboardService) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", s.interval)
	}
	if s.metrics != nil {
		unsubscribe := s.store.Subscribe(func(st appstate.State, _ appstate.Action) {
			s.metrics.SetNotifications(len(st.Notifications))
		})
		defer unsubscribe()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Starting dashboard refresh loop", zap.Duration("interval", s.interval))

	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("Failed to refresh dashboard on startup", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Dashboard refresh loop stopped")
			return nil
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Error("Failed to refresh dashboard", zap.Error(err))
			}
		}
	}
}

type snapshot struct {
	patients  []domain.Patient
	queue     []domain.CallQueueEntry
	dashboard domain.DashboardStats
}

// Refresh loads the records once and publishes the result.
func (s *DashboardService) Refresh(ctx context.Context) error {
	start := s.now()
	s.dispatch(ctx, appstate.SetLoading{Loading: true})

	snap, err := s.load(ctx)
	if s.metrics != nil {
		s.metrics.ObserveRefresh(s.now().Sub(start), s.now(), err)
	}
	if err != nil {
		s.fail(ctx, err)
		return err
	}

	dash := snap.dashboard
	s.dispatch(ctx, appstate.SetDashboardStats{Stats: &dash})
	s.dispatch(ctx, appstate.SetRecentActivity{Items: dash.RecentActivity})
	s.dispatch(ctx, appstate.SetError{})
	s.dispatch(ctx, appstate.SetLoading{Loading: false})

	if s.failing {
		s.failing = false
		s.notify(ctx, appstate.Notification{
			Level: appstate.LevelSuccess,
			Title: "Dashboard restored",
		})
	}
	s.record(snap)

	s.logger.Debug("Dashboard refreshed",
		zap.Int("patients", len(snap.patients)),
		zap.Int("queue", len(snap.queue)),
		zap.Duration("took", s.now().Sub(start)),
	)
	return nil
}

func (s *DashboardService) load(ctx context.Context) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if snap.patients, err = s.source.ListPatients(gctx); err != nil {
			return fmt.Errorf("failed to list patients: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.queue, err = s.source.ListQueue(gctx); err != nil {
			return fmt.Errorf("failed to list call queue: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.dashboard, err = s.source.DashboardStats(gctx); err != nil {
			return fmt.Errorf("failed to load dashboard stats: %w", err)
		}
		return nil
	})
	return snap, g.Wait()
}

// fail reports err in the state. Only the first of consecutive failures
// raises a notification.
func (s *DashboardService) fail(ctx context.Context, err error) {
	s.dispatch(ctx, appstate.SetError{Message: err.Error()})
	s.dispatch(ctx, appstate.SetLoading{Loading: false})
	if s.failing {
		return
	}
	s.failing = true
	s.notify(ctx, appstate.Notification{
		Level:   appstate.LevelError,
		Title:   "Dashboard refresh failed",
		Message: err.Error(),
	})
}

func (s *DashboardService) record(snap snapshot) {
	if s.metrics == nil {
		return
	}
	s.metrics.SetPatients(stats.Patients(snap.patients))
	s.metrics.SetQueue(stats.Queue(snap.queue))
	s.metrics.SetDashboard(snap.dashboard)
	s.metrics.SetNotifications(len(s.store.State().Notifications))
}

// dispatch logs persistence errors; none of the refresh actions touch
// preferences so they are not expected.
func (s *DashboardService) dispatch(ctx context.Context, a appstate.Action) {
	if err := s.store.Dispatch(ctx, a); err != nil {
		s.logger.Warn("Dispatch failed", zap.String("action", appstate.Name(a)), zap.Error(err))
	}
}

func (s *DashboardService) notify(ctx context.Context, n appstate.Notification) {
	if _, err := s.store.Notify(ctx, n); err != nil {
		s.logger.Warn("Failed to raise notification", zap.Error(err))
	}
}
