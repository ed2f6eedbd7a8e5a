package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
)

// HousekeepingService periodically deletes expired KV rows (sessions) so the
// namespace doesn't grow without bound. Reads already hide expired rows;
// this only reclaims space.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the sweeper. If interval is 0 or negative,
// defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop. Non-blocking; call Stop to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started", "interval", s.Interval)
}

// Stop shuts down the worker and blocks until any in-progress sweep ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) sweep() {
	n, err := s.Store.DeleteExpired(context.Background())
	if err != nil {
		s.Logger.Error("housekeeping sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.Logger.Info("housekeeping sweep completed", "deleted", n)
	}
}
