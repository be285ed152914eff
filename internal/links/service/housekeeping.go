package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/linkmintapp/linkmint/internal/links/domain"
	"github.com/linkmintapp/linkmint/internal/links/store"
)

// HousekeepingService periodically runs the link-retention sweeps: stale
// drafts are deleted after the draft window and inactive links are archived
// after the click-retention window.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs the sweeps.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run the sweeps immediately on startup
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs both retention sweeps once. Each sweep is an idempotent
// conditional update, so failures in one won't stop the other and repeated
// runs are no-ops for already-transitioned rows.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	s.Logger.Info("starting housekeeping sweep")

	if n, err := s.ExpireDrafts(ctx); err != nil {
		s.Logger.Error("failed to expire stale drafts", "error", err)
	} else if n > 0 {
		s.Logger.Info("expired stale drafts", "count", n)
	}

	if n, err := s.ArchiveStale(ctx); err != nil {
		s.Logger.Error("failed to archive inactive links", "error", err)
	} else if n > 0 {
		s.Logger.Info("archived inactive links", "count", n)
	}
}

// ExpireDrafts deletes drafts older than the draft retention window.
func (s *HousekeepingService) ExpireDrafts(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -domain.DraftExpireDays)
	return s.Store.Links().ExpireDrafts(ctx, cutoff)
}

// ArchiveStale archives active links with no click inside the archive window.
func (s *HousekeepingService) ArchiveStale(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -domain.LinkArchiveDays)
	return s.Store.Links().ArchiveStale(ctx, cutoff)
}
