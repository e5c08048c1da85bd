// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/services"
)

// Service periodically enforces retention policies:
//   - Purges terminal searches past the retention window (dependent rows
//     go with them via cascade)
//   - Removes progress events whose search was purged
//   - Removes job logs past their TTL (job logs have no FK and survive
//     the search purge until this sweep)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	client       *ent.Client
	eventService *services.EventService
	jobLogs      *services.JobLogService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	client *ent.Client,
	eventService *services.EventService,
	jobLogs *services.JobLogService,
) *Service {
	return &Service{
		config:       cfg,
		client:       client,
		eventService: eventService,
		jobLogs:      jobLogs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"search_retention_days", s.config.SearchRetentionDays,
		"job_log_ttl", s.config.JobLogTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldSearches(ctx)
	s.cleanupOldEvents(ctx)
	s.cleanupOldJobLogs(ctx)
}

// PurgeOldSearches deletes terminal searches older than the retention
// window. Only completed and failed rows are eligible: pending and
// processing rows belong to the queue regardless of age.
func (s *Service) PurgeOldSearches(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.client.Search.Delete().
		Where(
			search.StatusIn(search.StatusCompleted, search.StatusFailed),
			search.CreatedAtLT(cutoff),
		).
		Exec(ctx)
}

func (s *Service) purgeOldSearches(_ context.Context) {
	count, err := s.PurgeOldSearches(context.Background(), s.config.SearchRetentionDays)
	if err != nil {
		slog.Error("Retention: search purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old searches", "count", count)
	}
}

func (s *Service) cleanupOldEvents(_ context.Context) {
	retention := time.Duration(s.config.SearchRetentionDays) * 24 * time.Hour
	count, err := s.eventService.CleanupOldEvents(context.Background(), retention)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}

func (s *Service) cleanupOldJobLogs(_ context.Context) {
	count, err := s.jobLogs.CleanupOldLogs(context.Background(), s.config.JobLogTTL)
	if err != nil {
		slog.Error("Retention: job log cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old job logs", "count", count)
	}
}
