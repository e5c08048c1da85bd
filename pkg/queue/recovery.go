package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/events"
	"github.com/painscope/painscope/pkg/metrics"
)

// staleRetryMessage is persisted when the sweep resets a stuck search.
const staleRetryMessage = "Search timed out and will be retried"

// recoveryState tracks recovery sweep metrics (thread-safe).
type recoveryState struct {
	mu             sync.Mutex
	lastScan       time.Time
	staleRecovered int
}

// runRecovery periodically resets stale processing searches.
// All pods run this independently; the reset updates the heartbeat column
// the sweep filters on, so a search is only touched once per sweep.
func (p *WorkerPool) runRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.RecoveryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			recovered, err := RecoverStale(ctx, p.client, p.config, p.publisher)
			if err != nil {
				slog.Error("Stale recovery sweep failed", "error", err)
			}

			p.recovery.mu.Lock()
			p.recovery.lastScan = time.Now()
			p.recovery.staleRecovered += recovered
			p.recovery.mu.Unlock()
		}
	}
}

// RecoverStale finds processing searches whose heartbeat went silent for
// longer than StaleAfter and applies the retry transition: back to PENDING
// with back-off while retries remain, FAILED otherwise. Returns how many
// rows were transitioned.
//
// publisher may be nil (no status events emitted).
func RecoverStale(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, publisher *events.EventPublisher) (int, error) {
	threshold := time.Now().Add(-cfg.StaleAfter)

	stale, err := client.Search.Query().
		Where(
			search.StatusEQ(search.StatusProcessing),
			search.LastRetryAtNotNil(),
			search.LastRetryAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale searches: %w", err)
	}

	if len(stale) == 0 {
		return 0, nil
	}

	slog.Warn("Detected stale processing searches", "count", len(stale))

	recovered := 0
	for _, row := range stale {
		if err := recoverStaleSearch(ctx, row, cfg, publisher); err != nil {
			slog.Error("Failed to recover stale search",
				"search_id", row.ID,
				"error", err)
			continue
		}
		recovered++
	}

	metrics.StaleRecovered.Add(float64(recovered))
	return recovered, nil
}

// recoverStaleSearch applies the retry-or-fail transition to one stale row.
func recoverStaleSearch(ctx context.Context, row *ent.Search, cfg *config.QueueConfig, publisher *events.EventPublisher) error {
	log := slog.With("search_id", row.ID, "old_pod_id", podIDString(row))

	lastHeartbeat := "unknown"
	if row.LastRetryAt != nil {
		lastHeartbeat = row.LastRetryAt.Format(time.RFC3339)
	}

	newCount := row.RetryCount + 1
	if newCount >= cfg.MaxRetries {
		err := row.Update().
			SetStatus(search.StatusFailed).
			SetRetryCount(newCount).
			SetCompletedAt(time.Now()).
			SetErrorMessage(timeoutMessage).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark stale search failed: %w", err)
		}
		publishRecoveryStatus(ctx, publisher, row.ID, string(search.StatusFailed), timeoutMessage)
		log.Warn("Stale search failed permanently", "last_heartbeat", lastHeartbeat, "retry_count", newCount)
		return nil
	}

	err := row.Update().
		SetStatus(search.StatusPending).
		SetRetryCount(newCount).
		SetNextRetryAt(time.Now().Add(RetryBackoff(newCount))).
		SetErrorMessage(staleRetryMessage).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset stale search: %w", err)
	}
	publishRecoveryStatus(ctx, publisher, row.ID, string(search.StatusPending), staleRetryMessage)
	log.Warn("Stale search reset for retry", "last_heartbeat", lastHeartbeat, "retry_count", newCount)
	return nil
}

func publishRecoveryStatus(ctx context.Context, publisher *events.EventPublisher, searchID, status, message string) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishSearchStatus(ctx, searchID, events.PhaseAnalysis, events.SearchStatusPayload{
		Status:       status,
		ErrorMessage: message,
	}); err != nil {
		slog.Warn("Failed to publish recovery status", "search_id", searchID, "error", err)
	}
}

// CleanupStartupStale performs a one-time recovery of searches owned by
// this pod that were processing when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupStale(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, podID string) error {
	stale, err := client.Search.Query().
		Where(
			search.StatusEQ(search.StatusProcessing),
			search.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup stale searches: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	slog.Warn("Found stale searches from previous run",
		"pod_id", podID,
		"count", len(stale))

	for _, row := range stale {
		if err := recoverStaleSearch(ctx, row, cfg, nil); err != nil {
			slog.Error("Failed to recover startup stale search",
				"search_id", row.ID,
				"error", err)
			continue
		}
		slog.Info("Startup stale search recovered", "search_id", row.ID)
	}

	return nil
}

func podIDString(row *ent.Search) string {
	if row.PodID == nil {
		return "unknown"
	}
	return *row.PodID
}
