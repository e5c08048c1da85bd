package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/events"
	"github.com/painscope/painscope/pkg/metrics"
	"github.com/painscope/painscope/pkg/services"
)

// timeoutMessage is the user-facing classification for deadline failures.
const timeoutMessage = "Analysis took too long. Try narrowing your search."

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// SearchRegistry is the subset of WorkerPool used by Worker for search
// registration.
type SearchRegistry interface {
	RegisterSearch(searchID string, cancel context.CancelFunc)
	UnregisterSearch(searchID string)
}

// Worker is a single queue worker that polls for and processes searches.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  SearchExecutor
	publisher *events.EventPublisher
	jobLogs   *services.JobLogService
	pool      SearchRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSearchID   string
	searchesProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker.
// publisher may be nil (event streaming disabled, used in tests).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor SearchExecutor, pool SearchRegistry, publisher *events.EventPublisher, jobLogs *services.JobLogService) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		jobLogs:      jobLogs,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSearchID:   w.currentSearchID,
		SearchesProcessed: w.searchesProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSearchesAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing search", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a search, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Search.Query().
		Where(search.StatusEQ(search.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active searches: %w", err)
	}
	if activeCount >= w.config.MaxConcurrent {
		return ErrAtCapacity
	}

	// 2. Claim next search
	row, err := w.claimNextSearch(ctx)
	if err != nil {
		return err
	}

	log := slog.With("search_id", row.ID, "worker_id", w.id)
	log.Info("Search claimed", "topic", row.Topic, "retry_count", row.RetryCount)

	metrics.ActiveSearches.Inc()
	defer metrics.ActiveSearches.Dec()
	started := time.Now()

	w.publishStatus(ctx, row.ID, events.PhaseStories, string(search.StatusProcessing), "")

	w.setStatus(WorkerStatusWorking, row.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create search context with the overall pipeline budget
	searchCtx, cancelSearch := context.WithTimeout(ctx, w.config.SearchTimeout)
	defer cancelSearch()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterSearch(row.ID, cancelSearch)
	defer w.pool.UnregisterSearch(row.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(searchCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, row.ID)

	// 6. Execute the pipeline
	result := w.executor.Execute(searchCtx, row)

	// 6a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(searchCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:  search.StatusFailed,
				Message: timeoutMessage,
				Err:     fmt.Errorf("search timed out after %v", w.config.SearchTimeout),
			}
		case errors.Is(searchCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status:  search.StatusFailed,
				Message: timeoutMessage,
				Err:     context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status:  search.StatusFailed,
				Message: "Something went wrong.",
				Err:     fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Stop heartbeat before the terminal write
	cancelHeartbeat()

	// 8. Terminal transition (background context; search ctx may be cancelled)
	if err := w.finishSearch(context.Background(), row, result); err != nil {
		log.Error("Failed to update search terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.searchesProcessed++
	w.mu.Unlock()

	metrics.SearchDuration.Observe(time.Since(started).Seconds())
	log.Info("Search processing complete", "status", result.Status,
		"duration", time.Since(started).Round(time.Millisecond))
	return nil
}

// claimNextSearch atomically claims the next ready pending search using
// FOR UPDATE SKIP LOCKED, so concurrent workers (and pods) never
// double-claim a row.
func (w *Worker) claimNextSearch(ctx context.Context) (*ent.Search, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Ready means: pending, retries left, and past the back-off gate.
	// Ordered by created_at for FIFO processing.
	now := time.Now()
	row, err := tx.Search.Query().
		Where(
			search.StatusEQ(search.StatusPending),
			search.RetryCountLT(w.config.MaxRetries),
			search.Or(
				search.NextRetryAtIsNil(),
				search.NextRetryAtLTE(now),
			),
		).
		Order(ent.Asc(search.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoSearchesAvailable
		}
		return nil, fmt.Errorf("failed to query pending search: %w", err)
	}

	// Claim: set processing, pod_id, and the heartbeat timestamp.
	row, err = row.Update().
		SetStatus(search.StatusProcessing).
		SetPodID(w.podID).
		SetLastRetryAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim search: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return row, nil
}

// runHeartbeat periodically refreshes last_retry_at so the stale sweep can
// tell a working search from a crashed one.
func (w *Worker) runHeartbeat(ctx context.Context, searchID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Search.UpdateOneID(searchID).
				SetLastRetryAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "search_id", searchID, "error", err)
			}
		}
	}
}

// finishSearch writes the terminal state of one attempt: COMPLETED on
// success, or the retry transition (PENDING with back-off, FAILED once
// retries are exhausted) on failure.
func (w *Worker) finishSearch(ctx context.Context, row *ent.Search, result *ExecutionResult) error {
	if result.Status == search.StatusCompleted {
		if err := w.client.Search.UpdateOneID(row.ID).
			SetStatus(search.StatusCompleted).
			SetCompletedAt(time.Now()).
			ClearErrorMessage().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark search completed: %w", err)
		}
		metrics.SearchesProcessed.WithLabelValues("completed").Inc()
		if !result.AlreadyCompleted {
			w.publishStatus(ctx, row.ID, events.PhaseAnalysis, string(search.StatusCompleted), "")
		}
		return nil
	}

	return w.retryOrFail(ctx, row, result)
}

// retryOrFail applies the failure transition: when retries remain the
// search goes back to PENDING with retry_count incremented and
// next_retry_at = now + 2^(retry_count-1) minutes; otherwise it becomes
// FAILED with the classified error message.
func (w *Worker) retryOrFail(ctx context.Context, row *ent.Search, result *ExecutionResult) error {
	message := result.Message
	if message == "" {
		message = "Something went wrong."
	}
	newCount := row.RetryCount + 1

	if newCount >= w.config.MaxRetries {
		if err := w.client.Search.UpdateOneID(row.ID).
			SetStatus(search.StatusFailed).
			SetRetryCount(newCount).
			SetErrorMessage(message).
			SetCompletedAt(time.Now()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark search failed: %w", err)
		}
		metrics.SearchesProcessed.WithLabelValues("failed").Inc()
		w.publishStatus(ctx, row.ID, events.PhaseAnalysis, string(search.StatusFailed), message)
		if w.jobLogs != nil {
			w.jobLogs.Error(ctx, row.ID, "Search failed permanently", map[string]interface{}{
				"retry_count": newCount,
				"error":       errString(result.Err),
			})
		}
		slog.Error("Search failed permanently",
			"search_id", row.ID, "retry_count", newCount, "error", result.Err)
		return nil
	}

	backoff := RetryBackoff(newCount)
	if err := w.client.Search.UpdateOneID(row.ID).
		SetStatus(search.StatusPending).
		SetRetryCount(newCount).
		SetNextRetryAt(time.Now().Add(backoff)).
		SetErrorMessage(message).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to schedule search retry: %w", err)
	}
	metrics.SearchesProcessed.WithLabelValues("retried").Inc()
	w.publishStatus(ctx, row.ID, events.PhaseAnalysis, string(search.StatusPending), message)
	if w.jobLogs != nil {
		w.jobLogs.Warn(ctx, row.ID, "Search attempt failed, retry scheduled", map[string]interface{}{
			"retry_count": newCount,
			"next_retry":  backoff.String(),
			"error":       errString(result.Err),
		})
	}
	slog.Warn("Search attempt failed, retry scheduled",
		"search_id", row.ID, "retry_count", newCount, "backoff", backoff, "error", result.Err)
	return nil
}

// publishStatus publishes a search status event. Non-blocking: errors are
// logged by the publisher.
func (w *Worker) publishStatus(ctx context.Context, searchID, phase, status, errorMessage string) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishSearchStatus(ctx, searchID, phase, events.SearchStatusPayload{
		Status:       status,
		ErrorMessage: errorMessage,
	}); err != nil {
		slog.Warn("Failed to publish search status",
			"search_id", searchID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, searchID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSearchID = searchID
	w.lastActivity = time.Now()
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
