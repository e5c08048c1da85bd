package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/events"
	"github.com/painscope/painscope/pkg/services"
)

// WorkerPool manages a pool of queue workers plus the periodic stale
// recovery sweep.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  SearchExecutor
	publisher *events.EventPublisher
	jobLogs   *services.JobLogService
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Search cancel registry: search_id → cancel function
	activeSearches map[string]context.CancelFunc
	mu             sync.RWMutex
	started        bool

	// Recovery sweep state
	recovery recoveryState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor SearchExecutor, publisher *events.EventPublisher, jobLogs *services.JobLogService) *WorkerPool {
	return &WorkerPool{
		podID:          podID,
		client:         client,
		config:         cfg,
		executor:       executor,
		publisher:      publisher,
		jobLogs:        jobLogs,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeSearches: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the recovery background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p, p.publisher, p.jobLogs)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runRecovery(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current searches before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveSearchIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active searches to complete",
			"count", len(active),
			"search_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterSearch stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterSearch(searchID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeSearches[searchID] = cancel
}

// UnregisterSearch removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterSearch(searchID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeSearches, searchID)
}

// CancelSearch triggers context cancellation for a search on this pod.
// Returns true if the search was found and cancelled on this pod.
func (p *WorkerPool) CancelSearch(searchID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeSearches[searchID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Search.Query().
		Where(search.StatusEQ(search.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeSearches, errA := p.client.Search.Query().
		Where(
			search.StatusEQ(search.StatusProcessing),
			search.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active searches for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if the DB is unreachable, we're not healthy.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeSearches <= p.config.MaxConcurrent && dbHealthy

	p.recovery.mu.Lock()
	lastScan := p.recovery.lastScan
	staleRecovered := p.recovery.staleRecovered
	p.recovery.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active searches query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveSearches:   activeSearches,
		MaxConcurrent:    p.config.MaxConcurrent,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastRecoveryScan: lastScan,
		StaleRecovered:   staleRecovered,
	}
}

// getActiveSearchIDs returns IDs of currently processing searches (for logging).
func (p *WorkerPool) getActiveSearchIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeSearches))
	for id := range p.activeSearches {
		ids = append(ids, id)
	}
	return ids
}
