// Package queue provides search queue management and processing
// infrastructure: the polling worker pool, the claim/retry/recovery state
// machine, and the scrape+analyze pipeline executor.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSearchesAvailable indicates no claimable pending searches.
	ErrNoSearchesAvailable = errors.New("no searches available")

	// ErrAtCapacity indicates the global concurrent search limit is reached.
	ErrAtCapacity = errors.New("at capacity")
)

// SearchExecutor is the interface for search processing.
//
// The executor owns the ENTIRE pipeline internally: scraping, analysis,
// persistence of the result set, and the cache write. It emits progress
// events and writes result rows during execution; the final summary row is
// written last so its presence marks a fully persisted result.
//
// The worker only handles: claiming, heartbeat, the terminal status
// update, and the retry transition on failure.
type SearchExecutor interface {
	Execute(ctx context.Context, row *ent.Search) *ExecutionResult
}

// ExecutionResult carries just the terminal state of one attempt.
// All result rows and progress events were already written by the executor.
type ExecutionResult struct {
	Status search.Status // completed or failed

	// AlreadyCompleted is set when the idempotency guard found a persisted
	// result set for this search (redelivery after a crash).
	AlreadyCompleted bool

	// Message is the user-facing failure classification, persisted to the
	// search row's error_message on failure.
	Message string

	// Err carries the underlying failure for logging.
	Err error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSearches   int            `json:"active_searches"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastRecoveryScan time.Time      `json:"last_recovery_scan"`
	StaleRecovered   int            `json:"stale_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSearchID   string    `json:"current_search_id,omitempty"`
	SearchesProcessed int       `json:"searches_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
