package config

import "time"

// QueueConfig controls how searches are claimed, processed, and recovered.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int

	// MaxConcurrent is the global limit of searches in PROCESSING at once,
	// enforced by a database COUNT(*) check before each claim.
	MaxConcurrent int

	// PollInterval is the base interval for checking pending searches.
	PollInterval time.Duration

	// PollIntervalJitter randomizes the poll interval to de-synchronize
	// workers: actual interval is PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// SearchTimeout is the overall budget for one pipeline run.
	SearchTimeout time.Duration

	// GracefulShutdownTimeout bounds the drain of active searches on stop.
	GracefulShutdownTimeout time.Duration

	// RecoveryInterval is how often the stale sweep runs.
	RecoveryInterval time.Duration

	// StaleAfter is how long a PROCESSING search may go without a heartbeat
	// before the sweep resets it to PENDING (or fails it permanently).
	StaleAfter time.Duration

	// HeartbeatInterval is how often a working search refreshes last_retry_at.
	HeartbeatInterval time.Duration

	// MaxRetries caps retry_count; the transition after the final failure
	// is FAILED instead of PENDING.
	MaxRetries int
}

// LoadQueueConfig reads queue settings from the environment.
func LoadQueueConfig() (*QueueConfig, error) {
	cfg := &QueueConfig{
		WorkerCount:             getEnvInt("WORKER_COUNT", 3),
		MaxConcurrent:           getEnvInt("MAX_CONCURRENT", 3),
		PollInterval:            getEnvDuration("PICK_INTERVAL_S", 60*time.Second),
		PollIntervalJitter:      getEnvDurationMS("PICK_INTERVAL_JITTER_MS", 500*time.Millisecond),
		SearchTimeout:           getEnvDurationMS("SEARCH_TIMEOUT_MS", 60*time.Second),
		GracefulShutdownTimeout: getEnvDuration("GRACEFUL_SHUTDOWN_TIMEOUT_S", 90*time.Second),
		RecoveryInterval:        getEnvDuration("RECOVERY_INTERVAL_S", 120*time.Second),
		StaleAfter:              getEnvDuration("STALE_AFTER_S", 5*time.Minute),
		HeartbeatInterval:       getEnvDuration("HEARTBEAT_INTERVAL_S", 15*time.Second),
		MaxRetries:              getEnvInt("MAX_RETRIES", 3),
	}

	if err := requirePositive("WORKER_COUNT", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if err := requirePositive("MAX_CONCURRENT", cfg.MaxConcurrent); err != nil {
		return nil, err
	}
	if err := requirePositive("MAX_RETRIES", cfg.MaxRetries); err != nil {
		return nil, err
	}
	return cfg, nil
}
