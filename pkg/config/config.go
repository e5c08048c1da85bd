// Package config loads runtime configuration from the environment.
// Every knob has a built-in default so a bare process comes up with the
// documented behavior; deployments override via env (or a .env file
// loaded in main).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full runtime configuration.
type Config struct {
	Server    *ServerConfig
	Queue     *QueueConfig
	Pipeline  *PipelineConfig
	Cache     *CacheConfig
	Analyzer  *AnalyzerConfig
	Retention *RetentionConfig
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	// WSWriteTimeout bounds each WebSocket write before the connection is
	// considered dead.
	WSWriteTimeout time.Duration
}

// AnalyzerConfig configures the Gemini analyzer adapter.
type AnalyzerConfig struct {
	APIKey string
	Model  string
	// CostPerMillionUSD estimates spend per million tokens for ApiUsage rows.
	CostPerMillionUSD float64
}

// CacheConfig configures the Redis result cache.
type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RetentionConfig configures the cleanup service.
type RetentionConfig struct {
	SearchRetentionDays int
	JobLogTTL           time.Duration
	CleanupInterval     time.Duration
}

// Load reads all configuration from the environment.
func Load() (*Config, error) {
	queue, err := LoadQueueConfig()
	if err != nil {
		return nil, err
	}
	pipeline, err := LoadPipelineConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: &ServerConfig{
			Addr:            getEnv("LISTEN_ADDR", ":8080"),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT_S", 10*time.Second),
			WSWriteTimeout:  getEnvDuration("WS_WRITE_TIMEOUT_S", 10*time.Second),
		},
		Queue:    queue,
		Pipeline: pipeline,
		Cache: &CacheConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL_S", 1800*time.Second),
		},
		Analyzer: &AnalyzerConfig{
			APIKey:            os.Getenv("GEMINI_API_KEY"),
			Model:             getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			CostPerMillionUSD: getEnvFloat("GEMINI_COST_PER_MILLION_USD", 0.10),
		},
		Retention: &RetentionConfig{
			SearchRetentionDays: getEnvInt("SEARCH_RETENTION_DAYS", 30),
			JobLogTTL:           getEnvDuration("JOB_LOG_TTL_S", 7*24*time.Hour),
			CleanupInterval:     getEnvDuration("CLEANUP_INTERVAL_S", time.Hour),
		},
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// getEnvDuration reads an integer number of seconds (the _S / _MS suffix
// on the variable name states the unit).
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return defaultVal
}

// getEnvDurationMS reads an integer number of milliseconds.
func getEnvDurationMS(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Millisecond
		}
	}
	return defaultVal
}

// requirePositive rejects zero or negative values for knobs where that
// would wedge the pipeline.
func requirePositive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return nil
}
