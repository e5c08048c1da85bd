package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 3, cfg.Queue.MaxConcurrent)
	assert.Equal(t, 60*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.Queue.SearchTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Queue.StaleAfter)
	assert.Equal(t, 3, cfg.Queue.MaxRetries)

	assert.Equal(t, 60, cfg.Pipeline.MaxStories)
	assert.Equal(t, 10, cfg.Pipeline.MaxPainPoints)
	assert.Equal(t, 50, cfg.Pipeline.QuoteMatchPrefixLen)

	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)

	assert.Equal(t, "gemini-2.0-flash", cfg.Analyzer.Model)
	assert.Equal(t, 30, cfg.Retention.SearchRetentionDays)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("WORKER_COUNT", "5")
	t.Setenv("SEARCH_TIMEOUT_MS", "120000")
	t.Setenv("PICK_INTERVAL_S", "5")
	t.Setenv("CACHE_TTL_S", "600")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 120*time.Second, cfg.Queue.SearchTimeout)
	assert.Equal(t, 5*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "gemini-2.5-pro", cfg.Analyzer.Model)
}

func TestLoad_RejectsNonPositiveKnobs(t *testing.T) {
	cases := []struct {
		env string
		val string
	}{
		{"WORKER_COUNT", "0"},
		{"MAX_CONCURRENT", "-1"},
		{"MAX_RETRIES", "0"},
		{"HN_MAX_STORIES", "0"},
		{"ANALYZER_ATTEMPTS", "-3"},
	}
	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv(tc.env, tc.val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.env)
		})
	}
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("WORKER_COUNT", "many")
	t.Setenv("CACHE_TTL_S", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
}
