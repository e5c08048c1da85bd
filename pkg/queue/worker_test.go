package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/test/util"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrent:           3,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      10 * time.Millisecond,
		SearchTimeout:           10 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
		RecoveryInterval:        time.Hour,
		StaleAfter:              5 * time.Minute,
		HeartbeatInterval:       time.Second,
		MaxRetries:              3,
	}
}

// stubExecutor returns a fixed result and records the searches it saw.
type stubExecutor struct {
	result *ExecutionResult
	seen   chan string
}

func newStubExecutor(result *ExecutionResult) *stubExecutor {
	return &stubExecutor{result: result, seen: make(chan string, 16)}
}

func (s *stubExecutor) Execute(_ context.Context, row *ent.Search) *ExecutionResult {
	s.seen <- row.ID
	return s.result
}

// noopRegistry satisfies SearchRegistry for single-worker tests.
type noopRegistry struct{}

func (noopRegistry) RegisterSearch(string, context.CancelFunc) {}
func (noopRegistry) UnregisterSearch(string)                   {}

func createSearch(t *testing.T, client *ent.Client, mutate func(*ent.SearchCreate)) *ent.Search {
	t.Helper()
	create := client.Search.Create().
		SetID(uuid.New().String()).
		SetTopic("docker networking")
	if mutate != nil {
		mutate(create)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestClaimNextSearch(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	w := NewWorker("w-0", "pod-a", client, testQueueConfig(), nil, noopRegistry{}, nil, nil)

	t.Run("empty queue", func(t *testing.T) {
		_, err := w.claimNextSearch(ctx)
		require.ErrorIs(t, err, ErrNoSearchesAvailable)
	})

	t.Run("fifo order and claim fields", func(t *testing.T) {
		older := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetCreatedAt(time.Now().Add(-2 * time.Minute))
		})
		createSearch(t, client, nil)

		row, err := w.claimNextSearch(ctx)
		require.NoError(t, err)
		assert.Equal(t, older.ID, row.ID)
		assert.Equal(t, search.StatusProcessing, row.Status)
		require.NotNil(t, row.PodID)
		assert.Equal(t, "pod-a", *row.PodID)
		assert.NotNil(t, row.LastRetryAt)
	})

	t.Run("skips rows before their back-off gate", func(t *testing.T) {
		gated := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetCreatedAt(time.Now().Add(-time.Hour)).
				SetRetryCount(1).
				SetNextRetryAt(time.Now().Add(10 * time.Minute))
		})

		row, err := w.claimNextSearch(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, gated.ID, row.ID)
	})

	t.Run("skips rows with exhausted retries", func(t *testing.T) {
		createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetRetryCount(3)
		})

		_, err := w.claimNextSearch(ctx)
		require.ErrorIs(t, err, ErrNoSearchesAvailable)
	})
}

func TestFinishSearch_Completed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	w := NewWorker("w-0", "pod-a", client, testQueueConfig(), nil, noopRegistry{}, nil, nil)

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing).SetErrorMessage("transient hiccup")
	})

	require.NoError(t, w.finishSearch(ctx, row, &ExecutionResult{Status: search.StatusCompleted}))

	got, err := client.Search.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, search.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Nil(t, got.ErrorMessage)
}

func TestRetryOrFail(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	w := NewWorker("w-0", "pod-a", client, testQueueConfig(), nil, noopRegistry{}, nil, nil)

	t.Run("first failure schedules retry with back-off", func(t *testing.T) {
		row := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetStatus(search.StatusProcessing)
		})

		result := &ExecutionResult{
			Status:  search.StatusFailed,
			Message: "Unable to reach external services.",
			Err:     errors.New("dial tcp: connection refused"),
		}
		require.NoError(t, w.retryOrFail(ctx, row, result))

		got, err := client.Search.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, search.StatusPending, got.Status)
		assert.Equal(t, 1, got.RetryCount)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "Unable to reach external services.", *got.ErrorMessage)

		require.NotNil(t, got.NextRetryAt)
		wait := time.Until(*got.NextRetryAt)
		assert.InDelta(t, time.Minute.Seconds(), wait.Seconds(), 5)
	})

	t.Run("second failure doubles the back-off", func(t *testing.T) {
		row := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetStatus(search.StatusProcessing).SetRetryCount(1)
		})

		require.NoError(t, w.retryOrFail(ctx, row, &ExecutionResult{Status: search.StatusFailed}))

		got, err := client.Search.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, search.StatusPending, got.Status)
		assert.Equal(t, 2, got.RetryCount)
		require.NotNil(t, got.NextRetryAt)
		assert.InDelta(t, (2 * time.Minute).Seconds(), time.Until(*got.NextRetryAt).Seconds(), 5)
	})

	t.Run("final failure is terminal", func(t *testing.T) {
		row := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetStatus(search.StatusProcessing).SetRetryCount(2)
		})

		result := &ExecutionResult{Status: search.StatusFailed, Message: "AI analysis failed."}
		require.NoError(t, w.retryOrFail(ctx, row, result))

		got, err := client.Search.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, search.StatusFailed, got.Status)
		assert.Equal(t, 3, got.RetryCount)
		assert.NotNil(t, got.CompletedAt)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "AI analysis failed.", *got.ErrorMessage)
	})

	t.Run("empty message defaults", func(t *testing.T) {
		row := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetStatus(search.StatusProcessing)
		})

		require.NoError(t, w.retryOrFail(ctx, row, &ExecutionResult{Status: search.StatusFailed}))

		got, err := client.Search.Get(ctx, row.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "Something went wrong.", *got.ErrorMessage)
	})
}

func TestWorkerProcessesPendingSearch(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	executor := newStubExecutor(&ExecutionResult{Status: search.StatusCompleted})
	w := NewWorker("w-0", "pod-a", client, testQueueConfig(), executor, noopRegistry{}, nil, nil)

	row := createSearch(t, client, nil)

	w.Start(ctx)
	defer w.Stop()

	select {
	case seen := <-executor.seen:
		assert.Equal(t, row.ID, seen)
	case <-time.After(5 * time.Second):
		t.Fatal("worker never picked up the pending search")
	}

	require.Eventually(t, func() bool {
		got, err := client.Search.Get(ctx, row.ID)
		return err == nil && got.Status == search.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWorkerRespectsMaxConcurrent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.MaxConcurrent = 1
	w := NewWorker("w-0", "pod-a", client, cfg, nil, noopRegistry{}, nil, nil)

	// One search already processing fills the global budget.
	createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})
	createSearch(t, client, nil)

	err := w.pollAndProcess(ctx)
	require.ErrorIs(t, err, ErrAtCapacity)
}
