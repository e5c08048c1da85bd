package events

import (
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconnectPolicy(t *testing.T) {
	bo := reconnectPolicy()
	assert.Equal(t, time.Second, bo.InitialInterval)
	assert.Equal(t, 30*time.Second, bo.MaxInterval)
	assert.Zero(t, bo.MaxElapsedTime)

	// Intervals grow toward the ceiling and never give up. With the
	// default jitter a sample can exceed MaxInterval by up to 1.5x.
	for i := 0; i < 20; i++ {
		next := bo.NextBackOff()
		require.NotEqual(t, backoff.Stop, next)
		assert.Greater(t, next, time.Duration(0))
		assert.LessOrEqual(t, next, 45*time.Second)
	}
}
