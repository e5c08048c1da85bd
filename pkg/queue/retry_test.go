package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, time.Minute, RetryBackoff(1))
	assert.Equal(t, 2*time.Minute, RetryBackoff(2))
	assert.Equal(t, 4*time.Minute, RetryBackoff(3))

	// Out-of-range inputs clamp to the first step.
	assert.Equal(t, time.Minute, RetryBackoff(0))
	assert.Equal(t, time.Minute, RetryBackoff(-3))
}
