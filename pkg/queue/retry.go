package queue

import "time"

// RetryBackoff returns the delay before retry number retryCount may be
// picked again: 2^(retryCount-1) minutes, so 1m, 2m, 4m for retries 1-3.
func RetryBackoff(retryCount int) time.Duration {
	if retryCount < 1 {
		retryCount = 1
	}
	return time.Duration(1<<(retryCount-1)) * time.Minute
}
