// ABOUTME: Retry backoff helper for remote embedding calls
// ABOUTME: Exponential delay with jitter, capped to keep retries bounded
package util

import (
	"math/rand/v2"
	"time"
)

// maxBackoff caps the delay between attempts
const maxBackoff = 30 * time.Second

// CalculateBackoff returns the delay before the given retry attempt: the
// base delay doubled per attempt, capped at maxBackoff, with up to ±25%
// random jitter so concurrent workers do not retry in lockstep.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Bound the shift so the multiplication cannot overflow
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > maxBackoff || backoff <= 0 {
		backoff = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
