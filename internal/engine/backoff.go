package engine

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/mkress81/arbscout/internal/catalog"
)

const maxThrottleRetries = 3

// backoff decides whether a failed adapter call should be repeated in
// place. Only throttling (HTTP 503) is retryable, at most
// maxThrottleRetries consecutive times; the counter resets after any other
// outcome so the budget applies per logical call.
type backoff struct {
	retries  int
	interval func() time.Duration
}

func newBackoff() *backoff {
	return &backoff{interval: throttleWait}
}

// throttleWait draws the retry delay from an exponential distribution with
// rate 0.1/s (mean 10s), so clients sharing a rate limit don't retry in
// lockstep.
func throttleWait() time.Duration {
	return time.Duration(rand.ExpFloat64() / 0.1 * float64(time.Second))
}

// retry reports whether err warrants another attempt at the same call and,
// if so, how long to wait first.
func (b *backoff) retry(err error) (time.Duration, bool) {
	var re *catalog.RequestError
	if errors.As(err, &re) &&
		re.StatusCode == http.StatusServiceUnavailable &&
		b.retries < maxThrottleRetries {
		b.retries++
		return b.interval(), true
	}
	b.retries = 0
	return 0, false
}

// reset clears the consecutive-retry counter after a successful call.
func (b *backoff) reset() { b.retries = 0 }
