package engine

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/mkress81/arbscout/internal/catalog"
)

func throttleErr() error {
	return &catalog.RequestError{
		StatusCode: http.StatusServiceUnavailable,
		Err:        errors.New("service unavailable"),
	}
}

func TestBackoff_onlyThrottlingIsRetryable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"503", throttleErr(), true},
		{"wrapped 503", fmt.Errorf("search page 3: %w", throttleErr()), true},
		{"500", &catalog.RequestError{StatusCode: 500, Err: errors.New("boom")}, false},
		{"400", &catalog.RequestError{StatusCode: 400, Err: errors.New("bad request")}, false},
		{"transport error", &catalog.RequestError{Err: errors.New("connection refused")}, false},
		{"plain error", errors.New("parse failure"), false},
	}
	for _, tc := range cases {
		b := newBackoff()
		b.interval = func() time.Duration { return 0 }
		if _, got := b.retry(tc.err); got != tc.want {
			t.Errorf("%s: retry = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBackoff_budgetIsThreeConsecutive(t *testing.T) {
	t.Parallel()

	b := newBackoff()
	b.interval = func() time.Duration { return 0 }

	for i := 0; i < 3; i++ {
		if _, ok := b.retry(throttleErr()); !ok {
			t.Fatalf("retry %d refused, want allowed", i+1)
		}
	}
	if _, ok := b.retry(throttleErr()); ok {
		t.Fatalf("fourth consecutive retry allowed, want refused")
	}
	// The refusal reset the counter, so the next logical call gets a fresh
	// budget.
	if _, ok := b.retry(throttleErr()); !ok {
		t.Fatalf("retry refused after counter reset")
	}
}

func TestBackoff_counterResetsOnOtherOutcomes(t *testing.T) {
	t.Parallel()

	b := newBackoff()
	b.interval = func() time.Duration { return 0 }

	b.retry(throttleErr())
	b.retry(throttleErr())

	// A non-retryable failure resets the streak.
	if _, ok := b.retry(errors.New("other")); ok {
		t.Fatalf("non-throttle error retried")
	}
	for i := 0; i < 3; i++ {
		if _, ok := b.retry(throttleErr()); !ok {
			t.Fatalf("retry %d refused after reset", i+1)
		}
	}

	// Success resets too.
	b.reset()
	if b.retries != 0 {
		t.Fatalf("retries = %d after reset, want 0", b.retries)
	}
}

func TestThrottleWait_isPositiveAndJittered(t *testing.T) {
	t.Parallel()

	seen := make(map[time.Duration]bool)
	for i := 0; i < 32; i++ {
		d := throttleWait()
		if d < 0 {
			t.Fatalf("negative wait %v", d)
		}
		seen[d] = true
	}
	if len(seen) < 2 {
		t.Errorf("waits not randomized: %v", seen)
	}
}
