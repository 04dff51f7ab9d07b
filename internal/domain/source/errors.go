package source

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitedError signals that the upstream rejected the request because of
// rate limiting. RetryAfter is zero when the source did not say how long to
// back off.
type RateLimitedError struct {
	Source     string
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s rate limited, retry after %s", e.Source, e.RetryAfter)
	}
	return fmt.Sprintf("%s rate limited", e.Source)
}

// UnavailableError signals a transport failure or an upstream server error.
type UnavailableError struct {
	Source string
	Status int
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s unavailable, status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("%s unavailable: %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// MalformedResponseError signals that the whole response body could not be
// decoded. Per-element decode failures are not errors, they land in the
// batch's Malformed list.
type MalformedResponseError struct {
	Source string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s returned malformed response: %v", e.Source, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// AsRateLimited reports whether err is a rate-limit rejection and returns the
// backoff the source asked for.
func AsRateLimited(err error) (time.Duration, bool) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.RetryAfter, true
	}
	return 0, false
}
