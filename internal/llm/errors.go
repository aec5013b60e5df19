package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit reports a 429 from the backend. RetryAfter carries the
// server-suggested wait when the response included one.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed schema validation
// or was not parseable as JSON. Content holds the offending output.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports transport failures and 5xx responses.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "model backend unavailable"
	}
	return fmt.Sprintf("model backend unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports output cut off at the token limit. The
// truncated content is kept for diagnostics but is not valid JSON.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model output truncated at token limit"
}

// errClass buckets a Generate error for the retry loop.
type errClass int

const (
	classFatal     errClass = iota // give up immediately
	classTransient                 // retry with backoff
	classMalformed                 // retry once, model may produce valid output on a second try
)

func classify(err error) errClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return classFatal
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// Raising MaxTokens is a config change, retrying won't help.
		return classFatal
	}
	var malformed *ErrInvalidResponse
	if errors.As(err, &malformed) {
		return classMalformed
	}
	return classTransient
}
