package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retrier wraps a Provider and re-issues requests that failed with a
// transient error. Backoff doubles per attempt (per RetryConfig) with
// random jitter; a rate-limit hint from the server overrides it.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry adds retry-on-transient-failure behavior to a Provider.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	malformedBudget := 1

	var err error
	for attempt := 1; ; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case classFatal:
			return nil, err
		case classMalformed:
			if malformedBudget == 0 {
				return nil, err
			}
			malformedBudget--
		}

		if attempt >= r.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, err
}

// wait picks the sleep before the next attempt. attempt is 1-based.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := r.cfg.InitialWait
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * r.cfg.Multiplier)
		if d >= r.cfg.MaxWait {
			d = r.cfg.MaxWait
			break
		}
	}
	if d <= 0 {
		return 0
	}
	// Jitter in [0.8d, 1.2d) keeps concurrent callers from retrying in
	// lockstep.
	return d - d/5 + rand.N(2*d/5)
}
