package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func ok() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetryCallCounts(t *testing.T) {
	cases := []struct {
		name    string
		script  []MockResponse
		calls   int
		wantErr bool
	}{
		{"first try", []MockResponse{ok()}, 1, false},
		{"transient then success", []MockResponse{down(), ok()}, 2, false},
		{"exhausted", []MockResponse{down(), down(), down()}, 3, true},
		{"truncation not retried", []MockResponse{
			{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}},
		}, 1, true},
		{"malformed retried once", []MockResponse{
			{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
			ok(),
		}, 2, false},
		{"malformed twice gives up", []MockResponse{
			{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
			{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
			ok(),
		}, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := NewMockProvider(tc.script...)
			p := WithRetry(mock, fastRetry())
			_, err := p.Generate(context.Background(), Request{})
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
			if mock.CallCount() != tc.calls {
				t.Fatalf("expected %d calls, got %d", tc.calls, mock.CallCount())
			}
		})
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(down(), ok())
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetryHonorsRateLimitHint(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}},
		ok(),
	)
	p := WithRetry(mock, fastRetry())

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Fatalf("expected to wait for the rate limit hint, waited %s", elapsed)
	}
}

func TestRetryLastErrorWins(t *testing.T) {
	sentinel := errors.New("still down")
	mock := NewMockProvider(
		down(),
		down(),
		MockResponse{Err: &ErrProviderUnavailable{Err: sentinel}},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected final attempt error, got %v", err)
	}
}
