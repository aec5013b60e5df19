package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures one finished or dismissed quiz session.
type SessionEventData struct {
	SessionID    string
	Variant      string
	Score        int
	CorrectCount int
	TotalPlayed  int
	DurationSecs int
	Accuracy     float64
	WordIDs      []string

	// StartedAt becomes the event timestamp when set; zero falls back to
	// the write time.
	StartedAt time.Time
}

// SessionSummary is a stored session as returned by queries.
type SessionSummary struct {
	Sequence     int64
	Timestamp    time.Time
	SessionID    string
	Variant      string
	Score        int
	CorrectCount int
	TotalPlayed  int
	DurationSecs int
	Accuracy     float64
}

// AnswerEventData captures one answered, skipped, or revealed item.
type AnswerEventData struct {
	SessionID     string
	WordID        string
	Variant       string
	Prompt        string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Attempts      int
	ScoreDelta    int
	NeedsReview   bool

	// UserID attributes the answer, and the difficulty change it caused,
	// to the acting user. Matters for shared words.
	UserID string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored LLM request as returned by queries.
type LLMEvent struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates request counts and token totals for one key
// (purpose or model).
type LLMUsage struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session summary.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a played item.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns stored sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// WordAccuracy returns the fraction of answer events for a word that
	// were correct, or 0 when the word was never played.
	WordAccuracy(ctx context.Context, wordID string) (float64, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
