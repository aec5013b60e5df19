// Package session implements the adaptive quiz session engine: item
// selection, question prefetching, answer scoring, and result recording.
// One Session is owned by one consumer and driven by serialized inputs;
// background generation marshals back through epoch-checked entry points.
package session

import (
	"context"
	"time"

	"github.com/tanmayb/wordgym/internal/question"
	"github.com/tanmayb/wordgym/internal/word"
)

// Phase is the session lifecycle phase.
type Phase int

const (
	// PhaseInitializing is before item selection has finished.
	PhaseInitializing Phase = iota

	// PhaseGeneratingFirst is while the first question is generated.
	PhaseGeneratingFirst

	// PhaseReady means a question is on screen.
	PhaseReady

	// PhasePrefetching means the learner advanced before the next
	// question arrived; the session resumes on its own when it lands.
	PhasePrefetching

	// PhaseComplete is the terminal success state.
	PhaseComplete

	// PhaseError holds a user-facing message; Retry is available.
	PhaseError

	// PhaseDismissed is terminal: the session was torn down and every
	// input is ignored from here on.
	PhaseDismissed
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseGeneratingFirst:
		return "generating_first"
	case PhaseReady:
		return "ready"
	case PhasePrefetching:
		return "prefetching"
	case PhaseComplete:
		return "complete"
	case PhaseError:
		return "error"
	case PhaseDismissed:
		return "dismissed"
	}
	return "unknown"
}

// Snapshot is an immutable view of the session, replaced atomically on
// every transition. The Question pointer is shared and must be treated as
// read-only.
type Snapshot struct {
	SessionID string
	Phase     Phase

	// Message is the user-facing error text in PhaseError.
	Message string

	// Index is the zero-based position of the current item; Total is the
	// fixed session length.
	Index int
	Total int

	// Word and Question describe the current item; Question is nil
	// outside PhaseReady.
	Word     word.Word
	Question *question.Question

	// CorrectIndex is the index of the correct option in the shuffled
	// options, located by content. -1 for questions without options.
	CorrectIndex int

	// Selected is the learner's tentative choice, -1 when none.
	Selected int

	// Submitted and LastCorrect describe the current item's answer state.
	Submitted   bool
	LastCorrect bool

	// Attempts is the number of tries on the current item (spelling).
	Attempts int

	Score        int
	Streak       int
	BestStreak   int
	CorrectCount int

	// Played is how many items have been answered or skipped.
	Played int

	// WaitingFor is the word id being waited on in PhasePrefetching.
	WaitingFor string
}

// Record is the write-once session summary handed to the Recorder.
type Record struct {
	SessionID string
	Variant   word.Variant
	Score     int

	// CorrectCount and TotalPlayed count items actually played, which is
	// less than the preset count on early exit.
	CorrectCount int
	TotalPlayed  int

	StartedAt time.Time
	Duration  time.Duration

	// Accuracy is the mean per-item accuracy contribution over played
	// items, in [0,1].
	Accuracy float64

	// WordIDs lists every practiced word in play order.
	WordIDs []string
}

// Recorder persists a session summary to the statistics store. SaveSession
// is called at most once per session lifecycle.
type Recorder interface {
	SaveSession(ctx context.Context, rec Record) error
}

// Answer describes one finished item for persistence. UserID attributes
// the answer, and any difficulty change it produced, to the acting user.
type Answer struct {
	SessionID     string
	UserID        string
	WordID        string
	Variant       word.Variant
	Prompt        string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Attempts      int
	ScoreDelta    int
	NeedsReview   bool
}

// AnswerSink receives every finished item as it is scored. Writes must
// not block the session; implementations are called from a background
// goroutine and failures are logged, not surfaced.
type AnswerSink interface {
	RecordAnswer(ctx context.Context, a Answer) error
}
