// Package scoring maps answer events to score, accuracy, and difficulty
// effects. All quiz variants share one scorer; the variants differ only in
// their Rules table.
package scoring

import (
	"time"

	"github.com/tanmayb/wordgym/internal/word"
)

// Event is what happened to the current item.
type Event int

const (
	// EventCorrect is a correct answer (any attempt).
	EventCorrect Event = iota

	// EventIncorrect is a submitted wrong answer that ends the item.
	EventIncorrect

	// EventSkipped is a skip before submission.
	EventSkipped

	// EventRevealed means the answer was shown after the attempt limit
	// was exhausted.
	EventRevealed
)

// Rules is the per-variant scoring table.
type Rules struct {
	// CorrectPoints is awarded on a correct answer.
	CorrectPoints int

	// IncorrectPoints is applied on a wrong submitted answer.
	IncorrectPoints int

	// SkipPoints is applied on a skip.
	SkipPoints int

	// RevealPoints is applied when the answer is revealed after the
	// attempt limit. Zero means no further delta.
	RevealPoints int

	// AccuracyByAttempt maps attempt number (1-based) to the accuracy
	// contribution of a correct answer. Attempts beyond the slice use the
	// last entry.
	AccuracyByAttempt []float64

	// CorrectDifficulty and IncorrectDifficulty are the per-word
	// difficulty deltas persisted through the word repository.
	CorrectDifficulty   int
	IncorrectDifficulty int

	// MaxAttempts is how many tries the learner gets before the answer
	// is revealed. 1 means a single submit ends the item.
	MaxAttempts int

	// FloorAtZero clamps the running session score at zero.
	FloorAtZero bool

	// AutoAdvance, when nonzero, advances to the next item this long
	// after an answer is recorded. Zero means the learner advances
	// explicitly. Advancing mode never changes scoring.
	AutoAdvance time.Duration
}

// Outcome is the pure result of scoring one event.
type Outcome struct {
	// ScoreDelta is added to the running session score (before any floor).
	ScoreDelta int

	// Accuracy is the item's contribution in [0,1] to session accuracy.
	Accuracy float64

	// ResetStreak resets the streak to zero; otherwise the streak
	// increments by one.
	ResetStreak bool

	// DifficultyDelta is the per-word difficulty adjustment.
	DifficultyDelta int

	// NeedsReview marks the word for review (spelling failures).
	NeedsReview bool
}

// RulesFor returns the scoring table for a quiz variant.
func RulesFor(v word.Variant) Rules {
	switch v {
	case word.VariantSpelling:
		return Rules{
			CorrectPoints:     100,
			SkipPoints:        -2,
			RevealPoints:      0,
			AccuracyByAttempt: []float64{1.0, 0.75, 0.5},
			MaxAttempts:       3,
			FloorAtZero:       true,
		}
	default: // word.VariantContextChoice
		return Rules{
			CorrectPoints:       5,
			IncorrectPoints:     -2,
			SkipPoints:          -2,
			AccuracyByAttempt:   []float64{1.0},
			CorrectDifficulty:   5,
			IncorrectDifficulty: -2,
			MaxAttempts:         1,
		}
	}
}

// Score maps an event to its outcome. attempt is the 1-based attempt number
// on which the event occurred; it only affects EventCorrect.
func Score(r Rules, ev Event, attempt int) Outcome {
	switch ev {
	case EventCorrect:
		return Outcome{
			ScoreDelta:      r.CorrectPoints,
			Accuracy:        accuracyForAttempt(r, attempt),
			DifficultyDelta: r.CorrectDifficulty,
		}
	case EventIncorrect:
		return Outcome{
			ScoreDelta:      r.IncorrectPoints,
			ResetStreak:     true,
			DifficultyDelta: r.IncorrectDifficulty,
		}
	case EventSkipped:
		return Outcome{
			ScoreDelta:      r.SkipPoints,
			ResetStreak:     true,
			DifficultyDelta: r.IncorrectDifficulty,
			NeedsReview:     r.MaxAttempts > 1,
		}
	case EventRevealed:
		return Outcome{
			ScoreDelta:  r.RevealPoints,
			ResetStreak: true,
			NeedsReview: true,
		}
	}
	return Outcome{}
}

// Clamp applies the variant's score floor to a running score.
func Clamp(r Rules, score int) int {
	if r.FloorAtZero && score < 0 {
		return 0
	}
	return score
}

func accuracyForAttempt(r Rules, attempt int) float64 {
	if len(r.AccuracyByAttempt) == 0 {
		return 1.0
	}
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(r.AccuracyByAttempt) {
		attempt = len(r.AccuracyByAttempt)
	}
	return r.AccuracyByAttempt[attempt-1]
}
