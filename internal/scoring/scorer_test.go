package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanmayb/wordgym/internal/word"
)

func TestScore_ContextChoice(t *testing.T) {
	r := RulesFor(word.VariantContextChoice)

	tests := []struct {
		name    string
		event   Event
		attempt int
		want    Outcome
	}{
		{
			name:    "correct first attempt",
			event:   EventCorrect,
			attempt: 1,
			want:    Outcome{ScoreDelta: 5, Accuracy: 1.0, DifficultyDelta: 5},
		},
		{
			name:    "incorrect",
			event:   EventIncorrect,
			attempt: 1,
			want:    Outcome{ScoreDelta: -2, ResetStreak: true, DifficultyDelta: -2},
		},
		{
			name:    "skipped",
			event:   EventSkipped,
			attempt: 1,
			want:    Outcome{ScoreDelta: -2, ResetStreak: true, DifficultyDelta: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(r, tt.event, tt.attempt))
		})
	}
}

func TestScore_Spelling(t *testing.T) {
	r := RulesFor(word.VariantSpelling)

	tests := []struct {
		name    string
		event   Event
		attempt int
		want    Outcome
	}{
		{
			name:    "correct attempt 1",
			event:   EventCorrect,
			attempt: 1,
			want:    Outcome{ScoreDelta: 100, Accuracy: 1.0},
		},
		{
			name:    "correct attempt 2",
			event:   EventCorrect,
			attempt: 2,
			want:    Outcome{ScoreDelta: 100, Accuracy: 0.75},
		},
		{
			name:    "correct attempt 3",
			event:   EventCorrect,
			attempt: 3,
			want:    Outcome{ScoreDelta: 100, Accuracy: 0.5},
		},
		{
			name:    "correct attempt 5 uses last accuracy tier",
			event:   EventCorrect,
			attempt: 5,
			want:    Outcome{ScoreDelta: 100, Accuracy: 0.5},
		},
		{
			name:    "revealed after attempts exhausted",
			event:   EventRevealed,
			attempt: 3,
			want:    Outcome{ResetStreak: true, NeedsReview: true},
		},
		{
			name:    "skipped",
			event:   EventSkipped,
			attempt: 1,
			want:    Outcome{ScoreDelta: -2, ResetStreak: true, NeedsReview: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(r, tt.event, tt.attempt))
		})
	}
}

func TestClamp(t *testing.T) {
	spelling := RulesFor(word.VariantSpelling)
	choice := RulesFor(word.VariantContextChoice)

	assert.Equal(t, 0, Clamp(spelling, -2), "spelling floors at zero")
	assert.Equal(t, 7, Clamp(spelling, 7))
	assert.Equal(t, -4, Clamp(choice, -4), "context-choice allows negative score")
}

func TestRulesFor_Variants(t *testing.T) {
	assert.Equal(t, 3, RulesFor(word.VariantSpelling).MaxAttempts)
	assert.Equal(t, 1, RulesFor(word.VariantContextChoice).MaxAttempts)
}
