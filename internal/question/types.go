// Package question produces quiz questions for words, either locally from
// the word pool or through the LLM provider.
package question

import (
	"context"
	"strings"

	"github.com/tanmayb/wordgym/internal/word"
)

// Question is one generated quiz question, ready for display.
type Question struct {
	// WordID is the id of the word this question was generated for.
	// It is the cache key in the session prefetch pipeline.
	WordID string

	// Subject is the word the question is about as reported by the
	// source. For AI questions this is the model's own subject and may
	// disagree with the requested word; see Mismatched.
	Subject string

	// Prompt is the question text: a context sentence with the word
	// blanked out (context-choice) or the definition (spelling).
	Prompt string

	// Options holds the answer choices, already shuffled. Empty for
	// spelling questions.
	Options []Option

	// Answer is the canonical correct answer text. For choice questions
	// it matches exactly one option's Text; shuffle-safe lookup is done
	// by content, never by index.
	Answer string

	// Mismatched is set when the source's subject did not match the
	// requested word after normalization. Diagnostic only; the question
	// is still served.
	Mismatched bool
}

// Option is one answer choice.
type Option struct {
	// Text is the display text.
	Text string

	// Correct marks the right answer.
	Correct bool

	// Explanation tells the learner why this option is right or wrong.
	// Present on AI questions, empty on local ones.
	Explanation string
}

// Source generates a question for one word.
type Source interface {
	// Generate produces a question for w. Blocking sources (the AI
	// source) honor ctx cancellation.
	Generate(ctx context.Context, w word.Word) (*Question, error)
}

// Normalize folds case and collapses whitespace for subject comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// CorrectIndex locates the correct option by content equality with the
// question's Answer. Shuffling invalidates index-based lookup, so content
// match is the only safe way. Returns -1 when no option matches, which
// signals a source contract violation.
func (q *Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o.Correct && o.Text == q.Answer {
			return i
		}
	}
	// Fall back to the correctness flag alone.
	for i, o := range q.Options {
		if o.Correct {
			return i
		}
	}
	return -1
}
