package word

import "context"

// HardThreshold is the difficulty score at or below which a word counts as
// "hard" for the hard-only preset filter. Difficulty moves up on correct
// answers and down on wrong ones, so low scores mark words needing work.
const HardThreshold = 0

// Word is a single practice unit. The ID is stable for the word's lifetime
// and doubles as the prefetch cache key during a session.
type Word struct {
	// ID is the stable identifier, unique across private and shared words.
	ID string

	// Text is the word or phrase itself.
	Text string

	// Definition is the learner-facing meaning, used as the correct option
	// in choice quizzes and as the prompt in spelling quizzes.
	Definition string

	// Language is a BCP-47-ish language tag, e.g. "en", "de".
	Language string

	// PartOfSpeech is the grammatical category, e.g. "noun", "verb".
	// May be empty for phrases.
	PartOfSpeech string

	// ImageRef is an optional reference to an illustration. Never fetched
	// by the engine; carried for the UI layer.
	ImageRef string

	// Difficulty is the running difficulty score. Positive means the
	// learner handles the word well.
	Difficulty int

	// Shared marks words from a shared/collaborative list. Difficulty
	// updates on shared words are attributed to the acting user.
	Shared bool

	// OwnerID identifies the owner of a shared word. Empty for private words.
	OwnerID string
}

// Variant selects the quiz type for a session.
type Variant string

const (
	// VariantContextChoice shows an AI-generated context sentence with
	// four explained options.
	VariantContextChoice Variant = "context_choice"

	// VariantSpelling prompts with the definition and the learner types
	// the word.
	VariantSpelling Variant = "spelling"
)

// SourceMode selects how questions are produced.
type SourceMode string

const (
	// SourceLocal derives questions purely from the word pool.
	SourceLocal SourceMode = "local"

	// SourceAI generates questions through the LLM provider.
	SourceAI SourceMode = "ai"
)

// Preset is the immutable session configuration, created once at session
// start and never mutated.
type Preset struct {
	// Count is the target number of words for the session.
	Count int

	// HardOnly restricts selection to words at or below HardThreshold.
	HardOnly bool

	// Variant is the quiz type.
	Variant Variant

	// Source is the question source mode.
	Source SourceMode
}

// Filter narrows repository queries.
type Filter struct {
	// Language restricts to one language when non-empty.
	Language string

	// IncludeShared includes words from shared lists.
	IncludeShared bool
}

// Repo is the read/adjust interface the engine needs from word storage.
// The engine never creates or deletes words.
type Repo interface {
	// All returns every word matching the filter.
	All(ctx context.Context, f Filter) ([]Word, error)

	// AdjustDifficulty applies a difficulty delta to one word. The change
	// is attributed through the answer event that caused it.
	AdjustDifficulty(ctx context.Context, id string, delta int) error
}
