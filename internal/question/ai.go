package question

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/tanmayb/wordgym/internal/llm"
	"github.com/tanmayb/wordgym/internal/word"
)

// Config controls the AISource.
type Config struct {
	// MaxTokens is the token budget for one generation.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// OptionCount is the expected number of options per question.
	OptionCount int
}

// DefaultConfig returns recommended AISource settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
		OptionCount: 4,
	}
}

// AISource generates context questions through the LLM provider, one call
// per word.
type AISource struct {
	provider llm.Provider
	config   Config
	log      zerolog.Logger
}

// NewAISource creates an AI-backed source.
func NewAISource(provider llm.Provider, cfg Config, log zerolog.Logger) *AISource {
	return &AISource{provider: provider, config: cfg, log: log}
}

// contextOutput is the raw model response before validation.
type contextOutput struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
	Options  []struct {
		Text        string `json:"text"`
		Correct     bool   `json:"correct"`
		Explanation string `json:"explanation"`
	} `json:"options"`
}

// Generate produces one context question for w. A subject mismatch between
// the requested word and the model's reported word is logged and flagged
// on the question, never fatal: it is a known provider quality issue, not
// a reason to fail the session.
func (s *AISource) Generate(ctx context.Context, w word.Word) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(w)},
		},
		Schema:      ContextQuestionSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate question for %q: %w", w.Text, err)
	}

	var raw contextOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	if err := checkOutput(raw, s.config.OptionCount); err != nil {
		return nil, err
	}

	q := &Question{
		WordID:  w.ID,
		Subject: raw.Word,
		Prompt:  raw.Sentence,
	}

	for _, o := range raw.Options {
		q.Options = append(q.Options, Option{
			Text:        o.Text,
			Correct:     o.Correct,
			Explanation: o.Explanation,
		})
		if o.Correct {
			q.Answer = o.Text
		}
	}

	rand.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})

	if Normalize(raw.Word) != Normalize(w.Text) {
		q.Mismatched = true
		s.log.Warn().
			Str("requested", w.Text).
			Str("generated", raw.Word).
			Str("word_id", w.ID).
			Msg("question subject mismatch")
	}

	return q, nil
}

// checkOutput verifies the structural contract of the model output.
func checkOutput(out contextOutput, optionCount int) error {
	if out.Sentence == "" {
		return fmt.Errorf("question response has empty sentence")
	}
	if len(out.Options) != optionCount {
		return fmt.Errorf("question response has %d options, want %d", len(out.Options), optionCount)
	}
	correct := 0
	for _, o := range out.Options {
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("question response has %d correct options, want 1", correct)
	}
	return nil
}
