// Package app wires the store, question source, and engine into a running
// terminal session.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/tanmayb/wordgym/internal/llm"
	"github.com/tanmayb/wordgym/internal/question"
	"github.com/tanmayb/wordgym/internal/session"
	"github.com/tanmayb/wordgym/internal/store"
	"github.com/tanmayb/wordgym/internal/tui"
	"github.com/tanmayb/wordgym/internal/word"
)

// Options carries everything a practice session needs.
type Options struct {
	// Preset is the session configuration from CLI flags.
	Preset word.Preset

	// Words is the word repository.
	Words *store.WordRepo

	// Recorder persists session results and answers.
	Recorder *Recorder

	// Provider is the LLM provider. Nil falls back to local questions.
	Provider llm.Provider

	// UserID attributes difficulty changes on shared words.
	UserID string

	// Language narrows the word pool when non-empty.
	Language string

	Log zerolog.Logger
}

// Run starts one practice session and blocks until it ends.
func Run(opts Options) error {
	ctx := context.Background()

	pool, err := opts.Words.All(ctx, word.Filter{
		Language:      opts.Language,
		IncludeShared: true,
	})
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}

	src := buildSource(opts, pool)

	sessOpts := session.Options{
		Preset: opts.Preset,
		Pool:   pool,
		Source: src,
		Words:  opts.Words,
		UserID: opts.UserID,
		Log:    &opts.Log,
	}
	// Assign only when present so a nil pointer never hides behind the
	// interface.
	if opts.Recorder != nil {
		sessOpts.Recorder = opts.Recorder
		sessOpts.Answers = opts.Recorder
	}

	engine := session.New(sessOpts)
	if err := engine.Start(); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	p := tea.NewProgram(tui.NewModel(engine, opts.Preset.Variant))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// buildSource picks the question source for the preset. AI mode needs a
// provider and only exists for the context-choice variant; everything
// else is answered from the pool.
func buildSource(opts Options, pool []word.Word) question.Source {
	if opts.Preset.Source == word.SourceAI &&
		opts.Preset.Variant == word.VariantContextChoice &&
		opts.Provider != nil {
		return question.NewAISource(opts.Provider, question.DefaultConfig(), opts.Log)
	}
	return question.NewLocalSource(pool, opts.Preset.Variant)
}
