package question

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/tanmayb/wordgym/internal/word"
)

// MinDistractors is the number of wrong definitions a local choice
// question needs. The selector guarantees pools large enough to satisfy
// this, so falling short indicates a programming error upstream.
const MinDistractors = 3

// LocalSource builds questions purely from the word pool: the correct
// definition plus distractor definitions sampled from sibling words.
// Generation is synchronous and never touches the network.
type LocalSource struct {
	pool    []word.Word
	variant word.Variant
}

// NewLocalSource creates a local source over pool. The pool should be the
// full filtered pool, not just the session's selection, so distractors
// stay varied.
func NewLocalSource(pool []word.Word, variant word.Variant) *LocalSource {
	return &LocalSource{pool: pool, variant: variant}
}

// Generate builds a question for w. For the spelling variant the prompt is
// the definition and the learner types the word; for choice variants the
// prompt asks for the matching definition among shuffled options.
func (s *LocalSource) Generate(_ context.Context, w word.Word) (*Question, error) {
	if s.variant == word.VariantSpelling {
		return &Question{
			WordID:  w.ID,
			Subject: w.Text,
			Prompt:  w.Definition,
			Answer:  w.Text,
		}, nil
	}

	distractors, err := s.sampleDistractors(w)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(distractors)+1)
	options = append(options, Option{Text: w.Definition, Correct: true})
	for _, d := range distractors {
		options = append(options, Option{Text: d})
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Question{
		WordID:  w.ID,
		Subject: w.Text,
		Prompt:  fmt.Sprintf("Which definition matches %q?", w.Text),
		Options: options,
		Answer:  w.Definition,
	}, nil
}

// sampleDistractors draws MinDistractors definitions from sibling words,
// never the current word's own definition.
func (s *LocalSource) sampleDistractors(w word.Word) ([]string, error) {
	candidates := make([]string, 0, len(s.pool))
	for _, other := range s.pool {
		if other.ID == w.ID || other.Definition == w.Definition {
			continue
		}
		candidates = append(candidates, other.Definition)
	}

	if len(candidates) < MinDistractors {
		// The selector guarantees pool size; reaching this is a bug.
		return nil, fmt.Errorf("local source: pool has %d candidate definitions, need %d", len(candidates), MinDistractors)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:MinDistractors], nil
}
