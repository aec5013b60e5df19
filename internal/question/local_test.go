package question

import (
	"context"
	"fmt"
	"testing"

	"github.com/tanmayb/wordgym/internal/word"
)

func localPool(n int) []word.Word {
	pool := make([]word.Word, n)
	for i := range pool {
		pool[i] = word.Word{
			ID:         fmt.Sprintf("w%d", i),
			Text:       fmt.Sprintf("word%d", i),
			Definition: fmt.Sprintf("definition %d", i),
		}
	}
	return pool
}

func TestLocalSource_ChoiceQuestion(t *testing.T) {
	pool := localPool(10)
	src := NewLocalSource(pool, word.VariantContextChoice)

	q, err := src.Generate(context.Background(), pool[0])
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if q.WordID != "w0" {
		t.Errorf("WordID = %q, want w0", q.WordID)
	}
	if len(q.Options) != MinDistractors+1 {
		t.Fatalf("got %d options, want %d", len(q.Options), MinDistractors+1)
	}

	correct := 0
	for _, o := range q.Options {
		if o.Correct {
			correct++
			if o.Text != pool[0].Definition {
				t.Errorf("correct option text = %q, want the word's definition", o.Text)
			}
		} else if o.Text == pool[0].Definition {
			t.Error("the word's own definition appeared as a distractor")
		}
	}
	if correct != 1 {
		t.Errorf("got %d correct options, want 1", correct)
	}
}

func TestLocalSource_CorrectSurvivesShuffle(t *testing.T) {
	pool := localPool(10)
	src := NewLocalSource(pool, word.VariantContextChoice)

	// The correct option must be identifiable by content after shuffling,
	// regardless of where it landed.
	for range 20 {
		q, err := src.Generate(context.Background(), pool[3])
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		idx := q.CorrectIndex()
		if idx < 0 {
			t.Fatal("CorrectIndex returned -1")
		}
		if q.Options[idx].Text != q.Answer {
			t.Fatalf("option at correct index %d = %q, want %q", idx, q.Options[idx].Text, q.Answer)
		}
	}
}

func TestLocalSource_PoolTooSmall(t *testing.T) {
	pool := localPool(3) // only 2 sibling definitions
	src := NewLocalSource(pool, word.VariantContextChoice)

	if _, err := src.Generate(context.Background(), pool[0]); err == nil {
		t.Fatal("expected error for undersized pool")
	}
}

func TestLocalSource_Spelling(t *testing.T) {
	pool := localPool(5)
	src := NewLocalSource(pool, word.VariantSpelling)

	q, err := src.Generate(context.Background(), pool[2])
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if q.Prompt != pool[2].Definition {
		t.Errorf("Prompt = %q, want the definition", q.Prompt)
	}
	if q.Answer != pool[2].Text {
		t.Errorf("Answer = %q, want the word text", q.Answer)
	}
	if len(q.Options) != 0 {
		t.Errorf("spelling question has %d options, want 0", len(q.Options))
	}
}
