package store

import (
	"context"
	"fmt"

	"github.com/tanmayb/wordgym/ent"
	entword "github.com/tanmayb/wordgym/ent/word"
	"github.com/tanmayb/wordgym/internal/word"
)

// WordRepo provides word storage backed by ent. It satisfies word.Repo
// for the engine and adds the create/list operations the CLI needs.
type WordRepo struct {
	client *ent.Client
}

// All returns every word matching the filter.
func (r *WordRepo) All(ctx context.Context, f word.Filter) ([]word.Word, error) {
	q := r.client.Word.Query()
	if f.Language != "" {
		q = q.Where(entword.Language(f.Language))
	}
	if !f.IncludeShared {
		q = q.Where(entword.Shared(false))
	}

	rows, err := q.Order(ent.Asc(entword.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}

	out := make([]word.Word, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEnt(row))
	}
	return out, nil
}

// AdjustDifficulty applies a difficulty delta to one word. The score is
// shared state; attribution lives on the answer event that triggered
// the change.
func (r *WordRepo) AdjustDifficulty(ctx context.Context, id string, delta int) error {
	err := r.client.Word.UpdateOneID(id).
		AddDifficulty(delta).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("adjust difficulty: %w", err)
	}
	return nil
}

// Add stores a new word and returns it with its generated id.
func (r *WordRepo) Add(ctx context.Context, w word.Word) (word.Word, error) {
	builder := r.client.Word.Create().
		SetText(w.Text).
		SetDefinition(w.Definition).
		SetPartOfSpeech(w.PartOfSpeech).
		SetImageRef(w.ImageRef).
		SetDifficulty(w.Difficulty).
		SetShared(w.Shared).
		SetOwnerID(w.OwnerID)
	if w.Language != "" {
		builder = builder.SetLanguage(w.Language)
	}
	if w.ID != "" {
		builder = builder.SetID(w.ID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return word.Word{}, fmt.Errorf("add word: %w", err)
	}
	return fromEnt(row), nil
}

// MarkNeedsReview sets or clears the review flag on one word.
func (r *WordRepo) MarkNeedsReview(ctx context.Context, id string, needs bool) error {
	err := r.client.Word.UpdateOneID(id).
		SetNeedsReview(needs).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark needs review: %w", err)
	}
	return nil
}

// NeedsReview returns every word currently flagged for review.
func (r *WordRepo) NeedsReview(ctx context.Context) ([]word.Word, error) {
	rows, err := r.client.Word.Query().
		Where(entword.NeedsReview(true)).
		Order(ent.Asc(entword.FieldText)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review words: %w", err)
	}

	out := make([]word.Word, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEnt(row))
	}
	return out, nil
}

// Count returns the number of stored words.
func (r *WordRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Word.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

func fromEnt(row *ent.Word) word.Word {
	return word.Word{
		ID:           row.ID,
		Text:         row.Text,
		Definition:   row.Definition,
		Language:     row.Language,
		PartOfSpeech: row.PartOfSpeech,
		ImageRef:     row.ImageRef,
		Difficulty:   row.Difficulty,
		Shared:       row.Shared,
		OwnerID:      row.OwnerID,
	}
}
