package app

import (
	"context"

	"github.com/tanmayb/wordgym/internal/session"
	"github.com/tanmayb/wordgym/internal/store"
)

// Recorder bridges the engine's Recorder and AnswerSink interfaces to
// the event store. It lives here rather than in store because store sits
// below the LLM layer, which the engine reaches through its question
// source; a store type mentioning session types would close that loop.
type Recorder struct {
	events store.EventRepo
	words  *store.WordRepo
}

// NewRecorder builds a Recorder over the store's event and word repos.
func NewRecorder(s *store.Store) *Recorder {
	return &Recorder{events: s.EventRepo(), words: s.WordRepo()}
}

var (
	_ session.Recorder   = (*Recorder)(nil)
	_ session.AnswerSink = (*Recorder)(nil)
)

func (r *Recorder) SaveSession(ctx context.Context, rec session.Record) error {
	return r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    rec.SessionID,
		Variant:      string(rec.Variant),
		Score:        rec.Score,
		CorrectCount: rec.CorrectCount,
		TotalPlayed:  rec.TotalPlayed,
		DurationSecs: int(rec.Duration.Seconds()),
		Accuracy:     rec.Accuracy,
		WordIDs:      rec.WordIDs,
		StartedAt:    rec.StartedAt,
	})
}

func (r *Recorder) RecordAnswer(ctx context.Context, a session.Answer) error {
	err := r.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     a.SessionID,
		UserID:        a.UserID,
		WordID:        a.WordID,
		Variant:       string(a.Variant),
		Prompt:        a.Prompt,
		CorrectAnswer: a.CorrectAnswer,
		LearnerAnswer: a.LearnerAnswer,
		Correct:       a.Correct,
		Attempts:      a.Attempts,
		ScoreDelta:    a.ScoreDelta,
		NeedsReview:   a.NeedsReview,
	})
	if err != nil {
		return err
	}

	// The word-level flag tracks the latest result: set on failure,
	// cleared once the word is answered correctly again.
	if a.NeedsReview {
		return r.words.MarkNeedsReview(ctx, a.WordID, true)
	}
	if a.Correct {
		return r.words.MarkNeedsReview(ctx, a.WordID, false)
	}
	return nil
}
