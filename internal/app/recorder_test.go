package app

import (
	"context"
	"testing"
	"time"

	"github.com/tanmayb/wordgym/internal/session"
	"github.com/tanmayb/wordgym/internal/store"
	"github.com/tanmayb/wordgym/internal/word"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecorderSavesSession(t *testing.T) {
	s := openTestStore(t)
	rec := NewRecorder(s)
	ctx := context.Background()

	started := time.Now().Add(-time.Minute)
	err := rec.SaveSession(ctx, session.Record{
		SessionID:    "s-1",
		Variant:      word.VariantContextChoice,
		Score:        13,
		CorrectCount: 3,
		TotalPlayed:  4,
		StartedAt:    started,
		Duration:     time.Minute,
		Accuracy:     0.75,
		WordIDs:      []string{"a", "b", "c", "d"},
	})
	if err != nil {
		t.Fatalf("save session: %v", err)
	}

	sessions, err := s.EventRepo().RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	got := sessions[0]
	if got.SessionID != "s-1" || got.Score != 13 || got.TotalPlayed != 4 {
		t.Errorf("stored session = %+v", got)
	}
	if got.DurationSecs != 60 {
		t.Errorf("durationSecs = %d, want 60", got.DurationSecs)
	}
	if got.Accuracy != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got.Accuracy)
	}
	// The event timestamp is the session start, not the write time.
	if got.Timestamp.Unix() != started.Unix() {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, started)
	}
}

func TestRecorderAnswersDriveWordAccuracyAndReviewFlag(t *testing.T) {
	s := openTestStore(t)
	rec := NewRecorder(s)
	ctx := context.Background()

	w, err := s.WordRepo().Add(ctx, word.Word{Text: "ubiquitous", Definition: "found everywhere"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// A failure flags the word; a later success clears it.
	err = rec.RecordAnswer(ctx, session.Answer{
		SessionID: "s-1", WordID: w.ID, Variant: word.VariantSpelling,
		Correct: false, Attempts: 3, NeedsReview: true,
	})
	if err != nil {
		t.Fatalf("record failure: %v", err)
	}

	review, err := s.WordRepo().NeedsReview(ctx)
	if err != nil {
		t.Fatalf("needs review: %v", err)
	}
	if len(review) != 1 || review[0].ID != w.ID {
		t.Fatalf("review list = %+v, want the failed word", review)
	}

	err = rec.RecordAnswer(ctx, session.Answer{
		SessionID: "s-2", WordID: w.ID, Variant: word.VariantSpelling,
		Correct: true, Attempts: 1,
	})
	if err != nil {
		t.Fatalf("record success: %v", err)
	}

	review, err = s.WordRepo().NeedsReview(ctx)
	if err != nil {
		t.Fatalf("needs review: %v", err)
	}
	if len(review) != 0 {
		t.Errorf("review list not cleared: %+v", review)
	}

	acc, err := s.EventRepo().WordAccuracy(ctx, w.ID)
	if err != nil {
		t.Fatalf("word accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}
}

func TestRecorderPersistsUserAttribution(t *testing.T) {
	s := openTestStore(t)
	rec := NewRecorder(s)
	ctx := context.Background()

	w, err := s.WordRepo().Add(ctx, word.Word{Text: "gregarious", Definition: "sociable", Shared: true})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	err = rec.RecordAnswer(ctx, session.Answer{
		SessionID: "s-1", UserID: "u7", WordID: w.ID,
		Variant: word.VariantContextChoice, Correct: true, Attempts: 1, ScoreDelta: 5,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	rows, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answer events: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("answer events = %d, want 1", len(rows))
	}
	if rows[0].UserID != "u7" {
		t.Errorf("stored user = %q, want u7", rows[0].UserID)
	}
}
