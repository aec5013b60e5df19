package store

import (
	"context"
	"testing"

	"github.com/tanmayb/wordgym/internal/word"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWordRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	added, err := repo.Add(ctx, word.Word{
		Text:       "luminous",
		Definition: "giving off light",
		Language:   "en",
		Difficulty: -3,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("no id generated for new word")
	}

	if _, err := repo.Add(ctx, word.Word{Text: "opaque", Definition: "not transparent", Language: "en", Shared: true}); err != nil {
		t.Fatalf("add shared: %v", err)
	}

	private, err := repo.All(ctx, word.Filter{Language: "en"})
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(private) != 1 {
		t.Fatalf("private words = %d, want 1", len(private))
	}

	all, err := repo.All(ctx, word.Filter{Language: "en", IncludeShared: true})
	if err != nil {
		t.Fatalf("all with shared: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all words = %d, want 2", len(all))
	}
}

func TestAdjustDifficulty(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	w, err := repo.Add(ctx, word.Word{Text: "ephemeral", Definition: "short-lived", Difficulty: 2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.AdjustDifficulty(ctx, w.ID, -5); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	words, err := repo.All(ctx, word.Filter{IncludeShared: true})
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if got := words[0].Difficulty; got != -3 {
		t.Errorf("difficulty = %d, want -3", got)
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"old", "mid", "new"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id,
			Variant:   "spelling",
			Score:     i,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	sessions, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}
	if sessions[0].SessionID != "new" || sessions[1].SessionID != "mid" {
		t.Errorf("order = %s, %s; want new, mid", sessions[0].SessionID, sessions[1].SessionID)
	}
}

func TestAnswerEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s-1", UserID: "u1", WordID: "w1", Variant: "spelling", Correct: false, Attempts: 3},
		{SessionID: "s-1", UserID: "u1", WordID: "w1", Variant: "spelling", Correct: true, Attempts: 1},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, err := repo.WordAccuracy(ctx, "w1")
	if err != nil {
		t.Fatalf("word accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}

	rows, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for _, row := range rows {
		if row.UserID != "u1" {
			t.Errorf("stored user = %q, want u1", row.UserID)
		}
	}
}

func TestLLMEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "m2", Purpose: "definition", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	if got[0].Purpose != "definition" {
		t.Errorf("newest event purpose = %q, want definition", got[0].Purpose)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(usage))
	}
	qg := usage[1] // sorted by key: definition, question-gen
	if qg.Key != "question-gen" || qg.Requests != 2 || qg.Failures != 1 {
		t.Errorf("question-gen usage = %+v", qg)
	}
	if qg.InputTokens != 220 || qg.OutputTokens != 110 {
		t.Errorf("question-gen tokens = %d/%d, want 220/110", qg.InputTokens, qg.OutputTokens)
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "p", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Variant: "spelling"}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	llm, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	sessions, err := repo.RecentSessions(ctx, 0)
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(llm) != 1 || len(sessions) != 1 {
		t.Fatalf("unexpected counts: llm=%d sessions=%d", len(llm), len(sessions))
	}
	if sessions[0].Sequence <= llm[0].Sequence {
		t.Errorf("session sequence %d not after llm sequence %d", sessions[0].Sequence, llm[0].Sequence)
	}
}
