package question

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tanmayb/wordgym/internal/llm"
	"github.com/tanmayb/wordgym/internal/word"
)

var testWord = word.Word{
	ID:           "w1",
	Text:         "luminous",
	Definition:   "giving off light",
	Language:     "en",
	PartOfSpeech: "adjective",
}

func goodResponse(subject string) llm.MockResponse {
	payload := map[string]any{
		"word":     subject,
		"sentence": "The ____ glow of the streetlamp cut through the fog.",
		"options": []map[string]any{
			{"text": subject, "correct": true, "explanation": "It means giving off light."},
			{"text": "opaque", "correct": false, "explanation": "Opaque blocks light."},
			{"text": "audible", "correct": false, "explanation": "Audible describes sound."},
			{"text": "brittle", "correct": false, "explanation": "Brittle describes fragility."},
		},
	}
	raw, _ := json.Marshal(payload)
	return llm.MockResponse{Content: raw}
}

func newTestSource(responses ...llm.MockResponse) *AISource {
	return NewAISource(llm.NewMockProvider(responses...), DefaultConfig(), zerolog.Nop())
}

func TestAISource_Generate(t *testing.T) {
	src := newTestSource(goodResponse("luminous"))

	q, err := src.Generate(context.Background(), testWord)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if q.WordID != "w1" {
		t.Errorf("WordID = %q, want w1", q.WordID)
	}
	if q.Answer != "luminous" {
		t.Errorf("Answer = %q, want luminous", q.Answer)
	}
	if q.Mismatched {
		t.Error("Mismatched set for a matching subject")
	}
	if len(q.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(q.Options))
	}
	if idx := q.CorrectIndex(); idx < 0 || q.Options[idx].Text != "luminous" {
		t.Errorf("correct option not locatable by content after shuffle")
	}
}

func TestAISource_SubjectMismatchIsNonFatal(t *testing.T) {
	src := newTestSource(goodResponse("Radiant"))

	q, err := src.Generate(context.Background(), testWord)
	if err != nil {
		t.Fatalf("mismatch must not fail generation: %v", err)
	}
	if !q.Mismatched {
		t.Error("Mismatched not set for a differing subject")
	}
}

func TestAISource_SubjectCaseWhitespaceInsensitive(t *testing.T) {
	src := newTestSource(goodResponse("  Luminous "))

	q, err := src.Generate(context.Background(), testWord)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if q.Mismatched {
		t.Error("case/whitespace variation flagged as mismatch")
	}
}

func TestAISource_ProviderError(t *testing.T) {
	src := newTestSource(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	_, err := src.Generate(context.Background(), testWord)
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestAISource_RejectsBadOptionCounts(t *testing.T) {
	payload := map[string]any{
		"word":     "luminous",
		"sentence": "The ____ glow.",
		"options": []map[string]any{
			{"text": "luminous", "correct": true, "explanation": "yes"},
			{"text": "opaque", "correct": true, "explanation": "no"},
			{"text": "audible", "correct": false, "explanation": "no"},
			{"text": "brittle", "correct": false, "explanation": "no"},
		},
	}
	raw, _ := json.Marshal(payload)
	src := newTestSource(llm.MockResponse{Content: raw})

	if _, err := src.Generate(context.Background(), testWord); err == nil {
		t.Fatal("expected error for two correct options")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Luminous", "luminous"},
		{"  bon  vivant ", "bon vivant"},
		{"WORD", "word"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
