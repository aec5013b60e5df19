package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-word-question",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"word", "options"},
			"additionalProperties": false,
		},
	}
}

func TestCheckSchema(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"valid", `{"word":"luminous","options":["a","b"]}`, true},
		{"missing required", `{"word":"luminous"}`, false},
		{"wrong type", `{"word":7,"options":[]}`, false},
		{"extra property", `{"word":"w","options":[],"hint":"x"}`, false},
		{"malformed", `{"word":`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkSchema(testSchema(), json.RawMessage(tc.raw))
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestCheckSchemaNilAcceptsAnything(t *testing.T) {
	if err := checkSchema(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should not validate: %v", err)
	}
}
