package question

import "github.com/tanmayb/wordgym/internal/llm"

// ContextQuestionSchema defines the JSON schema for AI-generated context
// questions.
var ContextQuestionSchema = &llm.Schema{
	Name:        "context-question",
	Description: "A fill-in-the-blank vocabulary question with explained options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{
				"type":        "string",
				"description": "The vocabulary word this question is about, exactly as given",
			},
			"sentence": map[string]any{
				"type":        "string",
				"description": "A natural context sentence using the word, with the word replaced by ____",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The candidate word",
						},
						"correct": map[string]any{
							"type":        "boolean",
							"description": "True for exactly one option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One sentence on why this option does or does not fit",
						},
					},
					"required":             []any{"text", "correct", "explanation"},
					"additionalProperties": false,
				},
				"description": "Exactly 4 options, one correct",
			},
		},
		"required":             []any{"word", "sentence", "options"},
		"additionalProperties": false,
	},
}
