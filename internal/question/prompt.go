package question

import (
	"fmt"
	"strings"

	"github.com/tanmayb/wordgym/internal/word"
)

const systemPrompt = `You are a vocabulary coach writing practice questions for language learners.

Rules:
- Write one natural, self-contained context sentence that uses the given word, then replace the word with ____.
- The sentence must make the correct word clearly inferable from context, without quoting its definition.
- Provide exactly 4 options: the given word plus 3 distractors of the same part of speech and similar register.
- Distractors must be plausible but wrong in this sentence. Avoid synonyms so close that both fit.
- Mark exactly one option correct: the given word itself.
- Each option gets a one-sentence explanation of why it does or does not fit.
- Match the language of the word. Plain text only, no markup.`

// buildUserMessage constructs the generation prompt for one word.
func buildUserMessage(w word.Word) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", w.Text)
	if w.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", w.Language)
	}
	if w.PartOfSpeech != "" {
		fmt.Fprintf(&b, "Part of speech: %s\n", w.PartOfSpeech)
	}
	if w.Definition != "" {
		fmt.Fprintf(&b, "Definition (for your reference, do not quote it): %s\n", w.Definition)
	}

	return b.String()
}
