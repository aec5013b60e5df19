// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tanmayb/wordgym/ent/answerevent"
	"github.com/tanmayb/wordgym/ent/llmrequestevent"
	"github.com/tanmayb/wordgym/ent/schema"
	"github.com/tanmayb/wordgym/ent/sessionevent"
	"github.com/tanmayb/wordgym/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescWordID is the schema descriptor for word_id field.
	answereventDescWordID := answereventFields[1].Descriptor()
	// answerevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	answerevent.WordIDValidator = answereventDescWordID.Validators[0].(func(string) error)
	// answereventDescVariant is the schema descriptor for variant field.
	answereventDescVariant := answereventFields[2].Descriptor()
	// answerevent.VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	answerevent.VariantValidator = answereventDescVariant.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.DefaultPrompt holds the default value on creation for the prompt field.
	answerevent.DefaultPrompt = answereventDescPrompt.Default.(string)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	answerevent.DefaultCorrectAnswer = answereventDescCorrectAnswer.Default.(string)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescAttempts is the schema descriptor for attempts field.
	answereventDescAttempts := answereventFields[7].Descriptor()
	// answerevent.DefaultAttempts holds the default value on creation for the attempts field.
	answerevent.DefaultAttempts = answereventDescAttempts.Default.(int)
	// answereventDescScoreDelta is the schema descriptor for score_delta field.
	answereventDescScoreDelta := answereventFields[8].Descriptor()
	// answerevent.DefaultScoreDelta holds the default value on creation for the score_delta field.
	answerevent.DefaultScoreDelta = answereventDescScoreDelta.Default.(int)
	// answereventDescNeedsReview is the schema descriptor for needs_review field.
	answereventDescNeedsReview := answereventFields[9].Descriptor()
	// answerevent.DefaultNeedsReview holds the default value on creation for the needs_review field.
	answerevent.DefaultNeedsReview = answereventDescNeedsReview.Default.(bool)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[10].Descriptor()
	// answerevent.DefaultUserID holds the default value on creation for the user_id field.
	answerevent.DefaultUserID = answereventDescUserID.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescVariant is the schema descriptor for variant field.
	sessioneventDescVariant := sessioneventFields[1].Descriptor()
	// sessionevent.VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	sessionevent.VariantValidator = sessioneventDescVariant.Validators[0].(func(string) error)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescCorrectCount is the schema descriptor for correct_count field.
	sessioneventDescCorrectCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	sessionevent.DefaultCorrectCount = sessioneventDescCorrectCount.Default.(int)
	// sessioneventDescTotalPlayed is the schema descriptor for total_played field.
	sessioneventDescTotalPlayed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotalPlayed holds the default value on creation for the total_played field.
	sessionevent.DefaultTotalPlayed = sessioneventDescTotalPlayed.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescAccuracy is the schema descriptor for accuracy field.
	sessioneventDescAccuracy := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	sessionevent.DefaultAccuracy = sessioneventDescAccuracy.Default.(float64)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescText is the schema descriptor for text field.
	wordDescText := wordFields[1].Descriptor()
	// word.TextValidator is a validator for the "text" field. It is called by the builders before save.
	word.TextValidator = wordDescText.Validators[0].(func(string) error)
	// wordDescDefinition is the schema descriptor for definition field.
	wordDescDefinition := wordFields[2].Descriptor()
	// word.DefinitionValidator is a validator for the "definition" field. It is called by the builders before save.
	word.DefinitionValidator = wordDescDefinition.Validators[0].(func(string) error)
	// wordDescLanguage is the schema descriptor for language field.
	wordDescLanguage := wordFields[3].Descriptor()
	// word.DefaultLanguage holds the default value on creation for the language field.
	word.DefaultLanguage = wordDescLanguage.Default.(string)
	// wordDescPartOfSpeech is the schema descriptor for part_of_speech field.
	wordDescPartOfSpeech := wordFields[4].Descriptor()
	// word.DefaultPartOfSpeech holds the default value on creation for the part_of_speech field.
	word.DefaultPartOfSpeech = wordDescPartOfSpeech.Default.(string)
	// wordDescImageRef is the schema descriptor for image_ref field.
	wordDescImageRef := wordFields[5].Descriptor()
	// word.DefaultImageRef holds the default value on creation for the image_ref field.
	word.DefaultImageRef = wordDescImageRef.Default.(string)
	// wordDescDifficulty is the schema descriptor for difficulty field.
	wordDescDifficulty := wordFields[6].Descriptor()
	// word.DefaultDifficulty holds the default value on creation for the difficulty field.
	word.DefaultDifficulty = wordDescDifficulty.Default.(int)
	// wordDescShared is the schema descriptor for shared field.
	wordDescShared := wordFields[7].Descriptor()
	// word.DefaultShared holds the default value on creation for the shared field.
	word.DefaultShared = wordDescShared.Default.(bool)
	// wordDescOwnerID is the schema descriptor for owner_id field.
	wordDescOwnerID := wordFields[8].Descriptor()
	// word.DefaultOwnerID holds the default value on creation for the owner_id field.
	word.DefaultOwnerID = wordDescOwnerID.Default.(string)
	// wordDescNeedsReview is the schema descriptor for needs_review field.
	wordDescNeedsReview := wordFields[9].Descriptor()
	// word.DefaultNeedsReview holds the default value on creation for the needs_review field.
	word.DefaultNeedsReview = wordDescNeedsReview.Default.(bool)
	// wordDescCreatedAt is the schema descriptor for created_at field.
	wordDescCreatedAt := wordFields[10].Descriptor()
	// word.DefaultCreatedAt holds the default value on creation for the created_at field.
	word.DefaultCreatedAt = wordDescCreatedAt.Default.(func() time.Time)
	// wordDescID is the schema descriptor for id field.
	wordDescID := wordFields[0].Descriptor()
	// word.DefaultID holds the default value on creation for the id field.
	word.DefaultID = wordDescID.Default.(func() string)
	// word.IDValidator is a validator for the "id" field. It is called by the builders before save.
	word.IDValidator = wordDescID.Validators[0].(func(string) error)
}
