// Code generated by ent, DO NOT EDIT.

package word

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tanmayb/wordgym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldID, id))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldText, v))
}

// Definition applies equality check predicate on the "definition" field. It's identical to DefinitionEQ.
func Definition(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldDefinition, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLanguage, v))
}

// PartOfSpeech applies equality check predicate on the "part_of_speech" field. It's identical to PartOfSpeechEQ.
func PartOfSpeech(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPartOfSpeech, v))
}

// ImageRef applies equality check predicate on the "image_ref" field. It's identical to ImageRefEQ.
func ImageRef(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldImageRef, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldDifficulty, v))
}

// Shared applies equality check predicate on the "shared" field. It's identical to SharedEQ.
func Shared(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldShared, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOwnerID, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldCreatedAt, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldText, v))
}

// DefinitionEQ applies the EQ predicate on the "definition" field.
func DefinitionEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldDefinition, v))
}

// DefinitionNEQ applies the NEQ predicate on the "definition" field.
func DefinitionNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldDefinition, v))
}

// DefinitionIn applies the In predicate on the "definition" field.
func DefinitionIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldDefinition, vs...))
}

// DefinitionNotIn applies the NotIn predicate on the "definition" field.
func DefinitionNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldDefinition, vs...))
}

// DefinitionGT applies the GT predicate on the "definition" field.
func DefinitionGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldDefinition, v))
}

// DefinitionGTE applies the GTE predicate on the "definition" field.
func DefinitionGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldDefinition, v))
}

// DefinitionLT applies the LT predicate on the "definition" field.
func DefinitionLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldDefinition, v))
}

// DefinitionLTE applies the LTE predicate on the "definition" field.
func DefinitionLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldDefinition, v))
}

// DefinitionContains applies the Contains predicate on the "definition" field.
func DefinitionContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldDefinition, v))
}

// DefinitionHasPrefix applies the HasPrefix predicate on the "definition" field.
func DefinitionHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldDefinition, v))
}

// DefinitionHasSuffix applies the HasSuffix predicate on the "definition" field.
func DefinitionHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldDefinition, v))
}

// DefinitionEqualFold applies the EqualFold predicate on the "definition" field.
func DefinitionEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldDefinition, v))
}

// DefinitionContainsFold applies the ContainsFold predicate on the "definition" field.
func DefinitionContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldDefinition, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldLanguage, v))
}

// PartOfSpeechEQ applies the EQ predicate on the "part_of_speech" field.
func PartOfSpeechEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechNEQ applies the NEQ predicate on the "part_of_speech" field.
func PartOfSpeechNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechIn applies the In predicate on the "part_of_speech" field.
func PartOfSpeechIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechNotIn applies the NotIn predicate on the "part_of_speech" field.
func PartOfSpeechNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechGT applies the GT predicate on the "part_of_speech" field.
func PartOfSpeechGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldPartOfSpeech, v))
}

// PartOfSpeechGTE applies the GTE predicate on the "part_of_speech" field.
func PartOfSpeechGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldPartOfSpeech, v))
}

// PartOfSpeechLT applies the LT predicate on the "part_of_speech" field.
func PartOfSpeechLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldPartOfSpeech, v))
}

// PartOfSpeechLTE applies the LTE predicate on the "part_of_speech" field.
func PartOfSpeechLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldPartOfSpeech, v))
}

// PartOfSpeechContains applies the Contains predicate on the "part_of_speech" field.
func PartOfSpeechContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldPartOfSpeech, v))
}

// PartOfSpeechHasPrefix applies the HasPrefix predicate on the "part_of_speech" field.
func PartOfSpeechHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldPartOfSpeech, v))
}

// PartOfSpeechHasSuffix applies the HasSuffix predicate on the "part_of_speech" field.
func PartOfSpeechHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldPartOfSpeech, v))
}

// PartOfSpeechEqualFold applies the EqualFold predicate on the "part_of_speech" field.
func PartOfSpeechEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldPartOfSpeech, v))
}

// PartOfSpeechContainsFold applies the ContainsFold predicate on the "part_of_speech" field.
func PartOfSpeechContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldPartOfSpeech, v))
}

// ImageRefEQ applies the EQ predicate on the "image_ref" field.
func ImageRefEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldImageRef, v))
}

// ImageRefNEQ applies the NEQ predicate on the "image_ref" field.
func ImageRefNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldImageRef, v))
}

// ImageRefIn applies the In predicate on the "image_ref" field.
func ImageRefIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldImageRef, vs...))
}

// ImageRefNotIn applies the NotIn predicate on the "image_ref" field.
func ImageRefNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldImageRef, vs...))
}

// ImageRefGT applies the GT predicate on the "image_ref" field.
func ImageRefGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldImageRef, v))
}

// ImageRefGTE applies the GTE predicate on the "image_ref" field.
func ImageRefGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldImageRef, v))
}

// ImageRefLT applies the LT predicate on the "image_ref" field.
func ImageRefLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldImageRef, v))
}

// ImageRefLTE applies the LTE predicate on the "image_ref" field.
func ImageRefLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldImageRef, v))
}

// ImageRefContains applies the Contains predicate on the "image_ref" field.
func ImageRefContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldImageRef, v))
}

// ImageRefHasPrefix applies the HasPrefix predicate on the "image_ref" field.
func ImageRefHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldImageRef, v))
}

// ImageRefHasSuffix applies the HasSuffix predicate on the "image_ref" field.
func ImageRefHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldImageRef, v))
}

// ImageRefEqualFold applies the EqualFold predicate on the "image_ref" field.
func ImageRefEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldImageRef, v))
}

// ImageRefContainsFold applies the ContainsFold predicate on the "image_ref" field.
func ImageRefContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldImageRef, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldDifficulty, v))
}

// SharedEQ applies the EQ predicate on the "shared" field.
func SharedEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldShared, v))
}

// SharedNEQ applies the NEQ predicate on the "shared" field.
func SharedNEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldShared, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldOwnerID, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
