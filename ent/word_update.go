// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmayb/wordgym/ent/predicate"
	"github.com/tanmayb/wordgym/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *WordUpdate) SetText(v string) *WordUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *WordUpdate) SetNillableText(v *string) *WordUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *WordUpdate) SetDefinition(v string) *WordUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *WordUpdate) SetNillableDefinition(v *string) *WordUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *WordUpdate) SetLanguage(v string) *WordUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *WordUpdate) SetNillableLanguage(v *string) *WordUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *WordUpdate) SetPartOfSpeech(v string) *WordUpdate {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *WordUpdate) SetNillablePartOfSpeech(v *string) *WordUpdate {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *WordUpdate) SetImageRef(v string) *WordUpdate {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *WordUpdate) SetNillableImageRef(v *string) *WordUpdate {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *WordUpdate) SetDifficulty(v int) *WordUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *WordUpdate) SetNillableDifficulty(v *int) *WordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *WordUpdate) AddDifficulty(v int) *WordUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetShared sets the "shared" field.
func (_u *WordUpdate) SetShared(v bool) *WordUpdate {
	_u.mutation.SetShared(v)
	return _u
}

// SetNillableShared sets the "shared" field if the given value is not nil.
func (_u *WordUpdate) SetNillableShared(v *bool) *WordUpdate {
	if v != nil {
		_u.SetShared(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *WordUpdate) SetOwnerID(v string) *WordUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *WordUpdate) SetNillableOwnerID(v *string) *WordUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *WordUpdate) SetNeedsReview(v bool) *WordUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *WordUpdate) SetNillableNeedsReview(v *bool) *WordUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdate) Mutation() *WordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := word.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Word.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := word.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "Word.definition": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(word.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(word.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(word.FieldPartOfSpeech, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(word.FieldImageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(word.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(word.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Shared(); ok {
		_spec.SetField(word.FieldShared, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(word.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(word.FieldNeedsReview, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetText sets the "text" field.
func (_u *WordUpdateOne) SetText(v string) *WordUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableText(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *WordUpdateOne) SetDefinition(v string) *WordUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableDefinition(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *WordUpdateOne) SetLanguage(v string) *WordUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableLanguage(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *WordUpdateOne) SetPartOfSpeech(v string) *WordUpdateOne {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillablePartOfSpeech(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *WordUpdateOne) SetImageRef(v string) *WordUpdateOne {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableImageRef(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *WordUpdateOne) SetDifficulty(v int) *WordUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableDifficulty(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *WordUpdateOne) AddDifficulty(v int) *WordUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetShared sets the "shared" field.
func (_u *WordUpdateOne) SetShared(v bool) *WordUpdateOne {
	_u.mutation.SetShared(v)
	return _u
}

// SetNillableShared sets the "shared" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableShared(v *bool) *WordUpdateOne {
	if v != nil {
		_u.SetShared(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *WordUpdateOne) SetOwnerID(v string) *WordUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableOwnerID(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *WordUpdateOne) SetNeedsReview(v bool) *WordUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableNeedsReview(v *bool) *WordUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdateOne) Mutation() *WordMutation {
	return _u.mutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Word entity.
func (_u *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := word.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Word.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := word.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "Word.definition": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(word.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(word.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(word.FieldPartOfSpeech, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(word.FieldImageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(word.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(word.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Shared(); ok {
		_spec.SetField(word.FieldShared, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(word.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(word.FieldNeedsReview, field.TypeBool, value)
	}
	_node = &Word{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
