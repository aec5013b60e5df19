// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmayb/wordgym/ent/word"
)

// WordCreate is the builder for creating a Word entity.
type WordCreate struct {
	config
	mutation *WordMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *WordCreate) SetText(v string) *WordCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *WordCreate) SetDefinition(v string) *WordCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *WordCreate) SetLanguage(v string) *WordCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *WordCreate) SetNillableLanguage(v *string) *WordCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_c *WordCreate) SetPartOfSpeech(v string) *WordCreate {
	_c.mutation.SetPartOfSpeech(v)
	return _c
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_c *WordCreate) SetNillablePartOfSpeech(v *string) *WordCreate {
	if v != nil {
		_c.SetPartOfSpeech(*v)
	}
	return _c
}

// SetImageRef sets the "image_ref" field.
func (_c *WordCreate) SetImageRef(v string) *WordCreate {
	_c.mutation.SetImageRef(v)
	return _c
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_c *WordCreate) SetNillableImageRef(v *string) *WordCreate {
	if v != nil {
		_c.SetImageRef(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *WordCreate) SetDifficulty(v int) *WordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *WordCreate) SetNillableDifficulty(v *int) *WordCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetShared sets the "shared" field.
func (_c *WordCreate) SetShared(v bool) *WordCreate {
	_c.mutation.SetShared(v)
	return _c
}

// SetNillableShared sets the "shared" field if the given value is not nil.
func (_c *WordCreate) SetNillableShared(v *bool) *WordCreate {
	if v != nil {
		_c.SetShared(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *WordCreate) SetOwnerID(v string) *WordCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_c *WordCreate) SetNillableOwnerID(v *string) *WordCreate {
	if v != nil {
		_c.SetOwnerID(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *WordCreate) SetNeedsReview(v bool) *WordCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *WordCreate) SetNillableNeedsReview(v *bool) *WordCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WordCreate) SetCreatedAt(v time.Time) *WordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WordCreate) SetNillableCreatedAt(v *time.Time) *WordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WordCreate) SetID(v string) *WordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WordCreate) SetNillableID(v *string) *WordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WordMutation object of the builder.
func (_c *WordCreate) Mutation() *WordMutation {
	return _c.mutation
}

// Save creates the Word in the database.
func (_c *WordCreate) Save(ctx context.Context) (*Word, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordCreate) SaveX(ctx context.Context) *Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := word.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.PartOfSpeech(); !ok {
		v := word.DefaultPartOfSpeech
		_c.mutation.SetPartOfSpeech(v)
	}
	if _, ok := _c.mutation.ImageRef(); !ok {
		v := word.DefaultImageRef
		_c.mutation.SetImageRef(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := word.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Shared(); !ok {
		v := word.DefaultShared
		_c.mutation.SetShared(v)
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		v := word.DefaultOwnerID
		_c.mutation.SetOwnerID(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := word.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := word.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := word.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Word.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := word.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Word.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "Word.definition"`)}
	}
	if v, ok := _c.mutation.Definition(); ok {
		if err := word.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "Word.definition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Word.language"`)}
	}
	if _, ok := _c.mutation.PartOfSpeech(); !ok {
		return &ValidationError{Name: "part_of_speech", err: errors.New(`ent: missing required field "Word.part_of_speech"`)}
	}
	if _, ok := _c.mutation.ImageRef(); !ok {
		return &ValidationError{Name: "image_ref", err: errors.New(`ent: missing required field "Word.image_ref"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Word.difficulty"`)}
	}
	if _, ok := _c.mutation.Shared(); !ok {
		return &ValidationError{Name: "shared", err: errors.New(`ent: missing required field "Word.shared"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Word.owner_id"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Word.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Word.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := word.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Word.id": %w`, err)}
		}
	}
	return nil
}

func (_c *WordCreate) sqlSave(ctx context.Context) (*Word, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Word.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WordCreate) createSpec() (*Word, *sqlgraph.CreateSpec) {
	var (
		_node = &Word{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(word.Table, sqlgraph.NewFieldSpec(word.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(word.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(word.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.PartOfSpeech(); ok {
		_spec.SetField(word.FieldPartOfSpeech, field.TypeString, value)
		_node.PartOfSpeech = value
	}
	if value, ok := _c.mutation.ImageRef(); ok {
		_spec.SetField(word.FieldImageRef, field.TypeString, value)
		_node.ImageRef = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(word.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Shared(); ok {
		_spec.SetField(word.FieldShared, field.TypeBool, value)
		_node.Shared = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(word.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(word.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(word.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WordCreateBulk is the builder for creating many Word entities in bulk.
type WordCreateBulk struct {
	config
	err      error
	builders []*WordCreate
}

// Save creates the Word entities in the database.
func (_c *WordCreateBulk) Save(ctx context.Context) ([]*Word, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Word, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WordCreateBulk) SaveX(ctx context.Context) []*Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
