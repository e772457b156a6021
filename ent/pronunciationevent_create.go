// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingua/ent/pronunciationevent"
)

// PronunciationEventCreate is the builder for creating a PronunciationEvent entity.
type PronunciationEventCreate struct {
	config
	mutation *PronunciationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PronunciationEventCreate) SetSequence(v int64) *PronunciationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PronunciationEventCreate) SetTimestamp(v time.Time) *PronunciationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PronunciationEventCreate) SetNillableTimestamp(v *time.Time) *PronunciationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PronunciationEventCreate) SetSessionID(v string) *PronunciationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *PronunciationEventCreate) SetLanguage(v string) *PronunciationEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *PronunciationEventCreate) SetWordID(v string) *PronunciationEventCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *PronunciationEventCreate) SetAccuracy(v int) *PronunciationEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *PronunciationEventCreate) SetTier(v string) *PronunciationEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *PronunciationEventCreate) SetPassed(v bool) *PronunciationEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *PronunciationEventCreate) SetNillablePassed(v *bool) *PronunciationEventCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// Mutation returns the PronunciationEventMutation object of the builder.
func (_c *PronunciationEventCreate) Mutation() *PronunciationEventMutation {
	return _c.mutation
}

// Save creates the PronunciationEvent in the database.
func (_c *PronunciationEventCreate) Save(ctx context.Context) (*PronunciationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PronunciationEventCreate) SaveX(ctx context.Context) *PronunciationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PronunciationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PronunciationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PronunciationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pronunciationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := pronunciationevent.DefaultPassed
		_c.mutation.SetPassed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PronunciationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PronunciationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PronunciationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PronunciationEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := pronunciationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "PronunciationEvent.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := pronunciationevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "PronunciationEvent.word_id"`)}
	}
	if v, ok := _c.mutation.WordID(); ok {
		if err := pronunciationevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.word_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "PronunciationEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "PronunciationEvent.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := pronunciationevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "PronunciationEvent.passed"`)}
	}
	return nil
}

func (_c *PronunciationEventCreate) sqlSave(ctx context.Context) (*PronunciationEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PronunciationEventCreate) createSpec() (*PronunciationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PronunciationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pronunciationevent.Table, sqlgraph.NewFieldSpec(pronunciationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pronunciationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pronunciationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pronunciationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(pronunciationevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(pronunciationevent.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(pronunciationevent.FieldAccuracy, field.TypeInt, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(pronunciationevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(pronunciationevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	return _node, _spec
}

// PronunciationEventCreateBulk is the builder for creating many PronunciationEvent entities in bulk.
type PronunciationEventCreateBulk struct {
	config
	err      error
	builders []*PronunciationEventCreate
}

// Save creates the PronunciationEvent entities in the database.
func (_c *PronunciationEventCreateBulk) Save(ctx context.Context) ([]*PronunciationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PronunciationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PronunciationEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PronunciationEventCreateBulk) SaveX(ctx context.Context) []*PronunciationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PronunciationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PronunciationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
