// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingua/ent/predicate"
	"github.com/abhisek/lingua/ent/pronunciationevent"
)

// PronunciationEventUpdate is the builder for updating PronunciationEvent entities.
type PronunciationEventUpdate struct {
	config
	hooks    []Hook
	mutation *PronunciationEventMutation
}

// Where appends a list predicates to the PronunciationEventUpdate builder.
func (_u *PronunciationEventUpdate) Where(ps ...predicate.PronunciationEvent) *PronunciationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PronunciationEventUpdate) SetSessionID(v string) *PronunciationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PronunciationEventUpdate) SetNillableSessionID(v *string) *PronunciationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PronunciationEventUpdate) SetLanguage(v string) *PronunciationEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PronunciationEventUpdate) SetNillableLanguage(v *string) *PronunciationEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *PronunciationEventUpdate) SetWordID(v string) *PronunciationEventUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *PronunciationEventUpdate) SetNillableWordID(v *string) *PronunciationEventUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PronunciationEventUpdate) SetAccuracy(v int) *PronunciationEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PronunciationEventUpdate) SetNillableAccuracy(v *int) *PronunciationEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PronunciationEventUpdate) AddAccuracy(v int) *PronunciationEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *PronunciationEventUpdate) SetTier(v string) *PronunciationEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *PronunciationEventUpdate) SetNillableTier(v *string) *PronunciationEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *PronunciationEventUpdate) SetPassed(v bool) *PronunciationEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *PronunciationEventUpdate) SetNillablePassed(v *bool) *PronunciationEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the PronunciationEventMutation object of the builder.
func (_u *PronunciationEventUpdate) Mutation() *PronunciationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PronunciationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PronunciationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PronunciationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PronunciationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PronunciationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := pronunciationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := pronunciationevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := pronunciationevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.word_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := pronunciationevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *PronunciationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pronunciationevent.Table, pronunciationevent.Columns, sqlgraph.NewFieldSpec(pronunciationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pronunciationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(pronunciationevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(pronunciationevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(pronunciationevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(pronunciationevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(pronunciationevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(pronunciationevent.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pronunciationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PronunciationEventUpdateOne is the builder for updating a single PronunciationEvent entity.
type PronunciationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PronunciationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PronunciationEventUpdateOne) SetSessionID(v string) *PronunciationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PronunciationEventUpdateOne) SetNillableSessionID(v *string) *PronunciationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PronunciationEventUpdateOne) SetLanguage(v string) *PronunciationEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PronunciationEventUpdateOne) SetNillableLanguage(v *string) *PronunciationEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *PronunciationEventUpdateOne) SetWordID(v string) *PronunciationEventUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *PronunciationEventUpdateOne) SetNillableWordID(v *string) *PronunciationEventUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PronunciationEventUpdateOne) SetAccuracy(v int) *PronunciationEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PronunciationEventUpdateOne) SetNillableAccuracy(v *int) *PronunciationEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PronunciationEventUpdateOne) AddAccuracy(v int) *PronunciationEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *PronunciationEventUpdateOne) SetTier(v string) *PronunciationEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *PronunciationEventUpdateOne) SetNillableTier(v *string) *PronunciationEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *PronunciationEventUpdateOne) SetPassed(v bool) *PronunciationEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *PronunciationEventUpdateOne) SetNillablePassed(v *bool) *PronunciationEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the PronunciationEventMutation object of the builder.
func (_u *PronunciationEventUpdateOne) Mutation() *PronunciationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PronunciationEventUpdate builder.
func (_u *PronunciationEventUpdateOne) Where(ps ...predicate.PronunciationEvent) *PronunciationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PronunciationEventUpdateOne) Select(field string, fields ...string) *PronunciationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PronunciationEvent entity.
func (_u *PronunciationEventUpdateOne) Save(ctx context.Context) (*PronunciationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PronunciationEventUpdateOne) SaveX(ctx context.Context) *PronunciationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PronunciationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PronunciationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PronunciationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := pronunciationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := pronunciationevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := pronunciationevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.word_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := pronunciationevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "PronunciationEvent.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *PronunciationEventUpdateOne) sqlSave(ctx context.Context) (_node *PronunciationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pronunciationevent.Table, pronunciationevent.Columns, sqlgraph.NewFieldSpec(pronunciationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PronunciationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pronunciationevent.FieldID)
		for _, f := range fields {
			if !pronunciationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pronunciationevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pronunciationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(pronunciationevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(pronunciationevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(pronunciationevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(pronunciationevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(pronunciationevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(pronunciationevent.FieldPassed, field.TypeBool, value)
	}
	_node = &PronunciationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pronunciationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
