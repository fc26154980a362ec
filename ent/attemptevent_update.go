// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeace-app/codeace/ent/attemptevent"
	"github.com/codeace-app/codeace/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdate) SetProblemID(v string) *AttemptEventUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableProblemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptEventUpdate) SetVerdict(v string) *AttemptEventUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableVerdict(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *AttemptEventUpdate) SetXpAwarded(v int) *AttemptEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableXpAwarded(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *AttemptEventUpdate) AddXpAwarded(v int) *AttemptEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetNewlySolved sets the "newly_solved" field.
func (_u *AttemptEventUpdate) SetNewlySolved(v bool) *AttemptEventUpdate {
	_u.mutation.SetNewlySolved(v)
	return _u
}

// SetNillableNewlySolved sets the "newly_solved" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableNewlySolved(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetNewlySolved(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := attemptevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attemptevent.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attemptevent.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewlySolved(); ok {
		_spec.SetField(attemptevent.FieldNewlySolved, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdateOne) SetProblemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableProblemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptEventUpdateOne) SetVerdict(v string) *AttemptEventUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableVerdict(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *AttemptEventUpdateOne) SetXpAwarded(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableXpAwarded(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *AttemptEventUpdateOne) AddXpAwarded(v int) *AttemptEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetNewlySolved sets the "newly_solved" field.
func (_u *AttemptEventUpdateOne) SetNewlySolved(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetNewlySolved(v)
	return _u
}

// SetNillableNewlySolved sets the "newly_solved" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableNewlySolved(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetNewlySolved(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := attemptevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attemptevent.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attemptevent.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewlySolved(); ok {
		_spec.SetField(attemptevent.FieldNewlySolved, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
