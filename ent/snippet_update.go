// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeace-app/codeace/ent/predicate"
	"github.com/codeace-app/codeace/ent/snippet"
)

// SnippetUpdate is the builder for updating Snippet entities.
type SnippetUpdate struct {
	config
	hooks    []Hook
	mutation *SnippetMutation
}

// Where appends a list predicates to the SnippetUpdate builder.
func (_u *SnippetUpdate) Where(ps ...predicate.Snippet) *SnippetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SnippetUpdate) SetTitle(v string) *SnippetUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SnippetUpdate) SetNillableTitle(v *string) *SnippetUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SnippetUpdate) SetLanguage(v string) *SnippetUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SnippetUpdate) SetNillableLanguage(v *string) *SnippetUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SnippetUpdate) SetCode(v string) *SnippetUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SnippetUpdate) SetNillableCode(v *string) *SnippetUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SnippetUpdate) SetUpdatedAt(v time.Time) *SnippetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SnippetMutation object of the builder.
func (_u *SnippetUpdate) Mutation() *SnippetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SnippetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnippetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SnippetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnippetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SnippetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := snippet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnippetUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := snippet.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Snippet.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := snippet.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Snippet.language": %w`, err)}
		}
	}
	return nil
}

func (_u *SnippetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snippet.Table, snippet.Columns, sqlgraph.NewFieldSpec(snippet.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(snippet.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(snippet.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(snippet.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(snippet.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snippet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SnippetUpdateOne is the builder for updating a single Snippet entity.
type SnippetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SnippetMutation
}

// SetTitle sets the "title" field.
func (_u *SnippetUpdateOne) SetTitle(v string) *SnippetUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SnippetUpdateOne) SetNillableTitle(v *string) *SnippetUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SnippetUpdateOne) SetLanguage(v string) *SnippetUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SnippetUpdateOne) SetNillableLanguage(v *string) *SnippetUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SnippetUpdateOne) SetCode(v string) *SnippetUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SnippetUpdateOne) SetNillableCode(v *string) *SnippetUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SnippetUpdateOne) SetUpdatedAt(v time.Time) *SnippetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SnippetMutation object of the builder.
func (_u *SnippetUpdateOne) Mutation() *SnippetMutation {
	return _u.mutation
}

// Where appends a list predicates to the SnippetUpdate builder.
func (_u *SnippetUpdateOne) Where(ps ...predicate.Snippet) *SnippetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SnippetUpdateOne) Select(field string, fields ...string) *SnippetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Snippet entity.
func (_u *SnippetUpdateOne) Save(ctx context.Context) (*Snippet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnippetUpdateOne) SaveX(ctx context.Context) *Snippet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SnippetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnippetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SnippetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := snippet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnippetUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := snippet.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Snippet.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := snippet.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Snippet.language": %w`, err)}
		}
	}
	return nil
}

func (_u *SnippetUpdateOne) sqlSave(ctx context.Context) (_node *Snippet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snippet.Table, snippet.Columns, sqlgraph.NewFieldSpec(snippet.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Snippet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, snippet.FieldID)
		for _, f := range fields {
			if !snippet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != snippet.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(snippet.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(snippet.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(snippet.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(snippet.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Snippet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snippet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
