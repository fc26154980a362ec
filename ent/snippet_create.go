// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeace-app/codeace/ent/snippet"
)

// SnippetCreate is the builder for creating a Snippet entity.
type SnippetCreate struct {
	config
	mutation *SnippetMutation
	hooks    []Hook
}

// SetSnippetID sets the "snippet_id" field.
func (_c *SnippetCreate) SetSnippetID(v string) *SnippetCreate {
	_c.mutation.SetSnippetID(v)
	return _c
}

// SetUID sets the "uid" field.
func (_c *SnippetCreate) SetUID(v string) *SnippetCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SnippetCreate) SetTitle(v string) *SnippetCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SnippetCreate) SetLanguage(v string) *SnippetCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *SnippetCreate) SetCode(v string) *SnippetCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SnippetCreate) SetCreatedAt(v time.Time) *SnippetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SnippetCreate) SetNillableCreatedAt(v *time.Time) *SnippetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SnippetCreate) SetUpdatedAt(v time.Time) *SnippetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SnippetCreate) SetNillableUpdatedAt(v *time.Time) *SnippetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SnippetMutation object of the builder.
func (_c *SnippetCreate) Mutation() *SnippetMutation {
	return _c.mutation
}

// Save creates the Snippet in the database.
func (_c *SnippetCreate) Save(ctx context.Context) (*Snippet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SnippetCreate) SaveX(ctx context.Context) *Snippet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SnippetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SnippetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SnippetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := snippet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := snippet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SnippetCreate) check() error {
	if _, ok := _c.mutation.SnippetID(); !ok {
		return &ValidationError{Name: "snippet_id", err: errors.New(`ent: missing required field "Snippet.snippet_id"`)}
	}
	if v, ok := _c.mutation.SnippetID(); ok {
		if err := snippet.SnippetIDValidator(v); err != nil {
			return &ValidationError{Name: "snippet_id", err: fmt.Errorf(`ent: validator failed for field "Snippet.snippet_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "Snippet.uid"`)}
	}
	if v, ok := _c.mutation.UID(); ok {
		if err := snippet.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "Snippet.uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Snippet.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := snippet.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Snippet.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Snippet.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := snippet.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Snippet.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Snippet.code"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Snippet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Snippet.updated_at"`)}
	}
	return nil
}

func (_c *SnippetCreate) sqlSave(ctx context.Context) (*Snippet, error) {
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

func (_c *SnippetCreate) createSpec() (*Snippet, *sqlgraph.CreateSpec) {
	var (
		_node = &Snippet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(snippet.Table, sqlgraph.NewFieldSpec(snippet.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SnippetID(); ok {
		_spec.SetField(snippet.FieldSnippetID, field.TypeString, value)
		_node.SnippetID = value
	}
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(snippet.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(snippet.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(snippet.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(snippet.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(snippet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(snippet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SnippetCreateBulk is the builder for creating many Snippet entities in bulk.
type SnippetCreateBulk struct {
	config
	err      error
	builders []*SnippetCreate
}

// Save creates the Snippet entities in the database.
func (_c *SnippetCreateBulk) Save(ctx context.Context) ([]*Snippet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Snippet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SnippetMutation)
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
func (_c *SnippetCreateBulk) SaveX(ctx context.Context) []*Snippet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SnippetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SnippetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
