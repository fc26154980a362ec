// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeace-app/codeace/ent/userrecord"
)

// UserRecordCreate is the builder for creating a UserRecord entity.
type UserRecordCreate struct {
	config
	mutation *UserRecordMutation
	hooks    []Hook
}

// SetUID sets the "uid" field.
func (_c *UserRecordCreate) SetUID(v string) *UserRecordCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserRecordCreate) SetEmail(v string) *UserRecordCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *UserRecordCreate) SetDisplayName(v string) *UserRecordCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetPhotoURL sets the "photo_url" field.
func (_c *UserRecordCreate) SetPhotoURL(v string) *UserRecordCreate {
	_c.mutation.SetPhotoURL(v)
	return _c
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_c *UserRecordCreate) SetNillablePhotoURL(v *string) *UserRecordCreate {
	if v != nil {
		_c.SetPhotoURL(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserRecordCreate) SetPasswordHash(v string) *UserRecordCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *UserRecordCreate) SetNillablePasswordHash(v *string) *UserRecordCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserRecordCreate) SetCreatedAt(v time.Time) *UserRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserRecordCreate) SetNillableCreatedAt(v *time.Time) *UserRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *UserRecordCreate) SetLastLoginAt(v time.Time) *UserRecordCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *UserRecordCreate) SetNillableLastLoginAt(v *time.Time) *UserRecordCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetRevision sets the "revision" field.
func (_c *UserRecordCreate) SetRevision(v int64) *UserRecordCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_c *UserRecordCreate) SetNillableRevision(v *int64) *UserRecordCreate {
	if v != nil {
		_c.SetRevision(*v)
	}
	return _c
}

// SetTotalXp sets the "total_xp" field.
func (_c *UserRecordCreate) SetTotalXp(v int) *UserRecordCreate {
	_c.mutation.SetTotalXp(v)
	return _c
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_c *UserRecordCreate) SetNillableTotalXp(v *int) *UserRecordCreate {
	if v != nil {
		_c.SetTotalXp(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *UserRecordCreate) SetData(v map[string]interface{}) *UserRecordCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the UserRecordMutation object of the builder.
func (_c *UserRecordCreate) Mutation() *UserRecordMutation {
	return _c.mutation
}

// Save creates the UserRecord in the database.
func (_c *UserRecordCreate) Save(ctx context.Context) (*UserRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserRecordCreate) SaveX(ctx context.Context) *UserRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastLoginAt(); !ok {
		v := userrecord.DefaultLastLoginAt()
		_c.mutation.SetLastLoginAt(v)
	}
	if _, ok := _c.mutation.Revision(); !ok {
		v := userrecord.DefaultRevision
		_c.mutation.SetRevision(v)
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		v := userrecord.DefaultTotalXp
		_c.mutation.SetTotalXp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserRecordCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "UserRecord.uid"`)}
	}
	if v, ok := _c.mutation.UID(); ok {
		if err := userrecord.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "UserRecord.uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "UserRecord.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := userrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "UserRecord.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "UserRecord.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := userrecord.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "UserRecord.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserRecord.created_at"`)}
	}
	if _, ok := _c.mutation.LastLoginAt(); !ok {
		return &ValidationError{Name: "last_login_at", err: errors.New(`ent: missing required field "UserRecord.last_login_at"`)}
	}
	if _, ok := _c.mutation.Revision(); !ok {
		return &ValidationError{Name: "revision", err: errors.New(`ent: missing required field "UserRecord.revision"`)}
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		return &ValidationError{Name: "total_xp", err: errors.New(`ent: missing required field "UserRecord.total_xp"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "UserRecord.data"`)}
	}
	return nil
}

func (_c *UserRecordCreate) sqlSave(ctx context.Context) (*UserRecord, error) {
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

func (_c *UserRecordCreate) createSpec() (*UserRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UserRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userrecord.Table, sqlgraph.NewFieldSpec(userrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(userrecord.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(userrecord.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(userrecord.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.PhotoURL(); ok {
		_spec.SetField(userrecord.FieldPhotoURL, field.TypeString, value)
		_node.PhotoURL = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(userrecord.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(userrecord.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(userrecord.FieldRevision, field.TypeInt64, value)
		_node.Revision = value
	}
	if value, ok := _c.mutation.TotalXp(); ok {
		_spec.SetField(userrecord.FieldTotalXp, field.TypeInt, value)
		_node.TotalXp = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(userrecord.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// UserRecordCreateBulk is the builder for creating many UserRecord entities in bulk.
type UserRecordCreateBulk struct {
	config
	err      error
	builders []*UserRecordCreate
}

// Save creates the UserRecord entities in the database.
func (_c *UserRecordCreateBulk) Save(ctx context.Context) ([]*UserRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserRecordMutation)
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
func (_c *UserRecordCreateBulk) SaveX(ctx context.Context) []*UserRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
