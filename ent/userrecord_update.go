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
	"github.com/codeace-app/codeace/ent/userrecord"
)

// UserRecordUpdate is the builder for updating UserRecord entities.
type UserRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UserRecordMutation
}

// Where appends a list predicates to the UserRecordUpdate builder.
func (_u *UserRecordUpdate) Where(ps ...predicate.UserRecord) *UserRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserRecordUpdate) SetEmail(v string) *UserRecordUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillableEmail(v *string) *UserRecordUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserRecordUpdate) SetDisplayName(v string) *UserRecordUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillableDisplayName(v *string) *UserRecordUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *UserRecordUpdate) SetPhotoURL(v string) *UserRecordUpdate {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillablePhotoURL(v *string) *UserRecordUpdate {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *UserRecordUpdate) ClearPhotoURL() *UserRecordUpdate {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserRecordUpdate) SetPasswordHash(v string) *UserRecordUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillablePasswordHash(v *string) *UserRecordUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserRecordUpdate) ClearPasswordHash() *UserRecordUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserRecordUpdate) SetLastLoginAt(v time.Time) *UserRecordUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillableLastLoginAt(v *time.Time) *UserRecordUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *UserRecordUpdate) SetRevision(v int64) *UserRecordUpdate {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillableRevision(v *int64) *UserRecordUpdate {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *UserRecordUpdate) AddRevision(v int64) *UserRecordUpdate {
	_u.mutation.AddRevision(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *UserRecordUpdate) SetTotalXp(v int) *UserRecordUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillableTotalXp(v *int) *UserRecordUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *UserRecordUpdate) AddTotalXp(v int) *UserRecordUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetData sets the "data" field.
func (_u *UserRecordUpdate) SetData(v map[string]interface{}) *UserRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the UserRecordMutation object of the builder.
func (_u *UserRecordUpdate) Mutation() *UserRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserRecordUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := userrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "UserRecord.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := userrecord.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "UserRecord.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userrecord.Table, userrecord.Columns, sqlgraph.NewFieldSpec(userrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(userrecord.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(userrecord.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(userrecord.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(userrecord.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(userrecord.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(userrecord.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(userrecord.FieldLastLoginAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(userrecord.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(userrecord.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(userrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(userrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(userrecord.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserRecordUpdateOne is the builder for updating a single UserRecord entity.
type UserRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserRecordMutation
}

// SetEmail sets the "email" field.
func (_u *UserRecordUpdateOne) SetEmail(v string) *UserRecordUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillableEmail(v *string) *UserRecordUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserRecordUpdateOne) SetDisplayName(v string) *UserRecordUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillableDisplayName(v *string) *UserRecordUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *UserRecordUpdateOne) SetPhotoURL(v string) *UserRecordUpdateOne {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillablePhotoURL(v *string) *UserRecordUpdateOne {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *UserRecordUpdateOne) ClearPhotoURL() *UserRecordUpdateOne {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserRecordUpdateOne) SetPasswordHash(v string) *UserRecordUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillablePasswordHash(v *string) *UserRecordUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserRecordUpdateOne) ClearPasswordHash() *UserRecordUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserRecordUpdateOne) SetLastLoginAt(v time.Time) *UserRecordUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserRecordUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *UserRecordUpdateOne) SetRevision(v int64) *UserRecordUpdateOne {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillableRevision(v *int64) *UserRecordUpdateOne {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *UserRecordUpdateOne) AddRevision(v int64) *UserRecordUpdateOne {
	_u.mutation.AddRevision(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *UserRecordUpdateOne) SetTotalXp(v int) *UserRecordUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillableTotalXp(v *int) *UserRecordUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *UserRecordUpdateOne) AddTotalXp(v int) *UserRecordUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetData sets the "data" field.
func (_u *UserRecordUpdateOne) SetData(v map[string]interface{}) *UserRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the UserRecordMutation object of the builder.
func (_u *UserRecordUpdateOne) Mutation() *UserRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserRecordUpdate builder.
func (_u *UserRecordUpdateOne) Where(ps ...predicate.UserRecord) *UserRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserRecordUpdateOne) Select(field string, fields ...string) *UserRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserRecord entity.
func (_u *UserRecordUpdateOne) Save(ctx context.Context) (*UserRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRecordUpdateOne) SaveX(ctx context.Context) *UserRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := userrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "UserRecord.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := userrecord.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "UserRecord.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserRecordUpdateOne) sqlSave(ctx context.Context) (_node *UserRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userrecord.Table, userrecord.Columns, sqlgraph.NewFieldSpec(userrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userrecord.FieldID)
		for _, f := range fields {
			if !userrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userrecord.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(userrecord.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(userrecord.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(userrecord.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(userrecord.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(userrecord.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(userrecord.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(userrecord.FieldLastLoginAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(userrecord.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(userrecord.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(userrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(userrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(userrecord.FieldData, field.TypeJSON, value)
	}
	_node = &UserRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
