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
	"github.com/gfranca/mestre/ent/predicate"
	"github.com/gfranca/mestre/ent/workspacestate"
)

// WorkspaceStateUpdate is the builder for updating WorkspaceState entities.
type WorkspaceStateUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceStateMutation
}

// Where appends a list predicates to the WorkspaceStateUpdate builder.
func (_u *WorkspaceStateUpdate) Where(ps ...predicate.WorkspaceState) *WorkspaceStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlot sets the "slot" field.
func (_u *WorkspaceStateUpdate) SetSlot(v string) *WorkspaceStateUpdate {
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *WorkspaceStateUpdate) SetNillableSlot(v *string) *WorkspaceStateUpdate {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *WorkspaceStateUpdate) SetData(v map[string]interface{}) *WorkspaceStateUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceStateUpdate) SetUpdatedAt(v time.Time) *WorkspaceStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkspaceStateMutation object of the builder.
func (_u *WorkspaceStateUpdate) Mutation() *WorkspaceStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspacestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkspaceStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workspacestate.Table, workspacestate.Columns, sqlgraph.NewFieldSpec(workspacestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(workspacestate.FieldSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(workspacestate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspacestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspacestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceStateUpdateOne is the builder for updating a single WorkspaceState entity.
type WorkspaceStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceStateMutation
}

// SetSlot sets the "slot" field.
func (_u *WorkspaceStateUpdateOne) SetSlot(v string) *WorkspaceStateUpdateOne {
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *WorkspaceStateUpdateOne) SetNillableSlot(v *string) *WorkspaceStateUpdateOne {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *WorkspaceStateUpdateOne) SetData(v map[string]interface{}) *WorkspaceStateUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceStateUpdateOne) SetUpdatedAt(v time.Time) *WorkspaceStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkspaceStateMutation object of the builder.
func (_u *WorkspaceStateUpdateOne) Mutation() *WorkspaceStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkspaceStateUpdate builder.
func (_u *WorkspaceStateUpdateOne) Where(ps ...predicate.WorkspaceState) *WorkspaceStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceStateUpdateOne) Select(field string, fields ...string) *WorkspaceStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkspaceState entity.
func (_u *WorkspaceStateUpdateOne) Save(ctx context.Context) (*WorkspaceState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceStateUpdateOne) SaveX(ctx context.Context) *WorkspaceState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspacestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkspaceStateUpdateOne) sqlSave(ctx context.Context) (_node *WorkspaceState, err error) {
	_spec := sqlgraph.NewUpdateSpec(workspacestate.Table, workspacestate.Columns, sqlgraph.NewFieldSpec(workspacestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkspaceState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspacestate.FieldID)
		for _, f := range fields {
			if !workspacestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspacestate.FieldID {
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
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(workspacestate.FieldSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(workspacestate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspacestate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkspaceState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspacestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
