// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/predicate"
	"github.com/delverhq/delver/ent/searchhistory"
	"github.com/delverhq/delver/ent/user"
)

// SearchHistoryUpdate is the builder for updating SearchHistory entities.
type SearchHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *SearchHistoryMutation
}

// Where appends a list predicates to the SearchHistoryUpdate builder.
func (_u *SearchHistoryUpdate) Where(ps ...predicate.SearchHistory) *SearchHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SearchHistoryUpdate) SetUserID(v string) *SearchHistoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SearchHistoryUpdate) SetNillableUserID(v *string) *SearchHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *SearchHistoryUpdate) SetQuery(v string) *SearchHistoryUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *SearchHistoryUpdate) SetNillableQuery(v *string) *SearchHistoryUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *SearchHistoryUpdate) SetResultCount(v int) *SearchHistoryUpdate {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *SearchHistoryUpdate) SetNillableResultCount(v *int) *SearchHistoryUpdate {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *SearchHistoryUpdate) AddResultCount(v int) *SearchHistoryUpdate {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SearchHistoryUpdate) SetUser(v *User) *SearchHistoryUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the SearchHistoryMutation object of the builder.
func (_u *SearchHistoryUpdate) Mutation() *SearchHistoryMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SearchHistoryUpdate) ClearUser() *SearchHistoryUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchHistoryUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchHistory.user"`)
	}
	return nil
}

func (_u *SearchHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchhistory.Table, searchhistory.Columns, sqlgraph.NewFieldSpec(searchhistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(searchhistory.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(searchhistory.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(searchhistory.FieldResultCount, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   searchhistory.UserTable,
			Columns: []string{searchhistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   searchhistory.UserTable,
			Columns: []string{searchhistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchHistoryUpdateOne is the builder for updating a single SearchHistory entity.
type SearchHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchHistoryMutation
}

// SetUserID sets the "user_id" field.
func (_u *SearchHistoryUpdateOne) SetUserID(v string) *SearchHistoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SearchHistoryUpdateOne) SetNillableUserID(v *string) *SearchHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *SearchHistoryUpdateOne) SetQuery(v string) *SearchHistoryUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *SearchHistoryUpdateOne) SetNillableQuery(v *string) *SearchHistoryUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *SearchHistoryUpdateOne) SetResultCount(v int) *SearchHistoryUpdateOne {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *SearchHistoryUpdateOne) SetNillableResultCount(v *int) *SearchHistoryUpdateOne {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *SearchHistoryUpdateOne) AddResultCount(v int) *SearchHistoryUpdateOne {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SearchHistoryUpdateOne) SetUser(v *User) *SearchHistoryUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the SearchHistoryMutation object of the builder.
func (_u *SearchHistoryUpdateOne) Mutation() *SearchHistoryMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SearchHistoryUpdateOne) ClearUser() *SearchHistoryUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the SearchHistoryUpdate builder.
func (_u *SearchHistoryUpdateOne) Where(ps ...predicate.SearchHistory) *SearchHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchHistoryUpdateOne) Select(field string, fields ...string) *SearchHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchHistory entity.
func (_u *SearchHistoryUpdateOne) Save(ctx context.Context) (*SearchHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchHistoryUpdateOne) SaveX(ctx context.Context) *SearchHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchHistoryUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchHistory.user"`)
	}
	return nil
}

func (_u *SearchHistoryUpdateOne) sqlSave(ctx context.Context) (_node *SearchHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchhistory.Table, searchhistory.Columns, sqlgraph.NewFieldSpec(searchhistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchhistory.FieldID)
		for _, f := range fields {
			if !searchhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchhistory.FieldID {
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
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(searchhistory.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(searchhistory.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(searchhistory.FieldResultCount, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   searchhistory.UserTable,
			Columns: []string{searchhistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   searchhistory.UserTable,
			Columns: []string{searchhistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SearchHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
