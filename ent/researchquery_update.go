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
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
)

// ResearchQueryUpdate is the builder for updating ResearchQuery entities.
type ResearchQueryUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchQueryMutation
}

// Where appends a list predicates to the ResearchQueryUpdate builder.
func (_u *ResearchQueryUpdate) Where(ps ...predicate.ResearchQuery) *ResearchQueryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResearchQueryUpdate) SetSessionID(v string) *ResearchQueryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResearchQueryUpdate) SetNillableSessionID(v *string) *ResearchQueryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchQueryUpdate) SetQuery(v string) *ResearchQueryUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchQueryUpdate) SetNillableQuery(v *string) *ResearchQueryUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *ResearchQueryUpdate) SetResultCount(v int) *ResearchQueryUpdate {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *ResearchQueryUpdate) SetNillableResultCount(v *int) *ResearchQueryUpdate {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *ResearchQueryUpdate) AddResultCount(v int) *ResearchQueryUpdate {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *ResearchQueryUpdate) SetSession(v *ResearchSession) *ResearchQueryUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ResearchQueryMutation object of the builder.
func (_u *ResearchQueryUpdate) Mutation() *ResearchQueryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *ResearchQueryUpdate) ClearSession() *ResearchQueryUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchQueryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchQueryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchQueryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchQueryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchQueryUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchQuery.session"`)
	}
	return nil
}

func (_u *ResearchQueryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchquery.Table, researchquery.Columns, sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchquery.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(researchquery.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(researchquery.FieldResultCount, field.TypeInt, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchquery.SessionTable,
			Columns: []string{researchquery.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchquery.SessionTable,
			Columns: []string{researchquery.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchQueryUpdateOne is the builder for updating a single ResearchQuery entity.
type ResearchQueryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchQueryMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResearchQueryUpdateOne) SetSessionID(v string) *ResearchQueryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResearchQueryUpdateOne) SetNillableSessionID(v *string) *ResearchQueryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchQueryUpdateOne) SetQuery(v string) *ResearchQueryUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchQueryUpdateOne) SetNillableQuery(v *string) *ResearchQueryUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *ResearchQueryUpdateOne) SetResultCount(v int) *ResearchQueryUpdateOne {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *ResearchQueryUpdateOne) SetNillableResultCount(v *int) *ResearchQueryUpdateOne {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *ResearchQueryUpdateOne) AddResultCount(v int) *ResearchQueryUpdateOne {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *ResearchQueryUpdateOne) SetSession(v *ResearchSession) *ResearchQueryUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ResearchQueryMutation object of the builder.
func (_u *ResearchQueryUpdateOne) Mutation() *ResearchQueryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *ResearchQueryUpdateOne) ClearSession() *ResearchQueryUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ResearchQueryUpdate builder.
func (_u *ResearchQueryUpdateOne) Where(ps ...predicate.ResearchQuery) *ResearchQueryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchQueryUpdateOne) Select(field string, fields ...string) *ResearchQueryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchQuery entity.
func (_u *ResearchQueryUpdateOne) Save(ctx context.Context) (*ResearchQuery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchQueryUpdateOne) SaveX(ctx context.Context) *ResearchQuery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchQueryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchQueryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchQueryUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchQuery.session"`)
	}
	return nil
}

func (_u *ResearchQueryUpdateOne) sqlSave(ctx context.Context) (_node *ResearchQuery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchquery.Table, researchquery.Columns, sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchQuery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchquery.FieldID)
		for _, f := range fields {
			if !researchquery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchquery.FieldID {
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
		_spec.SetField(researchquery.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(researchquery.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(researchquery.FieldResultCount, field.TypeInt, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchquery.SessionTable,
			Columns: []string{researchquery.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchquery.SessionTable,
			Columns: []string{researchquery.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchQuery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
