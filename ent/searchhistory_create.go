// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/searchhistory"
	"github.com/delverhq/delver/ent/user"
)

// SearchHistoryCreate is the builder for creating a SearchHistory entity.
type SearchHistoryCreate struct {
	config
	mutation *SearchHistoryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SearchHistoryCreate) SetUserID(v string) *SearchHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *SearchHistoryCreate) SetQuery(v string) *SearchHistoryCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetResultCount sets the "result_count" field.
func (_c *SearchHistoryCreate) SetResultCount(v int) *SearchHistoryCreate {
	_c.mutation.SetResultCount(v)
	return _c
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_c *SearchHistoryCreate) SetNillableResultCount(v *int) *SearchHistoryCreate {
	if v != nil {
		_c.SetResultCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchHistoryCreate) SetCreatedAt(v time.Time) *SearchHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchHistoryCreate) SetNillableCreatedAt(v *time.Time) *SearchHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SearchHistoryCreate) SetID(v string) *SearchHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *SearchHistoryCreate) SetUser(v *User) *SearchHistoryCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the SearchHistoryMutation object of the builder.
func (_c *SearchHistoryCreate) Mutation() *SearchHistoryMutation {
	return _c.mutation
}

// Save creates the SearchHistory in the database.
func (_c *SearchHistoryCreate) Save(ctx context.Context) (*SearchHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchHistoryCreate) SaveX(ctx context.Context) *SearchHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchHistoryCreate) defaults() {
	if _, ok := _c.mutation.ResultCount(); !ok {
		v := searchhistory.DefaultResultCount
		_c.mutation.SetResultCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchHistoryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SearchHistory.user_id"`)}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "SearchHistory.query"`)}
	}
	if _, ok := _c.mutation.ResultCount(); !ok {
		return &ValidationError{Name: "result_count", err: errors.New(`ent: missing required field "SearchHistory.result_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchHistory.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "SearchHistory.user"`)}
	}
	return nil
}

func (_c *SearchHistoryCreate) sqlSave(ctx context.Context) (*SearchHistory, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SearchHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SearchHistoryCreate) createSpec() (*SearchHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchhistory.Table, sqlgraph.NewFieldSpec(searchhistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(searchhistory.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.ResultCount(); ok {
		_spec.SetField(searchhistory.FieldResultCount, field.TypeInt, value)
		_node.ResultCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SearchHistoryCreateBulk is the builder for creating many SearchHistory entities in bulk.
type SearchHistoryCreateBulk struct {
	config
	err      error
	builders []*SearchHistoryCreate
}

// Save creates the SearchHistory entities in the database.
func (_c *SearchHistoryCreateBulk) Save(ctx context.Context) ([]*SearchHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchHistoryMutation)
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
func (_c *SearchHistoryCreateBulk) SaveX(ctx context.Context) []*SearchHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
