// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
)

// ResearchQueryCreate is the builder for creating a ResearchQuery entity.
type ResearchQueryCreate struct {
	config
	mutation *ResearchQueryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ResearchQueryCreate) SetSessionID(v string) *ResearchQueryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *ResearchQueryCreate) SetQuery(v string) *ResearchQueryCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetResultCount sets the "result_count" field.
func (_c *ResearchQueryCreate) SetResultCount(v int) *ResearchQueryCreate {
	_c.mutation.SetResultCount(v)
	return _c
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_c *ResearchQueryCreate) SetNillableResultCount(v *int) *ResearchQueryCreate {
	if v != nil {
		_c.SetResultCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchQueryCreate) SetCreatedAt(v time.Time) *ResearchQueryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchQueryCreate) SetNillableCreatedAt(v *time.Time) *ResearchQueryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchQueryCreate) SetID(v string) *ResearchQueryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_c *ResearchQueryCreate) SetSession(v *ResearchSession) *ResearchQueryCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ResearchQueryMutation object of the builder.
func (_c *ResearchQueryCreate) Mutation() *ResearchQueryMutation {
	return _c.mutation
}

// Save creates the ResearchQuery in the database.
func (_c *ResearchQueryCreate) Save(ctx context.Context) (*ResearchQuery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchQueryCreate) SaveX(ctx context.Context) *ResearchQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchQueryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchQueryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchQueryCreate) defaults() {
	if _, ok := _c.mutation.ResultCount(); !ok {
		v := researchquery.DefaultResultCount
		_c.mutation.SetResultCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchquery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchQueryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResearchQuery.session_id"`)}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "ResearchQuery.query"`)}
	}
	if _, ok := _c.mutation.ResultCount(); !ok {
		return &ValidationError{Name: "result_count", err: errors.New(`ent: missing required field "ResearchQuery.result_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchQuery.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ResearchQuery.session"`)}
	}
	return nil
}

func (_c *ResearchQueryCreate) sqlSave(ctx context.Context) (*ResearchQuery, error) {
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
			return nil, fmt.Errorf("unexpected ResearchQuery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchQueryCreate) createSpec() (*ResearchQuery, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchQuery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchquery.Table, sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(researchquery.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.ResultCount(); ok {
		_spec.SetField(researchquery.FieldResultCount, field.TypeInt, value)
		_node.ResultCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchquery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearchQueryCreateBulk is the builder for creating many ResearchQuery entities in bulk.
type ResearchQueryCreateBulk struct {
	config
	err      error
	builders []*ResearchQueryCreate
}

// Save creates the ResearchQuery entities in the database.
func (_c *ResearchQueryCreateBulk) Save(ctx context.Context) ([]*ResearchQuery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchQuery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchQueryMutation)
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
func (_c *ResearchQueryCreateBulk) SaveX(ctx context.Context) []*ResearchQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchQueryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchQueryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
