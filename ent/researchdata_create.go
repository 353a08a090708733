// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchsession"
)

// ResearchDataCreate is the builder for creating a ResearchData entity.
type ResearchDataCreate struct {
	config
	mutation *ResearchDataMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ResearchDataCreate) SetSessionID(v string) *ResearchDataCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDataType sets the "data_type" field.
func (_c *ResearchDataCreate) SetDataType(v researchdata.DataType) *ResearchDataCreate {
	_c.mutation.SetDataType(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *ResearchDataCreate) SetQuery(v string) *ResearchDataCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_c *ResearchDataCreate) SetNillableQuery(v *string) *ResearchDataCreate {
	if v != nil {
		_c.SetQuery(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ResearchDataCreate) SetTitle(v string) *ResearchDataCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ResearchDataCreate) SetNillableTitle(v *string) *ResearchDataCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ResearchDataCreate) SetContent(v string) *ResearchDataCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ResearchDataCreate) SetContentHash(v string) *ResearchDataCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ResearchDataCreate) SetMetadata(v map[string]interface{}) *ResearchDataCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *ResearchDataCreate) SetRelevanceScore(v float64) *ResearchDataCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_c *ResearchDataCreate) SetNillableRelevanceScore(v *float64) *ResearchDataCreate {
	if v != nil {
		_c.SetRelevanceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchDataCreate) SetCreatedAt(v time.Time) *ResearchDataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchDataCreate) SetNillableCreatedAt(v *time.Time) *ResearchDataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchDataCreate) SetID(v string) *ResearchDataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_c *ResearchDataCreate) SetSession(v *ResearchSession) *ResearchDataCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ResearchDataMutation object of the builder.
func (_c *ResearchDataCreate) Mutation() *ResearchDataMutation {
	return _c.mutation
}

// Save creates the ResearchData in the database.
func (_c *ResearchDataCreate) Save(ctx context.Context) (*ResearchData, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchDataCreate) SaveX(ctx context.Context) *ResearchData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchDataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchDataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchDataCreate) defaults() {
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		v := researchdata.DefaultRelevanceScore
		_c.mutation.SetRelevanceScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchdata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchDataCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResearchData.session_id"`)}
	}
	if _, ok := _c.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "ResearchData.data_type"`)}
	}
	if v, ok := _c.mutation.DataType(); ok {
		if err := researchdata.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ResearchData.data_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ResearchData.content"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ResearchData.content_hash"`)}
	}
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		return &ValidationError{Name: "relevance_score", err: errors.New(`ent: missing required field "ResearchData.relevance_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchData.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ResearchData.session"`)}
	}
	return nil
}

func (_c *ResearchDataCreate) sqlSave(ctx context.Context) (*ResearchData, error) {
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
			return nil, fmt.Errorf("unexpected ResearchData.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchDataCreate) createSpec() (*ResearchData, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchData{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchdata.Table, sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DataType(); ok {
		_spec.SetField(researchdata.FieldDataType, field.TypeEnum, value)
		_node.DataType = value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(researchdata.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(researchdata.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(researchdata.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(researchdata.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(researchdata.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(researchdata.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchdata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchdata.SessionTable,
			Columns: []string{researchdata.SessionColumn},
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

// ResearchDataCreateBulk is the builder for creating many ResearchData entities in bulk.
type ResearchDataCreateBulk struct {
	config
	err      error
	builders []*ResearchDataCreate
}

// Save creates the ResearchData entities in the database.
func (_c *ResearchDataCreateBulk) Save(ctx context.Context) ([]*ResearchData, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchData, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchDataMutation)
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
func (_c *ResearchDataCreateBulk) SaveX(ctx context.Context) []*ResearchData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchDataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchDataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
