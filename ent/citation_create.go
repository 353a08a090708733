// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/source"
)

// CitationCreate is the builder for creating a Citation entity.
type CitationCreate struct {
	config
	mutation *CitationMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *CitationCreate) SetReportID(v string) *CitationCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *CitationCreate) SetSourceID(v string) *CitationCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *CitationCreate) SetNillableSourceID(v *string) *CitationCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetQuote sets the "quote" field.
func (_c *CitationCreate) SetQuote(v string) *CitationCreate {
	_c.mutation.SetQuote(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *CitationCreate) SetContext(v string) *CitationCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *CitationCreate) SetNillableContext(v *string) *CitationCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CitationCreate) SetPosition(v int) *CitationCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *CitationCreate) SetURL(v string) *CitationCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *CitationCreate) SetNillableURL(v *string) *CitationCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CitationCreate) SetID(v string) *CitationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *CitationCreate) SetReport(v *Report) *CitationCreate {
	return _c.SetReportID(v.ID)
}

// SetSource sets the "source" edge to the Source entity.
func (_c *CitationCreate) SetSource(v *Source) *CitationCreate {
	return _c.SetSourceID(v.ID)
}

// Mutation returns the CitationMutation object of the builder.
func (_c *CitationCreate) Mutation() *CitationMutation {
	return _c.mutation
}

// Save creates the Citation in the database.
func (_c *CitationCreate) Save(ctx context.Context) (*Citation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CitationCreate) SaveX(ctx context.Context) *Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CitationCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Citation.report_id"`)}
	}
	if _, ok := _c.mutation.Quote(); !ok {
		return &ValidationError{Name: "quote", err: errors.New(`ent: missing required field "Citation.quote"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Citation.position"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Citation.report"`)}
	}
	return nil
}

func (_c *CitationCreate) sqlSave(ctx context.Context) (*Citation, error) {
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
			return nil, fmt.Errorf("unexpected Citation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CitationCreate) createSpec() (*Citation, *sqlgraph.CreateSpec) {
	var (
		_node = &Citation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(citation.Table, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Quote(); ok {
		_spec.SetField(citation.FieldQuote, field.TypeString, value)
		_node.Quote = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(citation.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(citation.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(citation.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   citation.ReportTable,
			Columns: []string{citation.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   citation.SourceTable,
			Columns: []string{citation.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CitationCreateBulk is the builder for creating many Citation entities in bulk.
type CitationCreateBulk struct {
	config
	err      error
	builders []*CitationCreate
}

// Save creates the Citation entities in the database.
func (_c *CitationCreateBulk) Save(ctx context.Context) ([]*Citation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Citation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CitationMutation)
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
func (_c *CitationCreateBulk) SaveX(ctx context.Context) []*Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
