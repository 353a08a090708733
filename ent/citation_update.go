// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/predicate"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/source"
)

// CitationUpdate is the builder for updating Citation entities.
type CitationUpdate struct {
	config
	hooks    []Hook
	mutation *CitationMutation
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdate) Where(ps ...predicate.Citation) *CitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *CitationUpdate) SetReportID(v string) *CitationUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableReportID(v *string) *CitationUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *CitationUpdate) SetSourceID(v string) *CitationUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableSourceID(v *string) *CitationUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// ClearSourceID clears the value of the "source_id" field.
func (_u *CitationUpdate) ClearSourceID() *CitationUpdate {
	_u.mutation.ClearSourceID()
	return _u
}

// SetQuote sets the "quote" field.
func (_u *CitationUpdate) SetQuote(v string) *CitationUpdate {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableQuote(v *string) *CitationUpdate {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *CitationUpdate) SetContext(v string) *CitationUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableContext(v *string) *CitationUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CitationUpdate) ClearContext() *CitationUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetPosition sets the "position" field.
func (_u *CitationUpdate) SetPosition(v int) *CitationUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CitationUpdate) SetNillablePosition(v *int) *CitationUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CitationUpdate) AddPosition(v int) *CitationUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetURL sets the "url" field.
func (_u *CitationUpdate) SetURL(v string) *CitationUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableURL(v *string) *CitationUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *CitationUpdate) ClearURL() *CitationUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *CitationUpdate) SetReport(v *Report) *CitationUpdate {
	return _u.SetReportID(v.ID)
}

// SetSource sets the "source" edge to the Source entity.
func (_u *CitationUpdate) SetSource(v *Source) *CitationUpdate {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdate) Mutation() *CitationMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *CitationUpdate) ClearReport() *CitationUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *CitationUpdate) ClearSource() *CitationUpdate {
	_u.mutation.ClearSource()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.report"`)
	}
	return nil
}

func (_u *CitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(citation.FieldQuote, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(citation.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(citation.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(citation.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(citation.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(citation.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(citation.FieldURL, field.TypeString)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CitationUpdateOne is the builder for updating a single Citation entity.
type CitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CitationMutation
}

// SetReportID sets the "report_id" field.
func (_u *CitationUpdateOne) SetReportID(v string) *CitationUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableReportID(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *CitationUpdateOne) SetSourceID(v string) *CitationUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableSourceID(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// ClearSourceID clears the value of the "source_id" field.
func (_u *CitationUpdateOne) ClearSourceID() *CitationUpdateOne {
	_u.mutation.ClearSourceID()
	return _u
}

// SetQuote sets the "quote" field.
func (_u *CitationUpdateOne) SetQuote(v string) *CitationUpdateOne {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableQuote(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *CitationUpdateOne) SetContext(v string) *CitationUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableContext(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CitationUpdateOne) ClearContext() *CitationUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetPosition sets the "position" field.
func (_u *CitationUpdateOne) SetPosition(v int) *CitationUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillablePosition(v *int) *CitationUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CitationUpdateOne) AddPosition(v int) *CitationUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetURL sets the "url" field.
func (_u *CitationUpdateOne) SetURL(v string) *CitationUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableURL(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *CitationUpdateOne) ClearURL() *CitationUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *CitationUpdateOne) SetReport(v *Report) *CitationUpdateOne {
	return _u.SetReportID(v.ID)
}

// SetSource sets the "source" edge to the Source entity.
func (_u *CitationUpdateOne) SetSource(v *Source) *CitationUpdateOne {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdateOne) Mutation() *CitationMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *CitationUpdateOne) ClearReport() *CitationUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *CitationUpdateOne) ClearSource() *CitationUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdateOne) Where(ps ...predicate.Citation) *CitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CitationUpdateOne) Select(field string, fields ...string) *CitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Citation entity.
func (_u *CitationUpdateOne) Save(ctx context.Context) (*Citation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdateOne) SaveX(ctx context.Context) *Citation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.report"`)
	}
	return nil
}

func (_u *CitationUpdateOne) sqlSave(ctx context.Context) (_node *Citation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Citation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, citation.FieldID)
		for _, f := range fields {
			if !citation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != citation.FieldID {
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
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(citation.FieldQuote, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(citation.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(citation.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(citation.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(citation.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(citation.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(citation.FieldURL, field.TypeString)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Citation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
