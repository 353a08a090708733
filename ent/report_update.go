// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/predicate"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/researchsession"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReportUpdate) SetSessionID(v string) *ReportUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSessionID(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportUpdate) SetContent(v string) *ReportUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableContent(v *string) *ReportUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdate) SetSummary(v string) *ReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSummary(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdate) ClearSummary() *ReportUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *ReportUpdate) SetKeyFindings(v []string) *ReportUpdate {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *ReportUpdate) AppendKeyFindings(v []string) *ReportUpdate {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *ReportUpdate) ClearKeyFindings() *ReportUpdate {
	_u.mutation.ClearKeyFindings()
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ReportUpdate) SetWordCount(v int) *ReportUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableWordCount(v *int) *ReportUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ReportUpdate) AddWordCount(v int) *ReportUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *ReportUpdate) SetSession(v *ResearchSession) *ReportUpdate {
	return _u.SetSessionID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *ReportUpdate) AddCitationIDs(ids ...string) *ReportUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *ReportUpdate) AddCitations(v ...*Citation) *ReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *ReportUpdate) ClearSession() *ReportUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *ReportUpdate) ClearCitations() *ReportUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *ReportUpdate) RemoveCitationIDs(ids ...string) *ReportUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *ReportUpdate) RemoveCitations(v ...*Citation) *ReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.session"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(report.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(report.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(report.FieldKeyFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(report.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(report.FieldWordCount, field.TypeInt, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
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
	if _u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.CitationsTable,
			Columns: []string{report.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.CitationsTable,
			Columns: []string{report.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.CitationsTable,
			Columns: []string{report.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReportUpdateOne) SetSessionID(v string) *ReportUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSessionID(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportUpdateOne) SetContent(v string) *ReportUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableContent(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdateOne) SetSummary(v string) *ReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSummary(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdateOne) ClearSummary() *ReportUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *ReportUpdateOne) SetKeyFindings(v []string) *ReportUpdateOne {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *ReportUpdateOne) AppendKeyFindings(v []string) *ReportUpdateOne {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *ReportUpdateOne) ClearKeyFindings() *ReportUpdateOne {
	_u.mutation.ClearKeyFindings()
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ReportUpdateOne) SetWordCount(v int) *ReportUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableWordCount(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ReportUpdateOne) AddWordCount(v int) *ReportUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *ReportUpdateOne) SetSession(v *ResearchSession) *ReportUpdateOne {
	return _u.SetSessionID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *ReportUpdateOne) AddCitationIDs(ids ...string) *ReportUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *ReportUpdateOne) AddCitations(v ...*Citation) *ReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *ReportUpdateOne) ClearSession() *ReportUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *ReportUpdateOne) ClearCitations() *ReportUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *ReportUpdateOne) RemoveCitationIDs(ids ...string) *ReportUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *ReportUpdateOne) RemoveCitations(v ...*Citation) *ReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.session"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(report.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(report.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(report.FieldKeyFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(report.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(report.FieldWordCount, field.TypeInt, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
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
	if _u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.CitationsTable,
			Columns: []string{report.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.CitationsTable,
			Columns: []string{report.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.CitationsTable,
			Columns: []string{report.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
