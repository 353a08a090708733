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
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/predicate"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/ent/source"
)

// SourceUpdate is the builder for updating Source entities.
type SourceUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMutation
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdate) Where(ps ...predicate.Source) *SourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SourceUpdate) SetSessionID(v string) *SourceUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableSessionID(v *string) *SourceUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdate) SetURL(v string) *SourceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableURL(v *string) *SourceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceUpdate) SetTitle(v string) *SourceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableTitle(v *string) *SourceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SourceUpdate) ClearTitle() *SourceUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *SourceUpdate) SetContent(v string) *SourceUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableContent(v *string) *SourceUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SourceUpdate) ClearContent() *SourceUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SourceUpdate) SetSummary(v string) *SourceUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableSummary(v *string) *SourceUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SourceUpdate) ClearSummary() *SourceUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *SourceUpdate) SetRelevanceScore(v float64) *SourceUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableRelevanceScore(v *float64) *SourceUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *SourceUpdate) AddRelevanceScore(v float64) *SourceUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *SourceUpdate) SetAccessedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableAccessedAt(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SourceUpdate) SetMetadata(v map[string]interface{}) *SourceUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SourceUpdate) ClearMetadata() *SourceUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *SourceUpdate) SetSession(v *ResearchSession) *SourceUpdate {
	return _u.SetSessionID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *SourceUpdate) AddCitationIDs(ids ...string) *SourceUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *SourceUpdate) AddCitations(v ...*Citation) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdate) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *SourceUpdate) ClearSession() *SourceUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *SourceUpdate) ClearCitations() *SourceUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *SourceUpdate) RemoveCitationIDs(ids ...string) *SourceUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *SourceUpdate) RemoveCitations(v ...*Citation) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Source.session"`)
	}
	return nil
}

func (_u *SourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(source.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(source.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(source.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(source.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(source.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(source.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(source.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(source.FieldAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(source.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(source.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   source.SessionTable,
			Columns: []string{source.SessionColumn},
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
			Table:   source.SessionTable,
			Columns: []string{source.SessionColumn},
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
			Table:   source.CitationsTable,
			Columns: []string{source.CitationsColumn},
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
			Table:   source.CitationsTable,
			Columns: []string{source.CitationsColumn},
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
			Table:   source.CitationsTable,
			Columns: []string{source.CitationsColumn},
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
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceUpdateOne is the builder for updating a single Source entity.
type SourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SourceUpdateOne) SetSessionID(v string) *SourceUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableSessionID(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdateOne) SetURL(v string) *SourceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableURL(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceUpdateOne) SetTitle(v string) *SourceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableTitle(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SourceUpdateOne) ClearTitle() *SourceUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *SourceUpdateOne) SetContent(v string) *SourceUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableContent(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SourceUpdateOne) ClearContent() *SourceUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SourceUpdateOne) SetSummary(v string) *SourceUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableSummary(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SourceUpdateOne) ClearSummary() *SourceUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *SourceUpdateOne) SetRelevanceScore(v float64) *SourceUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableRelevanceScore(v *float64) *SourceUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *SourceUpdateOne) AddRelevanceScore(v float64) *SourceUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *SourceUpdateOne) SetAccessedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableAccessedAt(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SourceUpdateOne) SetMetadata(v map[string]interface{}) *SourceUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SourceUpdateOne) ClearMetadata() *SourceUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *SourceUpdateOne) SetSession(v *ResearchSession) *SourceUpdateOne {
	return _u.SetSessionID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *SourceUpdateOne) AddCitationIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *SourceUpdateOne) AddCitations(v ...*Citation) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdateOne) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *SourceUpdateOne) ClearSession() *SourceUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *SourceUpdateOne) ClearCitations() *SourceUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *SourceUpdateOne) RemoveCitationIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *SourceUpdateOne) RemoveCitations(v ...*Citation) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdateOne) Where(ps ...predicate.Source) *SourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceUpdateOne) Select(field string, fields ...string) *SourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Source entity.
func (_u *SourceUpdateOne) Save(ctx context.Context) (*Source, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdateOne) SaveX(ctx context.Context) *Source {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Source.session"`)
	}
	return nil
}

func (_u *SourceUpdateOne) sqlSave(ctx context.Context) (_node *Source, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Source.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, source.FieldID)
		for _, f := range fields {
			if !source.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != source.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(source.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(source.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(source.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(source.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(source.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(source.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(source.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(source.FieldAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(source.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(source.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   source.SessionTable,
			Columns: []string{source.SessionColumn},
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
			Table:   source.SessionTable,
			Columns: []string{source.SessionColumn},
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
			Table:   source.CitationsTable,
			Columns: []string{source.CitationsColumn},
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
			Table:   source.CitationsTable,
			Columns: []string{source.CitationsColumn},
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
			Table:   source.CitationsTable,
			Columns: []string{source.CitationsColumn},
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
	_node = &Source{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
