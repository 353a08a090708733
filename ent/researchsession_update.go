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
	"github.com/delverhq/delver/ent/predicate"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/ent/source"
)

// ResearchSessionUpdate is the builder for updating ResearchSession entities.
type ResearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdate) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResearchSessionUpdate) SetUserID(v string) *ResearchSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableUserID(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ResearchSessionUpdate) SetTopic(v string) *ResearchSessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableTopic(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdate) SetStatus(v researchsession.Status) *ResearchSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *ResearchSessionUpdate) SetParameters(v map[string]interface{}) *ResearchSessionUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *ResearchSessionUpdate) ClearParameters() *ResearchSessionUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchSessionUpdate) SetStartedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStartedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchSessionUpdate) ClearStartedAt() *ResearchSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchSessionUpdate) SetCompletedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableCompletedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchSessionUpdate) ClearCompletedAt() *ResearchSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdate) SetErrorMessage(v string) *ResearchSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableErrorMessage(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdate) ClearErrorMessage() *ResearchSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ResearchSessionUpdate) SetReportID(v string) *ResearchSessionUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableReportID(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *ResearchSessionUpdate) ClearReportID() *ResearchSessionUpdate {
	_u.mutation.ClearReportID()
	return _u
}

// SetRetriedFrom sets the "retried_from" field.
func (_u *ResearchSessionUpdate) SetRetriedFrom(v string) *ResearchSessionUpdate {
	_u.mutation.SetRetriedFrom(v)
	return _u
}

// SetNillableRetriedFrom sets the "retried_from" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableRetriedFrom(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetRetriedFrom(*v)
	}
	return _u
}

// ClearRetriedFrom clears the value of the "retried_from" field.
func (_u *ResearchSessionUpdate) ClearRetriedFrom() *ResearchSessionUpdate {
	_u.mutation.ClearRetriedFrom()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchSessionUpdate) SetPodID(v string) *ResearchSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillablePodID(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchSessionUpdate) ClearPodID() *ResearchSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ResearchSessionUpdate) SetLastInteractionAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ResearchSessionUpdate) ClearLastInteractionAt() *ResearchSessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetGeneratedReportID sets the "generated_report" edge to the Report entity by ID.
func (_u *ResearchSessionUpdate) SetGeneratedReportID(id string) *ResearchSessionUpdate {
	_u.mutation.SetGeneratedReportID(id)
	return _u
}

// SetNillableGeneratedReportID sets the "generated_report" edge to the Report entity by ID if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableGeneratedReportID(id *string) *ResearchSessionUpdate {
	if id != nil {
		_u = _u.SetGeneratedReportID(*id)
	}
	return _u
}

// SetGeneratedReport sets the "generated_report" edge to the Report entity.
func (_u *ResearchSessionUpdate) SetGeneratedReport(v *Report) *ResearchSessionUpdate {
	return _u.SetGeneratedReportID(v.ID)
}

// AddSourceIDs adds the "sources" edge to the Source entity by IDs.
func (_u *ResearchSessionUpdate) AddSourceIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the Source entity.
func (_u *ResearchSessionUpdate) AddSources(v ...*Source) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// AddResearchDatumIDs adds the "research_data" edge to the ResearchData entity by IDs.
func (_u *ResearchSessionUpdate) AddResearchDatumIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.AddResearchDatumIDs(ids...)
	return _u
}

// AddResearchData adds the "research_data" edges to the ResearchData entity.
func (_u *ResearchSessionUpdate) AddResearchData(v ...*ResearchData) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResearchDatumIDs(ids...)
}

// AddQueryIDs adds the "queries" edge to the ResearchQuery entity by IDs.
func (_u *ResearchSessionUpdate) AddQueryIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the ResearchQuery entity.
func (_u *ResearchSessionUpdate) AddQueries(v ...*ResearchQuery) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdate) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearGeneratedReport clears the "generated_report" edge to the Report entity.
func (_u *ResearchSessionUpdate) ClearGeneratedReport() *ResearchSessionUpdate {
	_u.mutation.ClearGeneratedReport()
	return _u
}

// ClearSources clears all "sources" edges to the Source entity.
func (_u *ResearchSessionUpdate) ClearSources() *ResearchSessionUpdate {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to Source entities by IDs.
func (_u *ResearchSessionUpdate) RemoveSourceIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to Source entities.
func (_u *ResearchSessionUpdate) RemoveSources(v ...*Source) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// ClearResearchData clears all "research_data" edges to the ResearchData entity.
func (_u *ResearchSessionUpdate) ClearResearchData() *ResearchSessionUpdate {
	_u.mutation.ClearResearchData()
	return _u
}

// RemoveResearchDatumIDs removes the "research_data" edge to ResearchData entities by IDs.
func (_u *ResearchSessionUpdate) RemoveResearchDatumIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.RemoveResearchDatumIDs(ids...)
	return _u
}

// RemoveResearchData removes "research_data" edges to ResearchData entities.
func (_u *ResearchSessionUpdate) RemoveResearchData(v ...*ResearchData) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResearchDatumIDs(ids...)
}

// ClearQueries clears all "queries" edges to the ResearchQuery entity.
func (_u *ResearchSessionUpdate) ClearQueries() *ResearchSessionUpdate {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to ResearchQuery entities by IDs.
func (_u *ResearchSessionUpdate) RemoveQueryIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to ResearchQuery entities.
func (_u *ResearchSessionUpdate) RemoveQueries(v ...*ResearchQuery) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(researchsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(researchsession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(researchsession.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(researchsession.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(researchsession.FieldReportID, field.TypeString, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(researchsession.FieldReportID, field.TypeString)
	}
	if value, ok := _u.mutation.RetriedFrom(); ok {
		_spec.SetField(researchsession.FieldRetriedFrom, field.TypeString, value)
	}
	if _u.mutation.RetriedFromCleared() {
		_spec.ClearField(researchsession.FieldRetriedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(researchsession.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.GeneratedReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchsession.GeneratedReportTable,
			Columns: []string{researchsession.GeneratedReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchsession.GeneratedReportTable,
			Columns: []string{researchsession.GeneratedReportColumn},
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
	if _u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.SourcesTable,
			Columns: []string{researchsession.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.SourcesTable,
			Columns: []string{researchsession.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.SourcesTable,
			Columns: []string{researchsession.SourcesColumn},
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
	if _u.mutation.ResearchDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.ResearchDataTable,
			Columns: []string{researchsession.ResearchDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResearchDataIDs(); len(nodes) > 0 && !_u.mutation.ResearchDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.ResearchDataTable,
			Columns: []string{researchsession.ResearchDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearchDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.ResearchDataTable,
			Columns: []string{researchsession.ResearchDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.QueriesTable,
			Columns: []string{researchsession.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.QueriesTable,
			Columns: []string{researchsession.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.QueriesTable,
			Columns: []string{researchsession.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchSessionUpdateOne is the builder for updating a single ResearchSession entity.
type ResearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ResearchSessionUpdateOne) SetUserID(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableUserID(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ResearchSessionUpdateOne) SetTopic(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableTopic(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdateOne) SetStatus(v researchsession.Status) *ResearchSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *ResearchSessionUpdateOne) SetParameters(v map[string]interface{}) *ResearchSessionUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *ResearchSessionUpdateOne) ClearParameters() *ResearchSessionUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchSessionUpdateOne) SetStartedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStartedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchSessionUpdateOne) ClearStartedAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchSessionUpdateOne) SetCompletedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchSessionUpdateOne) ClearCompletedAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdateOne) SetErrorMessage(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableErrorMessage(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdateOne) ClearErrorMessage() *ResearchSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ResearchSessionUpdateOne) SetReportID(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableReportID(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *ResearchSessionUpdateOne) ClearReportID() *ResearchSessionUpdateOne {
	_u.mutation.ClearReportID()
	return _u
}

// SetRetriedFrom sets the "retried_from" field.
func (_u *ResearchSessionUpdateOne) SetRetriedFrom(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetRetriedFrom(v)
	return _u
}

// SetNillableRetriedFrom sets the "retried_from" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableRetriedFrom(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetRetriedFrom(*v)
	}
	return _u
}

// ClearRetriedFrom clears the value of the "retried_from" field.
func (_u *ResearchSessionUpdateOne) ClearRetriedFrom() *ResearchSessionUpdateOne {
	_u.mutation.ClearRetriedFrom()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchSessionUpdateOne) SetPodID(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillablePodID(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchSessionUpdateOne) ClearPodID() *ResearchSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ResearchSessionUpdateOne) SetLastInteractionAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ResearchSessionUpdateOne) ClearLastInteractionAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetGeneratedReportID sets the "generated_report" edge to the Report entity by ID.
func (_u *ResearchSessionUpdateOne) SetGeneratedReportID(id string) *ResearchSessionUpdateOne {
	_u.mutation.SetGeneratedReportID(id)
	return _u
}

// SetNillableGeneratedReportID sets the "generated_report" edge to the Report entity by ID if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableGeneratedReportID(id *string) *ResearchSessionUpdateOne {
	if id != nil {
		_u = _u.SetGeneratedReportID(*id)
	}
	return _u
}

// SetGeneratedReport sets the "generated_report" edge to the Report entity.
func (_u *ResearchSessionUpdateOne) SetGeneratedReport(v *Report) *ResearchSessionUpdateOne {
	return _u.SetGeneratedReportID(v.ID)
}

// AddSourceIDs adds the "sources" edge to the Source entity by IDs.
func (_u *ResearchSessionUpdateOne) AddSourceIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the Source entity.
func (_u *ResearchSessionUpdateOne) AddSources(v ...*Source) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// AddResearchDatumIDs adds the "research_data" edge to the ResearchData entity by IDs.
func (_u *ResearchSessionUpdateOne) AddResearchDatumIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.AddResearchDatumIDs(ids...)
	return _u
}

// AddResearchData adds the "research_data" edges to the ResearchData entity.
func (_u *ResearchSessionUpdateOne) AddResearchData(v ...*ResearchData) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResearchDatumIDs(ids...)
}

// AddQueryIDs adds the "queries" edge to the ResearchQuery entity by IDs.
func (_u *ResearchSessionUpdateOne) AddQueryIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the ResearchQuery entity.
func (_u *ResearchSessionUpdateOne) AddQueries(v ...*ResearchQuery) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdateOne) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearGeneratedReport clears the "generated_report" edge to the Report entity.
func (_u *ResearchSessionUpdateOne) ClearGeneratedReport() *ResearchSessionUpdateOne {
	_u.mutation.ClearGeneratedReport()
	return _u
}

// ClearSources clears all "sources" edges to the Source entity.
func (_u *ResearchSessionUpdateOne) ClearSources() *ResearchSessionUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to Source entities by IDs.
func (_u *ResearchSessionUpdateOne) RemoveSourceIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to Source entities.
func (_u *ResearchSessionUpdateOne) RemoveSources(v ...*Source) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// ClearResearchData clears all "research_data" edges to the ResearchData entity.
func (_u *ResearchSessionUpdateOne) ClearResearchData() *ResearchSessionUpdateOne {
	_u.mutation.ClearResearchData()
	return _u
}

// RemoveResearchDatumIDs removes the "research_data" edge to ResearchData entities by IDs.
func (_u *ResearchSessionUpdateOne) RemoveResearchDatumIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.RemoveResearchDatumIDs(ids...)
	return _u
}

// RemoveResearchData removes "research_data" edges to ResearchData entities.
func (_u *ResearchSessionUpdateOne) RemoveResearchData(v ...*ResearchData) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResearchDatumIDs(ids...)
}

// ClearQueries clears all "queries" edges to the ResearchQuery entity.
func (_u *ResearchSessionUpdateOne) ClearQueries() *ResearchSessionUpdateOne {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to ResearchQuery entities by IDs.
func (_u *ResearchSessionUpdateOne) RemoveQueryIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to ResearchQuery entities.
func (_u *ResearchSessionUpdateOne) RemoveQueries(v ...*ResearchQuery) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdateOne) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchSessionUpdateOne) Select(field string, fields ...string) *ResearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchSession entity.
func (_u *ResearchSessionUpdateOne) Save(ctx context.Context) (*ResearchSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) SaveX(ctx context.Context) *ResearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *ResearchSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchsession.FieldID)
		for _, f := range fields {
			if !researchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchsession.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(researchsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(researchsession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(researchsession.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(researchsession.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(researchsession.FieldReportID, field.TypeString, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(researchsession.FieldReportID, field.TypeString)
	}
	if value, ok := _u.mutation.RetriedFrom(); ok {
		_spec.SetField(researchsession.FieldRetriedFrom, field.TypeString, value)
	}
	if _u.mutation.RetriedFromCleared() {
		_spec.ClearField(researchsession.FieldRetriedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(researchsession.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.GeneratedReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchsession.GeneratedReportTable,
			Columns: []string{researchsession.GeneratedReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchsession.GeneratedReportTable,
			Columns: []string{researchsession.GeneratedReportColumn},
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
	if _u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.SourcesTable,
			Columns: []string{researchsession.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.SourcesTable,
			Columns: []string{researchsession.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.SourcesTable,
			Columns: []string{researchsession.SourcesColumn},
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
	if _u.mutation.ResearchDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.ResearchDataTable,
			Columns: []string{researchsession.ResearchDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResearchDataIDs(); len(nodes) > 0 && !_u.mutation.ResearchDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.ResearchDataTable,
			Columns: []string{researchsession.ResearchDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearchDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.ResearchDataTable,
			Columns: []string{researchsession.ResearchDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.QueriesTable,
			Columns: []string{researchsession.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.QueriesTable,
			Columns: []string{researchsession.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.QueriesTable,
			Columns: []string{researchsession.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
