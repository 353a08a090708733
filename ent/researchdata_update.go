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
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchsession"
)

// ResearchDataUpdate is the builder for updating ResearchData entities.
type ResearchDataUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchDataMutation
}

// Where appends a list predicates to the ResearchDataUpdate builder.
func (_u *ResearchDataUpdate) Where(ps ...predicate.ResearchData) *ResearchDataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResearchDataUpdate) SetSessionID(v string) *ResearchDataUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResearchDataUpdate) SetNillableSessionID(v *string) *ResearchDataUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ResearchDataUpdate) SetDataType(v researchdata.DataType) *ResearchDataUpdate {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ResearchDataUpdate) SetNillableDataType(v *researchdata.DataType) *ResearchDataUpdate {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchDataUpdate) SetQuery(v string) *ResearchDataUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchDataUpdate) SetNillableQuery(v *string) *ResearchDataUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *ResearchDataUpdate) ClearQuery() *ResearchDataUpdate {
	_u.mutation.ClearQuery()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResearchDataUpdate) SetTitle(v string) *ResearchDataUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchDataUpdate) SetNillableTitle(v *string) *ResearchDataUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ResearchDataUpdate) ClearTitle() *ResearchDataUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *ResearchDataUpdate) SetContent(v string) *ResearchDataUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ResearchDataUpdate) SetNillableContent(v *string) *ResearchDataUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ResearchDataUpdate) SetContentHash(v string) *ResearchDataUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ResearchDataUpdate) SetNillableContentHash(v *string) *ResearchDataUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResearchDataUpdate) SetMetadata(v map[string]interface{}) *ResearchDataUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResearchDataUpdate) ClearMetadata() *ResearchDataUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *ResearchDataUpdate) SetRelevanceScore(v float64) *ResearchDataUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *ResearchDataUpdate) SetNillableRelevanceScore(v *float64) *ResearchDataUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *ResearchDataUpdate) AddRelevanceScore(v float64) *ResearchDataUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *ResearchDataUpdate) SetSession(v *ResearchSession) *ResearchDataUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ResearchDataMutation object of the builder.
func (_u *ResearchDataUpdate) Mutation() *ResearchDataMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *ResearchDataUpdate) ClearSession() *ResearchDataUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchDataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchDataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchDataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchDataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchDataUpdate) check() error {
	if v, ok := _u.mutation.DataType(); ok {
		if err := researchdata.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ResearchData.data_type": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchData.session"`)
	}
	return nil
}

func (_u *ResearchDataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchdata.Table, researchdata.Columns, sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(researchdata.FieldDataType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchdata.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(researchdata.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchdata.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(researchdata.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(researchdata.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(researchdata.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(researchdata.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(researchdata.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(researchdata.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(researchdata.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchDataUpdateOne is the builder for updating a single ResearchData entity.
type ResearchDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchDataMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResearchDataUpdateOne) SetSessionID(v string) *ResearchDataUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResearchDataUpdateOne) SetNillableSessionID(v *string) *ResearchDataUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ResearchDataUpdateOne) SetDataType(v researchdata.DataType) *ResearchDataUpdateOne {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ResearchDataUpdateOne) SetNillableDataType(v *researchdata.DataType) *ResearchDataUpdateOne {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchDataUpdateOne) SetQuery(v string) *ResearchDataUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchDataUpdateOne) SetNillableQuery(v *string) *ResearchDataUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *ResearchDataUpdateOne) ClearQuery() *ResearchDataUpdateOne {
	_u.mutation.ClearQuery()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResearchDataUpdateOne) SetTitle(v string) *ResearchDataUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchDataUpdateOne) SetNillableTitle(v *string) *ResearchDataUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ResearchDataUpdateOne) ClearTitle() *ResearchDataUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *ResearchDataUpdateOne) SetContent(v string) *ResearchDataUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ResearchDataUpdateOne) SetNillableContent(v *string) *ResearchDataUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ResearchDataUpdateOne) SetContentHash(v string) *ResearchDataUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ResearchDataUpdateOne) SetNillableContentHash(v *string) *ResearchDataUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResearchDataUpdateOne) SetMetadata(v map[string]interface{}) *ResearchDataUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResearchDataUpdateOne) ClearMetadata() *ResearchDataUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *ResearchDataUpdateOne) SetRelevanceScore(v float64) *ResearchDataUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *ResearchDataUpdateOne) SetNillableRelevanceScore(v *float64) *ResearchDataUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *ResearchDataUpdateOne) AddRelevanceScore(v float64) *ResearchDataUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *ResearchDataUpdateOne) SetSession(v *ResearchSession) *ResearchDataUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ResearchDataMutation object of the builder.
func (_u *ResearchDataUpdateOne) Mutation() *ResearchDataMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *ResearchDataUpdateOne) ClearSession() *ResearchDataUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ResearchDataUpdate builder.
func (_u *ResearchDataUpdateOne) Where(ps ...predicate.ResearchData) *ResearchDataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchDataUpdateOne) Select(field string, fields ...string) *ResearchDataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchData entity.
func (_u *ResearchDataUpdateOne) Save(ctx context.Context) (*ResearchData, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchDataUpdateOne) SaveX(ctx context.Context) *ResearchData {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchDataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchDataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchDataUpdateOne) check() error {
	if v, ok := _u.mutation.DataType(); ok {
		if err := researchdata.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "ResearchData.data_type": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchData.session"`)
	}
	return nil
}

func (_u *ResearchDataUpdateOne) sqlSave(ctx context.Context) (_node *ResearchData, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchdata.Table, researchdata.Columns, sqlgraph.NewFieldSpec(researchdata.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchdata.FieldID)
		for _, f := range fields {
			if !researchdata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchdata.FieldID {
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
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(researchdata.FieldDataType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchdata.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(researchdata.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchdata.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(researchdata.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(researchdata.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(researchdata.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(researchdata.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(researchdata.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(researchdata.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(researchdata.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchData{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
