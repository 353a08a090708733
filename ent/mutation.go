// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/predicate"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/researchdata"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
	"github.com/delverhq/delver/ent/searchhistory"
	"github.com/delverhq/delver/ent/source"
	"github.com/delverhq/delver/ent/user"
	"github.com/delverhq/delver/ent/usersetting"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCitation        = "Citation"
	TypeReport          = "Report"
	TypeResearchData    = "ResearchData"
	TypeResearchQuery   = "ResearchQuery"
	TypeResearchSession = "ResearchSession"
	TypeSearchHistory   = "SearchHistory"
	TypeSource          = "Source"
	TypeUser            = "User"
	TypeUserSetting     = "UserSetting"
)

// CitationMutation represents an operation that mutates the Citation nodes in the graph.
type CitationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	quote         *string
	context       *string
	position      *int
	addposition   *int
	url           *string
	clearedFields map[string]struct{}
	report        *string
	clearedreport bool
	source        *string
	clearedsource bool
	done          bool
	oldValue      func(context.Context) (*Citation, error)
	predicates    []predicate.Citation
}

var _ ent.Mutation = (*CitationMutation)(nil)

// citationOption allows management of the mutation configuration using functional options.
type citationOption func(*CitationMutation)

// newCitationMutation creates new mutation for the Citation entity.
func newCitationMutation(c config, op Op, opts ...citationOption) *CitationMutation {
	m := &CitationMutation{
		config:        c,
		op:            op,
		typ:           TypeCitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCitationID sets the ID field of the mutation.
func withCitationID(id string) citationOption {
	return func(m *CitationMutation) {
		var (
			err   error
			once  sync.Once
			value *Citation
		)
		m.oldValue = func(ctx context.Context) (*Citation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Citation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCitation sets the old Citation of the mutation.
func withCitation(node *Citation) citationOption {
	return func(m *CitationMutation) {
		m.oldValue = func(context.Context) (*Citation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Citation entities.
func (m *CitationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CitationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CitationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Citation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *CitationMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *CitationMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *CitationMutation) ResetReportID() {
	m.report = nil
}

// SetSourceID sets the "source_id" field.
func (m *CitationMutation) SetSourceID(s string) {
	m.source = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *CitationMutation) SourceID() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldSourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *CitationMutation) ClearSourceID() {
	m.source = nil
	m.clearedFields[citation.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *CitationMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[citation.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *CitationMutation) ResetSourceID() {
	m.source = nil
	delete(m.clearedFields, citation.FieldSourceID)
}

// SetQuote sets the "quote" field.
func (m *CitationMutation) SetQuote(s string) {
	m.quote = &s
}

// Quote returns the value of the "quote" field in the mutation.
func (m *CitationMutation) Quote() (r string, exists bool) {
	v := m.quote
	if v == nil {
		return
	}
	return *v, true
}

// OldQuote returns the old "quote" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuote: %w", err)
	}
	return oldValue.Quote, nil
}

// ResetQuote resets all changes to the "quote" field.
func (m *CitationMutation) ResetQuote() {
	m.quote = nil
}

// SetContext sets the "context" field.
func (m *CitationMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *CitationMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *CitationMutation) ClearContext() {
	m.context = nil
	m.clearedFields[citation.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *CitationMutation) ContextCleared() bool {
	_, ok := m.clearedFields[citation.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *CitationMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, citation.FieldContext)
}

// SetPosition sets the "position" field.
func (m *CitationMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CitationMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CitationMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CitationMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CitationMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetURL sets the "url" field.
func (m *CitationMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *CitationMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *CitationMutation) ClearURL() {
	m.url = nil
	m.clearedFields[citation.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *CitationMutation) URLCleared() bool {
	_, ok := m.clearedFields[citation.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *CitationMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, citation.FieldURL)
}

// ClearReport clears the "report" edge to the Report entity.
func (m *CitationMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[citation.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *CitationMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *CitationMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *CitationMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearSource clears the "source" edge to the Source entity.
func (m *CitationMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[citation.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *CitationMutation) SourceCleared() bool {
	return m.SourceIDCleared() || m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *CitationMutation) SourceIDs() (ids []string) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *CitationMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// Where appends a list predicates to the CitationMutation builder.
func (m *CitationMutation) Where(ps ...predicate.Citation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Citation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Citation).
func (m *CitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CitationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.report != nil {
		fields = append(fields, citation.FieldReportID)
	}
	if m.source != nil {
		fields = append(fields, citation.FieldSourceID)
	}
	if m.quote != nil {
		fields = append(fields, citation.FieldQuote)
	}
	if m.context != nil {
		fields = append(fields, citation.FieldContext)
	}
	if m.position != nil {
		fields = append(fields, citation.FieldPosition)
	}
	if m.url != nil {
		fields = append(fields, citation.FieldURL)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case citation.FieldReportID:
		return m.ReportID()
	case citation.FieldSourceID:
		return m.SourceID()
	case citation.FieldQuote:
		return m.Quote()
	case citation.FieldContext:
		return m.Context()
	case citation.FieldPosition:
		return m.Position()
	case citation.FieldURL:
		return m.URL()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case citation.FieldReportID:
		return m.OldReportID(ctx)
	case citation.FieldSourceID:
		return m.OldSourceID(ctx)
	case citation.FieldQuote:
		return m.OldQuote(ctx)
	case citation.FieldContext:
		return m.OldContext(ctx)
	case citation.FieldPosition:
		return m.OldPosition(ctx)
	case citation.FieldURL:
		return m.OldURL(ctx)
	}
	return nil, fmt.Errorf("unknown Citation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case citation.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case citation.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case citation.FieldQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuote(v)
		return nil
	case citation.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case citation.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case citation.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CitationMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, citation.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CitationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case citation.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case citation.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Citation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(citation.FieldSourceID) {
		fields = append(fields, citation.FieldSourceID)
	}
	if m.FieldCleared(citation.FieldContext) {
		fields = append(fields, citation.FieldContext)
	}
	if m.FieldCleared(citation.FieldURL) {
		fields = append(fields, citation.FieldURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CitationMutation) ClearField(name string) error {
	switch name {
	case citation.FieldSourceID:
		m.ClearSourceID()
		return nil
	case citation.FieldContext:
		m.ClearContext()
		return nil
	case citation.FieldURL:
		m.ClearURL()
		return nil
	}
	return fmt.Errorf("unknown Citation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CitationMutation) ResetField(name string) error {
	switch name {
	case citation.FieldReportID:
		m.ResetReportID()
		return nil
	case citation.FieldSourceID:
		m.ResetSourceID()
		return nil
	case citation.FieldQuote:
		m.ResetQuote()
		return nil
	case citation.FieldContext:
		m.ResetContext()
		return nil
	case citation.FieldPosition:
		m.ResetPosition()
		return nil
	case citation.FieldURL:
		m.ResetURL()
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, citation.EdgeReport)
	}
	if m.source != nil {
		edges = append(edges, citation.EdgeSource)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case citation.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case citation.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, citation.EdgeReport)
	}
	if m.clearedsource {
		edges = append(edges, citation.EdgeSource)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CitationMutation) EdgeCleared(name string) bool {
	switch name {
	case citation.EdgeReport:
		return m.clearedreport
	case citation.EdgeSource:
		return m.clearedsource
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CitationMutation) ClearEdge(name string) error {
	switch name {
	case citation.EdgeReport:
		m.ClearReport()
		return nil
	case citation.EdgeSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown Citation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CitationMutation) ResetEdge(name string) error {
	switch name {
	case citation.EdgeReport:
		m.ResetReport()
		return nil
	case citation.EdgeSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown Citation edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	content            *string
	summary            *string
	key_findings       *[]string
	appendkey_findings []string
	word_count         *int
	addword_count      *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	citations          map[string]struct{}
	removedcitations   map[string]struct{}
	clearedcitations   bool
	done               bool
	oldValue           func(context.Context) (*Report, error)
	predicates         []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id string) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ReportMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ReportMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ReportMutation) ResetSessionID() {
	m.session = nil
}

// SetContent sets the "content" field.
func (m *ReportMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ReportMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ReportMutation) ResetContent() {
	m.content = nil
}

// SetSummary sets the "summary" field.
func (m *ReportMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ReportMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ReportMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[report.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ReportMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[report.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ReportMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, report.FieldSummary)
}

// SetKeyFindings sets the "key_findings" field.
func (m *ReportMutation) SetKeyFindings(s []string) {
	m.key_findings = &s
	m.appendkey_findings = nil
}

// KeyFindings returns the value of the "key_findings" field in the mutation.
func (m *ReportMutation) KeyFindings() (r []string, exists bool) {
	v := m.key_findings
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyFindings returns the old "key_findings" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldKeyFindings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyFindings: %w", err)
	}
	return oldValue.KeyFindings, nil
}

// AppendKeyFindings adds s to the "key_findings" field.
func (m *ReportMutation) AppendKeyFindings(s []string) {
	m.appendkey_findings = append(m.appendkey_findings, s...)
}

// AppendedKeyFindings returns the list of values that were appended to the "key_findings" field in this mutation.
func (m *ReportMutation) AppendedKeyFindings() ([]string, bool) {
	if len(m.appendkey_findings) == 0 {
		return nil, false
	}
	return m.appendkey_findings, true
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (m *ReportMutation) ClearKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	m.clearedFields[report.FieldKeyFindings] = struct{}{}
}

// KeyFindingsCleared returns if the "key_findings" field was cleared in this mutation.
func (m *ReportMutation) KeyFindingsCleared() bool {
	_, ok := m.clearedFields[report.FieldKeyFindings]
	return ok
}

// ResetKeyFindings resets all changes to the "key_findings" field.
func (m *ReportMutation) ResetKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	delete(m.clearedFields, report.FieldKeyFindings)
}

// SetWordCount sets the "word_count" field.
func (m *ReportMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *ReportMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *ReportMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *ReportMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *ReportMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (m *ReportMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[report.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ResearchSession entity was cleared.
func (m *ReportMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ReportMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddCitationIDs adds the "citations" edge to the Citation entity by ids.
func (m *ReportMutation) AddCitationIDs(ids ...string) {
	if m.citations == nil {
		m.citations = make(map[string]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the Citation entity.
func (m *ReportMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the Citation entity was cleared.
func (m *ReportMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the Citation entity by IDs.
func (m *ReportMutation) RemoveCitationIDs(ids ...string) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the Citation entity.
func (m *ReportMutation) RemovedCitationsIDs() (ids []string) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *ReportMutation) CitationsIDs() (ids []string) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *ReportMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, report.FieldSessionID)
	}
	if m.content != nil {
		fields = append(fields, report.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, report.FieldSummary)
	}
	if m.key_findings != nil {
		fields = append(fields, report.FieldKeyFindings)
	}
	if m.word_count != nil {
		fields = append(fields, report.FieldWordCount)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldSessionID:
		return m.SessionID()
	case report.FieldContent:
		return m.Content()
	case report.FieldSummary:
		return m.Summary()
	case report.FieldKeyFindings:
		return m.KeyFindings()
	case report.FieldWordCount:
		return m.WordCount()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldSessionID:
		return m.OldSessionID(ctx)
	case report.FieldContent:
		return m.OldContent(ctx)
	case report.FieldSummary:
		return m.OldSummary(ctx)
	case report.FieldKeyFindings:
		return m.OldKeyFindings(ctx)
	case report.FieldWordCount:
		return m.OldWordCount(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case report.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case report.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case report.FieldKeyFindings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyFindings(v)
		return nil
	case report.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.addword_count != nil {
		fields = append(fields, report.FieldWordCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldWordCount:
		return m.AddedWordCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldSummary) {
		fields = append(fields, report.FieldSummary)
	}
	if m.FieldCleared(report.FieldKeyFindings) {
		fields = append(fields, report.FieldKeyFindings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldSummary:
		m.ClearSummary()
		return nil
	case report.FieldKeyFindings:
		m.ClearKeyFindings()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldSessionID:
		m.ResetSessionID()
		return nil
	case report.FieldContent:
		m.ResetContent()
		return nil
	case report.FieldSummary:
		m.ResetSummary()
		return nil
	case report.FieldKeyFindings:
		m.ResetKeyFindings()
		return nil
	case report.FieldWordCount:
		m.ResetWordCount()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, report.EdgeSession)
	}
	if m.citations != nil {
		edges = append(edges, report.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcitations != nil {
		edges = append(edges, report.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, report.EdgeSession)
	}
	if m.clearedcitations {
		edges = append(edges, report.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeSession:
		return m.clearedsession
	case report.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeSession:
		m.ResetSession()
		return nil
	case report.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// ResearchDataMutation represents an operation that mutates the ResearchData nodes in the graph.
type ResearchDataMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	data_type          *researchdata.DataType
	query              *string
	title              *string
	content            *string
	content_hash       *string
	metadata           *map[string]interface{}
	relevance_score    *float64
	addrelevance_score *float64
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	done               bool
	oldValue           func(context.Context) (*ResearchData, error)
	predicates         []predicate.ResearchData
}

var _ ent.Mutation = (*ResearchDataMutation)(nil)

// researchdataOption allows management of the mutation configuration using functional options.
type researchdataOption func(*ResearchDataMutation)

// newResearchDataMutation creates new mutation for the ResearchData entity.
func newResearchDataMutation(c config, op Op, opts ...researchdataOption) *ResearchDataMutation {
	m := &ResearchDataMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchDataID sets the ID field of the mutation.
func withResearchDataID(id string) researchdataOption {
	return func(m *ResearchDataMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchData
		)
		m.oldValue = func(ctx context.Context) (*ResearchData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchData sets the old ResearchData of the mutation.
func withResearchData(node *ResearchData) researchdataOption {
	return func(m *ResearchDataMutation) {
		m.oldValue = func(context.Context) (*ResearchData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchData entities.
func (m *ResearchDataMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchDataMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchDataMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ResearchDataMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResearchDataMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ResearchDataMutation) ResetSessionID() {
	m.session = nil
}

// SetDataType sets the "data_type" field.
func (m *ResearchDataMutation) SetDataType(rt researchdata.DataType) {
	m.data_type = &rt
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *ResearchDataMutation) DataType() (r researchdata.DataType, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldDataType(ctx context.Context) (v researchdata.DataType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *ResearchDataMutation) ResetDataType() {
	m.data_type = nil
}

// SetQuery sets the "query" field.
func (m *ResearchDataMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *ResearchDataMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ClearQuery clears the value of the "query" field.
func (m *ResearchDataMutation) ClearQuery() {
	m.query = nil
	m.clearedFields[researchdata.FieldQuery] = struct{}{}
}

// QueryCleared returns if the "query" field was cleared in this mutation.
func (m *ResearchDataMutation) QueryCleared() bool {
	_, ok := m.clearedFields[researchdata.FieldQuery]
	return ok
}

// ResetQuery resets all changes to the "query" field.
func (m *ResearchDataMutation) ResetQuery() {
	m.query = nil
	delete(m.clearedFields, researchdata.FieldQuery)
}

// SetTitle sets the "title" field.
func (m *ResearchDataMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ResearchDataMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ResearchDataMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[researchdata.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ResearchDataMutation) TitleCleared() bool {
	_, ok := m.clearedFields[researchdata.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ResearchDataMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, researchdata.FieldTitle)
}

// SetContent sets the "content" field.
func (m *ResearchDataMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ResearchDataMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ResearchDataMutation) ResetContent() {
	m.content = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ResearchDataMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ResearchDataMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ResearchDataMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetMetadata sets the "metadata" field.
func (m *ResearchDataMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ResearchDataMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ResearchDataMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[researchdata.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ResearchDataMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[researchdata.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ResearchDataMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, researchdata.FieldMetadata)
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *ResearchDataMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *ResearchDataMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *ResearchDataMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *ResearchDataMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *ResearchDataMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchDataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchDataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchData entity.
// If the ResearchData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchDataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchDataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (m *ResearchDataMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[researchdata.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ResearchSession entity was cleared.
func (m *ResearchDataMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ResearchDataMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ResearchDataMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ResearchDataMutation builder.
func (m *ResearchDataMutation) Where(ps ...predicate.ResearchData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchData).
func (m *ResearchDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchDataMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, researchdata.FieldSessionID)
	}
	if m.data_type != nil {
		fields = append(fields, researchdata.FieldDataType)
	}
	if m.query != nil {
		fields = append(fields, researchdata.FieldQuery)
	}
	if m.title != nil {
		fields = append(fields, researchdata.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, researchdata.FieldContent)
	}
	if m.content_hash != nil {
		fields = append(fields, researchdata.FieldContentHash)
	}
	if m.metadata != nil {
		fields = append(fields, researchdata.FieldMetadata)
	}
	if m.relevance_score != nil {
		fields = append(fields, researchdata.FieldRelevanceScore)
	}
	if m.created_at != nil {
		fields = append(fields, researchdata.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchdata.FieldSessionID:
		return m.SessionID()
	case researchdata.FieldDataType:
		return m.DataType()
	case researchdata.FieldQuery:
		return m.Query()
	case researchdata.FieldTitle:
		return m.Title()
	case researchdata.FieldContent:
		return m.Content()
	case researchdata.FieldContentHash:
		return m.ContentHash()
	case researchdata.FieldMetadata:
		return m.Metadata()
	case researchdata.FieldRelevanceScore:
		return m.RelevanceScore()
	case researchdata.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchdata.FieldSessionID:
		return m.OldSessionID(ctx)
	case researchdata.FieldDataType:
		return m.OldDataType(ctx)
	case researchdata.FieldQuery:
		return m.OldQuery(ctx)
	case researchdata.FieldTitle:
		return m.OldTitle(ctx)
	case researchdata.FieldContent:
		return m.OldContent(ctx)
	case researchdata.FieldContentHash:
		return m.OldContentHash(ctx)
	case researchdata.FieldMetadata:
		return m.OldMetadata(ctx)
	case researchdata.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case researchdata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchdata.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case researchdata.FieldDataType:
		v, ok := value.(researchdata.DataType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case researchdata.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case researchdata.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case researchdata.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case researchdata.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case researchdata.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case researchdata.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case researchdata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchDataMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_score != nil {
		fields = append(fields, researchdata.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchDataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchdata.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchdata.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchDataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchdata.FieldQuery) {
		fields = append(fields, researchdata.FieldQuery)
	}
	if m.FieldCleared(researchdata.FieldTitle) {
		fields = append(fields, researchdata.FieldTitle)
	}
	if m.FieldCleared(researchdata.FieldMetadata) {
		fields = append(fields, researchdata.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchDataMutation) ClearField(name string) error {
	switch name {
	case researchdata.FieldQuery:
		m.ClearQuery()
		return nil
	case researchdata.FieldTitle:
		m.ClearTitle()
		return nil
	case researchdata.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResearchData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchDataMutation) ResetField(name string) error {
	switch name {
	case researchdata.FieldSessionID:
		m.ResetSessionID()
		return nil
	case researchdata.FieldDataType:
		m.ResetDataType()
		return nil
	case researchdata.FieldQuery:
		m.ResetQuery()
		return nil
	case researchdata.FieldTitle:
		m.ResetTitle()
		return nil
	case researchdata.FieldContent:
		m.ResetContent()
		return nil
	case researchdata.FieldContentHash:
		m.ResetContentHash()
		return nil
	case researchdata.FieldMetadata:
		m.ResetMetadata()
		return nil
	case researchdata.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case researchdata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, researchdata.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchdata.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchDataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, researchdata.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchDataMutation) EdgeCleared(name string) bool {
	switch name {
	case researchdata.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchDataMutation) ClearEdge(name string) error {
	switch name {
	case researchdata.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ResearchData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchDataMutation) ResetEdge(name string) error {
	switch name {
	case researchdata.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ResearchData edge %s", name)
}

// ResearchQueryMutation represents an operation that mutates the ResearchQuery nodes in the graph.
type ResearchQueryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	query           *string
	result_count    *int
	addresult_count *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*ResearchQuery, error)
	predicates      []predicate.ResearchQuery
}

var _ ent.Mutation = (*ResearchQueryMutation)(nil)

// researchqueryOption allows management of the mutation configuration using functional options.
type researchqueryOption func(*ResearchQueryMutation)

// newResearchQueryMutation creates new mutation for the ResearchQuery entity.
func newResearchQueryMutation(c config, op Op, opts ...researchqueryOption) *ResearchQueryMutation {
	m := &ResearchQueryMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchQuery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchQueryID sets the ID field of the mutation.
func withResearchQueryID(id string) researchqueryOption {
	return func(m *ResearchQueryMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchQuery
		)
		m.oldValue = func(ctx context.Context) (*ResearchQuery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchQuery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchQuery sets the old ResearchQuery of the mutation.
func withResearchQuery(node *ResearchQuery) researchqueryOption {
	return func(m *ResearchQueryMutation) {
		m.oldValue = func(context.Context) (*ResearchQuery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchQueryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchQueryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchQuery entities.
func (m *ResearchQueryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchQueryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchQueryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchQuery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ResearchQueryMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResearchQueryMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ResearchQuery entity.
// If the ResearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchQueryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ResearchQueryMutation) ResetSessionID() {
	m.session = nil
}

// SetQuery sets the "query" field.
func (m *ResearchQueryMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *ResearchQueryMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the ResearchQuery entity.
// If the ResearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchQueryMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *ResearchQueryMutation) ResetQuery() {
	m.query = nil
}

// SetResultCount sets the "result_count" field.
func (m *ResearchQueryMutation) SetResultCount(i int) {
	m.result_count = &i
	m.addresult_count = nil
}

// ResultCount returns the value of the "result_count" field in the mutation.
func (m *ResearchQueryMutation) ResultCount() (r int, exists bool) {
	v := m.result_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResultCount returns the old "result_count" field's value of the ResearchQuery entity.
// If the ResearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchQueryMutation) OldResultCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultCount: %w", err)
	}
	return oldValue.ResultCount, nil
}

// AddResultCount adds i to the "result_count" field.
func (m *ResearchQueryMutation) AddResultCount(i int) {
	if m.addresult_count != nil {
		*m.addresult_count += i
	} else {
		m.addresult_count = &i
	}
}

// AddedResultCount returns the value that was added to the "result_count" field in this mutation.
func (m *ResearchQueryMutation) AddedResultCount() (r int, exists bool) {
	v := m.addresult_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResultCount resets all changes to the "result_count" field.
func (m *ResearchQueryMutation) ResetResultCount() {
	m.result_count = nil
	m.addresult_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchQueryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchQueryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchQuery entity.
// If the ResearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchQueryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchQueryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (m *ResearchQueryMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[researchquery.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ResearchSession entity was cleared.
func (m *ResearchQueryMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ResearchQueryMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ResearchQueryMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ResearchQueryMutation builder.
func (m *ResearchQueryMutation) Where(ps ...predicate.ResearchQuery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchQueryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchQueryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchQuery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchQueryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchQueryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchQuery).
func (m *ResearchQueryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchQueryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, researchquery.FieldSessionID)
	}
	if m.query != nil {
		fields = append(fields, researchquery.FieldQuery)
	}
	if m.result_count != nil {
		fields = append(fields, researchquery.FieldResultCount)
	}
	if m.created_at != nil {
		fields = append(fields, researchquery.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchQueryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchquery.FieldSessionID:
		return m.SessionID()
	case researchquery.FieldQuery:
		return m.Query()
	case researchquery.FieldResultCount:
		return m.ResultCount()
	case researchquery.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchQueryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchquery.FieldSessionID:
		return m.OldSessionID(ctx)
	case researchquery.FieldQuery:
		return m.OldQuery(ctx)
	case researchquery.FieldResultCount:
		return m.OldResultCount(ctx)
	case researchquery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchQuery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchQueryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchquery.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case researchquery.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case researchquery.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultCount(v)
		return nil
	case researchquery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchQuery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchQueryMutation) AddedFields() []string {
	var fields []string
	if m.addresult_count != nil {
		fields = append(fields, researchquery.FieldResultCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchQueryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchquery.FieldResultCount:
		return m.AddedResultCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchQueryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchquery.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResultCount(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchQuery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchQueryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchQueryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchQueryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ResearchQuery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchQueryMutation) ResetField(name string) error {
	switch name {
	case researchquery.FieldSessionID:
		m.ResetSessionID()
		return nil
	case researchquery.FieldQuery:
		m.ResetQuery()
		return nil
	case researchquery.FieldResultCount:
		m.ResetResultCount()
		return nil
	case researchquery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchQuery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchQueryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, researchquery.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchQueryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchquery.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchQueryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchQueryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchQueryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, researchquery.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchQueryMutation) EdgeCleared(name string) bool {
	switch name {
	case researchquery.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchQueryMutation) ClearEdge(name string) error {
	switch name {
	case researchquery.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ResearchQuery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchQueryMutation) ResetEdge(name string) error {
	switch name {
	case researchquery.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ResearchQuery edge %s", name)
}

// ResearchSessionMutation represents an operation that mutates the ResearchSession nodes in the graph.
type ResearchSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	user_id                 *string
	topic                   *string
	status                  *researchsession.Status
	parameters              *map[string]interface{}
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	error_message           *string
	report_id               *string
	retried_from            *string
	pod_id                  *string
	last_interaction_at     *time.Time
	clearedFields           map[string]struct{}
	generated_report        *string
	clearedgenerated_report bool
	sources                 map[string]struct{}
	removedsources          map[string]struct{}
	clearedsources          bool
	research_data           map[string]struct{}
	removedresearch_data    map[string]struct{}
	clearedresearch_data    bool
	queries                 map[string]struct{}
	removedqueries          map[string]struct{}
	clearedqueries          bool
	done                    bool
	oldValue                func(context.Context) (*ResearchSession, error)
	predicates              []predicate.ResearchSession
}

var _ ent.Mutation = (*ResearchSessionMutation)(nil)

// researchsessionOption allows management of the mutation configuration using functional options.
type researchsessionOption func(*ResearchSessionMutation)

// newResearchSessionMutation creates new mutation for the ResearchSession entity.
func newResearchSessionMutation(c config, op Op, opts ...researchsessionOption) *ResearchSessionMutation {
	m := &ResearchSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchSessionID sets the ID field of the mutation.
func withResearchSessionID(id string) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchSession
		)
		m.oldValue = func(ctx context.Context) (*ResearchSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchSession sets the old ResearchSession of the mutation.
func withResearchSession(node *ResearchSession) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		m.oldValue = func(context.Context) (*ResearchSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchSession entities.
func (m *ResearchSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ResearchSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ResearchSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ResearchSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopic sets the "topic" field.
func (m *ResearchSessionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *ResearchSessionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *ResearchSessionMutation) ResetTopic() {
	m.topic = nil
}

// SetStatus sets the "status" field.
func (m *ResearchSessionMutation) SetStatus(r researchsession.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResearchSessionMutation) Status() (r researchsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStatus(ctx context.Context) (v researchsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResearchSessionMutation) ResetStatus() {
	m.status = nil
}

// SetParameters sets the "parameters" field.
func (m *ResearchSessionMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *ResearchSessionMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *ResearchSessionMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[researchsession.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *ResearchSessionMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *ResearchSessionMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, researchsession.FieldParameters)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ResearchSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ResearchSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ResearchSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[researchsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ResearchSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, researchsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResearchSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResearchSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResearchSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[researchsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResearchSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, researchsession.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ResearchSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ResearchSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ResearchSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[researchsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ResearchSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ResearchSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, researchsession.FieldErrorMessage)
}

// SetReportID sets the "report_id" field.
func (m *ResearchSessionMutation) SetReportID(s string) {
	m.report_id = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ResearchSessionMutation) ReportID() (r string, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldReportID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ClearReportID clears the value of the "report_id" field.
func (m *ResearchSessionMutation) ClearReportID() {
	m.report_id = nil
	m.clearedFields[researchsession.FieldReportID] = struct{}{}
}

// ReportIDCleared returns if the "report_id" field was cleared in this mutation.
func (m *ResearchSessionMutation) ReportIDCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldReportID]
	return ok
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ResearchSessionMutation) ResetReportID() {
	m.report_id = nil
	delete(m.clearedFields, researchsession.FieldReportID)
}

// SetRetriedFrom sets the "retried_from" field.
func (m *ResearchSessionMutation) SetRetriedFrom(s string) {
	m.retried_from = &s
}

// RetriedFrom returns the value of the "retried_from" field in the mutation.
func (m *ResearchSessionMutation) RetriedFrom() (r string, exists bool) {
	v := m.retried_from
	if v == nil {
		return
	}
	return *v, true
}

// OldRetriedFrom returns the old "retried_from" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldRetriedFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetriedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetriedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetriedFrom: %w", err)
	}
	return oldValue.RetriedFrom, nil
}

// ClearRetriedFrom clears the value of the "retried_from" field.
func (m *ResearchSessionMutation) ClearRetriedFrom() {
	m.retried_from = nil
	m.clearedFields[researchsession.FieldRetriedFrom] = struct{}{}
}

// RetriedFromCleared returns if the "retried_from" field was cleared in this mutation.
func (m *ResearchSessionMutation) RetriedFromCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldRetriedFrom]
	return ok
}

// ResetRetriedFrom resets all changes to the "retried_from" field.
func (m *ResearchSessionMutation) ResetRetriedFrom() {
	m.retried_from = nil
	delete(m.clearedFields, researchsession.FieldRetriedFrom)
}

// SetPodID sets the "pod_id" field.
func (m *ResearchSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ResearchSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ResearchSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[researchsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ResearchSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ResearchSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, researchsession.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ResearchSessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ResearchSessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ResearchSessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[researchsession.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ResearchSessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, researchsession.FieldLastInteractionAt)
}

// SetGeneratedReportID sets the "generated_report" edge to the Report entity by id.
func (m *ResearchSessionMutation) SetGeneratedReportID(id string) {
	m.generated_report = &id
}

// ClearGeneratedReport clears the "generated_report" edge to the Report entity.
func (m *ResearchSessionMutation) ClearGeneratedReport() {
	m.clearedgenerated_report = true
}

// GeneratedReportCleared reports if the "generated_report" edge to the Report entity was cleared.
func (m *ResearchSessionMutation) GeneratedReportCleared() bool {
	return m.clearedgenerated_report
}

// GeneratedReportID returns the "generated_report" edge ID in the mutation.
func (m *ResearchSessionMutation) GeneratedReportID() (id string, exists bool) {
	if m.generated_report != nil {
		return *m.generated_report, true
	}
	return
}

// GeneratedReportIDs returns the "generated_report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GeneratedReportID instead. It exists only for internal usage by the builders.
func (m *ResearchSessionMutation) GeneratedReportIDs() (ids []string) {
	if id := m.generated_report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGeneratedReport resets all changes to the "generated_report" edge.
func (m *ResearchSessionMutation) ResetGeneratedReport() {
	m.generated_report = nil
	m.clearedgenerated_report = false
}

// AddSourceIDs adds the "sources" edge to the Source entity by ids.
func (m *ResearchSessionMutation) AddSourceIDs(ids ...string) {
	if m.sources == nil {
		m.sources = make(map[string]struct{})
	}
	for i := range ids {
		m.sources[ids[i]] = struct{}{}
	}
}

// ClearSources clears the "sources" edge to the Source entity.
func (m *ResearchSessionMutation) ClearSources() {
	m.clearedsources = true
}

// SourcesCleared reports if the "sources" edge to the Source entity was cleared.
func (m *ResearchSessionMutation) SourcesCleared() bool {
	return m.clearedsources
}

// RemoveSourceIDs removes the "sources" edge to the Source entity by IDs.
func (m *ResearchSessionMutation) RemoveSourceIDs(ids ...string) {
	if m.removedsources == nil {
		m.removedsources = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sources, ids[i])
		m.removedsources[ids[i]] = struct{}{}
	}
}

// RemovedSources returns the removed IDs of the "sources" edge to the Source entity.
func (m *ResearchSessionMutation) RemovedSourcesIDs() (ids []string) {
	for id := range m.removedsources {
		ids = append(ids, id)
	}
	return
}

// SourcesIDs returns the "sources" edge IDs in the mutation.
func (m *ResearchSessionMutation) SourcesIDs() (ids []string) {
	for id := range m.sources {
		ids = append(ids, id)
	}
	return
}

// ResetSources resets all changes to the "sources" edge.
func (m *ResearchSessionMutation) ResetSources() {
	m.sources = nil
	m.clearedsources = false
	m.removedsources = nil
}

// AddResearchDatumIDs adds the "research_data" edge to the ResearchData entity by ids.
func (m *ResearchSessionMutation) AddResearchDatumIDs(ids ...string) {
	if m.research_data == nil {
		m.research_data = make(map[string]struct{})
	}
	for i := range ids {
		m.research_data[ids[i]] = struct{}{}
	}
}

// ClearResearchData clears the "research_data" edge to the ResearchData entity.
func (m *ResearchSessionMutation) ClearResearchData() {
	m.clearedresearch_data = true
}

// ResearchDataCleared reports if the "research_data" edge to the ResearchData entity was cleared.
func (m *ResearchSessionMutation) ResearchDataCleared() bool {
	return m.clearedresearch_data
}

// RemoveResearchDatumIDs removes the "research_data" edge to the ResearchData entity by IDs.
func (m *ResearchSessionMutation) RemoveResearchDatumIDs(ids ...string) {
	if m.removedresearch_data == nil {
		m.removedresearch_data = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.research_data, ids[i])
		m.removedresearch_data[ids[i]] = struct{}{}
	}
}

// RemovedResearchData returns the removed IDs of the "research_data" edge to the ResearchData entity.
func (m *ResearchSessionMutation) RemovedResearchDataIDs() (ids []string) {
	for id := range m.removedresearch_data {
		ids = append(ids, id)
	}
	return
}

// ResearchDataIDs returns the "research_data" edge IDs in the mutation.
func (m *ResearchSessionMutation) ResearchDataIDs() (ids []string) {
	for id := range m.research_data {
		ids = append(ids, id)
	}
	return
}

// ResetResearchData resets all changes to the "research_data" edge.
func (m *ResearchSessionMutation) ResetResearchData() {
	m.research_data = nil
	m.clearedresearch_data = false
	m.removedresearch_data = nil
}

// AddQueryIDs adds the "queries" edge to the ResearchQuery entity by ids.
func (m *ResearchSessionMutation) AddQueryIDs(ids ...string) {
	if m.queries == nil {
		m.queries = make(map[string]struct{})
	}
	for i := range ids {
		m.queries[ids[i]] = struct{}{}
	}
}

// ClearQueries clears the "queries" edge to the ResearchQuery entity.
func (m *ResearchSessionMutation) ClearQueries() {
	m.clearedqueries = true
}

// QueriesCleared reports if the "queries" edge to the ResearchQuery entity was cleared.
func (m *ResearchSessionMutation) QueriesCleared() bool {
	return m.clearedqueries
}

// RemoveQueryIDs removes the "queries" edge to the ResearchQuery entity by IDs.
func (m *ResearchSessionMutation) RemoveQueryIDs(ids ...string) {
	if m.removedqueries == nil {
		m.removedqueries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.queries, ids[i])
		m.removedqueries[ids[i]] = struct{}{}
	}
}

// RemovedQueries returns the removed IDs of the "queries" edge to the ResearchQuery entity.
func (m *ResearchSessionMutation) RemovedQueriesIDs() (ids []string) {
	for id := range m.removedqueries {
		ids = append(ids, id)
	}
	return
}

// QueriesIDs returns the "queries" edge IDs in the mutation.
func (m *ResearchSessionMutation) QueriesIDs() (ids []string) {
	for id := range m.queries {
		ids = append(ids, id)
	}
	return
}

// ResetQueries resets all changes to the "queries" edge.
func (m *ResearchSessionMutation) ResetQueries() {
	m.queries = nil
	m.clearedqueries = false
	m.removedqueries = nil
}

// Where appends a list predicates to the ResearchSessionMutation builder.
func (m *ResearchSessionMutation) Where(ps ...predicate.ResearchSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchSession).
func (m *ResearchSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchSessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, researchsession.FieldUserID)
	}
	if m.topic != nil {
		fields = append(fields, researchsession.FieldTopic)
	}
	if m.status != nil {
		fields = append(fields, researchsession.FieldStatus)
	}
	if m.parameters != nil {
		fields = append(fields, researchsession.FieldParameters)
	}
	if m.created_at != nil {
		fields = append(fields, researchsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, researchsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, researchsession.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.report_id != nil {
		fields = append(fields, researchsession.FieldReportID)
	}
	if m.retried_from != nil {
		fields = append(fields, researchsession.FieldRetriedFrom)
	}
	if m.pod_id != nil {
		fields = append(fields, researchsession.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, researchsession.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchsession.FieldUserID:
		return m.UserID()
	case researchsession.FieldTopic:
		return m.Topic()
	case researchsession.FieldStatus:
		return m.Status()
	case researchsession.FieldParameters:
		return m.Parameters()
	case researchsession.FieldCreatedAt:
		return m.CreatedAt()
	case researchsession.FieldStartedAt:
		return m.StartedAt()
	case researchsession.FieldCompletedAt:
		return m.CompletedAt()
	case researchsession.FieldErrorMessage:
		return m.ErrorMessage()
	case researchsession.FieldReportID:
		return m.ReportID()
	case researchsession.FieldRetriedFrom:
		return m.RetriedFrom()
	case researchsession.FieldPodID:
		return m.PodID()
	case researchsession.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchsession.FieldUserID:
		return m.OldUserID(ctx)
	case researchsession.FieldTopic:
		return m.OldTopic(ctx)
	case researchsession.FieldStatus:
		return m.OldStatus(ctx)
	case researchsession.FieldParameters:
		return m.OldParameters(ctx)
	case researchsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case researchsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case researchsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case researchsession.FieldReportID:
		return m.OldReportID(ctx)
	case researchsession.FieldRetriedFrom:
		return m.OldRetriedFrom(ctx)
	case researchsession.FieldPodID:
		return m.OldPodID(ctx)
	case researchsession.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case researchsession.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case researchsession.FieldStatus:
		v, ok := value.(researchsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case researchsession.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case researchsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case researchsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case researchsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case researchsession.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case researchsession.FieldRetriedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetriedFrom(v)
		return nil
	case researchsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case researchsession.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResearchSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchsession.FieldParameters) {
		fields = append(fields, researchsession.FieldParameters)
	}
	if m.FieldCleared(researchsession.FieldStartedAt) {
		fields = append(fields, researchsession.FieldStartedAt)
	}
	if m.FieldCleared(researchsession.FieldCompletedAt) {
		fields = append(fields, researchsession.FieldCompletedAt)
	}
	if m.FieldCleared(researchsession.FieldErrorMessage) {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.FieldCleared(researchsession.FieldReportID) {
		fields = append(fields, researchsession.FieldReportID)
	}
	if m.FieldCleared(researchsession.FieldRetriedFrom) {
		fields = append(fields, researchsession.FieldRetriedFrom)
	}
	if m.FieldCleared(researchsession.FieldPodID) {
		fields = append(fields, researchsession.FieldPodID)
	}
	if m.FieldCleared(researchsession.FieldLastInteractionAt) {
		fields = append(fields, researchsession.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ClearField(name string) error {
	switch name {
	case researchsession.FieldParameters:
		m.ClearParameters()
		return nil
	case researchsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case researchsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case researchsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case researchsession.FieldReportID:
		m.ClearReportID()
		return nil
	case researchsession.FieldRetriedFrom:
		m.ClearRetriedFrom()
		return nil
	case researchsession.FieldPodID:
		m.ClearPodID()
		return nil
	case researchsession.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ResetField(name string) error {
	switch name {
	case researchsession.FieldUserID:
		m.ResetUserID()
		return nil
	case researchsession.FieldTopic:
		m.ResetTopic()
		return nil
	case researchsession.FieldStatus:
		m.ResetStatus()
		return nil
	case researchsession.FieldParameters:
		m.ResetParameters()
		return nil
	case researchsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case researchsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case researchsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case researchsession.FieldReportID:
		m.ResetReportID()
		return nil
	case researchsession.FieldRetriedFrom:
		m.ResetRetriedFrom()
		return nil
	case researchsession.FieldPodID:
		m.ResetPodID()
		return nil
	case researchsession.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.generated_report != nil {
		edges = append(edges, researchsession.EdgeGeneratedReport)
	}
	if m.sources != nil {
		edges = append(edges, researchsession.EdgeSources)
	}
	if m.research_data != nil {
		edges = append(edges, researchsession.EdgeResearchData)
	}
	if m.queries != nil {
		edges = append(edges, researchsession.EdgeQueries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchsession.EdgeGeneratedReport:
		if id := m.generated_report; id != nil {
			return []ent.Value{*id}
		}
	case researchsession.EdgeSources:
		ids := make([]ent.Value, 0, len(m.sources))
		for id := range m.sources {
			ids = append(ids, id)
		}
		return ids
	case researchsession.EdgeResearchData:
		ids := make([]ent.Value, 0, len(m.research_data))
		for id := range m.research_data {
			ids = append(ids, id)
		}
		return ids
	case researchsession.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.queries))
		for id := range m.queries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsources != nil {
		edges = append(edges, researchsession.EdgeSources)
	}
	if m.removedresearch_data != nil {
		edges = append(edges, researchsession.EdgeResearchData)
	}
	if m.removedqueries != nil {
		edges = append(edges, researchsession.EdgeQueries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchsession.EdgeSources:
		ids := make([]ent.Value, 0, len(m.removedsources))
		for id := range m.removedsources {
			ids = append(ids, id)
		}
		return ids
	case researchsession.EdgeResearchData:
		ids := make([]ent.Value, 0, len(m.removedresearch_data))
		for id := range m.removedresearch_data {
			ids = append(ids, id)
		}
		return ids
	case researchsession.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.removedqueries))
		for id := range m.removedqueries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedgenerated_report {
		edges = append(edges, researchsession.EdgeGeneratedReport)
	}
	if m.clearedsources {
		edges = append(edges, researchsession.EdgeSources)
	}
	if m.clearedresearch_data {
		edges = append(edges, researchsession.EdgeResearchData)
	}
	if m.clearedqueries {
		edges = append(edges, researchsession.EdgeQueries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case researchsession.EdgeGeneratedReport:
		return m.clearedgenerated_report
	case researchsession.EdgeSources:
		return m.clearedsources
	case researchsession.EdgeResearchData:
		return m.clearedresearch_data
	case researchsession.EdgeQueries:
		return m.clearedqueries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchSessionMutation) ClearEdge(name string) error {
	switch name {
	case researchsession.EdgeGeneratedReport:
		m.ClearGeneratedReport()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchSessionMutation) ResetEdge(name string) error {
	switch name {
	case researchsession.EdgeGeneratedReport:
		m.ResetGeneratedReport()
		return nil
	case researchsession.EdgeSources:
		m.ResetSources()
		return nil
	case researchsession.EdgeResearchData:
		m.ResetResearchData()
		return nil
	case researchsession.EdgeQueries:
		m.ResetQueries()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession edge %s", name)
}

// SearchHistoryMutation represents an operation that mutates the SearchHistory nodes in the graph.
type SearchHistoryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	query           *string
	result_count    *int
	addresult_count *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	user            *string
	cleareduser     bool
	done            bool
	oldValue        func(context.Context) (*SearchHistory, error)
	predicates      []predicate.SearchHistory
}

var _ ent.Mutation = (*SearchHistoryMutation)(nil)

// searchhistoryOption allows management of the mutation configuration using functional options.
type searchhistoryOption func(*SearchHistoryMutation)

// newSearchHistoryMutation creates new mutation for the SearchHistory entity.
func newSearchHistoryMutation(c config, op Op, opts ...searchhistoryOption) *SearchHistoryMutation {
	m := &SearchHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchHistoryID sets the ID field of the mutation.
func withSearchHistoryID(id string) searchhistoryOption {
	return func(m *SearchHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchHistory
		)
		m.oldValue = func(ctx context.Context) (*SearchHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchHistory sets the old SearchHistory of the mutation.
func withSearchHistory(node *SearchHistory) searchhistoryOption {
	return func(m *SearchHistoryMutation) {
		m.oldValue = func(context.Context) (*SearchHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SearchHistory entities.
func (m *SearchHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SearchHistoryMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SearchHistoryMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SearchHistory entity.
// If the SearchHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchHistoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SearchHistoryMutation) ResetUserID() {
	m.user = nil
}

// SetQuery sets the "query" field.
func (m *SearchHistoryMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *SearchHistoryMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the SearchHistory entity.
// If the SearchHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchHistoryMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *SearchHistoryMutation) ResetQuery() {
	m.query = nil
}

// SetResultCount sets the "result_count" field.
func (m *SearchHistoryMutation) SetResultCount(i int) {
	m.result_count = &i
	m.addresult_count = nil
}

// ResultCount returns the value of the "result_count" field in the mutation.
func (m *SearchHistoryMutation) ResultCount() (r int, exists bool) {
	v := m.result_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResultCount returns the old "result_count" field's value of the SearchHistory entity.
// If the SearchHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchHistoryMutation) OldResultCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultCount: %w", err)
	}
	return oldValue.ResultCount, nil
}

// AddResultCount adds i to the "result_count" field.
func (m *SearchHistoryMutation) AddResultCount(i int) {
	if m.addresult_count != nil {
		*m.addresult_count += i
	} else {
		m.addresult_count = &i
	}
}

// AddedResultCount returns the value that was added to the "result_count" field in this mutation.
func (m *SearchHistoryMutation) AddedResultCount() (r int, exists bool) {
	v := m.addresult_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResultCount resets all changes to the "result_count" field.
func (m *SearchHistoryMutation) ResetResultCount() {
	m.result_count = nil
	m.addresult_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchHistory entity.
// If the SearchHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *SearchHistoryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[searchhistory.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *SearchHistoryMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *SearchHistoryMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *SearchHistoryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the SearchHistoryMutation builder.
func (m *SearchHistoryMutation) Where(ps ...predicate.SearchHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchHistory).
func (m *SearchHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchHistoryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user != nil {
		fields = append(fields, searchhistory.FieldUserID)
	}
	if m.query != nil {
		fields = append(fields, searchhistory.FieldQuery)
	}
	if m.result_count != nil {
		fields = append(fields, searchhistory.FieldResultCount)
	}
	if m.created_at != nil {
		fields = append(fields, searchhistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchhistory.FieldUserID:
		return m.UserID()
	case searchhistory.FieldQuery:
		return m.Query()
	case searchhistory.FieldResultCount:
		return m.ResultCount()
	case searchhistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchhistory.FieldUserID:
		return m.OldUserID(ctx)
	case searchhistory.FieldQuery:
		return m.OldQuery(ctx)
	case searchhistory.FieldResultCount:
		return m.OldResultCount(ctx)
	case searchhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchhistory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case searchhistory.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case searchhistory.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultCount(v)
		return nil
	case searchhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addresult_count != nil {
		fields = append(fields, searchhistory.FieldResultCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case searchhistory.FieldResultCount:
		return m.AddedResultCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case searchhistory.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResultCount(v)
		return nil
	}
	return fmt.Errorf("unknown SearchHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SearchHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchHistoryMutation) ResetField(name string) error {
	switch name {
	case searchhistory.FieldUserID:
		m.ResetUserID()
		return nil
	case searchhistory.FieldQuery:
		m.ResetQuery()
		return nil
	case searchhistory.FieldResultCount:
		m.ResetResultCount()
		return nil
	case searchhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, searchhistory.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case searchhistory.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, searchhistory.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case searchhistory.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchHistoryMutation) ClearEdge(name string) error {
	switch name {
	case searchhistory.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown SearchHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchHistoryMutation) ResetEdge(name string) error {
	switch name {
	case searchhistory.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown SearchHistory edge %s", name)
}

// SourceMutation represents an operation that mutates the Source nodes in the graph.
type SourceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	url                *string
	title              *string
	content            *string
	summary            *string
	relevance_score    *float64
	addrelevance_score *float64
	accessed_at        *time.Time
	metadata           *map[string]interface{}
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	citations          map[string]struct{}
	removedcitations   map[string]struct{}
	clearedcitations   bool
	done               bool
	oldValue           func(context.Context) (*Source, error)
	predicates         []predicate.Source
}

var _ ent.Mutation = (*SourceMutation)(nil)

// sourceOption allows management of the mutation configuration using functional options.
type sourceOption func(*SourceMutation)

// newSourceMutation creates new mutation for the Source entity.
func newSourceMutation(c config, op Op, opts ...sourceOption) *SourceMutation {
	m := &SourceMutation{
		config:        c,
		op:            op,
		typ:           TypeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceID sets the ID field of the mutation.
func withSourceID(id string) sourceOption {
	return func(m *SourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Source
		)
		m.oldValue = func(ctx context.Context) (*Source, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Source.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSource sets the old Source of the mutation.
func withSource(node *Source) sourceOption {
	return func(m *SourceMutation) {
		m.oldValue = func(context.Context) (*Source, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Source entities.
func (m *SourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Source.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SourceMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SourceMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SourceMutation) ResetSessionID() {
	m.session = nil
}

// SetURL sets the "url" field.
func (m *SourceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SourceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *SourceMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *SourceMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SourceMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SourceMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[source.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SourceMutation) TitleCleared() bool {
	_, ok := m.clearedFields[source.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SourceMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, source.FieldTitle)
}

// SetContent sets the "content" field.
func (m *SourceMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SourceMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *SourceMutation) ClearContent() {
	m.content = nil
	m.clearedFields[source.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *SourceMutation) ContentCleared() bool {
	_, ok := m.clearedFields[source.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *SourceMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, source.FieldContent)
}

// SetSummary sets the "summary" field.
func (m *SourceMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SourceMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SourceMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[source.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SourceMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[source.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SourceMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, source.FieldSummary)
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *SourceMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *SourceMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *SourceMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *SourceMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *SourceMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// SetAccessedAt sets the "accessed_at" field.
func (m *SourceMutation) SetAccessedAt(t time.Time) {
	m.accessed_at = &t
}

// AccessedAt returns the value of the "accessed_at" field in the mutation.
func (m *SourceMutation) AccessedAt() (r time.Time, exists bool) {
	v := m.accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessedAt returns the old "accessed_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldAccessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessedAt: %w", err)
	}
	return oldValue.AccessedAt, nil
}

// ResetAccessedAt resets all changes to the "accessed_at" field.
func (m *SourceMutation) ResetAccessedAt() {
	m.accessed_at = nil
}

// SetMetadata sets the "metadata" field.
func (m *SourceMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SourceMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SourceMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[source.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SourceMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[source.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SourceMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, source.FieldMetadata)
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (m *SourceMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[source.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ResearchSession entity was cleared.
func (m *SourceMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SourceMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SourceMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddCitationIDs adds the "citations" edge to the Citation entity by ids.
func (m *SourceMutation) AddCitationIDs(ids ...string) {
	if m.citations == nil {
		m.citations = make(map[string]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the Citation entity.
func (m *SourceMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the Citation entity was cleared.
func (m *SourceMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the Citation entity by IDs.
func (m *SourceMutation) RemoveCitationIDs(ids ...string) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the Citation entity.
func (m *SourceMutation) RemovedCitationsIDs() (ids []string) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *SourceMutation) CitationsIDs() (ids []string) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *SourceMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the SourceMutation builder.
func (m *SourceMutation) Where(ps ...predicate.Source) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Source, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Source).
func (m *SourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, source.FieldSessionID)
	}
	if m.url != nil {
		fields = append(fields, source.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, source.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, source.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, source.FieldSummary)
	}
	if m.relevance_score != nil {
		fields = append(fields, source.FieldRelevanceScore)
	}
	if m.accessed_at != nil {
		fields = append(fields, source.FieldAccessedAt)
	}
	if m.metadata != nil {
		fields = append(fields, source.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case source.FieldSessionID:
		return m.SessionID()
	case source.FieldURL:
		return m.URL()
	case source.FieldTitle:
		return m.Title()
	case source.FieldContent:
		return m.Content()
	case source.FieldSummary:
		return m.Summary()
	case source.FieldRelevanceScore:
		return m.RelevanceScore()
	case source.FieldAccessedAt:
		return m.AccessedAt()
	case source.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case source.FieldSessionID:
		return m.OldSessionID(ctx)
	case source.FieldURL:
		return m.OldURL(ctx)
	case source.FieldTitle:
		return m.OldTitle(ctx)
	case source.FieldContent:
		return m.OldContent(ctx)
	case source.FieldSummary:
		return m.OldSummary(ctx)
	case source.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case source.FieldAccessedAt:
		return m.OldAccessedAt(ctx)
	case source.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Source field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case source.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case source.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case source.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case source.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case source.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case source.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case source.FieldAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessedAt(v)
		return nil
	case source.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_score != nil {
		fields = append(fields, source.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case source.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case source.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Source numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(source.FieldTitle) {
		fields = append(fields, source.FieldTitle)
	}
	if m.FieldCleared(source.FieldContent) {
		fields = append(fields, source.FieldContent)
	}
	if m.FieldCleared(source.FieldSummary) {
		fields = append(fields, source.FieldSummary)
	}
	if m.FieldCleared(source.FieldMetadata) {
		fields = append(fields, source.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMutation) ClearField(name string) error {
	switch name {
	case source.FieldTitle:
		m.ClearTitle()
		return nil
	case source.FieldContent:
		m.ClearContent()
		return nil
	case source.FieldSummary:
		m.ClearSummary()
		return nil
	case source.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Source nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMutation) ResetField(name string) error {
	switch name {
	case source.FieldSessionID:
		m.ResetSessionID()
		return nil
	case source.FieldURL:
		m.ResetURL()
		return nil
	case source.FieldTitle:
		m.ResetTitle()
		return nil
	case source.FieldContent:
		m.ResetContent()
		return nil
	case source.FieldSummary:
		m.ResetSummary()
		return nil
	case source.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case source.FieldAccessedAt:
		m.ResetAccessedAt()
		return nil
	case source.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, source.EdgeSession)
	}
	if m.citations != nil {
		edges = append(edges, source.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case source.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcitations != nil {
		edges = append(edges, source.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, source.EdgeSession)
	}
	if m.clearedcitations {
		edges = append(edges, source.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMutation) EdgeCleared(name string) bool {
	switch name {
	case source.EdgeSession:
		return m.clearedsession
	case source.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMutation) ClearEdge(name string) error {
	switch name {
	case source.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Source unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMutation) ResetEdge(name string) error {
	switch name {
	case source.EdgeSession:
		m.ResetSession()
		return nil
	case source.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown Source edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	email                 *string
	password_hash         *string
	role                  *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	settings              *string
	clearedsettings       bool
	search_history        map[string]struct{}
	removedsearch_history map[string]struct{}
	clearedsearch_history bool
	done                  bool
	oldValue              func(context.Context) (*User, error)
	predicates            []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSettingsID sets the "settings" edge to the UserSetting entity by id.
func (m *UserMutation) SetSettingsID(id string) {
	m.settings = &id
}

// ClearSettings clears the "settings" edge to the UserSetting entity.
func (m *UserMutation) ClearSettings() {
	m.clearedsettings = true
}

// SettingsCleared reports if the "settings" edge to the UserSetting entity was cleared.
func (m *UserMutation) SettingsCleared() bool {
	return m.clearedsettings
}

// SettingsID returns the "settings" edge ID in the mutation.
func (m *UserMutation) SettingsID() (id string, exists bool) {
	if m.settings != nil {
		return *m.settings, true
	}
	return
}

// SettingsIDs returns the "settings" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SettingsID instead. It exists only for internal usage by the builders.
func (m *UserMutation) SettingsIDs() (ids []string) {
	if id := m.settings; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSettings resets all changes to the "settings" edge.
func (m *UserMutation) ResetSettings() {
	m.settings = nil
	m.clearedsettings = false
}

// AddSearchHistoryIDs adds the "search_history" edge to the SearchHistory entity by ids.
func (m *UserMutation) AddSearchHistoryIDs(ids ...string) {
	if m.search_history == nil {
		m.search_history = make(map[string]struct{})
	}
	for i := range ids {
		m.search_history[ids[i]] = struct{}{}
	}
}

// ClearSearchHistory clears the "search_history" edge to the SearchHistory entity.
func (m *UserMutation) ClearSearchHistory() {
	m.clearedsearch_history = true
}

// SearchHistoryCleared reports if the "search_history" edge to the SearchHistory entity was cleared.
func (m *UserMutation) SearchHistoryCleared() bool {
	return m.clearedsearch_history
}

// RemoveSearchHistoryIDs removes the "search_history" edge to the SearchHistory entity by IDs.
func (m *UserMutation) RemoveSearchHistoryIDs(ids ...string) {
	if m.removedsearch_history == nil {
		m.removedsearch_history = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.search_history, ids[i])
		m.removedsearch_history[ids[i]] = struct{}{}
	}
}

// RemovedSearchHistory returns the removed IDs of the "search_history" edge to the SearchHistory entity.
func (m *UserMutation) RemovedSearchHistoryIDs() (ids []string) {
	for id := range m.removedsearch_history {
		ids = append(ids, id)
	}
	return
}

// SearchHistoryIDs returns the "search_history" edge IDs in the mutation.
func (m *UserMutation) SearchHistoryIDs() (ids []string) {
	for id := range m.search_history {
		ids = append(ids, id)
	}
	return
}

// ResetSearchHistory resets all changes to the "search_history" edge.
func (m *UserMutation) ResetSearchHistory() {
	m.search_history = nil
	m.clearedsearch_history = false
	m.removedsearch_history = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.settings != nil {
		edges = append(edges, user.EdgeSettings)
	}
	if m.search_history != nil {
		edges = append(edges, user.EdgeSearchHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSettings:
		if id := m.settings; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeSearchHistory:
		ids := make([]ent.Value, 0, len(m.search_history))
		for id := range m.search_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsearch_history != nil {
		edges = append(edges, user.EdgeSearchHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSearchHistory:
		ids := make([]ent.Value, 0, len(m.removedsearch_history))
		for id := range m.removedsearch_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsettings {
		edges = append(edges, user.EdgeSettings)
	}
	if m.clearedsearch_history {
		edges = append(edges, user.EdgeSearchHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeSettings:
		return m.clearedsettings
	case user.EdgeSearchHistory:
		return m.clearedsearch_history
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeSettings:
		m.ResetSettings()
		return nil
	case user.EdgeSearchHistory:
		m.ResetSearchHistory()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserSettingMutation represents an operation that mutates the UserSetting nodes in the graph.
type UserSettingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	preferences   *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*UserSetting, error)
	predicates    []predicate.UserSetting
}

var _ ent.Mutation = (*UserSettingMutation)(nil)

// usersettingOption allows management of the mutation configuration using functional options.
type usersettingOption func(*UserSettingMutation)

// newUserSettingMutation creates new mutation for the UserSetting entity.
func newUserSettingMutation(c config, op Op, opts ...usersettingOption) *UserSettingMutation {
	m := &UserSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSettingID sets the ID field of the mutation.
func withUserSettingID(id string) usersettingOption {
	return func(m *UserSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSetting
		)
		m.oldValue = func(ctx context.Context) (*UserSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSetting sets the old UserSetting of the mutation.
func withUserSetting(node *UserSetting) usersettingOption {
	return func(m *UserSettingMutation) {
		m.oldValue = func(context.Context) (*UserSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSetting entities.
func (m *UserSettingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSettingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSettingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserSettingMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSettingMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSetting entity.
// If the UserSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSettingMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSettingMutation) ResetUserID() {
	m.user = nil
}

// SetPreferences sets the "preferences" field.
func (m *UserSettingMutation) SetPreferences(value map[string]interface{}) {
	m.preferences = &value
}

// Preferences returns the value of the "preferences" field in the mutation.
func (m *UserSettingMutation) Preferences() (r map[string]interface{}, exists bool) {
	v := m.preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferences returns the old "preferences" field's value of the UserSetting entity.
// If the UserSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSettingMutation) OldPreferences(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferences: %w", err)
	}
	return oldValue.Preferences, nil
}

// ClearPreferences clears the value of the "preferences" field.
func (m *UserSettingMutation) ClearPreferences() {
	m.preferences = nil
	m.clearedFields[usersetting.FieldPreferences] = struct{}{}
}

// PreferencesCleared returns if the "preferences" field was cleared in this mutation.
func (m *UserSettingMutation) PreferencesCleared() bool {
	_, ok := m.clearedFields[usersetting.FieldPreferences]
	return ok
}

// ResetPreferences resets all changes to the "preferences" field.
func (m *UserSettingMutation) ResetPreferences() {
	m.preferences = nil
	delete(m.clearedFields, usersetting.FieldPreferences)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSetting entity.
// If the UserSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSettingMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersetting.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSettingMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSettingMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSettingMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSettingMutation builder.
func (m *UserSettingMutation) Where(ps ...predicate.UserSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSetting).
func (m *UserSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user != nil {
		fields = append(fields, usersetting.FieldUserID)
	}
	if m.preferences != nil {
		fields = append(fields, usersetting.FieldPreferences)
	}
	if m.updated_at != nil {
		fields = append(fields, usersetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersetting.FieldUserID:
		return m.UserID()
	case usersetting.FieldPreferences:
		return m.Preferences()
	case usersetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersetting.FieldUserID:
		return m.OldUserID(ctx)
	case usersetting.FieldPreferences:
		return m.OldPreferences(ctx)
	case usersetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersetting.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersetting.FieldPreferences:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferences(v)
		return nil
	case usersetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersetting.FieldPreferences) {
		fields = append(fields, usersetting.FieldPreferences)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSettingMutation) ClearField(name string) error {
	switch name {
	case usersetting.FieldPreferences:
		m.ClearPreferences()
		return nil
	}
	return fmt.Errorf("unknown UserSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSettingMutation) ResetField(name string) error {
	switch name {
	case usersetting.FieldUserID:
		m.ResetUserID()
		return nil
	case usersetting.FieldPreferences:
		m.ResetPreferences()
		return nil
	case usersetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersetting.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSettingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersetting.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersetting.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSettingMutation) EdgeCleared(name string) bool {
	switch name {
	case usersetting.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSettingMutation) ClearEdge(name string) error {
	switch name {
	case usersetting.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSettingMutation) ResetEdge(name string) error {
	switch name {
	case usersetting.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSetting edge %s", name)
}
