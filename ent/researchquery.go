// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/delverhq/delver/ent/researchquery"
	"github.com/delverhq/delver/ent/researchsession"
)

// ResearchQuery is the model entity for the ResearchQuery schema.
type ResearchQuery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Query holds the value of the "query" field.
	Query string `json:"query,omitempty"`
	// ResultCount holds the value of the "result_count" field.
	ResultCount int `json:"result_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchQueryQuery when eager-loading is set.
	Edges        ResearchQueryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchQueryEdges holds the relations/edges for other nodes in the graph.
type ResearchQueryEdges struct {
	// Session holds the value of the session edge.
	Session *ResearchSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchQueryEdges) SessionOrErr() (*ResearchSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchQuery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchquery.FieldResultCount:
			values[i] = new(sql.NullInt64)
		case researchquery.FieldID, researchquery.FieldSessionID, researchquery.FieldQuery:
			values[i] = new(sql.NullString)
		case researchquery.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchQuery fields.
func (_m *ResearchQuery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchquery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchquery.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case researchquery.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case researchquery.FieldResultCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field result_count", values[i])
			} else if value.Valid {
				_m.ResultCount = int(value.Int64)
			}
		case researchquery.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchQuery.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchQuery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ResearchQuery entity.
func (_m *ResearchQuery) QuerySession() *ResearchSessionQuery {
	return NewResearchQueryClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ResearchQuery.
// Note that you need to call ResearchQuery.Unwrap() before calling this method if this ResearchQuery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchQuery) Update() *ResearchQueryUpdateOne {
	return NewResearchQueryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchQuery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchQuery) Unwrap() *ResearchQuery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchQuery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchQuery) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchQuery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("result_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResearchQueries is a parsable slice of ResearchQuery.
type ResearchQueries []*ResearchQuery
