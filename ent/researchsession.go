// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/researchsession"
)

// ResearchSession is the model entity for the ResearchSession schema.
type ResearchSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Natural-language research topic (3..500 chars, validated in service layer)
	Topic string `json:"topic,omitempty"`
	// Status holds the value of the "status" field.
	Status researchsession.Status `json:"status,omitempty"`
	// ResearchParameters blob: max_sources, min_sources, depth, report_length, language, domain filters, date_range
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the session (pending -> processing)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Set iff status=completed
	ReportID *string `json:"report_id,omitempty"`
	// Session id this one was cloned from via retry
	RetriedFrom *string `json:"retried_from,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Worker heartbeat, for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchSessionQuery when eager-loading is set.
	Edges        ResearchSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchSessionEdges holds the relations/edges for other nodes in the graph.
type ResearchSessionEdges struct {
	// GeneratedReport holds the value of the generated_report edge.
	GeneratedReport *Report `json:"generated_report,omitempty"`
	// Sources holds the value of the sources edge.
	Sources []*Source `json:"sources,omitempty"`
	// ResearchData holds the value of the research_data edge.
	ResearchData []*ResearchData `json:"research_data,omitempty"`
	// Queries holds the value of the queries edge.
	Queries []*ResearchQuery `json:"queries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// GeneratedReportOrErr returns the GeneratedReport value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchSessionEdges) GeneratedReportOrErr() (*Report, error) {
	if e.GeneratedReport != nil {
		return e.GeneratedReport, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "generated_report"}
}

// SourcesOrErr returns the Sources value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchSessionEdges) SourcesOrErr() ([]*Source, error) {
	if e.loadedTypes[1] {
		return e.Sources, nil
	}
	return nil, &NotLoadedError{edge: "sources"}
}

// ResearchDataOrErr returns the ResearchData value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchSessionEdges) ResearchDataOrErr() ([]*ResearchData, error) {
	if e.loadedTypes[2] {
		return e.ResearchData, nil
	}
	return nil, &NotLoadedError{edge: "research_data"}
}

// QueriesOrErr returns the Queries value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchSessionEdges) QueriesOrErr() ([]*ResearchQuery, error) {
	if e.loadedTypes[3] {
		return e.Queries, nil
	}
	return nil, &NotLoadedError{edge: "queries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldParameters:
			values[i] = new([]byte)
		case researchsession.FieldID, researchsession.FieldUserID, researchsession.FieldTopic, researchsession.FieldStatus, researchsession.FieldErrorMessage, researchsession.FieldReportID, researchsession.FieldRetriedFrom, researchsession.FieldPodID:
			values[i] = new(sql.NullString)
		case researchsession.FieldCreatedAt, researchsession.FieldStartedAt, researchsession.FieldCompletedAt, researchsession.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchSession fields.
func (_m *ResearchSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case researchsession.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case researchsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchsession.Status(value.String)
			}
		case researchsession.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case researchsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case researchsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case researchsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case researchsession.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = new(string)
				*_m.ReportID = value.String
			}
		case researchsession.FieldRetriedFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field retried_from", values[i])
			} else if value.Valid {
				_m.RetriedFrom = new(string)
				*_m.RetriedFrom = value.String
			}
		case researchsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case researchsession.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchSession.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGeneratedReport queries the "generated_report" edge of the ResearchSession entity.
func (_m *ResearchSession) QueryGeneratedReport() *ReportQuery {
	return NewResearchSessionClient(_m.config).QueryGeneratedReport(_m)
}

// QuerySources queries the "sources" edge of the ResearchSession entity.
func (_m *ResearchSession) QuerySources() *SourceQuery {
	return NewResearchSessionClient(_m.config).QuerySources(_m)
}

// QueryResearchData queries the "research_data" edge of the ResearchSession entity.
func (_m *ResearchSession) QueryResearchData() *ResearchDataQuery {
	return NewResearchSessionClient(_m.config).QueryResearchData(_m)
}

// QueryQueries queries the "queries" edge of the ResearchSession entity.
func (_m *ResearchSession) QueryQueries() *ResearchQueryQuery {
	return NewResearchSessionClient(_m.config).QueryQueries(_m)
}

// Update returns a builder for updating this ResearchSession.
// Note that you need to call ResearchSession.Unwrap() before calling this method if this ResearchSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchSession) Update() *ResearchSessionUpdateOne {
	return NewResearchSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchSession) Unwrap() *ResearchSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchSession) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReportID; v != nil {
		builder.WriteString("report_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RetriedFrom; v != nil {
		builder.WriteString("retried_from=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResearchSessions is a parsable slice of ResearchSession.
type ResearchSessions []*ResearchSession
