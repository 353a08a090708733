// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/delverhq/delver/ent/citation"
	"github.com/delverhq/delver/ent/report"
	"github.com/delverhq/delver/ent/source"
)

// Citation is the model entity for the Citation schema.
type Citation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID *string `json:"source_id,omitempty"`
	// Quote holds the value of the "quote" field.
	Quote string `json:"quote,omitempty"`
	// Context holds the value of the "context" field.
	Context string `json:"context,omitempty"`
	// 0-based index within the report's citation order
	Position int `json:"position,omitempty"`
	// Resolved link when the citation came from an inline markdown link
	URL string `json:"url,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CitationQuery when eager-loading is set.
	Edges        CitationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CitationEdges holds the relations/edges for other nodes in the graph.
type CitationEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CitationEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CitationEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Citation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case citation.FieldPosition:
			values[i] = new(sql.NullInt64)
		case citation.FieldID, citation.FieldReportID, citation.FieldSourceID, citation.FieldQuote, citation.FieldContext, citation.FieldURL:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Citation fields.
func (_m *Citation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case citation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case citation.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case citation.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = new(string)
				*_m.SourceID = value.String
			}
		case citation.FieldQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quote", values[i])
			} else if value.Valid {
				_m.Quote = value.String
			}
		case citation.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case citation.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case citation.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Citation.
// This includes values selected through modifiers, order, etc.
func (_m *Citation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the Citation entity.
func (_m *Citation) QueryReport() *ReportQuery {
	return NewCitationClient(_m.config).QueryReport(_m)
}

// QuerySource queries the "source" edge of the Citation entity.
func (_m *Citation) QuerySource() *SourceQuery {
	return NewCitationClient(_m.config).QuerySource(_m)
}

// Update returns a builder for updating this Citation.
// Note that you need to call Citation.Unwrap() before calling this method if this Citation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Citation) Update() *CitationUpdateOne {
	return NewCitationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Citation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Citation) Unwrap() *Citation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Citation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Citation) String() string {
	var builder strings.Builder
	builder.WriteString("Citation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	if v := _m.SourceID; v != nil {
		builder.WriteString("source_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("quote=")
	builder.WriteString(_m.Quote)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteByte(')')
	return builder.String()
}

// Citations is a parsable slice of Citation.
type Citations []*Citation
