// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchsession type in the database.
	Label = "research_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldRetriedFrom holds the string denoting the retried_from field in the database.
	FieldRetriedFrom = "retried_from"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// EdgeGeneratedReport holds the string denoting the generated_report edge name in mutations.
	EdgeGeneratedReport = "generated_report"
	// EdgeSources holds the string denoting the sources edge name in mutations.
	EdgeSources = "sources"
	// EdgeResearchData holds the string denoting the research_data edge name in mutations.
	EdgeResearchData = "research_data"
	// EdgeQueries holds the string denoting the queries edge name in mutations.
	EdgeQueries = "queries"
	// ReportFieldID holds the string denoting the ID field of the Report.
	ReportFieldID = "report_id"
	// SourceFieldID holds the string denoting the ID field of the Source.
	SourceFieldID = "source_id"
	// ResearchDataFieldID holds the string denoting the ID field of the ResearchData.
	ResearchDataFieldID = "data_id"
	// ResearchQueryFieldID holds the string denoting the ID field of the ResearchQuery.
	ResearchQueryFieldID = "query_id"
	// Table holds the table name of the researchsession in the database.
	Table = "research_sessions"
	// GeneratedReportTable is the table that holds the generated_report relation/edge.
	GeneratedReportTable = "reports"
	// GeneratedReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	GeneratedReportInverseTable = "reports"
	// GeneratedReportColumn is the table column denoting the generated_report relation/edge.
	GeneratedReportColumn = "session_id"
	// SourcesTable is the table that holds the sources relation/edge.
	SourcesTable = "sources"
	// SourcesInverseTable is the table name for the Source entity.
	// It exists in this package in order to avoid circular dependency with the "source" package.
	SourcesInverseTable = "sources"
	// SourcesColumn is the table column denoting the sources relation/edge.
	SourcesColumn = "session_id"
	// ResearchDataTable is the table that holds the research_data relation/edge.
	ResearchDataTable = "research_data"
	// ResearchDataInverseTable is the table name for the ResearchData entity.
	// It exists in this package in order to avoid circular dependency with the "researchdata" package.
	ResearchDataInverseTable = "research_data"
	// ResearchDataColumn is the table column denoting the research_data relation/edge.
	ResearchDataColumn = "session_id"
	// QueriesTable is the table that holds the queries relation/edge.
	QueriesTable = "research_queries"
	// QueriesInverseTable is the table name for the ResearchQuery entity.
	// It exists in this package in order to avoid circular dependency with the "researchquery" package.
	QueriesInverseTable = "research_queries"
	// QueriesColumn is the table column denoting the queries relation/edge.
	QueriesColumn = "session_id"
)

// Columns holds all SQL columns for researchsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopic,
	FieldStatus,
	FieldParameters,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldReportID,
	FieldRetriedFrom,
	FieldPodID,
	FieldLastInteractionAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByRetriedFrom orders the results by the retried_from field.
func ByRetriedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetriedFrom, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByGeneratedReportField orders the results by generated_report field.
func ByGeneratedReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGeneratedReportStep(), sql.OrderByField(field, opts...))
	}
}

// BySourcesCount orders the results by sources count.
func BySourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourcesStep(), opts...)
	}
}

// BySources orders the results by sources terms.
func BySources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResearchDataCount orders the results by research_data count.
func ByResearchDataCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResearchDataStep(), opts...)
	}
}

// ByResearchData orders the results by research_data terms.
func ByResearchData(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResearchDataStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQueriesCount orders the results by queries count.
func ByQueriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQueriesStep(), opts...)
	}
}

// ByQueries orders the results by queries terms.
func ByQueries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQueriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newGeneratedReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GeneratedReportInverseTable, ReportFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, GeneratedReportTable, GeneratedReportColumn),
	)
}
func newSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourcesInverseTable, SourceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
	)
}
func newResearchDataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResearchDataInverseTable, ResearchDataFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResearchDataTable, ResearchDataColumn),
	)
}
func newQueriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QueriesInverseTable, ResearchQueryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QueriesTable, QueriesColumn),
	)
}
