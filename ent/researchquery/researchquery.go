// Code generated by ent, DO NOT EDIT.

package researchquery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchquery type in the database.
	Label = "research_query"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "query_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldResultCount holds the string denoting the result_count field in the database.
	FieldResultCount = "result_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// ResearchSessionFieldID holds the string denoting the ID field of the ResearchSession.
	ResearchSessionFieldID = "session_id"
	// Table holds the table name of the researchquery in the database.
	Table = "research_queries"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "research_queries"
	// SessionInverseTable is the table name for the ResearchSession entity.
	// It exists in this package in order to avoid circular dependency with the "researchsession" package.
	SessionInverseTable = "research_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for researchquery fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldQuery,
	FieldResultCount,
	FieldCreatedAt,
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
	// DefaultResultCount holds the default value on creation for the "result_count" field.
	DefaultResultCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ResearchQuery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByResultCount orders the results by the result_count field.
func ByResultCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, ResearchSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
