// Code generated by ent, DO NOT EDIT.

package researchquery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/delverhq/delver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldSessionID, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldQuery, v))
}

// ResultCount applies equality check predicate on the "result_count" field. It's identical to ResultCountEQ.
func ResultCount(v int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldResultCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldContainsFold(FieldSessionID, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldContainsFold(FieldQuery, v))
}

// ResultCountEQ applies the EQ predicate on the "result_count" field.
func ResultCountEQ(v int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldResultCount, v))
}

// ResultCountNEQ applies the NEQ predicate on the "result_count" field.
func ResultCountNEQ(v int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNEQ(FieldResultCount, v))
}

// ResultCountIn applies the In predicate on the "result_count" field.
func ResultCountIn(vs ...int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldIn(FieldResultCount, vs...))
}

// ResultCountNotIn applies the NotIn predicate on the "result_count" field.
func ResultCountNotIn(vs ...int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNotIn(FieldResultCount, vs...))
}

// ResultCountGT applies the GT predicate on the "result_count" field.
func ResultCountGT(v int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGT(FieldResultCount, v))
}

// ResultCountGTE applies the GTE predicate on the "result_count" field.
func ResultCountGTE(v int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGTE(FieldResultCount, v))
}

// ResultCountLT applies the LT predicate on the "result_count" field.
func ResultCountLT(v int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLT(FieldResultCount, v))
}

// ResultCountLTE applies the LTE predicate on the "result_count" field.
func ResultCountLTE(v int) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLTE(FieldResultCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ResearchQuery {
	return predicate.ResearchQuery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ResearchSession) predicate.ResearchQuery {
	return predicate.ResearchQuery(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchQuery) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchQuery) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchQuery) predicate.ResearchQuery {
	return predicate.ResearchQuery(sql.NotPredicates(p))
}
