// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/delverhq/delver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldTopic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldReportID, v))
}

// RetriedFrom applies equality check predicate on the "retried_from" field. It's identical to RetriedFromEQ.
func RetriedFrom(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldRetriedFrom, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldTopic, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldParameters))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDIsNil applies the IsNil predicate on the "report_id" field.
func ReportIDIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldReportID))
}

// ReportIDNotNil applies the NotNil predicate on the "report_id" field.
func ReportIDNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldReportID))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldReportID, v))
}

// RetriedFromEQ applies the EQ predicate on the "retried_from" field.
func RetriedFromEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldRetriedFrom, v))
}

// RetriedFromNEQ applies the NEQ predicate on the "retried_from" field.
func RetriedFromNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldRetriedFrom, v))
}

// RetriedFromIn applies the In predicate on the "retried_from" field.
func RetriedFromIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldRetriedFrom, vs...))
}

// RetriedFromNotIn applies the NotIn predicate on the "retried_from" field.
func RetriedFromNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldRetriedFrom, vs...))
}

// RetriedFromGT applies the GT predicate on the "retried_from" field.
func RetriedFromGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldRetriedFrom, v))
}

// RetriedFromGTE applies the GTE predicate on the "retried_from" field.
func RetriedFromGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldRetriedFrom, v))
}

// RetriedFromLT applies the LT predicate on the "retried_from" field.
func RetriedFromLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldRetriedFrom, v))
}

// RetriedFromLTE applies the LTE predicate on the "retried_from" field.
func RetriedFromLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldRetriedFrom, v))
}

// RetriedFromContains applies the Contains predicate on the "retried_from" field.
func RetriedFromContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldRetriedFrom, v))
}

// RetriedFromHasPrefix applies the HasPrefix predicate on the "retried_from" field.
func RetriedFromHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldRetriedFrom, v))
}

// RetriedFromHasSuffix applies the HasSuffix predicate on the "retried_from" field.
func RetriedFromHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldRetriedFrom, v))
}

// RetriedFromIsNil applies the IsNil predicate on the "retried_from" field.
func RetriedFromIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldRetriedFrom))
}

// RetriedFromNotNil applies the NotNil predicate on the "retried_from" field.
func RetriedFromNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldRetriedFrom))
}

// RetriedFromEqualFold applies the EqualFold predicate on the "retried_from" field.
func RetriedFromEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldRetriedFrom, v))
}

// RetriedFromContainsFold applies the ContainsFold predicate on the "retried_from" field.
func RetriedFromContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldRetriedFrom, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldLastInteractionAt))
}

// HasGeneratedReport applies the HasEdge predicate on the "generated_report" edge.
func HasGeneratedReport() predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, GeneratedReportTable, GeneratedReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGeneratedReportWith applies the HasEdge predicate on the "generated_report" edge with a given conditions (other predicates).
func HasGeneratedReportWith(preds ...predicate.Report) predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := newGeneratedReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSources applies the HasEdge predicate on the "sources" edge.
func HasSources() predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourcesWith applies the HasEdge predicate on the "sources" edge with a given conditions (other predicates).
func HasSourcesWith(preds ...predicate.Source) predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := newSourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResearchData applies the HasEdge predicate on the "research_data" edge.
func HasResearchData() predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResearchDataTable, ResearchDataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearchDataWith applies the HasEdge predicate on the "research_data" edge with a given conditions (other predicates).
func HasResearchDataWith(preds ...predicate.ResearchData) predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := newResearchDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQueries applies the HasEdge predicate on the "queries" edge.
func HasQueries() predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QueriesTable, QueriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQueriesWith applies the HasEdge predicate on the "queries" edge with a given conditions (other predicates).
func HasQueriesWith(preds ...predicate.ResearchQuery) predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := newQueriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.NotPredicates(p))
}
