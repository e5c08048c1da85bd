// Code generated by ent, DO NOT EDIT.

package search

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/painscope/painscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Search {
	return predicate.Search(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Search {
	return predicate.Search(sql.FieldContainsFold(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldTopic, v))
}

// MinUpvotes applies equality check predicate on the "min_upvotes" field. It's identical to MinUpvotesEQ.
func MinUpvotes(v int) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldMinUpvotes, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldRetryCount, v))
}

// LastRetryAt applies equality check predicate on the "last_retry_at" field. It's identical to LastRetryAtEQ.
func LastRetryAt(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldLastRetryAt, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldNextRetryAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldCompletedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Search {
	return predicate.Search(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Search {
	return predicate.Search(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Search {
	return predicate.Search(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Search {
	return predicate.Search(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Search {
	return predicate.Search(sql.FieldContainsFold(FieldTopic, v))
}

// TimeRangeEQ applies the EQ predicate on the "time_range" field.
func TimeRangeEQ(v TimeRange) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldTimeRange, v))
}

// TimeRangeNEQ applies the NEQ predicate on the "time_range" field.
func TimeRangeNEQ(v TimeRange) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldTimeRange, v))
}

// TimeRangeIn applies the In predicate on the "time_range" field.
func TimeRangeIn(vs ...TimeRange) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldTimeRange, vs...))
}

// TimeRangeNotIn applies the NotIn predicate on the "time_range" field.
func TimeRangeNotIn(vs ...TimeRange) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldTimeRange, vs...))
}

// SortByEQ applies the EQ predicate on the "sort_by" field.
func SortByEQ(v SortBy) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldSortBy, v))
}

// SortByNEQ applies the NEQ predicate on the "sort_by" field.
func SortByNEQ(v SortBy) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldSortBy, v))
}

// SortByIn applies the In predicate on the "sort_by" field.
func SortByIn(vs ...SortBy) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldSortBy, vs...))
}

// SortByNotIn applies the NotIn predicate on the "sort_by" field.
func SortByNotIn(vs ...SortBy) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldSortBy, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldStatus, vs...))
}

// MinUpvotesEQ applies the EQ predicate on the "min_upvotes" field.
func MinUpvotesEQ(v int) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldMinUpvotes, v))
}

// MinUpvotesNEQ applies the NEQ predicate on the "min_upvotes" field.
func MinUpvotesNEQ(v int) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldMinUpvotes, v))
}

// MinUpvotesIn applies the In predicate on the "min_upvotes" field.
func MinUpvotesIn(vs ...int) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldMinUpvotes, vs...))
}

// MinUpvotesNotIn applies the NotIn predicate on the "min_upvotes" field.
func MinUpvotesNotIn(vs ...int) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldMinUpvotes, vs...))
}

// MinUpvotesGT applies the GT predicate on the "min_upvotes" field.
func MinUpvotesGT(v int) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldMinUpvotes, v))
}

// MinUpvotesGTE applies the GTE predicate on the "min_upvotes" field.
func MinUpvotesGTE(v int) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldMinUpvotes, v))
}

// MinUpvotesLT applies the LT predicate on the "min_upvotes" field.
func MinUpvotesLT(v int) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldMinUpvotes, v))
}

// MinUpvotesLTE applies the LTE predicate on the "min_upvotes" field.
func MinUpvotesLTE(v int) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldMinUpvotes, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Search {
	return predicate.Search(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Search {
	return predicate.Search(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Search {
	return predicate.Search(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Search {
	return predicate.Search(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Search {
	return predicate.Search(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Search {
	return predicate.Search(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Search {
	return predicate.Search(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldRetryCount, v))
}

// LastRetryAtEQ applies the EQ predicate on the "last_retry_at" field.
func LastRetryAtEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldLastRetryAt, v))
}

// LastRetryAtNEQ applies the NEQ predicate on the "last_retry_at" field.
func LastRetryAtNEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldLastRetryAt, v))
}

// LastRetryAtIn applies the In predicate on the "last_retry_at" field.
func LastRetryAtIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldLastRetryAt, vs...))
}

// LastRetryAtNotIn applies the NotIn predicate on the "last_retry_at" field.
func LastRetryAtNotIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldLastRetryAt, vs...))
}

// LastRetryAtGT applies the GT predicate on the "last_retry_at" field.
func LastRetryAtGT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldLastRetryAt, v))
}

// LastRetryAtGTE applies the GTE predicate on the "last_retry_at" field.
func LastRetryAtGTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldLastRetryAt, v))
}

// LastRetryAtLT applies the LT predicate on the "last_retry_at" field.
func LastRetryAtLT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldLastRetryAt, v))
}

// LastRetryAtLTE applies the LTE predicate on the "last_retry_at" field.
func LastRetryAtLTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldLastRetryAt, v))
}

// LastRetryAtIsNil applies the IsNil predicate on the "last_retry_at" field.
func LastRetryAtIsNil() predicate.Search {
	return predicate.Search(sql.FieldIsNull(FieldLastRetryAt))
}

// LastRetryAtNotNil applies the NotNil predicate on the "last_retry_at" field.
func LastRetryAtNotNil() predicate.Search {
	return predicate.Search(sql.FieldNotNull(FieldLastRetryAt))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.Search {
	return predicate.Search(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.Search {
	return predicate.Search(sql.FieldNotNull(FieldNextRetryAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Search {
	return predicate.Search(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Search {
	return predicate.Search(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Search {
	return predicate.Search(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Search {
	return predicate.Search(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Search {
	return predicate.Search(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Search {
	return predicate.Search(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Search {
	return predicate.Search(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Search {
	return predicate.Search(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Search {
	return predicate.Search(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Search {
	return predicate.Search(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Search {
	return predicate.Search(sql.FieldNotNull(FieldCompletedAt))
}

// HasSummary applies the HasEdge predicate on the "summary" edge.
func HasSummary() predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummaryWith applies the HasEdge predicate on the "summary" edge with a given conditions (other predicates).
func HasSummaryWith(preds ...predicate.SearchSummary) predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := newSummaryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPainPoints applies the HasEdge predicate on the "pain_points" edge.
func HasPainPoints() predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PainPointsTable, PainPointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPainPointsWith applies the HasEdge predicate on the "pain_points" edge with a given conditions (other predicates).
func HasPainPointsWith(preds ...predicate.PainPoint) predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := newPainPointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.AiAnalysis) predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.SearchEvent) predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsages applies the HasEdge predicate on the "usages" edge.
func HasUsages() predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UsagesTable, UsagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsagesWith applies the HasEdge predicate on the "usages" edge with a given conditions (other predicates).
func HasUsagesWith(preds ...predicate.ApiUsage) predicate.Search {
	return predicate.Search(func(s *sql.Selector) {
		step := newUsagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Search) predicate.Search {
	return predicate.Search(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Search) predicate.Search {
	return predicate.Search(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Search) predicate.Search {
	return predicate.Search(sql.NotPredicates(p))
}
