// Code generated by ent, DO NOT EDIT.

package watchevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyhall/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldSessionID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldCourseID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldLessonID, v))
}

// Seconds applies equality check predicate on the "seconds" field. It's identical to SecondsEQ.
func Seconds(v int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldSeconds, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldContainsFold(FieldCourseID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// SecondsEQ applies the EQ predicate on the "seconds" field.
func SecondsEQ(v int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldEQ(FieldSeconds, v))
}

// SecondsNEQ applies the NEQ predicate on the "seconds" field.
func SecondsNEQ(v int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNEQ(FieldSeconds, v))
}

// SecondsIn applies the In predicate on the "seconds" field.
func SecondsIn(vs ...int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldIn(FieldSeconds, vs...))
}

// SecondsNotIn applies the NotIn predicate on the "seconds" field.
func SecondsNotIn(vs ...int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldNotIn(FieldSeconds, vs...))
}

// SecondsGT applies the GT predicate on the "seconds" field.
func SecondsGT(v int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGT(FieldSeconds, v))
}

// SecondsGTE applies the GTE predicate on the "seconds" field.
func SecondsGTE(v int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldGTE(FieldSeconds, v))
}

// SecondsLT applies the LT predicate on the "seconds" field.
func SecondsLT(v int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLT(FieldSeconds, v))
}

// SecondsLTE applies the LTE predicate on the "seconds" field.
func SecondsLTE(v int) predicate.WatchEvent {
	return predicate.WatchEvent(sql.FieldLTE(FieldSeconds, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WatchEvent) predicate.WatchEvent {
	return predicate.WatchEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WatchEvent) predicate.WatchEvent {
	return predicate.WatchEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WatchEvent) predicate.WatchEvent {
	return predicate.WatchEvent(sql.NotPredicates(p))
}
