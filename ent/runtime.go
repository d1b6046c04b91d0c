// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studyhall/ent/completionevent"
	"github.com/abhisek/studyhall/ent/schema"
	"github.com/abhisek/studyhall/ent/sessionevent"
	"github.com/abhisek/studyhall/ent/watchevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescSessionID is the schema descriptor for session_id field.
	completioneventDescSessionID := completioneventFields[0].Descriptor()
	// completionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	completionevent.SessionIDValidator = completioneventDescSessionID.Validators[0].(func(string) error)
	// completioneventDescCourseID is the schema descriptor for course_id field.
	completioneventDescCourseID := completioneventFields[1].Descriptor()
	// completionevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	completionevent.CourseIDValidator = completioneventDescCourseID.Validators[0].(func(string) error)
	// completioneventDescLessonID is the schema descriptor for lesson_id field.
	completioneventDescLessonID := completioneventFields[2].Descriptor()
	// completionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	completionevent.LessonIDValidator = completioneventDescLessonID.Validators[0].(func(string) error)
	// completioneventDescLessonTitle is the schema descriptor for lesson_title field.
	completioneventDescLessonTitle := completioneventFields[3].Descriptor()
	// completionevent.DefaultLessonTitle holds the default value on creation for the lesson_title field.
	completionevent.DefaultLessonTitle = completioneventDescLessonTitle.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescCourseID is the schema descriptor for course_id field.
	sessioneventDescCourseID := sessioneventFields[1].Descriptor()
	// sessionevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	sessionevent.CourseIDValidator = sessioneventDescCourseID.Validators[0].(func(string) error)
	// sessioneventDescCourseTitle is the schema descriptor for course_title field.
	sessioneventDescCourseTitle := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultCourseTitle holds the default value on creation for the course_title field.
	sessionevent.DefaultCourseTitle = sessioneventDescCourseTitle.Default.(string)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescLessonsCompleted is the schema descriptor for lessons_completed field.
	sessioneventDescLessonsCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	sessionevent.DefaultLessonsCompleted = sessioneventDescLessonsCompleted.Default.(int)
	// sessioneventDescWatchSecs is the schema descriptor for watch_secs field.
	sessioneventDescWatchSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultWatchSecs holds the default value on creation for the watch_secs field.
	sessionevent.DefaultWatchSecs = sessioneventDescWatchSecs.Default.(int)
	watcheventMixin := schema.WatchEvent{}.Mixin()
	watcheventMixinFields0 := watcheventMixin[0].Fields()
	_ = watcheventMixinFields0
	watcheventFields := schema.WatchEvent{}.Fields()
	_ = watcheventFields
	// watcheventDescTimestamp is the schema descriptor for timestamp field.
	watcheventDescTimestamp := watcheventMixinFields0[1].Descriptor()
	// watchevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	watchevent.DefaultTimestamp = watcheventDescTimestamp.Default.(func() time.Time)
	// watcheventDescSessionID is the schema descriptor for session_id field.
	watcheventDescSessionID := watcheventFields[0].Descriptor()
	// watchevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	watchevent.SessionIDValidator = watcheventDescSessionID.Validators[0].(func(string) error)
	// watcheventDescCourseID is the schema descriptor for course_id field.
	watcheventDescCourseID := watcheventFields[1].Descriptor()
	// watchevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	watchevent.CourseIDValidator = watcheventDescCourseID.Validators[0].(func(string) error)
	// watcheventDescLessonID is the schema descriptor for lesson_id field.
	watcheventDescLessonID := watcheventFields[2].Descriptor()
	// watchevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	watchevent.LessonIDValidator = watcheventDescLessonID.Validators[0].(func(string) error)
}
