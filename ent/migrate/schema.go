// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "lesson_title", Type: field.TypeString, Default: ""},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
			{
				Name:    "completionevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "course_title", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "lessons_completed", Type: field.TypeInt, Default: 0},
		{Name: "watch_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6]},
			},
		},
	}
	// WatchEventsColumns holds the columns for the "watch_events" table.
	WatchEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "seconds", Type: field.TypeInt},
	}
	// WatchEventsTable holds the schema information for the "watch_events" table.
	WatchEventsTable = &schema.Table{
		Name:       "watch_events",
		Columns:    WatchEventsColumns,
		PrimaryKey: []*schema.Column{WatchEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "watchevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{WatchEventsColumns[1]},
			},
			{
				Name:    "watchevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{WatchEventsColumns[2]},
			},
			{
				Name:    "watchevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{WatchEventsColumns[3]},
			},
			{
				Name:    "watchevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{WatchEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletionEventsTable,
		SessionEventsTable,
		WatchEventsTable,
	}
)

func init() {
}
