package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records learning-session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("course_id").
			NotEmpty(),
		field.String("course_title").
			Default(""),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("lessons_completed").
			Default(0).
			Comment("Lessons completed during the session (on end only)"),
		field.Int("watch_secs").
			Default(0).
			Comment("Seconds spent watching (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("course_id"),
		index.Fields("action"),
	}
}
