package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WatchEvent records time spent on a lesson, flushed when the learner
// navigates away from it or ends the session.
type WatchEvent struct {
	ent.Schema
}

func (WatchEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (WatchEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.Int("seconds").
			Comment("Seconds the lesson was current before navigating away"),
	}
}

func (WatchEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
	}
}
