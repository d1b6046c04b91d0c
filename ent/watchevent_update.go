// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyhall/ent/predicate"
	"github.com/abhisek/studyhall/ent/watchevent"
)

// WatchEventUpdate is the builder for updating WatchEvent entities.
type WatchEventUpdate struct {
	config
	hooks    []Hook
	mutation *WatchEventMutation
}

// Where appends a list predicates to the WatchEventUpdate builder.
func (_u *WatchEventUpdate) Where(ps ...predicate.WatchEvent) *WatchEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *WatchEventUpdate) SetSessionID(v string) *WatchEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WatchEventUpdate) SetNillableSessionID(v *string) *WatchEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *WatchEventUpdate) SetCourseID(v string) *WatchEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *WatchEventUpdate) SetNillableCourseID(v *string) *WatchEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *WatchEventUpdate) SetLessonID(v string) *WatchEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *WatchEventUpdate) SetNillableLessonID(v *string) *WatchEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *WatchEventUpdate) SetSeconds(v int) *WatchEventUpdate {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *WatchEventUpdate) SetNillableSeconds(v *int) *WatchEventUpdate {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *WatchEventUpdate) AddSeconds(v int) *WatchEventUpdate {
	_u.mutation.AddSeconds(v)
	return _u
}

// Mutation returns the WatchEventMutation object of the builder.
func (_u *WatchEventUpdate) Mutation() *WatchEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WatchEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatchEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WatchEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatchEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatchEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := watchevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "WatchEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := watchevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "WatchEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := watchevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "WatchEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WatchEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watchevent.Table, watchevent.Columns, sqlgraph.NewFieldSpec(watchevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(watchevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(watchevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(watchevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(watchevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(watchevent.FieldSeconds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WatchEventUpdateOne is the builder for updating a single WatchEvent entity.
type WatchEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WatchEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *WatchEventUpdateOne) SetSessionID(v string) *WatchEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WatchEventUpdateOne) SetNillableSessionID(v *string) *WatchEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *WatchEventUpdateOne) SetCourseID(v string) *WatchEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *WatchEventUpdateOne) SetNillableCourseID(v *string) *WatchEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *WatchEventUpdateOne) SetLessonID(v string) *WatchEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *WatchEventUpdateOne) SetNillableLessonID(v *string) *WatchEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *WatchEventUpdateOne) SetSeconds(v int) *WatchEventUpdateOne {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *WatchEventUpdateOne) SetNillableSeconds(v *int) *WatchEventUpdateOne {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *WatchEventUpdateOne) AddSeconds(v int) *WatchEventUpdateOne {
	_u.mutation.AddSeconds(v)
	return _u
}

// Mutation returns the WatchEventMutation object of the builder.
func (_u *WatchEventUpdateOne) Mutation() *WatchEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WatchEventUpdate builder.
func (_u *WatchEventUpdateOne) Where(ps ...predicate.WatchEvent) *WatchEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WatchEventUpdateOne) Select(field string, fields ...string) *WatchEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WatchEvent entity.
func (_u *WatchEventUpdateOne) Save(ctx context.Context) (*WatchEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatchEventUpdateOne) SaveX(ctx context.Context) *WatchEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WatchEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatchEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatchEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := watchevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "WatchEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := watchevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "WatchEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := watchevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "WatchEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WatchEventUpdateOne) sqlSave(ctx context.Context) (_node *WatchEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watchevent.Table, watchevent.Columns, sqlgraph.NewFieldSpec(watchevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WatchEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, watchevent.FieldID)
		for _, f := range fields {
			if !watchevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != watchevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(watchevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(watchevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(watchevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(watchevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(watchevent.FieldSeconds, field.TypeInt, value)
	}
	_node = &WatchEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
