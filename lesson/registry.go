package lesson

import (
	"errors"
	"fmt"
	"io"
)

// Registry holds lessons by name and remembers their registration order.
type Registry struct {
	items map[string]Lesson
	order []string
	errs  []error
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Lesson{}}
}

// Provide registers l and returns the registry for chaining.
//
// Malformed or duplicate lessons are not stored; the problem is recorded and
// reported by Err.
func (r *Registry) Provide(l Lesson) *Registry {
	switch {
	case l.Name == "":
		r.errs = append(r.errs, InvalidLessonError{Name: l.Title, Reason: ErrEmptyName})
	case l.Run == nil:
		r.errs = append(r.errs, InvalidLessonError{Name: l.Name, Reason: ErrNilRun})
	default:
		if _, exists := r.items[l.Name]; exists {
			r.errs = append(r.errs, DuplicateLessonError{Name: l.Name})
			break
		}
		r.items[l.Name] = l
		r.order = append(r.order, l.Name)
	}
	return r
}

// Err returns every problem recorded by Provide, joined, or nil.
func (r *Registry) Err() error { return errors.Join(r.errs...) }

// Get returns the lesson if present (no panic).
func (r *Registry) Get(name string) (Lesson, bool) {
	l, ok := r.items[name]
	return l, ok
}

// MustGet returns the lesson or panics with a helpful message.
func (r *Registry) MustGet(name string) Lesson {
	l, ok := r.items[name]
	if !ok {
		panic(fmt.Errorf("lesson: registry missing %q", name))
	}
	return l
}

// Names returns lesson names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lessons returns lessons in registration order.
func (r *Registry) Lessons() []Lesson {
	out := make([]Lesson, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.items[name])
	}
	return out
}

// Run runs the named lesson, writing its transcript to w.
//
// A missing name returns UnknownLessonError. A panicking lesson is converted into an
// error wrapping ErrLessonPanic.
func (r *Registry) Run(name string, w io.Writer) (err error) {
	l, ok := r.items[name]
	if !ok {
		return UnknownLessonError{Name: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrLessonPanic, name, rec)
		}
	}()

	return l.Run(w)
}
