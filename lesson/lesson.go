package lesson

import (
	"errors"
	"io"
	"strconv"
)

var (
	// ErrEmptyName is recorded when a lesson without a name is provided.
	ErrEmptyName = errors.New("lesson: empty lesson name")

	// ErrNilRun is recorded when a lesson without a Run function is provided.
	ErrNilRun = errors.New("lesson: nil run function")

	// ErrLessonPanic is returned when a lesson panics while running.
	ErrLessonPanic = errors.New("lesson: panic during Run")
)

// Lesson is one self-contained teaching program.
type Lesson struct {
	// Name is the short identifier used on the command line, e.g. "testcaselist".
	Name string `yaml:"name"`

	// Title is a one-line human description.
	Title string `yaml:"title"`

	// Notes is the Markdown explanation shipped with the lesson.
	Notes string `yaml:"-"`

	// Run prints the lesson transcript to w.
	Run func(w io.Writer) error `yaml:"-"`
}

// DuplicateLessonError is recorded when two lessons share a name.
type DuplicateLessonError struct{ Name string }

// Error implements the error interface.
func (e DuplicateLessonError) Error() string {
	// Example: lesson: duplicate lesson "types"
	return "lesson: duplicate lesson " + strconv.Quote(e.Name)
}

// UnknownLessonError is returned when a name is not registered.
type UnknownLessonError struct{ Name string }

// Error implements the error interface.
func (e UnknownLessonError) Error() string {
	// Example: lesson: unknown lesson "typo"
	return "lesson: unknown lesson " + strconv.Quote(e.Name)
}

// InvalidLessonError wraps ErrEmptyName or ErrNilRun with the lesson's name.
type InvalidLessonError struct {
	Name   string
	Reason error
}

// Error implements the error interface.
func (e InvalidLessonError) Error() string {
	return e.Reason.Error() + " (" + strconv.Quote(e.Name) + ")"
}

// Unwrap returns the reason.
func (e InvalidLessonError) Unwrap() error { return e.Reason }
