// Package lesson describes a runnable lesson and keeps them in a Registry.
//
// A lesson is a name, a title, a Markdown note and a Run function that prints the
// lesson transcript to an io.Writer. Lessons never depend on each other: the Registry
// only looks them up by name and runs them one at a time.
//
// The registry is intentionally:
//   - explicit: lessons are provided one by one, in the order they should be listed
//   - chainable: Provide returns the registry
//   - strict: duplicate and malformed lessons are recorded and reported by Err
//
// Import
//
//	"github.com/sghaida/tour/lesson"
package lesson
