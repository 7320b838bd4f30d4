// Package tour is a collection of small, independent Go lessons.
//
// Each lesson demonstrates one language feature and prints a deterministic
// transcript:
//
//   - arraysandslices: fixed arrays and the slices that view them
//   - conversion: constructors, fallible conversion, Stringer and parsing
//   - debug, display: %v, %+v, %#v, fmt.Stringer and fmt.GoStringer
//   - expressions: statements and blocks that produce values
//   - flowofcontrol: if, for, range, switch and type switches
//   - functions: functions, methods, method values
//   - structures: struct literals, copies and unpacking
//   - testcaselist: fmt.Stringer for a list and write error propagation
//   - types: primitive conversions, literal types and aliases
//   - variablebindings: mutation, scope, shadowing and zero values
//
// The packages they share are small:
//   - display: list formatting and a sticky-error printer (IoError)
//   - convert: parsing and checked conversion (ParseError, ConversionError)
//   - geometry: points, rectangles and a pair that releases its values
//   - flow: FizzBuzz
//   - lesson, examples/catalog: the registry behind cmd/tour
//   - config, log: settings and status output for cmd/tour
//
// Run a lesson on its own with `go run ./examples/<name>/main`, or all of them with
// `go run ./cmd/tour run -all`.
package tour
