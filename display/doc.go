// Package display is the small output layer shared by the lessons.
//
// It provides:
//
//   - List: an ordered sequence of integers rendered as `[0: 1, 1: 2, 2: 3]`
//   - Printer: a line printer that remembers the first write failure
//   - IoError: the error every failed write is reported as
//
// Nothing here recovers from a failed write. The first failure stops output and is
// handed back to the caller, which decides the exit code.
//
// Import
//
//	"github.com/sghaida/tour/display"
package display
