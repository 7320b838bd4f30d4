package display

import "strconv"

// IoError is returned when writing to the output sink fails.
//
// Op names the write that failed (for example "list" or "println").
type IoError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *IoError) Error() string {
	// Example: display: write "list": broken pipe
	if e.Err == nil {
		return "display: write " + strconv.Quote(e.Op) + " failed"
	}
	return "display: write " + strconv.Quote(e.Op) + ": " + e.Err.Error()
}

// Unwrap returns the underlying writer error.
func (e *IoError) Unwrap() error { return e.Err }

func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Op: op, Err: err}
}
