package convert

import (
	"errors"
	"strconv"
)

var (
	// ErrNotEven is the reason reported when an odd value is converted to EvenNumber.
	ErrNotEven = errors.New("convert: value is not even")

	// ErrOutOfRange is the reason reported when a value does not fit the target type.
	ErrOutOfRange = errors.New("convert: value out of range")
)

// ParseError is returned when text is not a valid numeral for the requested type.
type ParseError struct {
	// Input is the text that was parsed.
	Input string

	// Type is the target type name, e.g. "int32" or "decimal".
	Type string

	// Err is the underlying parser error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	// Example: convert: cannot parse "abc" as int32: invalid syntax
	msg := "convert: cannot parse " + strconv.Quote(e.Input) + " as " + e.Type
	if e.Err != nil {
		msg += ": " + reason(e.Err)
	}
	return msg
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error { return e.Err }

// reason strips strconv's own prefix so the message does not repeat the input.
func reason(err error) string {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err.Error()
	}
	return err.Error()
}

// ConversionError is returned when a value does not satisfy the precondition of a
// constrained target type.
type ConversionError struct {
	Value  int64
	Target string

	// Reason is ErrNotEven or ErrOutOfRange.
	Reason error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	// Example: convert: cannot convert 5 to EvenNumber: convert: value is not even
	return "convert: cannot convert " + strconv.FormatInt(e.Value, 10) + " to " + e.Target + ": " + e.Reason.Error()
}

// Unwrap returns the failure reason so callers can match it with errors.Is.
func (e *ConversionError) Unwrap() error { return e.Reason }
