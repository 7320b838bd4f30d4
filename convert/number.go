package convert

import (
	"fmt"
	"math"
)

// Number wraps an int32 and is built infallibly from one.
type Number struct {
	Value int32
}

// NumberFrom converts an int32 into a Number. It cannot fail.
func NumberFrom(v int32) Number { return Number{Value: v} }

// EvenNumber holds an int32 that is known to be even.
//
// The only way to get a non-zero EvenNumber from arbitrary input is EvenNumberFrom.
type EvenNumber int32

// EvenNumberFrom converts v into an EvenNumber.
//
// It succeeds iff v is divisible by 2 and fits in an int32; on success the result's
// underlying integer equals v.
func EvenNumberFrom(v int64) (EvenNumber, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &ConversionError{Value: v, Target: "EvenNumber", Reason: ErrOutOfRange}
	}
	if v%2 != 0 {
		return 0, &ConversionError{Value: v, Target: "EvenNumber", Reason: ErrNotEven}
	}
	return EvenNumber(v), nil
}

// GoString implements fmt.GoStringer so %#v reads like a constructor call.
func (e EvenNumber) GoString() string { return fmt.Sprintf("EvenNumber(%d)", int32(e)) }

// Circle is a shape that knows how to describe itself.
type Circle struct {
	Radius int
}

// String implements fmt.Stringer.
func (c Circle) String() string { return fmt.Sprintf("Circle of radius %d", c.Radius) }
