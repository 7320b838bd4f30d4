package convert

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/shopspring/decimal"
)

// Signed is the set of signed integer types ParseInt can produce.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// ParseInt parses decimal text into a signed integer of type T.
//
// Text that is not a valid base-10 numeral, or that does not fit T, fails with
// *ParseError wrapping the strconv error.
func ParseInt[T Signed](s string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return zero, &ParseError{Input: s, Type: fmt.Sprintf("%T", zero), Err: err}
	}
	return T(v), nil
}

// ParseDecimal parses text into an exact decimal value.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Input: s, Type: "decimal", Err: err}
	}
	return d, nil
}
