package convert

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// NumberFrom / EvenNumberFrom
// -----------------------------------------------------------------------------

// TestNumberFrom verifies the infallible conversion keeps the value.
func TestNumberFrom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Number{Value: 30}, NumberFrom(30))
	assert.Equal(t, Number{Value: math.MinInt32}, NumberFrom(math.MinInt32))
}

// TestEvenNumberFrom_SucceedsIffDivisibleByTwo checks the conversion over a window of
// integers around zero and around the int32 limits.
func TestEvenNumberFrom_SucceedsIffDivisibleByTwo(t *testing.T) {
	t.Parallel()

	check := func(n int64) {
		got, err := EvenNumberFrom(n)
		if n%2 == 0 {
			require.NoError(t, err, "n=%d", n)
			assert.Equal(t, n, int64(got))
			return
		}
		require.Error(t, err, "n=%d", n)
		assert.ErrorIs(t, err, ErrNotEven)
		assert.Equal(t, EvenNumber(0), got)
	}

	for n := int64(-1000); n <= 1000; n++ {
		check(n)
	}
	for n := int64(math.MaxInt32 - 10); n <= math.MaxInt32; n++ {
		check(n)
	}
	for n := int64(math.MinInt32); n <= math.MinInt32+10; n++ {
		check(n)
	}
}

// TestEvenNumberFrom_OutOfRange verifies values outside int32 fail with ErrOutOfRange.
func TestEvenNumberFrom_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{math.MaxInt32 + 1, math.MinInt32 - 2, math.MaxInt64, math.MinInt64} {
		_, err := EvenNumberFrom(n)
		require.Error(t, err)

		var convErr *ConversionError
		require.True(t, errors.As(err, &convErr))
		assert.Equal(t, n, convErr.Value)
		assert.Equal(t, "EvenNumber", convErr.Target)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

// TestConversionError_Message pins the message format.
func TestConversionError_Message(t *testing.T) {
	t.Parallel()

	_, err := EvenNumberFrom(5)
	assert.EqualError(t, err, "convert: cannot convert 5 to EvenNumber: convert: value is not even")
}

// TestEvenNumber_GoString verifies %#v output.
func TestEvenNumber_GoString(t *testing.T) {
	t.Parallel()

	n, err := EvenNumberFrom(8)
	require.NoError(t, err)
	assert.Equal(t, "EvenNumber(8)", n.GoString())
}

// TestCircle_String verifies the Stringer form.
func TestCircle_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Circle of radius 6", Circle{Radius: 6}.String())
}

//
// -----------------------------------------------------------------------------
// ParseInt / ParseDecimal
// -----------------------------------------------------------------------------

// TestParseInt_RoundTrip verifies parse then format yields the input for canonical text.
func TestParseInt_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0", "5", "10", "-1", "2147483647", "-2147483648", "123456"} {
		v, err := ParseInt[int32](s)
		require.NoError(t, err, s)
		assert.Equal(t, s, strconv.FormatInt(int64(v), 10))
	}
}

// TestParseInt_Normalizes verifies sign and leading zeros are dropped on the way back.
func TestParseInt_Normalizes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "+5", want: "5"},
		{in: "007", want: "7"},
		{in: "-0010", want: "-10"},
		{in: "-0", want: "0"},
	}
	for _, tc := range testCases {
		v, err := ParseInt[int64](tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, strconv.FormatInt(v, 10))
	}
}

// TestParseInt_Widths verifies the bit size follows the type argument.
func TestParseInt_Widths(t *testing.T) {
	t.Parallel()

	v8, err := ParseInt[int8]("127")
	require.NoError(t, err)
	assert.Equal(t, int8(127), v8)

	_, err = ParseInt[int8]("128")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.EqualError(t, err, `convert: cannot parse "128" as int8: value out of range`)

	v16, err := ParseInt[int16]("-32768")
	require.NoError(t, err)
	assert.Equal(t, int16(-32768), v16)
}

// TestParseInt_InvalidNumerals verifies non-numerals fail with *ParseError.
func TestParseInt_InvalidNumerals(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "abc", "1.5", "0x10", " 1", "1_000", "--1"} {
		_, err := ParseInt[int32](s)
		require.Error(t, err, "%q", s)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "%q", s)
		assert.Equal(t, s, parseErr.Input)
		assert.Equal(t, "int32", parseErr.Type)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	}
}

// Celsius is a named integer type used to check type names in parse errors.
type Celsius int16

// TestParseInt_ErrorNamesTheType verifies int and named types report their own name.
func TestParseInt_ErrorNamesTheType(t *testing.T) {
	t.Parallel()

	_, err := ParseInt[int]("x")
	assert.EqualError(t, err, `convert: cannot parse "x" as int: invalid syntax`)

	_, err = ParseInt[int64]("x")
	assert.EqualError(t, err, `convert: cannot parse "x" as int64: invalid syntax`)

	c, err := ParseInt[Celsius]("-40")
	require.NoError(t, err)
	assert.Equal(t, Celsius(-40), c)

	_, err = ParseInt[Celsius]("40000")
	assert.EqualError(t, err, `convert: cannot parse "40000" as convert.Celsius: value out of range`)
}

// TestParseDecimal verifies exact parsing and failure typing.
func TestParseDecimal(t *testing.T) {
	t.Parallel()

	d, err := ParseDecimal("65.4321")
	require.NoError(t, err)
	assert.Equal(t, "65.4321", d.String())

	sum := d.Add(d)
	assert.Equal(t, "130.8642", sum.String())

	_, err = ParseDecimal("sixty")
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "decimal", parseErr.Type)
	assert.True(t, strings.HasPrefix(err.Error(), `convert: cannot parse "sixty" as decimal: `))
}

// TestParseError_NoCause covers the message without an underlying error.
func TestParseError_NoCause(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `convert: cannot parse "x" as int32`, (&ParseError{Input: "x", Type: "int32"}).Error())
}

//
// -----------------------------------------------------------------------------
// casts
// -----------------------------------------------------------------------------

// TestSaturatingUint8 covers in-range, clamped and NaN inputs.
func TestSaturatingUint8(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   float32
		want uint8
	}{
		{in: 65.4321, want: 65},
		{in: 0, want: 0},
		{in: 254.9, want: 254},
		{in: 255, want: 255},
		{in: 300, want: 255},
		{in: -100, want: 0},
		{in: float32(math.Inf(1)), want: 255},
		{in: float32(math.Inf(-1)), want: 0},
		{in: float32(math.NaN()), want: 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, SaturatingUint8(tc.in), "in=%v", tc.in)
	}
}

// TestWrappingUint8 covers wrap-around and NaN inputs.
func TestWrappingUint8(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   float32
		want uint8
	}{
		{in: 65.9, want: 65},
		{in: 300, want: 44},
		{in: -100, want: 156},
		{in: 256, want: 0},
		{in: float32(math.NaN()), want: 0},
		{in: float32(math.Inf(1)), want: 0},
		{in: 1e30, want: 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, WrappingUint8(tc.in), "in=%v", tc.in)
	}
}

// TestExactFloat32 verifies the shortest round-tripping text is produced.
func TestExactFloat32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "65.4321", ExactFloat32(65.4321))
	assert.Equal(t, "0.1", ExactFloat32(0.1))
	assert.Equal(t, "300", ExactFloat32(300))
}
