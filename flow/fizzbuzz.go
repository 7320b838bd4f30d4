// Package flow holds the FizzBuzz helpers shared by the control flow and functions
// lessons.
package flow

import (
	"io"
	"strconv"

	"github.com/sghaida/tour/display"
)

// IsDivisibleBy reports whether lhs is a multiple of rhs. Division by zero is false.
func IsDivisibleBy(lhs, rhs uint32) bool {
	if rhs == 0 {
		return false
	}
	return lhs%rhs == 0
}

// FizzBuzz classifies n.
func FizzBuzz(n uint32) string {
	switch {
	case IsDivisibleBy(n, 15):
		return "fizzbuzz"
	case IsDivisibleBy(n, 3):
		return "fizz"
	case IsDivisibleBy(n, 5):
		return "buzz"
	default:
		return strconv.FormatUint(uint64(n), 10)
	}
}

// FizzBuzzTo writes one classification per line for 1..n inclusive.
func FizzBuzzTo(w io.Writer, n uint32) error {
	p := display.NewPrinter(w)
	for i := uint32(1); i <= n && i != 0; i++ {
		p.Println(FizzBuzz(i))
	}
	return p.Err()
}
