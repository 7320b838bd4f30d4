package convert

import (
	"math"

	"github.com/shopspring/decimal"
)

// Go leaves out-of-range float to integer conversions implementation-defined, so the
// two float casts below spell their rule out instead of relying on uint8(f).

// SaturatingUint8 truncates f toward zero and clamps it to [0, 255]. NaN maps to 0.
func SaturatingUint8(f float32) uint8 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f <= 0:
		return 0
	case f >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(f)
	}
}

// WrappingUint8 truncates f toward zero and keeps the low 8 bits. NaN maps to 0.
func WrappingUint8(f float32) uint8 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return 0
	}
	// float32 magnitudes below 2^63 convert to int64 exactly after truncation.
	if math.Abs(float64(f)) >= math.MaxInt64 {
		return 0
	}
	return uint8(int64(f))
}

// ExactFloat32 returns the shortest decimal text that round-trips f as a float32.
func ExactFloat32(f float32) string {
	return decimal.NewFromFloat32(f).String()
}
