package numeric

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// MaxKeepBits is the largest number of fractional digits KeepBits honours.
	MaxKeepBits = 100

	// fixedLimit is the magnitude from which KeepBits returns d untouched,
	// the point where fixed-point notation stops being used for doubles.
	fixedLimit = 1e21
)

// KeepBits rounds d to bits fractional digits and returns the result as a
// float64 (the nearest double to the rounded decimal).
//
// Rounding works on the exact binary value of d and resolves ties away from
// zero, so KeepBits(2.5, 0) is 3 and KeepBits(1.005, 2) is 1 because the
// double closest to 1.005 lies just below it. bits is clamped to
// [0, MaxKeepBits]. NaN, ±Inf and magnitudes of at least 1e21 are returned
// unchanged.
func KeepBits(d float64, bits int) float64 {
	if !Finite(d) || math.Abs(d) >= fixedLimit {
		return d
	}
	bits = min(max(bits, 0), MaxKeepBits)

	exact := new(big.Rat).SetFloat64(d)
	rounded := decimal.NewFromBigRat(exact, int32(bits))

	f := rounded.InexactFloat64()
	if f == 0 {
		return math.Copysign(0, d)
	}
	return f
}
