package numeric

import (
	"math"
)

// Epsilon is the difference between 1 and the next representable float64.
// It is the default tolerance of Equals.
const Epsilon = 0x1p-52

// Valid reports whether d is a number (not NaN).
func Valid(d float64) bool {
	return !math.IsNaN(d)
}

// Finite reports whether d is neither NaN nor ±Inf.
func Finite(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}

// Infinite is the complement of Finite; NaN counts as infinite.
func Infinite(d float64) bool {
	return !Finite(d)
}

// Round returns the nearest integer to d. Halfway values round toward +Inf,
// so Round(2.5) is 3 and Round(-2.5) is -2. The sign of a zero result
// follows d.
func Round(d float64) float64 {
	r := math.Floor(d)
	if d-r >= 0.5 {
		r++
	}
	if r == 0 {
		return math.Copysign(0, d)
	}
	return r
}

// Floor rounds toward -Inf.
func Floor(d float64) float64 {
	return math.Floor(d)
}

// Ceil rounds toward +Inf.
func Ceil(d float64) float64 {
	return math.Ceil(d)
}

// Abs returns the magnitude of d.
func Abs(d float64) float64 {
	return math.Abs(d)
}

// Integer reports whether d is finite and has no fractional part.
func Integer(d float64) bool {
	return Finite(d) && math.Trunc(d) == d
}

// Decimal returns the fractional part d - Floor(d). For negative finite
// inputs the result still lies in [0, 1).
func Decimal(d float64) float64 {
	return d - math.Floor(d)
}

// Pow returns d raised to exponent.
func Pow(d, exponent float64) float64 {
	return math.Pow(d, exponent)
}

// Sqrt returns the square root of d; negative inputs yield NaN.
func Sqrt(d float64) float64 {
	return math.Sqrt(d)
}

// Clamp limits d to [lo, hi] as min(max(d, lo), hi).
// Bounds are not validated: when lo > hi the result is hi.
func Clamp(d, lo, hi float64) float64 {
	return math.Min(math.Max(d, lo), hi)
}

// Equals reports whether d and other are equal within Epsilon.
func Equals(d, other float64) bool {
	return EqualsWithin(d, other, Epsilon)
}

// EqualsWithin reports whether d and other are identical or differ by
// strictly less than tolerance.
func EqualsWithin(d, other, tolerance float64) bool {
	return d == other || math.Abs(d-other) < tolerance
}

// Sign returns 1 for positive, -1 for negative and 0 otherwise (zero or NaN).
func Sign(d float64) float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// Sum adds digits starting from 0.
func Sum(digits ...float64) float64 {
	acc := 0.0
	for _, d := range digits {
		acc += d
	}
	return acc
}

// Average returns Sum(digits...) / len(digits). An empty argument list
// yields NaN.
func Average(digits ...float64) float64 {
	n := float64(len(digits))
	return Sum(digits...) / n
}

// Product multiplies digits starting from 1.
func Product(digits ...float64) float64 {
	acc := 1.0
	for _, d := range digits {
		acc *= d
	}
	return acc
}
