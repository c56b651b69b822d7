package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	nan    = math.NaN()
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

func TestValidFinite(t *testing.T) {
	for _, d := range []float64{0, -1, 3.5, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		assert.True(t, Valid(d), "%v should be valid", d)
		assert.True(t, Finite(d), "%v should be finite", d)
		assert.Equal(t, Finite(d), !Infinite(d))
	}

	assert.False(t, Valid(nan))
	assert.True(t, Valid(posInf))

	for _, d := range []float64{nan, posInf, negInf} {
		assert.False(t, Finite(d))
		assert.True(t, Infinite(d))
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.4, 2},
		{2.5, 3},
		{2.6, 3},
		{-2.4, -2},
		{-2.5, -2},
		{-2.6, -3},
		{0.49999999999999994, 0},
		{1e300, 1e300},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}

	assert.True(t, math.Signbit(Round(-0.3)), "Round(-0.3) keeps the negative zero")
	assert.False(t, math.Signbit(Round(0.3)))
	assert.True(t, math.IsNaN(Round(nan)))
	assert.Equal(t, posInf, Round(posInf))
}

func TestFloorCeilDecimal(t *testing.T) {
	for _, d := range []float64{-3.75, -1, -0.2, 0, 0.2, 1, 3.75, 123456.789} {
		assert.LessOrEqual(t, Floor(d), d)
		assert.GreaterOrEqual(t, Ceil(d), d)
		assert.Equal(t, d-Floor(d), Decimal(d))

		frac := Decimal(d)
		assert.GreaterOrEqual(t, frac, 0.0)
		assert.Less(t, frac, 1.0)
	}

	assert.InDelta(t, 0.25, Decimal(-3.75), 1e-12)
}

func TestAbsSign(t *testing.T) {
	assert.Equal(t, 3.0, Abs(-3))
	assert.Equal(t, 3.0, Abs(3))

	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(nan))
	assert.Equal(t, 1.0, Sign(posInf))
}

func TestInteger(t *testing.T) {
	assert.True(t, Integer(5))
	assert.True(t, Integer(-0))
	assert.True(t, Integer(1e20))
	assert.False(t, Integer(5.000001))
	assert.False(t, Integer(nan))
	assert.False(t, Integer(posInf))
}

func TestPowSqrt(t *testing.T) {
	assert.Equal(t, 8.0, Pow(2, 3))
	assert.Equal(t, 0.5, Pow(2, -1))
	assert.Equal(t, 3.0, Sqrt(9))
	assert.True(t, math.IsNaN(Sqrt(-1)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))

	// Inverted bounds fall through to the upper bound.
	assert.Equal(t, 0.0, Clamp(5, 10, 0))
	assert.True(t, math.IsNaN(Clamp(nan, 0, 10)))
}

func TestEquals(t *testing.T) {
	assert.True(t, Equals(1, 1))
	assert.True(t, Equals(posInf, posInf))
	assert.False(t, Equals(nan, nan))
	a, b := 0.1, 0.2
	assert.True(t, Equals(a+b, 0.3))
	assert.False(t, Equals(1, 1.000001), "default tolerance is near-exact")
	assert.True(t, Equals(1, 1+Epsilon/2))

	assert.True(t, EqualsWithin(a+b, 0.3000001, 1e-6))
	assert.False(t, EqualsWithin(1, 1.5, 0.5), "tolerance is exclusive")
	assert.Equal(t, math.Nextafter(1, 2)-1, Epsilon)
}

func TestFolds(t *testing.T) {
	assert.Equal(t, 6.0, Sum(1, 2, 3))
	assert.Equal(t, 24.0, Product(2, 3, 4))
	assert.Equal(t, 3.0, Average(2, 4))

	assert.Equal(t, 0.0, Sum())
	assert.Equal(t, 1.0, Product())
	assert.True(t, math.IsNaN(Average()))
}
