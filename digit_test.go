package digit_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlugin_Metadata(t *testing.T) {
	meta := digit.New().Metadata()

	assert.Equal(t, "Koi.Plugin.Digit", meta.Name)
	assert.Equal(t, digit.Version, meta.Version)
	assert.Equal(t, "Numeric conversion plugin", meta.Description)
	assert.Equal(t, "Koi Team | DoooReyn", meta.Author)
}

func TestPlugin_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	p := digit.New(digit.WithLogger(logger))

	ctx := context.Background()
	p.OnAttach(ctx)
	p.OnAttach(ctx)
	p.OnDetach(ctx)

	out := buf.String()
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Digit plugin attached")))
	assert.Contains(t, out, "Digit plugin detached")
	assert.Contains(t, out, "plugin=Koi.Plugin.Digit")
}

func TestPlugin_LifecycleWithoutLogger(t *testing.T) {
	p := digit.New()
	assert.NotPanics(t, func() {
		p.OnAttach(context.Background())
		p.OnDetach(context.Background())
	})
}

func TestPlugin_Methods(t *testing.T) {
	p := digit.New()
	nan := math.NaN()
	inf := math.Inf(1)

	t.Run("Classification", func(t *testing.T) {
		assert.True(t, p.Valid(inf))
		assert.False(t, p.Valid(nan))
		assert.False(t, p.Finite(inf))
		assert.True(t, p.Infinite(nan))
		assert.True(t, p.Integer(4))
		assert.False(t, p.Integer(4.5))
		assert.False(t, p.Integer(inf))
	})

	t.Run("Rounding", func(t *testing.T) {
		assert.Equal(t, 3.0, p.Round(2.5))
		assert.Equal(t, -2.0, p.Round(-2.5))
		assert.Equal(t, -3.0, p.Floor(-2.5))
		assert.Equal(t, -2.0, p.Ceil(-2.5))
		assert.InDelta(t, 0.75, p.Decimal(-1.25), 1e-12)
		assert.Equal(t, 1.23, p.KeepBits(1.2345, 2))
		assert.Equal(t, 3.0, p.KeepBits(2.5, 0))
	})

	t.Run("Arithmetic", func(t *testing.T) {
		assert.Equal(t, 5.0, p.Abs(-5))
		assert.Equal(t, 1024.0, p.Pow(2, 10))
		assert.Equal(t, 3.0, p.Sqrt(9))
		assert.True(t, math.IsNaN(p.Sqrt(-1)))
		assert.Equal(t, 10.0, p.Clamp(15, 0, 10))
		assert.Equal(t, 0.0, p.Clamp(-5, 0, 10))
		assert.Equal(t, -1.0, p.Sign(-0.5))
		assert.Equal(t, 0.0, p.Sign(0))
	})

	t.Run("Folds", func(t *testing.T) {
		assert.Equal(t, 6.0, p.Sum(1, 2, 3))
		assert.Equal(t, 0.0, p.Sum())
		assert.Equal(t, 2.0, p.Average(1, 2, 3))
		assert.True(t, math.IsNaN(p.Average()))
		assert.Equal(t, 24.0, p.Product(2, 3, 4))
		assert.Equal(t, 1.0, p.Product())
	})

	t.Run("Equality", func(t *testing.T) {
		a, b := 0.1, 0.2
		assert.True(t, p.Equals(a+b, 0.3))
		assert.False(t, p.Equals(1, 1.001))
		assert.True(t, p.EqualsWithin(1, 1.001, 0.01))
		assert.False(t, p.Equals(nan, nan))
	})

	t.Run("Geometry", func(t *testing.T) {
		assert.Equal(t, 5.0, p.Distance(0, 0, 3, 4))
		assert.InDelta(t, math.Pi, p.Angle2Rad(180), 1e-12)
		assert.InDelta(t, 90.0, p.Rad2Angle(math.Pi/2), 1e-12)
		assert.InDelta(t, 45.0, p.Angle(0, 0, 1, 1), 1e-12)
		assert.True(t, p.Intersect(0, 0, 1, 2, 0, 1))
		assert.False(t, p.Intersect(0, 0, 1, 3, 0, 1))
	})

	t.Run("Curves", func(t *testing.T) {
		p1 := geom.Point2D{X: 0, Y: 0}
		c1 := geom.Point2D{X: 1, Y: 2}
		c2 := geom.Point2D{X: 2, Y: 2}
		p2 := geom.Point2D{X: 3, Y: 0}

		assert.Equal(t, p1, p.QuadraticBezier(0, p1, c1, p2))
		assert.Equal(t, p2, p.QuadraticBezier(1, p1, c1, p2))
		assert.Equal(t, p1, p.CubicBezier(0, p1, c1, c2, p2))
		assert.Equal(t, p2, p.CubicBezier(1, p1, c1, c2, p2))

		mid := p.CubicBezier(0.5, p1, c1, c2, p2)
		assert.InDelta(t, 1.5, mid.X, 1e-12)
		assert.InDelta(t, 1.5, mid.Y, 1e-12)
	})
}

func TestPlugin_ConcurrentUse(t *testing.T) {
	p := digit.New()
	done := make(chan float64, 16)
	for i := 0; i < cap(done); i++ {
		go func(i int) {
			done <- p.Sum(float64(i), 1)
		}(i)
	}

	var total float64
	for i := 0; i < cap(done); i++ {
		total += <-done
	}
	require.Equal(t, 136.0, total)
}
