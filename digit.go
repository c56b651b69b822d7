package digit

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/digit/pkg/geom"
	"github.com/aretw0/digit/pkg/numeric"
	"github.com/aretw0/digit/pkg/plugin"
)

// ID is the identifier the plugin is registered under.
const ID = "Digit"

const (
	pluginName        = "Koi.Plugin.Digit"
	pluginDescription = "Numeric conversion plugin"
	pluginAuthor      = "Koi Team | DoooReyn"
)

// Ensure Plugin satisfies the host contract.
var (
	_ plugin.Plugin    = (*Plugin)(nil)
	_ plugin.Invokable = (*Plugin)(nil)
)

// Plugin is the Digit facade. It holds no state besides its logger, so a single
// value can serve concurrent callers.
type Plugin struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Plugin.
type Option func(*Plugin)

// WithLogger sets the structured logger used for lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

// New creates the Digit plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Metadata implements plugin.Describable.
func (p *Plugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        pluginName,
		Version:     Version,
		Description: pluginDescription,
		Author:      pluginAuthor,
	}
}

// OnAttach implements plugin.Attachable.
func (p *Plugin) OnAttach(ctx context.Context) {
	p.logger.InfoContext(ctx, "Digit plugin attached", "plugin", pluginName, "version", Version)
}

// OnDetach implements plugin.Attachable.
func (p *Plugin) OnDetach(ctx context.Context) {
	p.logger.InfoContext(ctx, "Digit plugin detached", "plugin", pluginName)
}

// Valid reports whether digit is not NaN.
func (p *Plugin) Valid(digit float64) bool { return numeric.Valid(digit) }

// Finite reports whether digit is neither NaN nor infinite.
func (p *Plugin) Finite(digit float64) bool { return numeric.Finite(digit) }

// Infinite is the complement of Finite.
func (p *Plugin) Infinite(digit float64) bool { return numeric.Infinite(digit) }

// Round rounds to the nearest integer, ties toward +Inf.
func (p *Plugin) Round(digit float64) float64 { return numeric.Round(digit) }

// Abs returns the magnitude of digit.
func (p *Plugin) Abs(digit float64) float64 { return numeric.Abs(digit) }

// Integer reports whether digit is finite with no fractional part.
func (p *Plugin) Integer(digit float64) bool { return numeric.Integer(digit) }

// Floor rounds toward -Inf.
func (p *Plugin) Floor(digit float64) float64 { return numeric.Floor(digit) }

// Ceil rounds toward +Inf.
func (p *Plugin) Ceil(digit float64) float64 { return numeric.Ceil(digit) }

// Decimal returns digit - Floor(digit).
func (p *Plugin) Decimal(digit float64) float64 { return numeric.Decimal(digit) }

// Pow raises digit to exponent.
func (p *Plugin) Pow(digit, exponent float64) float64 { return numeric.Pow(digit, exponent) }

// Sqrt returns the square root of digit.
func (p *Plugin) Sqrt(digit float64) float64 { return numeric.Sqrt(digit) }

// Clamp limits digit to [min, max].
func (p *Plugin) Clamp(digit, min, max float64) float64 { return numeric.Clamp(digit, min, max) }

// Equals compares with the default Epsilon tolerance.
func (p *Plugin) Equals(digit, other float64) bool { return numeric.Equals(digit, other) }

// EqualsWithin compares with an explicit tolerance.
func (p *Plugin) EqualsWithin(digit, other, tolerance float64) bool {
	return numeric.EqualsWithin(digit, other, tolerance)
}

// Sign returns 1, -1 or 0.
func (p *Plugin) Sign(digit float64) float64 { return numeric.Sign(digit) }

// Sum adds digits.
func (p *Plugin) Sum(digits ...float64) float64 { return numeric.Sum(digits...) }

// Average returns the arithmetic mean of digits.
func (p *Plugin) Average(digits ...float64) float64 { return numeric.Average(digits...) }

// Product multiplies digits.
func (p *Plugin) Product(digits ...float64) float64 { return numeric.Product(digits...) }

// KeepBits rounds digit to bits fractional digits.
func (p *Plugin) KeepBits(digit float64, bits int) float64 { return numeric.KeepBits(digit, bits) }

// Distance returns the Euclidean distance between two points.
func (p *Plugin) Distance(x1, y1, x2, y2 float64) float64 { return geom.Distance(x1, y1, x2, y2) }

// Angle2Rad converts degrees to radians.
func (p *Plugin) Angle2Rad(angle float64) float64 { return geom.Angle2Rad(angle) }

// Rad2Angle converts radians to degrees.
func (p *Plugin) Rad2Angle(rad float64) float64 { return geom.Rad2Angle(rad) }

// Angle returns the direction between two points in degrees.
func (p *Plugin) Angle(x1, y1, x2, y2 float64) float64 { return geom.Angle(x1, y1, x2, y2) }

// Intersect reports whether two circles touch or overlap.
func (p *Plugin) Intersect(x1, y1, r1, x2, y2, r2 float64) bool {
	return geom.Intersect(x1, y1, r1, x2, y2, r2)
}

// QuadraticBezier evaluates a quadratic Bezier curve at t.
func (p *Plugin) QuadraticBezier(t float64, p1, c1, p2 geom.Point2D) geom.Point2D {
	return geom.QuadraticBezier(t, p1, c1, p2)
}

// CubicBezier evaluates a cubic Bezier curve at t.
func (p *Plugin) CubicBezier(t float64, p1, c1, c2, p2 geom.Point2D) geom.Point2D {
	return geom.CubicBezier(t, p1, c1, c2, p2)
}
