/*
Package digit is the Digit plugin: a stateless collection of numeric and 2D
geometry helpers that a plugin host invokes by name.

The mathematical bodies live in pkg/numeric and pkg/geom and can be used
directly. This package wraps them in a Plugin value that satisfies the host
contract of pkg/plugin: it describes itself, logs on attach/detach and publishes
a catalog of operations whose arguments arrive as map[string]any.

# Usage

	p := digit.New(digit.WithLogger(logger))

	h := host.New()
	if err := h.Register(ctx, digit.ID, p); err != nil {
		return err
	}
	defer h.Close(ctx)

	res, err := h.Invoke(ctx, digit.ID, "clamp", map[string]any{
		"digit": 15, "min": 0, "max": 10,
	})

Direct calls skip the host entirely:

	p.Clamp(15, 0, 10)                 // 10
	p.KeepBits(3.14159, 2)             // 3.14
	p.CubicBezier(0.5, a, b, c, d)     // geom.Point2D

# Edge cases

No input is validated. NaN and ±Inf propagate, Average of nothing is NaN,
Clamp with inverted bounds returns the upper bound, and Bezier parameters
outside [0, 1] extrapolate.
*/
package digit
