// Package geom holds the 2D value types and geometry helpers of the Digit plugin.
package geom

import (
	"math"
)

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(math.Pow(x2-x1, 2) + math.Pow(y2-y1, 2))
}

// Angle2Rad converts degrees to radians.
func Angle2Rad(angle float64) float64 {
	return angle * (math.Pi / 180)
}

// Rad2Angle converts radians to degrees.
func Rad2Angle(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Angle returns the direction from (x1, y1) to (x2, y2) in degrees, in (-180, 180].
func Angle(x1, y1, x2, y2 float64) float64 {
	return Rad2Angle(math.Atan2(y2-y1, x2-x1))
}

// Intersect reports whether two circles touch or overlap: the distance between
// centers is at most r1+r2. A circle fully inside the other also intersects.
func Intersect(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) <= r1+r2
}

// QuadraticBezier evaluates the quadratic curve p1 -> c1 -> p2 at t.
// t is not clamped; values outside [0, 1] extrapolate the curve.
func QuadraticBezier(t float64, p1, c1, p2 Point2D) Point2D {
	u := 1 - t
	a, b, c := u*u, 2*u*t, t*t
	return Point2D{
		X: a*p1.X + b*c1.X + c*p2.X,
		Y: a*p1.Y + b*c1.Y + c*p2.Y,
	}
}

// CubicBezier evaluates the cubic curve p1 -> c1 -> c2 -> p2 at t.
// Like QuadraticBezier, t is not clamped.
func CubicBezier(t float64, p1, c1, c2, p2 Point2D) Point2D {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point2D{
		X: a*p1.X + b*c1.X + c*c2.X + d*p2.X,
		Y: a*p1.Y + b*c1.Y + c*c2.Y + d*p2.Y,
	}
}
