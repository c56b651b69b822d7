package digit

import (
	"context"

	"github.com/aretw0/digit/pkg/geom"
	"github.com/aretw0/digit/pkg/numeric"
	"github.com/aretw0/digit/pkg/plugin"
)

type digitArgs struct {
	Digit float64 `mapstructure:"digit"`
}

type powArgs struct {
	Digit    float64 `mapstructure:"digit"`
	Exponent float64 `mapstructure:"exponent"`
}

type clampArgs struct {
	Digit float64 `mapstructure:"digit"`
	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
}

type equalsArgs struct {
	Digit     float64 `mapstructure:"digit"`
	Other     float64 `mapstructure:"other"`
	Tolerance float64 `mapstructure:"tolerance"`
}

type digitsArgs struct {
	Digits []float64 `mapstructure:"digits"`
}

type keepBitsArgs struct {
	Digit float64 `mapstructure:"digit"`
	Bits  int     `mapstructure:"bits"`
}

type segmentArgs struct {
	X1 float64 `mapstructure:"x1"`
	Y1 float64 `mapstructure:"y1"`
	X2 float64 `mapstructure:"x2"`
	Y2 float64 `mapstructure:"y2"`
}

type angleArgs struct {
	Angle float64 `mapstructure:"angle"`
}

type radArgs struct {
	Rad float64 `mapstructure:"rad"`
}

type circlesArgs struct {
	X1 float64 `mapstructure:"x1"`
	Y1 float64 `mapstructure:"y1"`
	R1 float64 `mapstructure:"r1"`
	X2 float64 `mapstructure:"x2"`
	Y2 float64 `mapstructure:"y2"`
	R2 float64 `mapstructure:"r2"`
}

type quadraticArgs struct {
	T  float64      `mapstructure:"t"`
	P1 geom.Point2D `mapstructure:"p1"`
	C1 geom.Point2D `mapstructure:"c1"`
	P2 geom.Point2D `mapstructure:"p2"`
}

type cubicArgs struct {
	T  float64      `mapstructure:"t"`
	P1 geom.Point2D `mapstructure:"p1"`
	C1 geom.Point2D `mapstructure:"c1"`
	C2 geom.Point2D `mapstructure:"c2"`
	P2 geom.Point2D `mapstructure:"p2"`
}

// invoke adapts a typed function to plugin.InvokeFunc. init carries defaults
// for keys the caller leaves out.
func invoke[A any](init A, fn func(A) any) plugin.InvokeFunc {
	return func(_ context.Context, args map[string]any) (any, error) {
		a := init
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return fn(a), nil
	}
}

func num(name, desc string) plugin.Param {
	return plugin.Param{Name: name, Type: plugin.ParamNumber, Description: desc}
}

func point(name, desc string) plugin.Param {
	return plugin.Param{Name: name, Type: plugin.ParamPoint, Description: desc}
}

var (
	digitParam  = []plugin.Param{num("digit", "Input number")}
	digitsParam = []plugin.Param{{Name: "digits", Type: plugin.ParamNumbers, Description: "Numbers to fold"}}
	segment     = []plugin.Param{
		num("x1", "First point x"), num("y1", "First point y"),
		num("x2", "Second point x"), num("y2", "Second point y"),
	}
)

// Operations implements plugin.Invokable. Names match the method names the
// plugin has always been invoked with.
func (p *Plugin) Operations() []plugin.Operation {
	unaryBool := func(name, desc string, fn func(float64) bool) plugin.Operation {
		return plugin.Operation{
			Name: name, Description: desc, Params: digitParam, Returns: plugin.ResultBool,
			Invoke: invoke(digitArgs{}, func(a digitArgs) any { return fn(a.Digit) }),
		}
	}
	unaryNum := func(name, desc string, fn func(float64) float64) plugin.Operation {
		return plugin.Operation{
			Name: name, Description: desc, Params: digitParam, Returns: plugin.ResultNumber,
			Invoke: invoke(digitArgs{}, func(a digitArgs) any { return fn(a.Digit) }),
		}
	}
	fold := func(name, desc string, fn func(...float64) float64) plugin.Operation {
		return plugin.Operation{
			Name: name, Description: desc, Params: digitsParam, Returns: plugin.ResultNumber,
			Invoke: invoke(digitsArgs{}, func(a digitsArgs) any { return fn(a.Digits...) }),
		}
	}

	return []plugin.Operation{
		unaryBool("valid", "Check that the number is not NaN", p.Valid),
		unaryBool("finite", "Check that the number is finite", p.Finite),
		unaryBool("infinite", "Check that the number is not finite", p.Infinite),
		unaryNum("round", "Round to the nearest integer", p.Round),
		unaryNum("abs", "Absolute value", p.Abs),
		unaryBool("integer", "Check that the number is an integer", p.Integer),
		unaryNum("floor", "Round toward negative infinity", p.Floor),
		unaryNum("ceil", "Round toward positive infinity", p.Ceil),
		unaryNum("decimal", "Fractional part, digit - floor(digit)", p.Decimal),
		{
			Name:        "pow",
			Description: "Raise a number to a power",
			Params:      []plugin.Param{num("digit", "Base"), num("exponent", "Exponent")},
			Returns:     plugin.ResultNumber,
			Invoke:      invoke(powArgs{}, func(a powArgs) any { return p.Pow(a.Digit, a.Exponent) }),
		},
		unaryNum("sqrt", "Square root", p.Sqrt),
		{
			Name:        "clamp",
			Description: "Limit a number to the range [min, max]",
			Params:      []plugin.Param{num("digit", "Number to limit"), num("min", "Lower bound"), num("max", "Upper bound")},
			Returns:     plugin.ResultNumber,
			Invoke:      invoke(clampArgs{}, func(a clampArgs) any { return p.Clamp(a.Digit, a.Min, a.Max) }),
		},
		{
			Name:        "equals",
			Description: "Compare two numbers within a tolerance",
			Params: []plugin.Param{
				num("digit", "First number"),
				num("other", "Second number"),
				{Name: "tolerance", Type: plugin.ParamNumber, Description: "Exclusive tolerance, defaults to machine epsilon", Optional: true},
			},
			Returns: plugin.ResultBool,
			Invoke: invoke(equalsArgs{Tolerance: numeric.Epsilon}, func(a equalsArgs) any {
				return p.EqualsWithin(a.Digit, a.Other, a.Tolerance)
			}),
		},
		unaryNum("sign", "Sign of the number: 1, -1 or 0", p.Sign),
		fold("sum", "Sum of the numbers", p.Sum),
		fold("average", "Arithmetic mean of the numbers", p.Average),
		fold("product", "Product of the numbers", p.Product),
		{
			Name:        "keepBits",
			Description: "Round to a fixed number of fractional digits",
			Params: []plugin.Param{
				num("digit", "Number to round"),
				{Name: "bits", Type: plugin.ParamInteger, Description: "Fractional digits to keep (0-100)"},
			},
			Returns: plugin.ResultNumber,
			Invoke:  invoke(keepBitsArgs{}, func(a keepBitsArgs) any { return p.KeepBits(a.Digit, a.Bits) }),
		},
		{
			Name:        "distance",
			Description: "Euclidean distance between two points",
			Params:      segment,
			Returns:     plugin.ResultNumber,
			Invoke:      invoke(segmentArgs{}, func(a segmentArgs) any { return p.Distance(a.X1, a.Y1, a.X2, a.Y2) }),
		},
		{
			Name:        "angle2rad",
			Description: "Convert degrees to radians",
			Params:      []plugin.Param{num("angle", "Angle in degrees")},
			Returns:     plugin.ResultNumber,
			Invoke:      invoke(angleArgs{}, func(a angleArgs) any { return p.Angle2Rad(a.Angle) }),
		},
		{
			Name:        "rad2angle",
			Description: "Convert radians to degrees",
			Params:      []plugin.Param{num("rad", "Angle in radians")},
			Returns:     plugin.ResultNumber,
			Invoke:      invoke(radArgs{}, func(a radArgs) any { return p.Rad2Angle(a.Rad) }),
		},
		{
			Name:        "angle",
			Description: "Direction from the first point to the second, in degrees",
			Params:      segment,
			Returns:     plugin.ResultNumber,
			Invoke:      invoke(segmentArgs{}, func(a segmentArgs) any { return p.Angle(a.X1, a.Y1, a.X2, a.Y2) }),
		},
		{
			Name:        "intersect",
			Description: "Check whether two circles touch or overlap",
			Params: []plugin.Param{
				num("x1", "First center x"), num("y1", "First center y"), num("r1", "First radius"),
				num("x2", "Second center x"), num("y2", "Second center y"), num("r2", "Second radius"),
			},
			Returns: plugin.ResultBool,
			Invoke: invoke(circlesArgs{}, func(a circlesArgs) any {
				return p.Intersect(a.X1, a.Y1, a.R1, a.X2, a.Y2, a.R2)
			}),
		},
		{
			Name:        "quadraticBezier",
			Description: "Point on a quadratic Bezier curve at t",
			Params: []plugin.Param{
				num("t", "Curve parameter, 0 to 1"),
				point("p1", "Start point"), point("c1", "Control point"), point("p2", "End point"),
			},
			Returns: plugin.ResultPoint,
			Invoke: invoke(quadraticArgs{}, func(a quadraticArgs) any {
				return p.QuadraticBezier(a.T, a.P1, a.C1, a.P2)
			}),
		},
		{
			Name:        "cubicBezier",
			Description: "Point on a cubic Bezier curve at t",
			Params: []plugin.Param{
				num("t", "Curve parameter, 0 to 1"),
				point("p1", "Start point"), point("c1", "First control point"),
				point("c2", "Second control point"), point("p2", "End point"),
			},
			Returns: plugin.ResultPoint,
			Invoke: invoke(cubicArgs{}, func(a cubicArgs) any {
				return p.CubicBezier(a.T, a.P1, a.C1, a.C2, a.P2)
			}),
		},
	}
}
