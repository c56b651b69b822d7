package geom

// Point2D is a coordinate pair. Curve functions return fresh values.
type Point2D struct {
	X float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" mapstructure:"y"`
}

// Point3D is a coordinate triple.
type Point3D struct {
	X float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" mapstructure:"y"`
	Z float64 `json:"z" yaml:"z" mapstructure:"z"`
}

// Circle is a center and a radius. R is expected to be non-negative; nothing
// here enforces it.
type Circle struct {
	X float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" mapstructure:"y"`
	R float64 `json:"r" yaml:"r" mapstructure:"r"`
}

// Rect is an origin plus width and height.
type Rect struct {
	X float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" mapstructure:"y"`
	W float64 `json:"w" yaml:"w" mapstructure:"w"`
	H float64 `json:"h" yaml:"h" mapstructure:"h"`
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point2D) DistanceTo(o Point2D) float64 {
	return Distance(p.X, p.Y, o.X, o.Y)
}

// Intersects reports whether c and o touch or overlap.
func (c Circle) Intersects(o Circle) bool {
	return Intersect(c.X, c.Y, c.R, o.X, o.Y, o.R)
}
