package gm

import "math"

// UniformSource draws values uniformly from [0, bound).
type UniformSource interface {
	Uniform(bound float64) float64
}

// RandomIn returns a point uniformly sampled from the given rect, excluding
// the Max edges. The x coordinate is drawn before the y coordinate.
func RandomIn(source UniformSource, rect Rect) Vec {
	size := rect.Size()

	return Vec{
		X: rect.Min.X + below(source.Uniform(size.X), size.X),
		Y: rect.Min.Y + below(source.Uniform(size.Y), size.Y),
	}
}

// below pulls a value that rounded up to bound back into [0, bound).
func below(value, bound float64) float64 {
	if value >= bound {
		return math.Nextafter(bound, 0)
	}

	if value < 0 {
		return 0
	}

	return value
}
