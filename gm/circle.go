package gm

type Circle struct {
	Center Vec
	Radius float64
}

// Contains reports whether p lies within the circle. Points exactly on the
// boundary are contained.
func (c Circle) Contains(p Vec) bool {
	return c.Center.DistanceTo(p) <= c.Radius
}
