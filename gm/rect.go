package gm

import (
	"fmt"
)

type Rect struct {
	Min, Max Vec
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Min: VecZero,
		Max: size,
	}
}

func RectWithOriginAndSize(origin, size Vec) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

// Contains reports whether p lies within the closed rectangle.
func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsHalfOpen reports whether p lies within [Min.X, Max.X) × [Min.Y, Max.Y).
// This is the domain points are sampled from.
func (r Rect) ContainsHalfOpen(p Vec) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// InscribedCircle returns the circle with the given diameter, centered in the rectangle.
func (r Rect) InscribedCircle(diameter float64) Circle {
	return Circle{Center: r.Center(), Radius: diameter / 2}
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(min=%s, max=%s)", r.Min, r.Max)
}
