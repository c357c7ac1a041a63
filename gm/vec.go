package gm

import (
	"fmt"
	"math"
)

type Vec struct {
	X, Y float64
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) XY() (float64, float64) {
	return v.X, v.Y
}

// XY32 returns the components as float32 values, as expected by
// ebitens vector drawing functions.
func (v Vec) XY32() (float32, float32) {
	return float32(v.X), float32(v.Y)
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// DistanceTo returns the euclidean distance between v and other.
func (v Vec) DistanceTo(other Vec) float64 {
	return other.Sub(v).Length()
}
