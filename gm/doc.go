// Package gm (stands for geometry math) provides the geometry primitives
// of the sampling domain.
//
// It includes a simple 2d vector type called Vec, an axis aligned Rect and
// a Circle. RandomIn draws uniformly distributed points from a Rect.
package gm
