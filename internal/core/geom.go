// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in logical playfield units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// All four tests are strict, so rectangles that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Point is a vertex in logical playfield units.
type Point struct {
	X, Y float64
}

// RotateAround turns offsets relative to (cx, cy) by deg degrees clockwise
// (y grows downward) and returns absolute points.
func RotateAround(offsets []Point, cx, cy, deg float64) []Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)

	out := make([]Point, len(offsets))
	for i, v := range offsets {
		out[i] = Point{
			X: cx + v.X*cos - v.Y*sin,
			Y: cy + v.X*sin + v.Y*cos,
		}
	}
	return out
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
