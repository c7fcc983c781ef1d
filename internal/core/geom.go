// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned rectangle in world units (pixels of the play field).
// Every actor and piece of level geometry is collided through a Box.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height, never negative
}

// NewBox creates a new world-space box.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports whether two boxes overlap using half-open bounds:
// each box's left edge must lie strictly before the other's right edge,
// and likewise vertically. Boxes that touch along an edge do not
// intersect; a zero-width box strictly inside another does.
func (b Box) Intersects(other Box) bool {
	return b.X < other.X+other.W &&
		b.X+b.W > other.X &&
		b.Y < other.Y+other.H &&
		b.Y+b.H > other.Y
}

// OverlapsX reports whether the horizontal spans of two boxes overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.X+b.W > other.X && b.X < other.X+other.W
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
