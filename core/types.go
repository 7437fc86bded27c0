// Package core contains the fundamental types shared by the gridnav packages.
package core

import "fmt"

// Point represents a 2D coordinate on the grid, origin top-left.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Path represents a route across the grid.
type Path struct {
	Points []Point
	Cost   float64 // Accumulated movement cost, set by pathfinding
}

// Length returns the number of points in the path.
func (p Path) Length() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// Reverse returns a copy of the path with the point order flipped.
// Pathfinding yields destination-first paths; callers that walk the
// route forward reverse it once.
func (p Path) Reverse() Path {
	points := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		points[len(points)-1-i] = pt
	}
	return Path{Points: points, Cost: p.Cost}
}

// Bounds represents a rectangular area of the grid.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}
