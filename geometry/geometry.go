// Package geometry holds the small value types the functions and structures lessons
// compute with.
package geometry

import (
	"fmt"
	"io"
	"math"
)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Origin returns the point (0, 0).
func Origin() Point { return Point{} }

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// Rectangle is described by two opposite corners. Which corner comes first does not
// matter for Area or Perimeter.
type Rectangle struct {
	P1 Point
	P2 Point
}

// Area returns |(x1-x2) * (y1-y2)|.
func (r Rectangle) Area() float64 {
	x1, y1 := r.P1.X, r.P1.Y
	x2, y2 := r.P2.X, r.P2.Y
	return math.Abs((x1 - x2) * (y1 - y2))
}

// Perimeter returns 2 * (|x1-x2| + |y1-y2|).
func (r Rectangle) Perimeter() float64 {
	return 2 * (math.Abs(r.P1.X-r.P2.X) + math.Abs(r.P1.Y-r.P2.Y))
}

// Translate moves both corners by (dx, dy).
func (r *Rectangle) Translate(dx, dy float64) {
	r.P1.X += dx
	r.P2.X += dx

	r.P1.Y += dy
	r.P2.Y += dy
}

// Square returns the rectangle spanning from p to (side, side).
func Square(p Point, side float64) Rectangle {
	return Rectangle{P1: p, P2: Point{X: side, Y: side}}
}

// Pair owns two heap allocated integers.
type Pair struct {
	First  *int
	Second *int
}

// NewPair allocates both values.
func NewPair(first, second int) *Pair {
	return &Pair{First: &first, Second: &second}
}

// Destroy prints the pair and drops its values. A destroyed pair prints nothing.
func (p *Pair) Destroy(w io.Writer) error {
	if p.First == nil || p.Second == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "Destroying Pair (%d, %d)\n", *p.First, *p.Second)
	p.First, p.Second = nil, nil
	return err
}
