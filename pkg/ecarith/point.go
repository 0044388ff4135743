package ecarith

import (
	"fmt"
	"math/big"
)

// Point is an affine curve point or the point at infinity.
//
// Point is a value type: it is never modified after construction and the
// coordinate accessors return copies. The zero value is the point at
// infinity.
type Point struct {
	x, y *big.Int // both nil for the point at infinity
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// Infinity returns the identity element of the group law.
func Infinity() Point { return Point{} }

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.x == nil }

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if p.x == nil {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if p.y == nil {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// String returns "(x, y)" in hex, or "infinity".
func (p Point) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Text(16), p.y.Text(16))
}

// point builds a Point that takes ownership of x and y. Internal callers use
// it for freshly computed values that nothing else references.
func point(x, y *big.Int) Point {
	return Point{x: x, y: y}
}
