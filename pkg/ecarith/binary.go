package ecarith

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// Binary implements the group law of the non-supersingular curves
// y² + xy = x³ + ax² + b over GF(2^m) in affine coordinates. It serves the
// SECT entries of the catalog.
type Binary struct {
	params *secp.DomainParameters
	field  gf2m
	a, b   *big.Int
}

// NewBinary returns a backend for a binary extension field curve.
func NewBinary(params *secp.DomainParameters) (*Binary, error) {
	if params.Kind() != secp.BinaryExtension {
		return nil, fmt.Errorf("%w: binary backend needs a binary field, %s is %s",
			ErrUnsupportedCurve, params.Name(), params.Kind())
	}
	return &Binary{
		params: params,
		field:  newGF2m(params.ReductionPolynomial()),
		a:      params.A(),
		b:      params.B(),
	}, nil
}

// DomainParameters implements Provider.
func (c *Binary) DomainParameters() *secp.DomainParameters { return c.params }

// Add implements Provider.
func (c *Binary) Add(p, q Point) Point { return c.add(p, q) }

// Double returns 2·p.
func (c *Binary) Double(p Point) Point { return c.double(p) }

// Neg returns -p = (x, x + y).
func (c *Binary) Neg(p Point) Point { return c.neg(p) }

// ScalarMultiply implements Provider.
func (c *Binary) ScalarMultiply(k *big.Int, p Point) Point {
	return scalarMult(c, k, p)
}

// IsOnCurve reports whether p satisfies y² + xy = x³ + ax² + b.
func (c *Binary) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	f := c.field
	if !f.contains(p.x) || !f.contains(p.y) {
		return false
	}

	lhs := f.add(f.sqr(p.y), f.mul(p.x, p.y))

	xx := f.sqr(p.x)
	rhs := f.mul(xx, p.x)
	rhs.Xor(rhs, f.mul(c.a, xx))
	rhs.Xor(rhs, c.b)

	return lhs.Cmp(rhs) == 0
}

func (c *Binary) add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	f := c.field
	if f.reduce(f.add(p.x, q.x)).Sign() == 0 {
		// Same x: q is either p or -p = (x, x + y).
		if f.reduce(f.add(p.y, q.y)).Sign() == 0 {
			return c.double(p)
		}
		return Infinity()
	}

	// λ = (y1 + y2) / (x1 + x2)
	lambda := f.div(f.add(p.y, q.y), f.add(p.x, q.x))

	// x3 = λ² + λ + x1 + x2 + a
	x3 := f.sqr(lambda)
	x3.Xor(x3, lambda)
	x3.Xor(x3, p.x)
	x3.Xor(x3, q.x)
	x3.Xor(x3, c.a)

	// y3 = λ(x1 + x3) + x3 + y1
	y3 := f.mul(lambda, f.add(p.x, x3))
	y3.Xor(y3, x3)
	y3.Xor(y3, p.y)

	return point(x3, y3)
}

func (c *Binary) double(p Point) Point {
	f := c.field
	if p.IsInfinity() || f.reduce(new(big.Int).Set(p.x)).Sign() == 0 {
		return Infinity()
	}

	// λ = x + y/x
	lambda := f.div(p.y, p.x)
	lambda.Xor(lambda, p.x)

	// x3 = λ² + λ + a
	x3 := f.sqr(lambda)
	x3.Xor(x3, lambda)
	x3.Xor(x3, c.a)

	// y3 = x² + (λ + 1)x3
	lambda.Xor(lambda, big.NewInt(1))
	y3 := f.mul(lambda, x3)
	y3.Xor(y3, f.sqr(p.x))

	return point(x3, y3)
}

func (c *Binary) neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return point(new(big.Int).Set(p.x), c.field.add(p.x, p.y))
}
