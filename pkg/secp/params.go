package secp

import (
	"fmt"
	"math/big"
)

// FieldKind tells which kind of finite field a curve is defined over.
type FieldKind int

const (
	// Prime marks curves over GF(p).
	Prime FieldKind = iota

	// BinaryExtension marks curves over GF(2^m) given by a reduction polynomial.
	BinaryExtension
)

// String returns a human-readable name for the field kind.
func (k FieldKind) String() string {
	switch k {
	case Prime:
		return "prime"
	case BinaryExtension:
		return "binary"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// DomainParameters holds the constants that define one elliptic curve group.
//
// A DomainParameters value is immutable once built. Every accessor that returns
// a *big.Int or a slice hands out a fresh copy, so callers may modify the result
// freely.
type DomainParameters struct {
	name Curve
	kind FieldKind

	p    *big.Int // prime modulus, nil for binary fields
	poly []int    // reduction polynomial exponents, descending, nil for prime fields

	a, b   *big.Int
	gx, gy *big.Int
	n      *big.Int
	h      *big.Int
}

// Name returns the catalog name of the curve.
func (d *DomainParameters) Name() Curve { return d.name }

// Kind returns the field kind of the curve.
func (d *DomainParameters) Kind() FieldKind { return d.kind }

// P returns the prime modulus of the field. It returns nil for binary
// extension fields.
func (d *DomainParameters) P() *big.Int {
	if d.p == nil {
		return nil
	}
	return new(big.Int).Set(d.p)
}

// Polynomial returns the exponents of the reduction polynomial in descending
// order, e.g. [163 7 6 3 0] for x^163 + x^7 + x^6 + x^3 + 1. It returns nil for
// prime fields.
func (d *DomainParameters) Polynomial() []int {
	if d.poly == nil {
		return nil
	}
	out := make([]int, len(d.poly))
	copy(out, d.poly)
	return out
}

// ReductionPolynomial returns the reduction polynomial as a bit mask where
// bit i is set when x^i is a term. It returns nil for prime fields.
func (d *DomainParameters) ReductionPolynomial() *big.Int {
	if d.poly == nil {
		return nil
	}
	f := new(big.Int)
	for _, e := range d.poly {
		f.SetBit(f, e, 1)
	}
	return f
}

// FieldBits returns the bit size of field elements: the bit length of p for
// prime fields, the degree m for GF(2^m).
func (d *DomainParameters) FieldBits() int {
	if d.kind == BinaryExtension {
		return d.poly[0]
	}
	return d.p.BitLen()
}

// A returns the curve coefficient a.
func (d *DomainParameters) A() *big.Int { return new(big.Int).Set(d.a) }

// B returns the curve coefficient b.
func (d *DomainParameters) B() *big.Int { return new(big.Int).Set(d.b) }

// Gx returns the x coordinate of the generator.
func (d *DomainParameters) Gx() *big.Int { return new(big.Int).Set(d.gx) }

// Gy returns the y coordinate of the generator.
func (d *DomainParameters) Gy() *big.Int { return new(big.Int).Set(d.gy) }

// Order returns n, the prime order of the generator.
func (d *DomainParameters) Order() *big.Int { return new(big.Int).Set(d.n) }

// Cofactor returns h, the ratio of the curve's point count to n.
func (d *DomainParameters) Cofactor() *big.Int { return new(big.Int).Set(d.h) }

// OrderBits returns the bit length of n.
func (d *DomainParameters) OrderBits() int { return d.n.BitLen() }

// String returns the curve name.
func (d *DomainParameters) String() string { return string(d.name) }
