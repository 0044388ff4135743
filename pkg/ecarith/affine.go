package ecarith

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// Affine implements the short Weierstrass group law y² = x³ + ax + b over
// GF(p) in affine coordinates. Every addition and doubling costs one modular
// inversion, which makes it the slowest backend but also the easiest to audit.
type Affine struct {
	params *secp.DomainParameters
	p      *big.Int
	a, b   *big.Int
}

// NewAffine returns an affine backend for a prime-field curve.
func NewAffine(params *secp.DomainParameters) (*Affine, error) {
	if params.Kind() != secp.Prime {
		return nil, fmt.Errorf("%w: affine backend needs a prime field, %s is %s",
			ErrUnsupportedCurve, params.Name(), params.Kind())
	}
	return &Affine{
		params: params,
		p:      params.P(),
		a:      params.A(),
		b:      params.B(),
	}, nil
}

// DomainParameters implements Provider.
func (c *Affine) DomainParameters() *secp.DomainParameters { return c.params }

// Add implements Provider.
func (c *Affine) Add(p, q Point) Point { return c.add(p, q) }

// Double returns 2·p.
func (c *Affine) Double(p Point) Point { return c.double(p) }

// Neg returns -p.
func (c *Affine) Neg(p Point) Point { return c.neg(p) }

// ScalarMultiply implements Provider.
func (c *Affine) ScalarMultiply(k *big.Int, p Point) Point {
	return scalarMult(c, k, p)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is on every curve.
func (c *Affine) IsOnCurve(p Point) bool {
	return primeOnCurve(c.p, c.a, c.b, p)
}

func (c *Affine) add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	if p.x.Cmp(q.x) == 0 {
		sum := new(big.Int).Add(p.y, q.y)
		if sum.Mod(sum, c.p).Sign() == 0 {
			return Infinity()
		}
		return c.double(p)
	}

	// λ = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(q.y, p.y)
	den := new(big.Int).Sub(q.x, p.x)
	den.Mod(den, c.p)
	den.ModInverse(den, c.p)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, c.p)

	return c.finish(lambda, p, q.x)
}

func (c *Affine) double(p Point) Point {
	if p.IsInfinity() || p.y.Sign() == 0 {
		return Infinity()
	}

	// λ = (3x² + a) / 2y
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.a)
	den := new(big.Int).Lsh(p.y, 1)
	den.Mod(den, c.p)
	den.ModInverse(den, c.p)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, c.p)

	return c.finish(lambda, p, p.x)
}

// finish computes x3 = λ² - x1 - x2 and y3 = λ(x1 - x3) - y1.
func (c *Affine) finish(lambda *big.Int, p Point, x2 *big.Int) Point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, c.p)

	return point(x3, y3)
}

func (c *Affine) neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	y := new(big.Int).Neg(p.y)
	return point(new(big.Int).Set(p.x), y.Mod(y, c.p))
}

// primeOnCurve checks y² ≡ x³ + ax + b (mod p) with both coordinates in
// [0, p).
func primeOnCurve(p, a, b *big.Int, pt Point) bool {
	if pt.IsInfinity() {
		return true
	}
	if pt.x.Sign() < 0 || pt.x.Cmp(p) >= 0 || pt.y.Sign() < 0 || pt.y.Cmp(p) >= 0 {
		return false
	}

	lhs := new(big.Int).Mul(pt.y, pt.y)
	lhs.Mod(lhs, p)

	rhs := new(big.Int).Mul(pt.x, pt.x)
	rhs.Add(rhs, a)
	rhs.Mul(rhs, pt.x)
	rhs.Add(rhs, b)
	rhs.Mod(rhs, p)

	return lhs.Cmp(rhs) == 0
}
