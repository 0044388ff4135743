package ecarith

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// Jacobian implements the same group law as Affine but keeps intermediate
// results in Jacobian projective coordinates (X, Y, Z) ↦ (X/Z², Y/Z³), so a
// scalar multiplication needs a single inversion at the end.
type Jacobian struct {
	params *secp.DomainParameters
	p      *big.Int
	a, b   *big.Int
}

// jacPoint is a point in Jacobian coordinates. Z = 0 is the point at
// infinity.
type jacPoint struct {
	x, y, z *big.Int
}

// NewJacobian returns a Jacobian-coordinates backend for a prime-field curve.
func NewJacobian(params *secp.DomainParameters) (*Jacobian, error) {
	if params.Kind() != secp.Prime {
		return nil, fmt.Errorf("%w: jacobian backend needs a prime field, %s is %s",
			ErrUnsupportedCurve, params.Name(), params.Kind())
	}
	return &Jacobian{
		params: params,
		p:      params.P(),
		a:      params.A(),
		b:      params.B(),
	}, nil
}

// DomainParameters implements Provider.
func (c *Jacobian) DomainParameters() *secp.DomainParameters { return c.params }

// Add implements Provider.
func (c *Jacobian) Add(p, q Point) Point {
	return c.toAffine(c.jacAdd(c.fromAffine(p), c.fromAffine(q)))
}

// ScalarMultiply implements Provider. Like scalarMult, the loop branches on
// every bit of k.
func (c *Jacobian) ScalarMultiply(k *big.Int, p Point) Point {
	if p.IsInfinity() || k.Sign() == 0 {
		return Infinity()
	}
	if k.Sign() < 0 {
		k = new(big.Int).Neg(k)
		y := new(big.Int).Neg(p.y)
		p = point(p.x, y.Mod(y, c.p))
	}

	base := c.fromAffine(p)
	r := c.infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.jacDouble(r)
		if k.Bit(i) == 1 {
			r = c.jacAdd(r, base)
		}
	}
	return c.toAffine(r)
}

// IsOnCurve reports whether p satisfies the curve equation.
func (c *Jacobian) IsOnCurve(p Point) bool {
	return primeOnCurve(c.p, c.a, c.b, p)
}

func (c *Jacobian) infinity() jacPoint {
	return jacPoint{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
}

func (c *Jacobian) fromAffine(p Point) jacPoint {
	if p.IsInfinity() {
		return c.infinity()
	}
	return jacPoint{x: p.X(), y: p.Y(), z: big.NewInt(1)}
}

func (c *Jacobian) toAffine(p jacPoint) Point {
	if p.z.Sign() == 0 {
		return Infinity()
	}
	zInv := new(big.Int).ModInverse(p.z, c.p)
	zInv2 := new(big.Int).Mul(zInv, zInv)
	zInv2.Mod(zInv2, c.p)

	x := new(big.Int).Mul(p.x, zInv2)
	x.Mod(x, c.p)

	y := new(big.Int).Mul(p.y, zInv2)
	y.Mul(y, zInv)
	y.Mod(y, c.p)

	return point(x, y)
}

// jacDouble uses the generic-a doubling formula:
//
//	S = 4XY², M = 3X² + aZ⁴, X' = M² - 2S, Y' = M(S - X') - 8Y⁴, Z' = 2YZ
func (c *Jacobian) jacDouble(p jacPoint) jacPoint {
	if p.z.Sign() == 0 || p.y.Sign() == 0 {
		return c.infinity()
	}

	yy := c.mul(p.y, p.y)
	s := c.mul(p.x, yy)
	s.Lsh(s, 2)
	s.Mod(s, c.p)

	zz := c.mul(p.z, p.z)
	m := c.mul(p.x, p.x)
	m.Mul(m, big.NewInt(3))
	m.Add(m, c.mul(c.a, c.mul(zz, zz)))
	m.Mod(m, c.p)

	x3 := c.mul(m, m)
	x3.Sub(x3, new(big.Int).Lsh(s, 1))
	x3.Mod(x3, c.p)

	yyyy := c.mul(yy, yy)
	y3 := new(big.Int).Sub(s, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, yyyy.Lsh(yyyy, 3))
	y3.Mod(y3, c.p)

	z3 := c.mul(p.y, p.z)
	z3.Lsh(z3, 1)
	z3.Mod(z3, c.p)

	return jacPoint{x: x3, y: y3, z: z3}
}

// jacAdd adds two Jacobian points:
//
//	U1 = X1Z2², U2 = X2Z1², S1 = Y1Z2³, S2 = Y2Z1³, H = U2 - U1, R = S2 - S1
//	X3 = R² - H³ - 2U1H², Y3 = R(U1H² - X3) - S1H³, Z3 = HZ1Z2
func (c *Jacobian) jacAdd(p, q jacPoint) jacPoint {
	if p.z.Sign() == 0 {
		return q
	}
	if q.z.Sign() == 0 {
		return p
	}

	z1z1 := c.mul(p.z, p.z)
	z2z2 := c.mul(q.z, q.z)
	u1 := c.mul(p.x, z2z2)
	u2 := c.mul(q.x, z1z1)
	s1 := c.mul(p.y, c.mul(z2z2, q.z))
	s2 := c.mul(q.y, c.mul(z1z1, p.z))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) != 0 {
			return c.infinity()
		}
		return c.jacDouble(p)
	}

	h := new(big.Int).Sub(u2, u1)
	h.Mod(h, c.p)
	r := new(big.Int).Sub(s2, s1)
	r.Mod(r, c.p)

	hh := c.mul(h, h)
	hhh := c.mul(hh, h)
	u1hh := c.mul(u1, hh)

	x3 := c.mul(r, r)
	x3.Sub(x3, hhh)
	x3.Sub(x3, new(big.Int).Lsh(u1hh, 1))
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(u1hh, x3)
	y3.Mul(y3, r)
	y3.Sub(y3, c.mul(s1, hhh))
	y3.Mod(y3, c.p)

	z3 := c.mul(h, c.mul(p.z, q.z))

	return jacPoint{x: x3, y: y3, z: z3}
}

// mul returns a·b mod p in a new big.Int.
func (c *Jacobian) mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, c.p)
}
