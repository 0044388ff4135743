package ecarith

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// Decred serves SECP256K1 with the optimized field and scalar types of
// github.com/decred/dcrd/dcrec/secp256k1/v4. Scalars are reduced modulo n
// before use, which is exact because the curve has cofactor 1.
type Decred struct {
	params *secp.DomainParameters
	n      *big.Int
	g      Point
}

// NewDecred returns the decred-backed provider. params must be the SECP256K1
// entry.
func NewDecred(params *secp.DomainParameters) (*Decred, error) {
	ref := secp256k1.Params()
	if params.Kind() != secp.Prime || params.P().Cmp(ref.P) != 0 || params.Order().Cmp(ref.N) != 0 {
		return nil, fmt.Errorf("%w: decred backend only serves %s, got %s",
			ErrUnsupportedCurve, secp.SECP256K1, params.Name())
	}
	return &Decred{
		params: params,
		n:      params.Order(),
		g:      Generator(params),
	}, nil
}

// DomainParameters implements Provider.
func (c *Decred) DomainParameters() *secp.DomainParameters { return c.params }

// Add implements Provider.
func (c *Decred) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	var a, b, r secp256k1.JacobianPoint
	toJacobian(p, &a)
	toJacobian(q, &b)
	secp256k1.AddNonConst(&a, &b, &r)
	return fromJacobian(&r)
}

// ScalarMultiply implements Provider. Multiples of the generator use the
// precomputed base point tables.
func (c *Decred) ScalarMultiply(k *big.Int, p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}

	reduced := new(big.Int).Mod(k, c.n)
	if reduced.Sign() == 0 {
		return Infinity()
	}
	var buf [32]byte
	reduced.FillBytes(buf[:])

	var scalar secp256k1.ModNScalar
	scalar.SetBytes(&buf)

	var r secp256k1.JacobianPoint
	if p.Equal(c.g) {
		secp256k1.ScalarBaseMultNonConst(&scalar, &r)
	} else {
		var in secp256k1.JacobianPoint
		toJacobian(p, &in)
		secp256k1.ScalarMultNonConst(&scalar, &in, &r)
	}
	return fromJacobian(&r)
}

// IsOnCurve reports whether p is on secp256k1.
func (c *Decred) IsOnCurve(p Point) bool {
	return primeOnCurve(secp256k1.Params().P, new(big.Int), c.params.B(), p)
}

// setField loads v into f and reports whether v was not a reduced field
// element.
func setField(f *secp256k1.FieldVal, v *big.Int) bool {
	if v.Sign() < 0 || v.BitLen() > 256 {
		v = new(big.Int).Mod(v, secp256k1.Params().P)
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	return f.SetBytes(&buf) != 0
}

func toJacobian(p Point, out *secp256k1.JacobianPoint) {
	setField(&out.X, p.x)
	setField(&out.Y, p.y)
	out.Z.SetInt(1)
}

func fromJacobian(p *secp256k1.JacobianPoint) Point {
	// ToAffine maps the point at infinity (Z = 0) to (0, 0), which is not on
	// the curve.
	p.ToAffine()
	if p.X.IsZero() && p.Y.IsZero() {
		return Infinity()
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	return point(new(big.Int).SetBytes(x[:]), new(big.Int).SetBytes(y[:]))
}
