package ecarith

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// Provider is the group arithmetic a signature engine needs. A Provider is
// bound to one set of domain parameters.
type Provider interface {
	// Add returns p + q.
	Add(p, q Point) Point

	// ScalarMultiply returns k·p.
	ScalarMultiply(k *big.Int, p Point) Point

	// DomainParameters returns the curve the provider is bound to.
	DomainParameters() *secp.DomainParameters

	// IsOnCurve reports whether p is the point at infinity or has reduced
	// coordinates satisfying the curve equation.
	IsOnCurve(p Point) bool
}

// ErrUnsupportedCurve is returned when a backend cannot serve the requested
// domain parameters.
var ErrUnsupportedCurve = errors.New("curve not supported by backend")

// Backend names accepted by NewBackend.
const (
	BackendAuto     = "auto"
	BackendAffine   = "affine"
	BackendJacobian = "jacobian"
	BackendBinary   = "binary"
	BackendDecred   = "decred"
)

// Backends lists the backend names accepted by NewBackend.
func Backends() []string {
	return []string{BackendAuto, BackendAffine, BackendJacobian, BackendBinary, BackendDecred}
}

// NewProvider returns the preferred backend for params: Binary for SECT
// curves, Decred for SECP256K1 and Jacobian for every other prime curve.
func NewProvider(params *secp.DomainParameters) (Provider, error) {
	return NewBackend(params, BackendAuto)
}

// NewBackend returns the named backend bound to params.
func NewBackend(params *secp.DomainParameters, backend string) (Provider, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: nil domain parameters", ErrUnsupportedCurve)
	}

	var (
		p   Provider
		err error
	)
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendAuto, "":
		switch {
		case params.Kind() == secp.BinaryExtension:
			p, err = NewBinary(params)
		case params.Name() == secp.SECP256K1:
			p, err = NewDecred(params)
		default:
			p, err = NewJacobian(params)
		}
	case BackendAffine:
		p, err = NewAffine(params)
	case BackendJacobian:
		p, err = NewJacobian(params)
	case BackendBinary:
		p, err = NewBinary(params)
	case BackendDecred:
		p, err = NewDecred(params)
	default:
		return nil, fmt.Errorf("unknown backend %q (want one of %s)", backend, strings.Join(Backends(), ", "))
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Generator returns the generator point of params.
func Generator(params *secp.DomainParameters) Point {
	return point(params.Gx(), params.Gy())
}

// group is the minimal affine group law used by scalarMult.
type group interface {
	add(p, q Point) Point
	double(p Point) Point
	neg(p Point) Point
}

// scalarMult computes k·p with left-to-right double-and-add. The loop runs
// once per bit of |k| and branches on each bit, so its timing depends on k.
func scalarMult(g group, k *big.Int, p Point) Point {
	if p.IsInfinity() || k.Sign() == 0 {
		return Infinity()
	}
	if k.Sign() < 0 {
		return scalarMult(g, new(big.Int).Neg(k), g.neg(p))
	}

	r := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = g.double(r)
		if k.Bit(i) == 1 {
			r = g.add(r, p)
		}
	}
	return r
}
