// Package ecarith provides elliptic curve group arithmetic for the curves in
// package secp.
//
// The Provider interface is all a signature engine needs: point addition,
// scalar multiplication and access to the bound domain parameters. Several
// backends implement it:
//
//   - Affine: prime-field curves, affine coordinates, one inversion per step
//   - Jacobian: prime-field curves, Jacobian projective coordinates
//   - Binary: GF(2^m) curves (the SECT entries), affine coordinates
//   - Decred: SECP256K1 only, on github.com/decred/dcrd/dcrec/secp256k1/v4
//
// NewProvider picks a sensible backend for a catalog entry:
//
//	provider, err := ecarith.NewProvider(secp.SECP256R1.Params())
//	if err != nil {
//	    return err
//	}
//	q := provider.ScalarMultiply(k, ecarith.Generator(provider.DomainParameters()))
//
// None of the backends are constant time. The math/big backends use plain
// double-and-add, which branches on every scalar bit, and Decred uses the
// library's NonConst routines.
package ecarith
