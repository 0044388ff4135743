// Package secp provides the SEC 2 catalog of named elliptic curve domain
// parameters.
//
// Each entry exposes the field descriptor (a prime modulus, or for the SECT
// curves a reduction polynomial over GF(2)), the curve coefficients a and b,
// the generator (Gx, Gy), the prime order n of the generator and the cofactor
// h. The table is parsed once, on first use, and is read-only afterwards, so it
// can be shared between goroutines without locking.
//
// # Quick Start
//
//	params := secp.SECP256K1.Params()
//	fmt.Println(params.Order().Text(16))
//
//	// From user input
//	params, err := secp.Lookup("secp256r1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, c := range secp.Curves() {
//	    fmt.Println(c, c.Params().Kind())
//	}
//
// Prime-field entries work with every backend in package ecarith. The SECT
// entries need a provider that implements the binary-field group law
// (ecarith.Binary).
package secp
