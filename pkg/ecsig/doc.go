// Package ecsig signs and verifies message digests with an ECDSA-style scheme
// over the curves of package secp.
//
// The scheme uses the additive signing equation s = (r·d + k·e) mod n, so its
// signatures are not interchangeable with FIPS 186 ECDSA. Signatures travel as
// fixed-width lowercase hex: r then s, each padded to ceil(bitlen(n)/4) digits.
//
// # Quick Start
//
//	import (
//	    "crypto/sha256"
//
//	    "github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
//	    "github.com/mahdiidarabi/ecdsa-secp/pkg/ecsig"
//	    "github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
//	)
//
//	provider, err := ecarith.NewProvider(secp.SECP256R1.Params())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine := ecsig.NewEngine(provider)
//
//	key, err := engine.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	digest := sha256.Sum256([]byte("trident"))
//	sig, err := engine.Sign(digest[:], key.PrivateScalar())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok := engine.Verify(digest[:], key.PublicPoint(), sig)
//
// # Customization
//
// The engine is configured with chained setters:
//
//	engine := ecsig.NewEngine(provider).
//	    WithRand(myReader).
//	    WithMaxAttempts(16).
//	    WithStrictKeys(true).
//	    WithLogger(logger)
//
// Verify never fails with an error. Use DecodeSignature to learn why an
// encoding was rejected; the returned error matches one of the ErrSig* kinds
// under errors.Is.
package ecsig
