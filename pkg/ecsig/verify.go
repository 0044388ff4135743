package ecsig

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
)

// Verify reports whether signature is a valid encoding of a signature over
// digest by the holder of pub. Malformed input yields false.
func (e *Engine) Verify(digest []byte, pub ecarith.Point, signature string) bool {
	sig, err := e.DecodeSignature(signature)
	if err != nil {
		e.logger.Debug("rejecting malformed signature", zap.Error(err))
		return false
	}
	return e.VerifyRaw(digest, pub, sig)
}

// VerifyRaw checks a decoded signature. With e the digest residue and
// v = e⁻¹ mod n it computes
//
//	C = (s·v)·G + (n - r·v)·Q
//
// and accepts iff C is finite and C.x ≡ r (mod n). pub must be the point at
// infinity or a point on the curve with reduced coordinates.
func (e *Engine) VerifyRaw(digest []byte, pub ecarith.Point, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	if !e.provider.IsOnCurve(pub) {
		e.logger.Debug("rejecting public point not on curve", zap.Stringer("point", pub))
		return false
	}
	if !e.inRange(sig.R) || !e.inRange(sig.S) {
		return false
	}

	v := new(big.Int).ModInverse(e.residue(digest), e.n)
	if v == nil {
		return false
	}
	z1 := new(big.Int).Mul(sig.S, v)
	z1.Mod(z1, e.n)
	z2 := new(big.Int).Mul(sig.R, v)
	z2.Sub(e.n, z2.Mod(z2, e.n))
	z2.Mod(z2, e.n)

	c := e.provider.Add(
		e.provider.ScalarMultiply(z1, e.g),
		e.provider.ScalarMultiply(z2, pub),
	)
	if c.IsInfinity() {
		return false
	}
	x := c.X()
	return x.Mod(x, e.n).Cmp(sig.R) == 0
}
