package ecsig

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// Sign signs digest with private scalar d and returns the hex encoding of
// (r, s).
//
// The digest is read as a big-endian unsigned integer and reduced modulo n,
// with 0 replaced by 1. For each nonce k drawn from [0, 2^bitlen(n)):
//
//	C = k·G
//	r = C.x mod n
//	s = (r·d + k·e) mod n
//
// Draws with k >= n, C = ∞, r = 0 or s = 0 are discarded. Every draw counts as
// one attempt; once the limit is reached Sign returns ErrAttemptsExhausted.
func (e *Engine) Sign(digest []byte, d *big.Int) (string, error) {
	sig, err := e.SignRaw(digest, d)
	if err != nil {
		return "", err
	}
	return e.EncodeSignature(sig), nil
}

// SignRaw is Sign without the final encoding.
func (e *Engine) SignRaw(digest []byte, d *big.Int) (*Signature, error) {
	if d == nil {
		return nil, makeError(ErrPrivateScalarInvalid, "private scalar is nil")
	}
	ev := e.residue(digest)
	bits := e.n.BitLen()

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		k, err := e.randBits(bits)
		if err != nil {
			return nil, err
		}
		if k.Cmp(e.n) >= 0 {
			e.logger.Debug("nonce out of range, redrawing", zap.Int("attempt", attempt))
			continue
		}

		c := e.provider.ScalarMultiply(k, e.g)
		if c.IsInfinity() {
			e.logger.Debug("nonce gave point at infinity, redrawing", zap.Int("attempt", attempt))
			continue
		}
		r := c.X()
		r.Mod(r, e.n)

		s := new(big.Int).Mul(r, d)
		s.Add(s, k.Mul(k, ev))
		s.Mod(s, e.n)

		if r.Sign() == 0 || s.Sign() == 0 {
			e.logger.Debug("degenerate signature component, redrawing", zap.Int("attempt", attempt))
			continue
		}
		e.logger.Debug("signed digest", zap.Int("attempts", attempt))
		return &Signature{R: r, S: s}, nil
	}

	e.logger.Warn("signing gave up", zap.Int("max_attempts", e.maxAttempts))
	return nil, makeError(ErrAttemptsExhausted,
		fmt.Sprintf("no usable nonce after %d attempts", e.maxAttempts))
}
