package ecsig

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-secp/internal/logging"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
)

// KeyPair holds a private scalar d and its public point Q = d·G.
type KeyPair struct {
	private *big.Int
	public  ecarith.Point
}

// PrivateScalar returns a copy of d.
func (k *KeyPair) PrivateScalar() *big.Int { return new(big.Int).Set(k.private) }

// PublicPoint returns Q.
func (k *KeyPair) PublicPoint() ecarith.Point { return k.public }

// GenerateKeyPair draws d uniformly from [0, 2^bitlen(n)) and returns (d, d·G).
//
// By default d is not range checked, so it can be 0 or at least n. Signatures
// made with such a key still verify against d·G. With WithStrictKeys the draw
// is repeated until d lies in [1, n-1], up to the configured attempt limit.
func (e *Engine) GenerateKeyPair() (*KeyPair, error) {
	bits := e.n.BitLen()
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		d, err := e.randBits(bits)
		if err != nil {
			return nil, err
		}
		if e.strictKeys && !e.inRange(d) {
			e.logger.Debug("private scalar out of range, redrawing", zap.Int("attempt", attempt))
			continue
		}
		e.logger.Debug("generated key pair", logging.Redacted("private"), zap.Int("attempts", attempt))
		return e.keyPair(d), nil
	}
	return nil, makeError(ErrAttemptsExhausted,
		fmt.Sprintf("no private scalar in [1, n-1] after %d attempts", e.maxAttempts))
}

// KeyPairFromScalar derives the public point for an existing private scalar.
// d must be non-negative and no wider than n; strict mode further requires
// d in [1, n-1].
func (e *Engine) KeyPairFromScalar(d *big.Int) (*KeyPair, error) {
	if d == nil || d.Sign() < 0 || d.BitLen() > e.n.BitLen() {
		return nil, makeError(ErrPrivateScalarInvalid,
			fmt.Sprintf("private scalar must be a non-negative integer of at most %d bits", e.n.BitLen()))
	}
	if e.strictKeys && !e.inRange(d) {
		return nil, makeError(ErrPrivateScalarInvalid, "private scalar must be in [1, n-1]")
	}
	return e.keyPair(new(big.Int).Set(d)), nil
}

func (e *Engine) keyPair(d *big.Int) *KeyPair {
	return &KeyPair{private: d, public: e.provider.ScalarMultiply(d, e.g)}
}

// inRange reports whether 0 < v < n.
func (e *Engine) inRange(v *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(e.n) < 0
}
