package ecsig

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-secp/internal/logging"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
)

// DefaultMaxAttempts bounds the number of random draws made by Sign and by
// strict key generation before giving up.
const DefaultMaxAttempts = 128

// Engine signs and verifies digests on the curve bound to its provider.
//
// An Engine is safe for concurrent use once configured, as long as its random
// source is. The With* methods are meant for setup and must not be called
// while other goroutines use the engine.
type Engine struct {
	provider    ecarith.Provider
	rand        io.Reader
	maxAttempts int
	strictKeys  bool
	logger      *zap.Logger

	n     *big.Int
	g     ecarith.Point
	width int
}

// NewEngine returns an engine drawing randomness from crypto/rand.
func NewEngine(provider ecarith.Provider) *Engine {
	params := provider.DomainParameters()
	n := params.Order()
	return &Engine{
		provider:    provider,
		rand:        rand.Reader,
		maxAttempts: DefaultMaxAttempts,
		logger:      zap.NewNop(),
		n:           n,
		g:           ecarith.Generator(params),
		width:       (n.BitLen() + 3) / 4,
	}
}

// WithRand sets the random source used for private scalars and nonces.
func (e *Engine) WithRand(r io.Reader) *Engine {
	if r == nil {
		r = rand.Reader
	}
	e.rand = r
	return e
}

// WithMaxAttempts sets the retry bound. Values below 1 restore
// DefaultMaxAttempts.
func (e *Engine) WithMaxAttempts(n int) *Engine {
	if n < 1 {
		n = DefaultMaxAttempts
	}
	e.maxAttempts = n
	return e
}

// WithStrictKeys makes GenerateKeyPair and KeyPairFromScalar reject private
// scalars outside [1, n-1].
func (e *Engine) WithStrictKeys(strict bool) *Engine {
	e.strictKeys = strict
	return e
}

// WithLogger sets the logger. Private scalars and nonces are never logged.
func (e *Engine) WithLogger(l *zap.Logger) *Engine {
	e.logger = logging.OrNop(l).With(zap.Stringer("curve", e.provider.DomainParameters().Name()))
	return e
}

// Provider returns the arithmetic backend.
func (e *Engine) Provider() ecarith.Provider { return e.provider }

// Order returns a copy of the group order n.
func (e *Engine) Order() *big.Int { return new(big.Int).Set(e.n) }

// ComponentWidth is the number of hex digits used for each of r and s.
func (e *Engine) ComponentWidth() int { return e.width }

// SignatureLen is the length of an encoded signature.
func (e *Engine) SignatureLen() int { return 2 * e.width }

// randBits returns a uniform integer in [0, 2^bits).
func (e *Engine) randBits(bits int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(e.rand, buf); err != nil {
		return nil, wrapError(ErrRandomSource, err,
			fmt.Sprintf("reading %d random bytes: %v", len(buf), err))
	}
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xff >> uint(excess))
	}
	return new(big.Int).SetBytes(buf), nil
}

// residue maps a digest to a non-zero scalar: the big-endian value reduced
// modulo n, with 0 replaced by 1.
func (e *Engine) residue(digest []byte) *big.Int {
	v := new(big.Int).SetBytes(digest)
	v.Mod(v, e.n)
	if v.Sign() == 0 {
		v.SetInt64(1)
	}
	return v
}
