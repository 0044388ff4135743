package ecsig

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

func TestSignVerifyAllCurves(t *testing.T) {
	for i, c := range secp.Curves() {
		if testing.Short() && largeBinary[c] {
			continue
		}
		c, seed := c, int64(100+i)
		t.Run(c.String(), func(t *testing.T) {
			e := newTestEngine(t, c, seed)
			key, err := e.GenerateKeyPair()
			require.NoError(t, err)

			digest := sha256.Sum256([]byte(c.String()))
			sig, err := e.Sign(digest[:], key.PrivateScalar())
			require.NoError(t, err)
			assert.Len(t, sig, e.SignatureLen())
			assert.True(t, e.Verify(digest[:], key.PublicPoint(), sig))

			other := sha256.Sum256([]byte("not " + c.String()))
			assert.False(t, e.Verify(other[:], key.PublicPoint(), sig))

			otherKey, err := e.GenerateKeyPair()
			require.NoError(t, err)
			assert.False(t, e.Verify(digest[:], otherKey.PublicPoint(), sig))
		})
	}
}

func TestSignVerifyAcrossBackends(t *testing.T) {
	c := secp.SECP256K1
	digest := sha256.Sum256([]byte("backends"))

	var signers []*Engine
	for _, name := range []string{ecarith.BackendAffine, ecarith.BackendJacobian, ecarith.BackendDecred} {
		p, err := ecarith.NewBackend(c.Params(), name)
		require.NoError(t, err, name)
		signers = append(signers, NewEngine(p).WithRand(mrand.New(mrand.NewSource(5))))
	}

	key, err := signers[0].KeyPairFromScalar(big.NewInt(0xc0ffee))
	require.NoError(t, err)

	for i, signer := range signers {
		sig, err := signer.Sign(digest[:], key.PrivateScalar())
		require.NoError(t, err)
		for j, verifier := range signers {
			assert.True(t, verifier.Verify(digest[:], key.PublicPoint(), sig), "signer %d, verifier %d", i, j)
		}
	}
}

// TestTridentScenario signs the SHA-256 digest of "trident" on SECP256R1.
func TestTridentScenario(t *testing.T) {
	p, err := ecarith.NewProvider(secp.SECP256R1.Params())
	require.NoError(t, err)
	e := NewEngine(p)

	key, err := e.GenerateKeyPair()
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("trident"))
	sig, err := e.Sign(digest[:], key.PrivateScalar())
	require.NoError(t, err)
	assert.True(t, e.Verify(digest[:], key.PublicPoint(), sig))

	other, err := e.GenerateKeyPair()
	require.NoError(t, err)
	assert.False(t, e.Verify(digest[:], other.PublicPoint(), sig))
}

// TestZeroDigest checks that an all-zero digest is signed as if e were 1.
func TestZeroDigest(t *testing.T) {
	e := newTestEngine(t, secp.SECP256K1, 8)
	key, err := e.GenerateKeyPair()
	require.NoError(t, err)

	zero := make([]byte, 32)
	sig, err := e.Sign(zero, key.PrivateScalar())
	require.NoError(t, err)
	assert.True(t, e.Verify(zero, key.PublicPoint(), sig))

	// e = 0 is replaced by 1, so the same signature covers the digest 0x01.
	assert.True(t, e.Verify([]byte{0x01}, key.PublicPoint(), sig))
	assert.False(t, e.Verify([]byte{0x02}, key.PublicPoint(), sig))
}

func TestSignIsRandomized(t *testing.T) {
	p, err := ecarith.NewProvider(secp.SECP256K1.Params())
	require.NoError(t, err)
	e := NewEngine(p)

	key, err := e.GenerateKeyPair()
	require.NoError(t, err)
	digest := sha256.Sum256([]byte("same message"))

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		sig, err := e.Sign(digest[:], key.PrivateScalar())
		require.NoError(t, err)
		assert.True(t, e.Verify(digest[:], key.PublicPoint(), sig))
		seen[sig] = true
	}
	assert.Len(t, seen, 5)
}

func TestSignSignatureEquation(t *testing.T) {
	e := newTestEngine(t, secp.SECP192K1, 1)
	n := e.Order()
	d := big.NewInt(424242)
	digest := sha256.Sum256([]byte("equation"))

	// A reader that yields k = 7 on the first draw.
	k := big.NewInt(7)
	buf := make([]byte, (n.BitLen()+7)/8)
	k.FillBytes(buf)
	e.WithRand(bytes.NewReader(buf))

	sig, err := e.SignRaw(digest[:], d)
	require.NoError(t, err)

	c := e.provider.ScalarMultiply(k, e.g)
	wantR := new(big.Int).Mod(c.X(), n)
	ev := e.residue(digest[:])
	wantS := new(big.Int).Mul(wantR, d)
	wantS.Add(wantS, new(big.Int).Mul(k, ev))
	wantS.Mod(wantS, n)

	assert.Zero(t, wantR.Cmp(sig.R))
	assert.Zero(t, wantS.Cmp(sig.S))
}

func TestSignRedrawsOutOfRangeNonce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newTestEngine(t, secp.SECP256K1, 1).WithLogger(zap.New(core))
	d := big.NewInt(99)
	pub := e.provider.ScalarMultiply(d, e.g)

	// First draw is all ones (>= n), second is k = 0 (point at infinity),
	// then a seeded stream.
	e.WithRand(io.MultiReader(
		bytes.NewReader(bytes.Repeat([]byte{0xff}, 32)),
		bytes.NewReader(make([]byte, 32)),
		mrand.New(mrand.NewSource(3)),
	))

	digest := sha256.Sum256([]byte("redraw"))
	sig, err := e.Sign(digest[:], d)
	require.NoError(t, err)
	assert.True(t, e.Verify(digest[:], pub, sig))

	assert.Equal(t, 1, logs.FilterMessage("nonce out of range, redrawing").Len())
	assert.Equal(t, 1, logs.FilterMessage("nonce gave point at infinity, redrawing").Len())
}

func TestSignAttemptsExhausted(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newTestEngine(t, secp.SECP128R2, 1).
		WithRand(repeatReader(0xff)).
		WithMaxAttempts(5).
		WithLogger(zap.New(core))

	_, err := e.Sign([]byte("never"), big.NewInt(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAttemptsExhausted))

	var sigErr Error
	require.True(t, errors.As(err, &sigErr))
	assert.Contains(t, sigErr.Description, "5 attempts")

	assert.Equal(t, 5, logs.FilterMessage("nonce out of range, redrawing").Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestSignNilScalar(t *testing.T) {
	e := newTestEngine(t, secp.SECP256K1, 1)
	_, err := e.Sign([]byte("x"), nil)
	assert.True(t, errors.Is(err, ErrPrivateScalarInvalid))
}
