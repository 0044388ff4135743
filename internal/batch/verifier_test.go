package batch

import (
	"context"
	"crypto/sha256"
	"errors"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mahdiidarabi/ecdsa-secp/internal/parser"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecsig"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// signedRecord returns a valid record for message on curve c.
func signedRecord(t *testing.T, c secp.Curve, index int, message string) *parser.Record {
	t.Helper()
	p, err := ecarith.NewProvider(c.Params())
	require.NoError(t, err)
	e := ecsig.NewEngine(p).WithRand(mrand.New(mrand.NewSource(int64(index) + 1)))

	key, err := e.GenerateKeyPair()
	require.NoError(t, err)
	digest := sha256.Sum256([]byte(message))
	sig, err := e.Sign(digest[:], key.PrivateScalar())
	require.NoError(t, err)

	return &parser.Record{
		Index:     index,
		Curve:     c,
		Digest:    digest[:],
		PublicX:   key.PublicPoint().X(),
		PublicY:   key.PublicPoint().Y(),
		Signature: sig,
	}
}

func TestVerifierMixedBatch(t *testing.T) {
	curves := []secp.Curve{secp.SECP112R1, secp.SECP256K1, secp.SECP256R1, secp.SECT163K1}
	var records []*parser.Record
	for i := 0; i < 12; i++ {
		records = append(records, signedRecord(t, curves[i%len(curves)], i, "batch message"))
	}

	// Wrong digest: well formed, does not verify.
	records[3].Digest = []byte("other")
	// Malformed encoding.
	records[7].Signature = "zz" + records[7].Signature[2:]

	core, logs := observer.New(zapcore.DebugLevel)
	v := NewVerifier(4, ecarith.BackendAuto).WithLogger(zap.New(core))
	summary, err := v.Verify(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 12, summary.Total)
	assert.Equal(t, int64(10), summary.Valid)
	assert.Equal(t, int64(2), summary.Invalid)
	assert.Zero(t, summary.Skipped)

	failures := summary.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, 3, failures[0].Index)
	assert.NoError(t, failures[0].Err)
	assert.Equal(t, 7, failures[1].Index)
	assert.True(t, errors.Is(failures[1].Err, ecsig.ErrSigInvalidHex))

	for i, r := range summary.Results {
		assert.Equal(t, i, r.Index)
		assert.True(t, r.Checked)
	}

	assert.Equal(t, 2, logs.FilterMessage("record rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("batch verification finished").Len())
}

func TestVerifierUnsupportedBackend(t *testing.T) {
	records := []*parser.Record{
		signedRecord(t, secp.SECP256K1, 0, "a"),
		signedRecord(t, secp.SECP256R1, 1, "b"),
	}

	summary, err := NewVerifier(2, ecarith.BackendDecred).Verify(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Valid)
	assert.Equal(t, int64(1), summary.Invalid)
	assert.True(t, errors.Is(summary.Results[1].Err, ecarith.ErrUnsupportedCurve))
}

func TestVerifierMissingPublicPoint(t *testing.T) {
	rec := signedRecord(t, secp.SECP192R1, 0, "a")
	rec.PublicY = nil

	summary, err := NewVerifier(1, "").Verify(context.Background(), []*parser.Record{rec})
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Invalid)
	assert.Error(t, summary.Results[0].Err)
}

func TestVerifierCancelled(t *testing.T) {
	var records []*parser.Record
	for i := 0; i < 50; i++ {
		records = append(records, signedRecord(t, secp.SECP128R1, i, "cancel"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewVerifier(2, ecarith.BackendJacobian).Verify(ctx, records)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int64(summary.Total), summary.Valid+summary.Invalid+summary.Skipped)
}

func TestNewVerifierDefaults(t *testing.T) {
	v := NewVerifier(0, "")
	assert.Positive(t, v.NumWorkers())
	assert.Equal(t, ecarith.BackendAuto, v.backend)

	summary, err := v.Verify(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Empty(t, summary.Failures())
}
