package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// run executes the CLI with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func keygen(t *testing.T, args ...string) keyOutput {
	t.Helper()
	out, err := run(t, append([]string{"keygen"}, args...)...)
	require.NoError(t, err)

	var key keyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &key))
	return key
}

func TestCurvesCmd(t *testing.T) {
	out, err := run(t, "curves")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(secp.Curves())+1)
	assert.Contains(t, out, "SECP256K1")
	assert.Regexp(t, `SECT571K1\s+binary\s+570\s+286`, out)

	out, err = run(t, "curves", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "f:  x^163 + x^7 + x^6 + x^3 + 1")
	assert.Contains(t, out, "n:  fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, curve := range []string{"SECP256K1", "secp256r1", "SECT163K1"} {
		key := keygen(t, "--curve", curve)
		assert.Equal(t, strings.ToUpper(curve), key.Curve)

		sig, err := run(t, "sign", "--curve", curve, "--private", key.Private, "--message", "trident")
		require.NoError(t, err, curve)
		sig = strings.TrimSpace(sig)

		out, err := run(t, "verify", "--curve", curve,
			"--public-x", key.PublicX, "--public-y", key.PublicY,
			"--signature", sig, "--message", "trident")
		require.NoError(t, err, curve)
		assert.Contains(t, out, "valid")

		digest := sha256.Sum256([]byte("trident"))
		_, err = run(t, "verify", "--curve", curve,
			"--public-x", key.PublicX, "--public-y", key.PublicY,
			"--signature", sig, "--digest", hex.EncodeToString(digest[:]))
		assert.NoError(t, err, curve)

		out, err = run(t, "verify", "--curve", curve,
			"--public-x", key.PublicX, "--public-y", key.PublicY,
			"--signature", sig, "--message", "tridents")
		assert.True(t, errors.Is(err, errRejected), curve)
		assert.Contains(t, out, "invalid")

		_, err = run(t, "verify", "--curve", curve,
			"--public-x", key.PublicX, "--public-y", key.PublicY,
			"--signature", "g"+sig[1:], "--message", "trident")
		assert.True(t, errors.Is(err, errRejected), curve)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown curve", []string{"keygen", "--curve", "P-999"}, "unknown curve"},
		{"bad backend", []string{"keygen", "--curve", "SECP256R1", "--backend", "decred"}, "decred"},
		{"no private", []string{"sign", "--message", "m"}, "--private is required"},
		{"bad private", []string{"sign", "--private", "xyz", "--message", "m"}, "--private"},
		{"no digest", []string{"sign", "--private", "01"}, "one of --digest or --message"},
		{"both digests", []string{"sign", "--private", "01", "--digest", "00", "--message", "m"}, "mutually exclusive"},
		{"verify args", []string{"verify", "--message", "m"}, "are required"},
		{"batch file", []string{"verify-batch"}, "--file is required"},
		{"batch format", []string{"verify-batch", "--file", "x", "--format", "yaml"}, "unsupported record format"},
		{"log level", []string{"curves", "--log-level", "chatty"}, "invalid log level"},
		{"config file", []string{"curves", "--config", "/nonexistent/ecsig.yaml"}, "failed to read config file"},
	}

	for _, test := range tests {
		_, err := run(t, test.args...)
		require.Error(t, err, test.name)
		assert.Contains(t, err.Error(), test.want, test.name)
	}

	_, err := run(t, "keygen", "--curve", "SECP256R1", "--backend", "decred")
	assert.True(t, errors.Is(err, ecarith.ErrUnsupportedCurve))
}

func TestConfigSources(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "ecsig.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("curve: secp112r1\nbackend: affine\nstrict-keys: true\n"), 0o600))

	key := keygen(t, "--config", cfg)
	assert.Equal(t, "SECP112R1", key.Curve)

	// Flags win over the config file.
	key = keygen(t, "--config", cfg, "--curve", "SECP128R1")
	assert.Equal(t, "SECP128R1", key.Curve)

	t.Setenv("ECSIG_CURVE", "SECT113R1")
	key = keygen(t)
	assert.Equal(t, "SECT113R1", key.Curve)
}

func TestVerifyBatchCmd(t *testing.T) {
	good := keygen(t, "--curve", "SECP256K1")
	other := keygen(t, "--curve", "SECP192R1")

	sign := func(curve, priv, msg string) string {
		out, err := run(t, "sign", "--curve", curve, "--private", priv, "--message", msg)
		require.NoError(t, err)
		return strings.TrimSpace(out)
	}

	records := []map[string]string{
		{"message": "one", "public_x": good.PublicX, "public_y": good.PublicY,
			"signature": sign("SECP256K1", good.Private, "one")},
		{"curve": "SECP192R1", "message": "two", "public_x": other.PublicX, "public_y": other.PublicY,
			"signature": sign("SECP192R1", other.Private, "two")},
		{"message": "three", "public_x": good.PublicX, "public_y": good.PublicY,
			"signature": sign("SECP256K1", good.Private, "not three")},
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := run(t, "verify-batch", "--file", path, "--workers", "2")
	assert.True(t, errors.Is(err, errRejected))
	assert.Contains(t, out, "Verified 3 records: 2 valid, 1 invalid, 0 skipped")
	assert.Contains(t, out, "record 2 (SECP256K1): signature does not verify")

	csvPath := filepath.Join(dir, "records.csv")
	csv := fmt.Sprintf("curve,message,public_x,public_y,signature\nSECP192R1,two,%s,%s,%s\n",
		other.PublicX, other.PublicY, records[1]["signature"])
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o600))

	out, err = run(t, "verify-batch", "--file", csvPath, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "1 valid, 0 invalid")
}
