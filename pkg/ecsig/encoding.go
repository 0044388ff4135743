package ecsig

import (
	"fmt"
	"math/big"
	"strings"
)

// Signature is a decoded (r, s) pair.
type Signature struct {
	R *big.Int
	S *big.Int
}

// EncodeSignature returns r and s as lowercase hex, each left padded with
// zeros to ComponentWidth digits. It panics if either value is negative or
// too wide.
func (e *Engine) EncodeSignature(sig *Signature) string {
	return encodeScalar(sig.R, e.width) + encodeScalar(sig.S, e.width)
}

// DecodeSignature parses an encoded signature. Either hex case is accepted.
// Both components must lie in [1, n-1].
func (e *Engine) DecodeSignature(s string) (*Signature, error) {
	if len(s) != 2*e.width {
		return nil, makeError(ErrSigInvalidLen,
			fmt.Sprintf("malformed signature: got %d characters, want %d", len(s), 2*e.width))
	}
	if i := strings.IndexFunc(s, func(c rune) bool { return !isHexDigit(c) }); i >= 0 {
		return nil, makeError(ErrSigInvalidHex,
			fmt.Sprintf("malformed signature: non-hex character at offset %d", i))
	}

	r, _ := new(big.Int).SetString(s[:e.width], 16)
	sv, _ := new(big.Int).SetString(s[e.width:], 16)

	switch {
	case r.Sign() == 0:
		return nil, makeError(ErrSigRIsZero, "invalid signature: r is 0")
	case r.Cmp(e.n) >= 0:
		return nil, makeError(ErrSigRTooBig, "invalid signature: r >= group order")
	case sv.Sign() == 0:
		return nil, makeError(ErrSigSIsZero, "invalid signature: s is 0")
	case sv.Cmp(e.n) >= 0:
		return nil, makeError(ErrSigSTooBig, "invalid signature: s >= group order")
	}
	return &Signature{R: r, S: sv}, nil
}

func encodeScalar(v *big.Int, width int) string {
	if v.Sign() < 0 {
		panic(fmt.Sprintf("ecsig: cannot encode negative value %s", v.Text(16)))
	}
	h := v.Text(16)
	if len(h) > width {
		panic(fmt.Sprintf("ecsig: value needs %d hex digits, width is %d", len(h), width))
	}
	return strings.Repeat("0", width-len(h)) + h
}

// isHexDigit accepts only [0-9a-fA-F]. big.Int.SetString on its own would
// also take a leading sign.
func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
