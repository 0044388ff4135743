package secp

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// parseHex parses a hexadecimal constant as printed in SEC 2, where digits are
// grouped into words separated by arbitrary whitespace.
func parseHex(s string) (*big.Int, error) {
	digits := strings.Join(strings.Fields(s), "")
	if digits == "" {
		return nil, fmt.Errorf("empty hex constant")
	}
	for _, c := range digits {
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q in %q", c, s)
		}
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex constant %q", s)
	}
	return v, nil
}

// parsePolynomial parses a reduction polynomial written as space separated
// terms, e.g. "x^163 x^7 x^6 x^3 1". The returned exponents are unique and in
// descending order. The polynomial must have a leading term of degree > 1 and
// a constant term.
func parsePolynomial(s string) ([]int, error) {
	terms := strings.Fields(s)
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty polynomial")
	}

	seen := make(map[int]bool, len(terms))
	exps := make([]int, 0, len(terms))
	for _, term := range terms {
		var e int
		switch {
		case term == "1":
			e = 0
		case term == "x":
			e = 1
		case strings.HasPrefix(term, "x^"):
			v, err := strconv.Atoi(term[2:])
			if err != nil || v < 0 {
				return nil, fmt.Errorf("invalid term %q in %q", term, s)
			}
			e = v
		default:
			return nil, fmt.Errorf("invalid term %q in %q", term, s)
		}
		if seen[e] {
			return nil, fmt.Errorf("duplicate term %q in %q", term, s)
		}
		seen[e] = true
		exps = append(exps, e)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(exps)))
	if exps[0] < 2 {
		return nil, fmt.Errorf("polynomial %q has degree < 2", s)
	}
	if exps[len(exps)-1] != 0 {
		return nil, fmt.Errorf("polynomial %q has no constant term", s)
	}
	return exps, nil
}

// isHexDigit accepts only [0-9a-fA-F]. big.Int.SetString on its own would
// also take a leading sign.
func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// entry is the textual form of one catalog record.
type entry struct {
	name  Curve
	kind  FieldKind
	field string // prime modulus in hex, or reduction polynomial
	a, b  string
	gx    string
	gy    string
	n     string
	h     string
}

// build parses an entry into DomainParameters.
func (e entry) build() (*DomainParameters, error) {
	d := &DomainParameters{name: e.name, kind: e.kind}

	var err error
	switch e.kind {
	case Prime:
		if d.p, err = parseHex(e.field); err != nil {
			return nil, fmt.Errorf("%s: p: %w", e.name, err)
		}
	case BinaryExtension:
		if d.poly, err = parsePolynomial(e.field); err != nil {
			return nil, fmt.Errorf("%s: field polynomial: %w", e.name, err)
		}
	default:
		return nil, fmt.Errorf("%s: unknown field kind %v", e.name, e.kind)
	}

	fields := []struct {
		label string
		src   string
		dst   **big.Int
	}{
		{"a", e.a, &d.a},
		{"b", e.b, &d.b},
		{"Gx", e.gx, &d.gx},
		{"Gy", e.gy, &d.gy},
		{"n", e.n, &d.n},
		{"h", e.h, &d.h},
	}
	for _, f := range fields {
		v, err := parseHex(f.src)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", e.name, f.label, err)
		}
		*f.dst = v
	}

	if d.n.Sign() <= 0 {
		return nil, fmt.Errorf("%s: order must be positive", e.name)
	}
	return d, nil
}
