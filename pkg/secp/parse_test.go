package secp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "01", "1"},
		{"grouped words", "DB7C2ABF 62E35E66 8076BEAD 208B", "db7c2abf62e35e668076bead208b"},
		{"mixed whitespace", " 01 \t00000000\n0001DCE8 ", "10000000000001dce8"},
		{"lower case", "fffffffe baaedce6", "fffffffebaaedce6"},
		{"leading zeros", "0000 00000001", "1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseHex(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, got.Text(16))
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "0x01", "12 3G", "-01", "+FF"} {
		_, err := parseHex(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParsePolynomial(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"x^113 x^9 1", []int{113, 9, 0}},
		{"x^163 x^7 x^6 x^3 1", []int{163, 7, 6, 3, 0}},
		{"1 x^3 x", []int{3, 1, 0}},
		{"x^571   x^10 x^5 x^2 1", []int{571, 10, 5, 2, 0}},
	}

	for _, test := range tests {
		got, err := parsePolynomial(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestParsePolynomialInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"x^163 x^7",    // no constant term
		"x 1",          // degree 1
		"x^5 x^5 1",    // duplicate
		"y^5 1",        // not a term
		"x^-3 1",       // negative exponent
		"x^163 + x 1",  // stray operator
	} {
		_, err := parsePolynomial(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestEntryBuildErrors(t *testing.T) {
	good := entry{
		name:  "TEST",
		kind:  Prime,
		field: "17",
		a:     "00",
		b:     "07",
		gx:    "01",
		gy:    "02",
		n:     "05",
		h:     "01",
	}
	d, err := good.build()
	require.NoError(t, err)
	assert.Zero(t, d.P().Cmp(big.NewInt(0x17)))

	bad := good
	bad.gy = "zz"
	_, err = bad.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gy")

	bad = good
	bad.n = "00"
	_, err = bad.build()
	assert.Error(t, err)

	bad = good
	bad.kind = BinaryExtension
	bad.field = "not a polynomial"
	_, err = bad.build()
	assert.Error(t, err)

	_, err = buildCatalog([]entry{good, good})
	assert.Error(t, err)
}
