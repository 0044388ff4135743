package ecarith

import "math/big"

// gf2m is arithmetic in GF(2^m) with polynomial basis. Elements are stored as
// big.Int bit vectors: bit i is the coefficient of x^i.
type gf2m struct {
	f *big.Int // reduction polynomial, degree m
	m int
}

func newGF2m(f *big.Int) gf2m {
	return gf2m{f: f, m: f.BitLen() - 1}
}

// contains reports whether a is a reduced field element.
func (g gf2m) contains(a *big.Int) bool {
	return a.Sign() >= 0 && a.BitLen() <= g.m
}

func (g gf2m) add(a, b *big.Int) *big.Int {
	return new(big.Int).Xor(a, b)
}

// reduce reduces a modulo f in place and returns it. A negative a is not a
// field element; its magnitude is reduced instead.
func (g gf2m) reduce(a *big.Int) *big.Int {
	a.Abs(a)
	shifted := new(big.Int)
	for a.BitLen() > g.m {
		shifted.Lsh(g.f, uint(a.BitLen()-1-g.m))
		a.Xor(a, shifted)
	}
	return a
}

// mul is a carry-less shift-and-add multiplication followed by reduction.
func (g gf2m) mul(a, b *big.Int) *big.Int {
	r := new(big.Int)
	for i := b.BitLen() - 1; i >= 0; i-- {
		r.Lsh(r, 1)
		if b.Bit(i) == 1 {
			r.Xor(r, a)
		}
	}
	return g.reduce(r)
}

func (g gf2m) sqr(a *big.Int) *big.Int {
	return g.mul(a, a)
}

// inv returns a⁻¹ using the binary-field extended Euclidean algorithm. Zero,
// including any multiple of f, has no inverse and maps to zero.
func (g gf2m) inv(a *big.Int) *big.Int {
	u := g.reduce(new(big.Int).Set(a))
	if u.Sign() == 0 {
		return u
	}
	v := new(big.Int).Set(g.f)
	g1 := big.NewInt(1)
	g2 := new(big.Int)

	one := big.NewInt(1)
	tmp := new(big.Int)
	for u.Cmp(one) != 0 {
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u.Xor(u, tmp.Lsh(v, uint(j)))
		g1.Xor(g1, tmp.Lsh(g2, uint(j)))
	}
	return g.reduce(g1)
}

func (g gf2m) div(a, b *big.Int) *big.Int {
	return g.mul(a, g.inv(b))
}
