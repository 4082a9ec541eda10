// Package montgomery implements modular arithmetic in Montgomery form for
// unsigned integers of width 8, 16, 32 and 64 bits.
//
// For a width-W type and an odd modulus m, the Montgomery form of x is
// x*R mod m with R = 2^W. Addition, subtraction and negation behave as for
// plain residues; multiplication uses the REDC reduction, which replaces the
// trial division of a 2W-bit product by two word multiplications and a
// shift. The precomputed constant -m^-1 mod R required by REDC is obtained
// by Hensel lifting from an 8-bit table seed.
//
// Montgomery form pays off when many multiplications share one modulus; for
// isolated operations the direct reductions of the mod package are cheaper.
package montgomery

import (
	"golang.org/x/exp/constraints"

	"github.com/modworks/modular/utils"
)

// NegInv returns -m^-1 mod 2^W for an odd modulus m. Each Hensel step
// doubles the number of correct bits of the inverse, starting from the
// 8 bits provided by the seed table.
func NegInv[T constraints.Unsigned](m T) T {
	i := T(binvertTable[(m>>1)&0x7F])
	for w := 8; w < utils.Width[T](); w <<= 1 {
		i = (2 - i*m) * i
	}
	// i*m = 1 mod 2^W, hence (i*m - 2)*i = -i mod 2^W.
	return (i*m - 2) * i
}

// MForm returns x*2^W mod m, the Montgomery form of x. The input x does not
// need to be reduced modulo m.
func MForm[T constraints.Unsigned](x, m T) T {
	return utils.RemWide(x, 0, m)
}

// IMForm returns a*(1/2^W) mod m, converting a out of Montgomery form.
func IMForm[T constraints.Unsigned](a, m, minv T) T {
	return Reduce(0, a, m, minv)
}

// Reduce applies the REDC algorithm to the 2W-bit value t = hi*2^W + lo,
// returning t*(1/2^W) mod m. It requires t < m*2^W and minv = NegInv(m).
func Reduce[T constraints.Unsigned](hi, lo, m, minv T) T {
	u := lo * minv
	ph, pl := utils.MulWide(u, m)

	// t + u*m is a multiple of 2^W; its high word is the candidate result,
	// but the sum may exceed 2W bits.
	r, _, carry := utils.AddWide(hi, lo, ph, pl)

	// The lost 2^W contributes 2^W mod m = -m mod 2^W.
	if carry != 0 {
		r += -m
	}
	if r >= m {
		r -= m
	}
	return r
}

// Add returns a+b mod m. Inputs and output are in Montgomery form, which is
// preserved by plain modular addition.
func Add[T constraints.Unsigned](a, b, m T) T {
	s := a + b
	if s < a || s >= m {
		s -= m
	}
	return s
}

// Sub returns a-b mod m for a, b in [0, m).
func Sub[T constraints.Unsigned](a, b, m T) T {
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

// Neg returns -a mod m for a in [0, m).
func Neg[T constraints.Unsigned](a, m T) T {
	if a == 0 {
		return 0
	}
	return m - a
}

// Mul returns a*b mod m for a, b in Montgomery form, with the result again
// in Montgomery form. minv = NegInv(m).
func Mul[T constraints.Unsigned](a, b, m, minv T) T {
	hi, lo := utils.MulWide(a, b)
	return Reduce(hi, lo, m, minv)
}

// Pow returns base^exp mod m, where base is in Montgomery form and exp is a
// plain integer. The result is in Montgomery form.
func Pow[T constraints.Unsigned](base, exp, m, minv T) T {
	switch exp {
	case 1:
		return base
	case 2:
		return Mul(base, base, m, minv)
	}

	r := MForm(T(1), m)
	for exp > 0 {
		if exp&1 == 1 {
			r = Mul(r, base, m, minv)
		}
		base = Mul(base, base, m, minv)
		exp >>= 1
	}
	return r
}
