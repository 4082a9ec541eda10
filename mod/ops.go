// Package mod implements modular arithmetic on raw unsigned integers of any
// machine width, together with the modular inverse and the Jacobi and
// Kronecker symbols. The same operations are provided for math/big integers.
//
// Operands do not need to be reduced beforehand and the modulus does not
// need to be odd. Each operation reduces on its own; Montgomery form (see
// the montgomery package) is only worthwhile when one modulus is reused
// across many multiplications.
//
// A modulus of zero is a caller error and fails with a division by zero.
package mod

import (
	"golang.org/x/exp/constraints"

	"github.com/modworks/modular/utils"
)

// Add returns (a + b) mod m.
func Add[T constraints.Unsigned](a, b, m T) T {
	a, b = a%m, b%m
	s := a + b
	// s < a signals a wrap past 2^W, which can only happen when m has full
	// width; the wrapped s-m is then again the correct residue.
	if s < a || s >= m {
		s -= m
	}
	return s
}

// Sub returns (a - b) mod m.
func Sub[T constraints.Unsigned](a, b, m T) T {
	a, b = a%m, b%m
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

// Mul returns (a * b) mod m.
func Mul[T constraints.Unsigned](a, b, m T) T {
	a, b = a%m, b%m
	hi, lo := utils.MulWide(a, b)
	return utils.RemWide(hi, lo, m)
}

// Neg returns (-a) mod m, normalized to [0, m).
func Neg[T constraints.Unsigned](a, m T) T {
	a %= m
	if a == 0 {
		return 0
	}
	return m - a
}

// Pow returns a^e mod m, by right-to-left binary exponentiation.
func Pow[T constraints.Unsigned](a, e, m T) T {
	a %= m
	r := T(1) % m
	for e > 0 {
		if e&1 == 1 {
			r = Mul(r, a, m)
		}
		a = Mul(a, a, m)
		e >>= 1
	}
	return r
}
