package mod

import (
	"golang.org/x/exp/constraints"
)

// Inv returns x with a*x = 1 mod m, if it exists. The second return value
// is false when gcd(a, m) != 1, in which case a has no inverse modulo m.
//
// The extended Euclidean iteration tracks the Bezout coefficient of a as a
// residue modulo m, which keeps all intermediate values unsigned and in
// range at every width.
func Inv[T constraints.Unsigned](a, m T) (T, bool) {
	r0, r1 := a%m, m
	s0, s1 := T(1)%m, T(0)

	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, Sub(s0, Mul(q, s1, m), m)
	}

	if r0 != 1 {
		return 0, false
	}
	return s0, true
}
