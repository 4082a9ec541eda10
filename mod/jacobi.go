package mod

import (
	"golang.org/x/exp/constraints"
)

// Jacobi returns the Jacobi symbol (a|n), which is -1, 0 or 1. The modulus
// n must be odd; an even (or zero) n panics.
//
// For an odd prime n the Jacobi symbol coincides with the Legendre symbol,
// so callers that know n to be prime can use it to test for quadratic
// residues directly.
func Jacobi[T constraints.Unsigned](a, n T) int {
	if n&1 == 0 {
		panic("mod: the Jacobi symbol is only defined for odd n")
	}

	a %= n
	result := 1
	for a != 0 {
		// Factor out twos; each contributes (2|n), which is -1 exactly
		// when n = 3 or 5 mod 8.
		for a&1 == 0 {
			a >>= 1
			if r := n & 7; r == 3 || r == 5 {
				result = -result
			}
		}
		// Quadratic reciprocity: flip when both are 3 mod 4.
		a, n = n, a
		if a&3 == 3 && n&3 == 3 {
			result = -result
		}
		a %= n
	}
	if n == 1 {
		return result
	}
	return 0
}

// Kronecker returns the Kronecker symbol (a|n), which extends the Jacobi
// symbol to even and zero n. (a|0) is 1 when a = 1 and 0 otherwise.
func Kronecker[T constraints.Unsigned](a, n T) int {
	if n == 0 {
		if a == 1 {
			return 1
		}
		return 0
	}

	// Strip the 2-part of n, applying (a|2) once per factor: 0 for even a,
	// -1 when a = 3 or 5 mod 8, and 1 when a = 1 or 7 mod 8.
	result := 1
	for n&1 == 0 {
		n >>= 1
		if a&1 == 0 {
			return 0
		}
		if r := a & 7; r == 3 || r == 5 {
			result = -result
		}
	}
	return result * Jacobi(a, n)
}
