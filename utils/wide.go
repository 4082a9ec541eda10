// Package utils provides double-width helpers for word arithmetic, shared by
// the mod and montgomery packages.
package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Width returns the size in bits of the unsigned type T.
func Width[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// MulWide returns the full 2W-bit product x*y as a (hi, lo) pair of
// width-W words.
func MulWide[T constraints.Unsigned](x, y T) (hi, lo T) {
	if Width[T]() == 64 {
		h, l := bits.Mul64(uint64(x), uint64(y))
		return T(h), T(l)
	}
	p := uint64(x) * uint64(y)
	return T(p >> uint(Width[T]())), T(p)
}

// AddWide returns the 2W-bit sum (h1,l1) + (h2,l2) along with the carry out
// of the high word. The carry is 0 or 1.
func AddWide[T constraints.Unsigned](h1, l1, h2, l2 T) (hi, lo, carry T) {
	var c T
	lo = l1 + l2
	if lo < l1 {
		c = 1
	}
	t := h1 + c
	if t < h1 {
		carry = 1
	}
	hi = t + h2
	if hi < h2 {
		carry = 1
	}
	return
}

// RemWide returns (hi*2^W + lo) mod m. The high word may be >= m.
func RemWide[T constraints.Unsigned](hi, lo, m T) T {
	if Width[T]() == 64 {
		_, r := bits.Div64(uint64(hi)%uint64(m), uint64(lo), uint64(m))
		return T(r)
	}
	t := uint64(hi)<<uint(Width[T]()) | uint64(lo)
	return T(t % uint64(m))
}
