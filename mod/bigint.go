package mod

import (
	"math/big"
)

// The *big.Int mirrors of the generic operations. Inputs must be
// non-negative; results are freshly allocated and normalized to [0, m).

// AddBig returns (a + b) mod m.
func AddBig(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}

// SubBig returns (a - b) mod m.
func SubBig(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m)
}

// MulBig returns (a * b) mod m.
func MulBig(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// NegBig returns (-a) mod m.
func NegBig(a, m *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, m)
}

// PowBig returns a^e mod m.
func PowBig(a, e, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, m)
}

// InvBig returns x with a*x = 1 mod m, or nil when gcd(a, m) != 1.
func InvBig(a, m *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, m)
}

// JacobiBig returns the Jacobi symbol (a|n). The modulus n must be odd.
func JacobiBig(a, n *big.Int) int {
	if n.Bit(0) == 0 {
		panic("mod: the Jacobi symbol is only defined for odd n")
	}
	return big.Jacobi(a, n)
}

// KroneckerBig returns the Kronecker symbol (a|n) for non-negative a and n.
// (a|0) is 1 when a = 1 and 0 otherwise.
func KroneckerBig(a, n *big.Int) int {
	if n.Sign() == 0 {
		if a.Cmp(big.NewInt(1)) == 0 {
			return 1
		}
		return 0
	}

	tz := n.TrailingZeroBits()
	result := 1
	if tz > 0 {
		if a.Bit(0) == 0 {
			return 0
		}
		// (a|2) per stripped factor of two; an even count cancels.
		if tz&1 == 1 {
			if r := a.Bits()[0] & 7; r == 3 || r == 5 {
				result = -result
			}
		}
	}
	odd := new(big.Int).Rsh(n, tz)
	return result * JacobiBig(a, odd)
}
