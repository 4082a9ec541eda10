package montgomery

import (
	"golang.org/x/exp/constraints"
)

// context stores a modulus together with its precomputed REDC constant. It
// is immutable once created and shared by pointer among all handles derived
// from a common root, so cloning a handle is O(1) and concurrent readers
// are safe without synchronization; the garbage collector takes the place
// of a reference count.
type context[T constraints.Unsigned] struct {
	m    T // modulus, odd and >= 3
	minv T // -m^-1 mod 2^W
}

// Int is an integer of the ring Z/mZ held in Montgomery form. It is a value
// type: operations return new handles and never mutate their operands.
//
// Binary operations require both operands to belong to the same ring. Two
// handles sharing a context (one derived from the other) pass the check by
// pointer identity; otherwise the moduli are compared structurally and a
// mismatch panics.
type Int[T constraints.Unsigned] struct {
	a   T // Montgomery form of the value, in [0, m)
	ctx *context[T]
}

// NewInt returns x mod m as a Montgomery-form integer. The modulus must be
// odd and at least 3; callers with an even modulus are expected to shift
// out the powers of two and handle them separately, or to use the direct
// reductions of the mod package.
//
// NewInt recomputes the REDC constant of m. To create further integers of
// the same ring, prefer Derive on an existing handle.
func NewInt[T constraints.Unsigned](x, m T) Int[T] {
	if m&1 == 0 || m < 3 {
		panic("montgomery: modulus must be odd and >= 3")
	}
	ctx := &context[T]{m: m, minv: NegInv(m)}
	return Int[T]{a: MForm(x, m), ctx: ctx}
}

// Derive returns x mod m in the ring of z, reusing the precomputed context.
func (z Int[T]) Derive(x T) Int[T] {
	return Int[T]{a: MForm(x, z.ctx.m), ctx: z.ctx}
}

// Modulus returns the modulus of the ring of z.
func (z Int[T]) Modulus() T {
	return z.ctx.m
}

// Residue returns the normalized value of z in [0, m), converting out of
// Montgomery form.
func (z Int[T]) Residue() T {
	return Reduce(0, z.a, z.ctx.m, z.ctx.minv)
}

func (z Int[T]) checkContext(x Int[T]) {
	if z.ctx == x.ctx {
		return
	}
	if z.ctx.m != x.ctx.m {
		panic("montgomery: operands belong to different rings")
	}
}

// Add returns z+x. The result shares the context of z.
func (z Int[T]) Add(x Int[T]) Int[T] {
	z.checkContext(x)
	return Int[T]{a: Add(z.a, x.a, z.ctx.m), ctx: z.ctx}
}

// Sub returns z-x. The result shares the context of z.
func (z Int[T]) Sub(x Int[T]) Int[T] {
	z.checkContext(x)
	return Int[T]{a: Sub(z.a, x.a, z.ctx.m), ctx: z.ctx}
}

// Mul returns z*x. The result shares the context of z.
func (z Int[T]) Mul(x Int[T]) Int[T] {
	z.checkContext(x)
	return Int[T]{a: Mul(z.a, x.a, z.ctx.m, z.ctx.minv), ctx: z.ctx}
}

// Neg returns -z.
func (z Int[T]) Neg() Int[T] {
	return Int[T]{a: Neg(z.a, z.ctx.m), ctx: z.ctx}
}

// Pow returns z^exp, with the exponent given as a plain integer.
func (z Int[T]) Pow(exp T) Int[T] {
	return Int[T]{a: Pow(z.a, exp, z.ctx.m, z.ctx.minv), ctx: z.ctx}
}

// Equal reports whether z and x are the same element of the same ring.
func (z Int[T]) Equal(x Int[T]) bool {
	z.checkContext(x)
	// For a fixed modulus the Montgomery map is a bijection on [0, m).
	return z.a == x.a
}
