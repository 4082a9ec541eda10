/*
Package modular provides modular-arithmetic primitives for unsigned integers,
as required by number-theoretic algorithms such as primality tests,
factorization and discrete logarithms.

The mod subpackage implements the generic operations (modular addition,
subtraction, multiplication, exponentiation, negation, inversion, and the
Jacobi and Kronecker symbols) on raw machine words of any unsigned width, as
well as on math/big integers. The montgomery subpackage provides the same
ring arithmetic in Montgomery form, which amortizes the cost of reduction
when many multiplications share a single odd modulus.
*/
package modular
