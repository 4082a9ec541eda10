package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math/big"

	"golang.org/x/exp/constraints"
)

// RandUint64 returns a uniform random value in [0, 2^64) from crypto/rand.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}

// RandInt returns a uniform random *big.Int in [0, max-1] from crypto/rand.
func RandInt(max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(rand.Reader, max); err != nil {
		panic(err)
	}
	return
}

// RandUnsigned draws a uniform random value of the unsigned type T from the
// given PRNG.
func RandUnsigned[T constraints.Unsigned](prng io.Reader) T {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return T(binary.BigEndian.Uint64(b))
}
