package utils_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modworks/modular/utils"
	"github.com/modworks/modular/utils/sampling"
)

func TestWidth(t *testing.T) {
	require.Equal(t, 8, utils.Width[uint8]())
	require.Equal(t, 16, utils.Width[uint16]())
	require.Equal(t, 32, utils.Width[uint32]())
	require.Equal(t, 64, utils.Width[uint64]())
}

func TestMulWide(t *testing.T) {
	for i := 0; i < 256; i++ {
		x, y := sampling.RandUint64(), sampling.RandUint64()

		hi, lo := utils.MulWide(x, y)
		whi, wlo := bits.Mul64(x, y)
		require.Equal(t, whi, hi)
		require.Equal(t, wlo, lo)

		x32, y32 := uint32(x), uint32(y)
		hi32, lo32 := utils.MulWide(x32, y32)
		p := uint64(x32) * uint64(y32)
		require.Equal(t, uint32(p>>32), hi32)
		require.Equal(t, uint32(p), lo32)

		x8, y8 := uint8(x), uint8(y)
		hi8, lo8 := utils.MulWide(x8, y8)
		p8 := uint16(x8) * uint16(y8)
		require.Equal(t, uint8(p8>>8), hi8)
		require.Equal(t, uint8(p8), lo8)
	}
}

func TestAddWide(t *testing.T) {
	for i := 0; i < 256; i++ {
		h1, l1 := sampling.RandUint64(), sampling.RandUint64()
		h2, l2 := sampling.RandUint64(), sampling.RandUint64()

		hi, lo, carry := utils.AddWide(h1, l1, h2, l2)

		wlo, c := bits.Add64(l1, l2, 0)
		whi, wc := bits.Add64(h1, h2, c)
		require.Equal(t, whi, hi)
		require.Equal(t, wlo, lo)
		require.Equal(t, wc, carry)
	}

	// carry out of the high word
	_, _, carry := utils.AddWide[uint8](0xFF, 0xFF, 0x00, 0x01)
	require.Equal(t, uint8(1), carry)
	_, _, carry = utils.AddWide[uint8](0x7F, 0xFF, 0x80, 0x01)
	require.Equal(t, uint8(1), carry)
	_, _, carry = utils.AddWide[uint8](0x7F, 0xFF, 0x7F, 0x01)
	require.Equal(t, uint8(0), carry)
}

func TestRemWide(t *testing.T) {
	for i := 0; i < 256; i++ {
		hi, lo := sampling.RandUint64(), sampling.RandUint64()
		m := sampling.RandUint64()
		if m == 0 {
			m = 1
		}

		_, want := bits.Div64(hi%m, lo, m)
		require.Equal(t, want, utils.RemWide(hi, lo, m))

		hi16, lo16, m16 := uint16(hi), uint16(lo), uint16(m)
		if m16 == 0 {
			m16 = 1
		}
		t32 := uint32(hi16)<<16 | uint32(lo16)
		require.Equal(t, uint16(t32%uint32(m16)), utils.RemWide(hi16, lo16, m16))
	}
}
