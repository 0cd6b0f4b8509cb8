package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint128_TrailingZeros(t *testing.T) {
	tests := []struct {
		u    Uint128
		want int
	}{
		{Uint128{}, 128},
		{Uint128{Lo: 1}, 0},
		{Uint128{Lo: 1 << 63}, 63},
		{Uint128{Hi: 1}, 64},
		{Uint128{Hi: 1 << 63}, 127},
		{Uint128{Hi: 1, Lo: 1 << 10}, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.u.TrailingZeros())
	}
}

func TestUint128_Len(t *testing.T) {
	tests := []struct {
		u    Uint128
		want int
	}{
		{Uint128{}, 0},
		{Uint128{Lo: 1}, 1},
		{Uint128{Lo: 1 << 63}, 64},
		{Uint128{Hi: 1}, 65},
		{Uint128{Hi: 1 << 63}, 128},
		{Uint128{Hi: 1, Lo: 1 << 10}, 65},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.u.Len())
	}
}

func TestUint128_OnesCount(t *testing.T) {
	assert.Equal(t, 0, Uint128{}.OnesCount())
	assert.Equal(t, 2, Uint128{Hi: 1, Lo: 1}.OnesCount())
	assert.Equal(t, 128, Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}.OnesCount())
}

func TestUint128_Bitwise(t *testing.T) {
	a := Uint128{Hi: 0b1100, Lo: 0b1010}
	b := Uint128{Hi: 0b1010, Lo: 0b0110}

	assert.Equal(t, Uint128{Hi: 0b1110, Lo: 0b1110}, a.Or(b))
	assert.Equal(t, Uint128{Hi: 0b1000, Lo: 0b0010}, a.And(b))
	assert.Equal(t, Uint128{Hi: 0b0100, Lo: 0b1000}, a.AndNot(b))
	assert.True(t, Uint128{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestBit128(t *testing.T) {
	assert.Equal(t, Uint128{Lo: 1}, bit128(0))
	assert.Equal(t, Uint128{Lo: 1 << 63}, bit128(63))
	assert.Equal(t, Uint128{Hi: 1}, bit128(64))
	assert.Equal(t, Uint128{Hi: 1 << 63}, bit128(127))
}

func TestLowMask128(t *testing.T) {
	tests := []struct {
		n    int
		want Uint128
	}{
		{0, Uint128{}},
		{1, Uint128{Lo: 1}},
		{64, Uint128{Lo: ^uint64(0)}},
		{65, Uint128{Hi: 1, Lo: ^uint64(0)}},
		{127, Uint128{Hi: uint64(1)<<63 - 1, Lo: ^uint64(0)}},
		{128, Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lowMask128(tt.n), "lowMask128(%d)", tt.n)
	}
}
