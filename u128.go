package presence

import "math/bits"

// Uint128 is a 128-bit unsigned word stored as two uint64 halves. Lo holds
// bits 0..63 and Hi bits 64..127. It is a plain comparable value; only the
// operations Set128 needs are provided.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether no bit is set.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Or returns the bitwise OR of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// And returns the bitwise AND of u and v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// AndNot returns the bits of u that are not set in v.
func (u Uint128) AndNot(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi &^ v.Hi, Lo: u.Lo &^ v.Lo}
}

// OnesCount returns the number of set bits.
func (u Uint128) OnesCount() int {
	return bits.OnesCount64(u.Hi) + bits.OnesCount64(u.Lo)
}

// TrailingZeros returns the number of trailing zero bits; 128 when u is zero.
func (u Uint128) TrailingZeros() int {
	if u.Lo != 0 {
		return bits.TrailingZeros64(u.Lo)
	}
	if u.Hi != 0 {
		return 64 + bits.TrailingZeros64(u.Hi)
	}
	return 128
}

// Len returns the minimum number of bits required to represent u, i.e. one
// past the highest set bit; 0 when u is zero.
func (u Uint128) Len() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// bit128 returns a word with only bit i set, 0 <= i < 128.
func bit128(i int) Uint128 {
	if i < 64 {
		return Uint128{Lo: 1 << i}
	}
	return Uint128{Hi: 1 << (i - 64)}
}

// lowMask128 returns a word with the low n bits set, 0 <= n <= 128.
// Relies on the same shift wraparound as lowMask.
func lowMask128(n int) Uint128 {
	if n <= 64 {
		return Uint128{Lo: uint64(1)<<n - 1}
	}
	return Uint128{Hi: uint64(1)<<(n-64) - 1, Lo: ^uint64(0)}
}
