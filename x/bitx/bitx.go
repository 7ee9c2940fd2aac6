package bitx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi.
func Between[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// Shl32 shifts v left by n bits. Bits pushed past bit 31 are discarded and
// the sign follows bit 31 of the result (two's-complement wraparound).
func Shl32(v int32, n uint) int32 {
	return int32(uint32(v) << (n & 31))
}

// Field places the low width bits of v at bit offset shift of a 32-bit word.
func Field[T constraints.Integer](v T, shift, width uint) int32 {
	mask := uint32(1)<<width - 1
	return int32((uint32(v) & mask) << shift)
}

// Byte returns byte i (0 = least significant) of v.
func Byte(v int32, i uint) uint8 {
	return uint8(uint32(v) >> (8 * (i & 3)))
}

// Bytes returns v as big-endian bytes, most significant first.
func Bytes(v int32) [4]uint8 {
	return [4]uint8{Byte(v, 3), Byte(v, 2), Byte(v, 1), Byte(v, 0)}
}
