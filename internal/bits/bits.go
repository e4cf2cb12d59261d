// Package bits provides bit access over byte arrays.
//
// Bit i of a buffer lives in byte i/8 at position i%8, least significant bit
// first. This is the order used both by packed code entries in the table and by
// the payload bit stream.
package bits

// NumBytes returns the number of bytes needed to hold n bits.
func NumBytes(n int) int {
	return (n + 7) / 8
}

// Get returns bit i of buf as 0 or 1.
func Get(buf []byte, i int) uint8 {
	return (buf[i/8] >> (i % 8)) & 1
}

// Set sets bit i of buf to the low bit of v.
func Set(buf []byte, i int, v uint8) {
	mask := byte(1) << (i % 8)
	if v&1 == 1 {
		buf[i/8] |= mask
	} else {
		buf[i/8] &^= mask
	}
}

// Reverse reverses the order of the first n bits of buf in place, so that
// bit 0 swaps with bit n-1. Bits past n in the last used byte are cleared.
func Reverse(buf []byte, n int) {
	for lo, hi := 0, n-1; lo < hi; lo, hi = lo+1, hi-1 {
		a, b := Get(buf, lo), Get(buf, hi)
		Set(buf, lo, b)
		Set(buf, hi, a)
	}

	if rem := n % 8; rem != 0 {
		buf[n/8] &= byte(1)<<rem - 1
	}
}
