// Package digit provides the fixed-width primitives the multi-precision
// kernels are built on: add with carry, subtract with borrow, widening
// multiply, double-by-single division and bit length. These are the only
// functions that may touch platform intrinsics; math/bits compiles to the
// native instructions where available and carries its own portable
// fallback, which satisfies the correctness-first contract.
package digit

import "math/bits"

const (
	// Bits is the width W of a single digit.
	Bits = 64
	// Octets is the number of bytes in a single digit.
	Octets = Bits / 8
	// HalfBits is the width of a half-digit, the staging unit for radix
	// conversion.
	HalfBits = Bits / 2
)

// AddCarry returns (x + y + carry) mod 2^64 and the carry-out.
// carry must be 0 or 1.
func AddCarry(x, y, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(x, y, carry)
}

// SubBorrow returns (x - y - borrow) mod 2^64 and the borrow-out.
// borrow must be 0 or 1.
func SubBorrow(x, y, borrow uint64) (diff, borrowOut uint64) {
	return bits.Sub64(x, y, borrow)
}

// MulWide returns the full 128-bit product x*y as (lo, hi),
// with lo + hi·2^64 = x·y.
func MulWide(x, y uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	return lo, hi
}

// MulAdd returns x·y + acc + carry as (lo, hi). The sum cannot overflow
// 128 bits: (2^64-1)² + 2·(2^64-1) = 2^128 - 1.
func MulAdd(x, y, acc, carry uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	var c uint64
	lo, c = bits.Add64(lo, acc, 0)
	hi += c
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	return lo, hi
}

// DivRem2x1 divides the double-width value hi·2^64 + lo by d, returning
// quotient and remainder. It requires hi < d so that the quotient fits in
// a single digit.
func DivRem2x1(hi, lo, d uint64) (q, r uint64) {
	return bits.Div64(hi, lo, d)
}

// BitLen returns the 1-based position of the most significant set bit.
// BitLen(0) is 1, so BitLen(x)-1 is always a usable shift count.
func BitLen(x uint64) uint {
	if x == 0 {
		return 1
	}
	return uint(bits.Len64(x))
}

// LeadingZeros returns the number of leading zero bits in x.
func LeadingZeros(x uint64) uint {
	return uint(bits.LeadingZeros64(x))
}
