package biguint

import (
	"math/big"
	"math/rand"
	"testing"
)

// toBig converts a Number to a big.Int through the hex encoding.
func toBig(t *testing.T, x *Number) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(x.Hex(), 16)
	if !ok {
		t.Fatalf("big.Int rejected hex %q", x.Hex())
	}
	return b
}

// randNumber builds a pseudo-random Number with the given digit count.
// The top digit is forced non-zero so the size is exact.
func randNumber(rng *rand.Rand, digits int) *Number {
	if digits == 0 {
		return New()
	}
	parts := make([]uint64, digits)
	for i := range parts {
		parts[i] = rng.Uint64()
	}
	for parts[0] == 0 {
		parts[0] = rng.Uint64()
	}
	return FromUint64s(parts...)
}

// stressDigits is a pool of digit values that exercise carry, borrow and
// quotient-estimate corner cases.
var stressDigits = []uint64{0, 1, 2, ^uint64(0), ^uint64(0) - 1, 1 << 63, 1<<63 - 1, 1<<63 + 1, ^uint64(0) >> 1}

// stressNumber builds a Number whose digits are drawn from stressDigits.
func stressNumber(rng *rand.Rand, digits int) *Number {
	if digits == 0 {
		return New()
	}
	parts := make([]uint64, digits)
	for i := range parts {
		parts[i] = stressDigits[rng.Intn(len(stressDigits))]
	}
	for parts[0] == 0 {
		parts[0] = stressDigits[rng.Intn(len(stressDigits))]
	}
	return FromUint64s(parts...)
}

// checkCanonical fails the test when x violates the trimming invariant.
func checkCanonical(t *testing.T, x *Number) {
	t.Helper()
	if n := len(x.digits); n > 0 && x.digits[n-1] == 0 {
		t.Fatalf("non-canonical result: top digit is zero, digits=%v", x.digits)
	}
}
