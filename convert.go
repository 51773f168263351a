package biguint

import (
	"math/bits"
	"strings"

	"github.com/agbru/biguint/internal/digit"
	"github.com/agbru/biguint/metrics"
)

// digitAlphabet maps digit values to characters for bases up to 36.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const badDigit = 0xff

// ordTable maps input characters to digit values; upper and lower case
// letters carry the same values.
var ordTable [256]byte

func init() {
	for i := range ordTable {
		ordTable[i] = badDigit
	}
	for c := byte('0'); c <= '9'; c++ {
		ordTable[c] = c - '0'
	}
	for c := byte('a'); c <= 'z'; c++ {
		ordTable[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'Z'; c++ {
		ordTable[c] = c - 'A' + 10
	}
}

// baseBits returns log2(base) for power-of-two bases in [2, 36], else 0.
func baseBits(base int) uint {
	if base&(base-1) == 0 {
		return uint(bits.TrailingZeros(uint(base)))
	}
	return 0
}

// Parse interprets s in the given base and returns the value. Bases 2..36
// accept the 0-9a-z alphabet in either case; base 256 reads s as raw
// big-endian bytes. Other bases yield an InvalidBaseError; a character
// decoding at or above the base yields an InvalidDigitError.
func Parse(s string, base int) (*Number, error) {
	z := New()
	if err := z.SetString(s, base); err != nil {
		return nil, err
	}
	return z, nil
}

// SetString sets z from s interpreted in the given base; see Parse.
// On error z is reset to zero.
func (z *Number) SetString(s string, base int) error {
	metrics.IncParse()
	if base == 256 {
		z.SetBytes([]byte(s))
		return nil
	}
	if base < 2 || base > 36 {
		z.setZero()
		return InvalidBaseError{Base: base}
	}
	z.setZero()
	if bb := baseBits(base); bb != 0 {
		// Power-of-two base: shift and or, no multiplication.
		for i := 0; i < len(s); i++ {
			d := ordTable[s[i]]
			if d >= byte(base) {
				z.setZero()
				return InvalidDigitError{Base: base, Char: s[i], Pos: i}
			}
			z.shiftOrDigit(bb, Digit(d))
		}
	} else {
		for i := 0; i < len(s); i++ {
			d := ordTable[s[i]]
			if d >= byte(base) {
				z.setZero()
				return InvalidDigitError{Base: base, Char: s[i], Pos: i}
			}
			z.mulAddDigit(Digit(base), Digit(d))
		}
	}
	z.carry = false
	return nil
}

// SetBytes sets z from a big-endian byte sequence (base 256) and
// returns z. An empty slice yields zero.
func (z *Number) SetBytes(b []byte) *Number {
	nd := (len(b) + digitOctets - 1) / digitOctets
	z.resize(nd)
	for i := range z.digits {
		z.digits[i] = 0
	}
	for i := 0; i < len(b); i++ {
		// b[len-1-i] is the i-th least significant octet.
		z.digits[i/digitOctets] |= Digit(b[len(b)-1-i]) << (8 * (i % digitOctets))
	}
	z.carry = false
	z.trim(0)
	return z
}

// shiftOrDigit accumulates one character of a power-of-two base:
// z = z<<bbits | d.
func (z *Number) shiftOrDigit(bbits uint, d Digit) {
	z.Lsh(z, bbits)
	if d != 0 {
		if len(z.digits) == 0 {
			z.digits = append(z.digits, d)
		} else {
			z.digits[0] |= d
		}
	}
}

// mulAddDigit accumulates one character of a generic base: z = z·m + d.
func (z *Number) mulAddDigit(m, d Digit) {
	c := d
	for i, zv := range z.digits {
		z.digits[i], c = digit.MulAdd(zv, m, 0, c)
	}
	if c != 0 {
		z.digits = append(z.digits, c)
	}
}

// Text formats x in the given base. Power-of-two bases are read as a
// stream of half-digits with no division; other bases in [2, 36] use
// repeated division by the base. Base 256 returns the raw big-endian
// bytes as a string. Zero formats as "0" (one zero byte for base 256).
func (x *Number) Text(base int) (string, error) {
	metrics.IncFormat()
	if base == 256 {
		return string(x.Bytes()), nil
	}
	if base < 2 || base > 36 {
		return "", InvalidBaseError{Base: base}
	}
	if len(x.digits) == 0 {
		return "0", nil
	}
	var out []byte
	if bb := baseBits(base); bb != 0 {
		out = x.formatPow2(bb)
	} else {
		out = x.formatGeneric(Digit(base))
	}
	reverseBytes(out)
	return string(out), nil
}

// TextPadded is Text left-padded with '0' characters (zero bytes for
// base 256) to at least minWidth.
func (x *Number) TextPadded(base, minWidth int) (string, error) {
	s, err := x.Text(base)
	if err != nil {
		return "", err
	}
	if len(s) >= minWidth {
		return s, nil
	}
	pad := "0"
	if base == 256 {
		pad = "\x00"
	}
	return strings.Repeat(pad, minWidth-len(s)) + s, nil
}

// String formats x in base 10.
func (x *Number) String() string {
	s, _ := x.Text(10)
	return s
}

// Bin formats x in base 2.
func (x *Number) Bin() string {
	s, _ := x.Text(2)
	return s
}

// Oct formats x in base 8.
func (x *Number) Oct() string {
	s, _ := x.Text(8)
	return s
}

// Hex formats x in base 16.
func (x *Number) Hex() string {
	s, _ := x.Text(16)
	return s
}

// Raw returns the raw big-endian byte encoding of x; zero is a single
// zero byte.
func (x *Number) Raw() []byte {
	return x.Bytes()
}

// Bytes returns the big-endian byte encoding of x with leading zero
// octets stripped; zero is a single zero byte.
func (x *Number) Bytes() []byte {
	if len(x.digits) == 0 {
		return []byte{0}
	}
	out := make([]byte, 0, len(x.digits)*digitOctets)
	for _, d := range x.digits {
		for k := 0; k < digitOctets; k++ {
			out = append(out, byte(d>>(8*k)))
		}
	}
	n := len(out)
	for n > 1 && out[n-1] == 0 {
		n--
	}
	out = out[:n]
	reverseBytes(out)
	return out
}

// formatPow2 emits digits least significant first by streaming the value
// through a double half-digit staging register and extracting bbits at a
// time; extraction windows may straddle half-digit boundaries. The
// trailing '0' characters, which are leading zeros after reversal, are
// stripped.
func (x *Number) formatPow2(bbits uint) []byte {
	mask := Digit(1)<<bbits - 1
	const halfMask = Digit(1)<<halfDigitBits - 1
	half := func(i int) Digit {
		d := x.digits[i/2]
		if i&1 == 1 {
			d >>= halfDigitBits
		}
		return d & halfMask
	}
	halves := len(x.digits) * 2
	out := make([]byte, 0, len(x.digits)*digitBits/int(bbits)+1)

	num := half(0) << halfDigitBits
	next := 1
	var shift uint
	for i := halves - 1; i > 0; i-- {
		num >>= halfDigitBits
		num |= half(next) << halfDigitBits
		next++
		for {
			out = append(out, digitAlphabet[num>>shift&mask])
			shift += bbits
			if shift > halfDigitBits {
				break
			}
		}
		shift -= halfDigitBits
	}
	num >>= shift + halfDigitBits
	for num != 0 {
		out = append(out, digitAlphabet[num&mask])
		num >>= bbits
	}

	n := len(out)
	for n > 0 && out[n-1] == '0' {
		n--
	}
	return out[:n]
}

// formatGeneric emits digits least significant first by repeated division
// of a working copy by the base.
func (x *Number) formatGeneric(base Digit) []byte {
	var q Number
	q.Set(x)
	out := make([]byte, 0, len(x.digits)*20)
	for !q.IsZero() {
		out = append(out, digitAlphabet[q.divDigit(base)])
	}
	return out
}

// divDigit divides z by the single digit n in place and returns the
// remainder.
func (z *Number) divDigit(n Digit) Digit {
	var r Digit
	for i := len(z.digits) - 1; i >= 0; i-- {
		z.digits[i], r = digit.DivRem2x1(r, z.digits[i], n)
	}
	z.trim(0)
	return r
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
