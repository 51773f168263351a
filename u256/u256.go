// Package u256 provides a fixed-width 256-bit unsigned integer: the same
// digit-level algorithms as the variable-width engine, specialised to a
// four-digit value that lives entirely on the stack. Operations wrap
// modulo 2^256; division round-trips through the variable-width engine.
package u256

import (
	"github.com/agbru/biguint"
	"github.com/agbru/biguint/internal/digit"
)

// Uint is a 256-bit unsigned integer. The zero value is 0.
type Uint struct {
	hi, hm, lm, lo uint64
}

// Max is the largest representable value, 2^256 − 1.
var Max = Uint{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

// From constructs a Uint from four 64-bit parts, most significant first.
func From(hi, hm, lm, lo uint64) Uint {
	return Uint{hi: hi, hm: hm, lm: lm, lo: lo}
}

// From64 constructs a Uint from a single 64-bit value.
func From64(v uint64) Uint {
	return Uint{lo: v}
}

// FromNumber truncates a variable-width Number to the low 256 bits.
func FromNumber(n *biguint.Number) Uint {
	return Uint{
		hi: n.DigitAt(3),
		hm: n.DigitAt(2),
		lm: n.DigitAt(1),
		lo: n.DigitAt(0),
	}
}

// Number widens u to a variable-width Number.
func (u Uint) Number() *biguint.Number {
	return biguint.FromUint64s(u.hi, u.hm, u.lm, u.lo)
}

// IsZero reports whether u is 0.
func (u Uint) IsZero() bool {
	return u.hi|u.hm|u.lm|u.lo == 0
}

// Uint64 returns the low 64 bits.
func (u Uint) Uint64() uint64 { return u.lo }

// Uint32 returns the low 32 bits.
func (u Uint) Uint32() uint32 { return uint32(u.lo) }

// Uint16 returns the low 16 bits.
func (u Uint) Uint16() uint16 { return uint16(u.lo) }

// Uint8 returns the low 8 bits.
func (u Uint) Uint8() uint8 { return uint8(u.lo) }

// Bool reports whether u is non-zero.
func (u Uint) Bool() bool { return !u.IsZero() }

// Cmp returns -1, 0 or 1 depending on whether u < v, u == v or u > v.
func (u Uint) Cmp(v Uint) int {
	for _, p := range [4][2]uint64{{u.hi, v.hi}, {u.hm, v.hm}, {u.lm, v.lm}, {u.lo, v.lo}} {
		if p[0] != p[1] {
			if p[0] > p[1] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Equal reports whether u == v.
func (u Uint) Equal(v Uint) bool { return u == v }

// Less reports whether u < v.
func (u Uint) Less(v Uint) bool { return u.Cmp(v) < 0 }

// Greater reports whether u > v.
func (u Uint) Greater(v Uint) bool { return u.Cmp(v) > 0 }

// Add returns u + v mod 2^256.
func (u Uint) Add(v Uint) Uint {
	var c uint64
	u.lo, c = digit.AddCarry(u.lo, v.lo, 0)
	u.lm, c = digit.AddCarry(u.lm, v.lm, c)
	u.hm, c = digit.AddCarry(u.hm, v.hm, c)
	u.hi, _ = digit.AddCarry(u.hi, v.hi, c)
	return u
}

// Sub returns u − v mod 2^256.
func (u Uint) Sub(v Uint) Uint {
	var b uint64
	u.lo, b = digit.SubBorrow(u.lo, v.lo, 0)
	u.lm, b = digit.SubBorrow(u.lm, v.lm, b)
	u.hm, b = digit.SubBorrow(u.hm, v.hm, b)
	u.hi, _ = digit.SubBorrow(u.hi, v.hi, b)
	return u
}

// Borrows reports whether u − v would underflow.
func (u Uint) Borrows(v Uint) bool {
	return u.Cmp(v) < 0
}

// Mul returns u · v mod 2^256, accumulating schoolbook rows with the
// widening muladd kernel and dropping carries past the top digit.
func (u Uint) Mul(v Uint) Uint {
	ud := [4]uint64{u.lo, u.lm, u.hm, u.hi}
	vd := [4]uint64{v.lo, v.lm, v.hm, v.hi}
	var w [4]uint64
	for i := 0; i < 4; i++ {
		if ud[i] == 0 {
			continue
		}
		var c uint64
		for j := 0; i+j < 4; j++ {
			w[i+j], c = digit.MulAdd(vd[j], ud[i], w[i+j], c)
		}
	}
	return Uint{hi: w[3], hm: w[2], lm: w[1], lo: w[0]}
}

// DivMod returns u / v and u mod v. A zero divisor yields
// biguint.DivideByZeroError.
func (u Uint) DivMod(v Uint) (q, r Uint, err error) {
	var qn, rn biguint.Number
	if _, _, err = qn.DivMod(u.Number(), v.Number(), &rn); err != nil {
		return Uint{}, Uint{}, err
	}
	return FromNumber(&qn), FromNumber(&rn), nil
}

// Div returns u / v.
func (u Uint) Div(v Uint) (Uint, error) {
	q, _, err := u.DivMod(v)
	return q, err
}

// Mod returns u mod v.
func (u Uint) Mod(v Uint) (Uint, error) {
	_, r, err := u.DivMod(v)
	return r, err
}

// And returns u & v.
func (u Uint) And(v Uint) Uint {
	return Uint{u.hi & v.hi, u.hm & v.hm, u.lm & v.lm, u.lo & v.lo}
}

// Or returns u | v.
func (u Uint) Or(v Uint) Uint {
	return Uint{u.hi | v.hi, u.hm | v.hm, u.lm | v.lm, u.lo | v.lo}
}

// Xor returns u ^ v.
func (u Uint) Xor(v Uint) Uint {
	return Uint{u.hi ^ v.hi, u.hm ^ v.hm, u.lm ^ v.lm, u.lo ^ v.lo}
}

// Not returns the full-width complement of u.
func (u Uint) Not() Uint {
	return Uint{^u.hi, ^u.hm, ^u.lm, ^u.lo}
}

// Neg returns the two's complement of u.
func (u Uint) Neg() Uint {
	return Uint{}.Sub(u)
}

// Lsh returns u << s; shifts of 256 or more yield zero.
func (u Uint) Lsh(s uint) Uint {
	d := [4]uint64{u.lo, u.lm, u.hm, u.hi}
	var w [4]uint64
	q, r := int(s/64), s%64
	for i := 3; i >= q; i-- {
		w[i] = d[i-q] << r
		if r != 0 && i-q-1 >= 0 {
			w[i] |= d[i-q-1] >> (64 - r)
		}
	}
	return Uint{hi: w[3], hm: w[2], lm: w[1], lo: w[0]}
}

// Rsh returns u >> s; shifts of 256 or more yield zero.
func (u Uint) Rsh(s uint) Uint {
	d := [4]uint64{u.lo, u.lm, u.hm, u.hi}
	var w [4]uint64
	q, r := int(s/64), s%64
	for i := 0; i+q < 4; i++ {
		w[i] = d[i+q] >> r
		if r != 0 && i+q+1 < 4 {
			w[i] |= d[i+q+1] << (64 - r)
		}
	}
	return Uint{hi: w[3], hm: w[2], lm: w[1], lo: w[0]}
}

// BitLen returns the 1-based position of the highest set bit, or 0 for
// zero.
func (u Uint) BitLen() int {
	switch {
	case u.hi != 0:
		return int(digit.BitLen(u.hi)) + 192
	case u.hm != 0:
		return int(digit.BitLen(u.hm)) + 128
	case u.lm != 0:
		return int(digit.BitLen(u.lm)) + 64
	case u.lo != 0:
		return int(digit.BitLen(u.lo))
	}
	return 0
}

// Bit returns the value of the i-th bit; bits at or above 256 are zero.
func (u Uint) Bit(i uint) bool {
	if i >= 256 {
		return false
	}
	d := [4]uint64{u.lo, u.lm, u.hm, u.hi}
	return d[i/64]>>(i%64)&1 == 1
}

// Text formats u in the given base; see biguint.Number.Text.
func (u Uint) Text(base int) (string, error) {
	return u.Number().Text(base)
}

// String formats u in base 10.
func (u Uint) String() string {
	return u.Number().String()
}

// Hex formats u in base 16.
func (u Uint) Hex() string {
	return u.Number().Hex()
}

// Parse interprets s in the given base, truncating to 256 bits.
func Parse(s string, base int) (Uint, error) {
	n, err := biguint.Parse(s, base)
	if err != nil {
		return Uint{}, err
	}
	return FromNumber(n), nil
}
