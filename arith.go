package biguint

import (
	"github.com/agbru/biguint/internal/digit"
)

// longAdd adds x[xoff:] and y[yoff:] into z starting at digit zoff,
// walking paired digits through the add-carry kernel and appending a
// final carry digit when one propagates out. The offset slots let
// multiplication drop a partial product at a shifted position without a
// separate shift pass, which is what Karatsuba recombination relies on.
//
// z may alias x or y. The walk is forward and writes digit zoff+i after
// reading position xoff+i / yoff+i, so aliased calls are safe whenever
// zoff equals the aliased operand's offset; every call in this package
// satisfies that.
func (z *Number) longAdd(x, y *Number, zoff, xoff, yoff int) *Number {
	xs, ys := x.digits, y.digits
	if xoff > len(xs) {
		xoff = len(xs)
	}
	if yoff > len(ys) {
		yoff = len(ys)
	}
	xr, yr := xs[xoff:], ys[yoff:]
	n := zoff + max(len(xr), len(yr))
	z.grow(n + 1)
	z.resize(n)
	zd := z.digits

	var c Digit
	i := 0
	for ; i < len(xr) && i < len(yr); i++ {
		zd[zoff+i], c = digit.AddCarry(xr[i], yr[i], c)
	}
	for ; i < len(xr); i++ {
		zd[zoff+i], c = digit.AddCarry(xr[i], 0, c)
	}
	for ; i < len(yr); i++ {
		zd[zoff+i], c = digit.AddCarry(0, yr[i], c)
	}
	if c != 0 {
		z.digits = append(z.digits, c)
	}
	z.carry = false
	z.trim(0)
	return z
}

// longSub subtracts y[yoff:] from x[xoff:] into z starting at digit zoff.
// A final borrow is recorded in the carry flag, not converted: the digits
// then hold x − y mod 2^(64·len). Aliasing rules are as for longAdd.
func (z *Number) longSub(x, y *Number, zoff, xoff, yoff int) *Number {
	xs, ys := x.digits, y.digits
	if xoff > len(xs) {
		xoff = len(xs)
	}
	if yoff > len(ys) {
		yoff = len(ys)
	}
	xr, yr := xs[xoff:], ys[yoff:]
	n := zoff + max(len(xr), len(yr))
	z.grow(n + 1)
	z.resize(n)
	zd := z.digits

	var b Digit
	i := 0
	for ; i < len(xr) && i < len(yr); i++ {
		zd[zoff+i], b = digit.SubBorrow(xr[i], yr[i], b)
	}
	for ; i < len(xr); i++ {
		zd[zoff+i], b = digit.SubBorrow(xr[i], 0, b)
	}
	for ; i < len(yr); i++ {
		zd[zoff+i], b = digit.SubBorrow(0, yr[i], b)
	}
	z.carry = b != 0
	z.trim(0)
	return z
}

// addOffset is the add dispatcher with offset slots. A zero addend
// leaves the destination as the other operand; an empty accumulator
// still goes through longAdd when offsets are in play so the shifted
// placement is honoured.
func (z *Number) addOffset(x, y *Number, zoff, xoff, yoff int) *Number {
	if y.IsZero() {
		if z != x {
			z.Set(x)
		}
		z.carry = false
		return z
	}
	if x.IsZero() && zoff == 0 && yoff == 0 {
		z.Set(y)
		z.carry = false
		return z
	}
	return z.longAdd(x, y, zoff, xoff, yoff)
}

// Add sets z to x + y and returns z. The carry flag of z is cleared:
// addition never overflows, it grows.
func (z *Number) Add(x, y *Number) *Number {
	return z.addOffset(x, y, 0, 0, 0)
}

// Sub sets z to the magnitude x − y mod 2^(64·len) and returns z. When
// y > x the borrow flag on z is set; the flag is the only signal of
// underflow and the digits never re-enter arithmetic as a negative value.
func (z *Number) Sub(x, y *Number) *Number {
	if y.IsZero() {
		z.Set(x)
		z.carry = false
		return z
	}
	return z.longSub(x, y, 0, 0, 0)
}

// AddUint64 sets z to x + v and returns z.
func (z *Number) AddUint64(x *Number, v uint64) *Number {
	w := Number{}
	if v != 0 {
		w.digits = []Digit{v}
	}
	return z.Add(x, &w)
}

// SubUint64 sets z to x − v (with the usual borrow semantics) and
// returns z.
func (z *Number) SubUint64(x *Number, v uint64) *Number {
	w := Number{}
	if v != 0 {
		w.digits = []Digit{v}
	}
	return z.Sub(x, &w)
}
