package biguint

import (
	"github.com/agbru/biguint/internal/digit"
	"github.com/agbru/biguint/metrics"
)

// DivMod sets z to x / y and r to x mod y, returning (z, r, nil). A zero
// divisor yields a DivideByZeroError and leaves z and r untouched.
// z and r must be distinct Numbers; either may alias x or y.
//
// Dispatch order: single-digit over single-digit uses native division,
// a unit divisor copies, equal operands yield 1, a smaller dividend
// yields itself as remainder, a single-digit divisor walks the fast
// path, everything else runs Knuth's Algorithm D.
func (z *Number) DivMod(x, y, r *Number) (*Number, *Number, error) {
	metrics.IncDiv()
	if y.IsZero() {
		return nil, nil, DivideByZeroError{}
	}
	if len(x.digits) == 1 && len(y.digits) == 1 {
		a, b := x.digits[0], y.digits[0]
		z.setDigit(a / b)
		r.setDigit(a % b)
		return z, r, nil
	}
	if y.isOne() {
		z.Set(x)
		z.carry = false
		r.setZero()
		return z, r, nil
	}
	switch Compare(x, y) {
	case 0:
		z.setDigit(1)
		r.setZero()
		return z, r, nil
	case -1:
		r.Set(x)
		r.carry = false
		z.setZero()
		return z, r, nil
	}
	if len(y.digits) == 1 {
		z.singleDivMod(x, y.digits[0], r)
		return z, r, nil
	}
	z.knuthDivMod(x, y, r)
	return z, r, nil
}

// Div sets z to x / y and returns it, or a DivideByZeroError.
func (z *Number) Div(x, y *Number) (*Number, error) {
	var r Number
	if _, _, err := z.DivMod(x, y, &r); err != nil {
		return nil, err
	}
	return z, nil
}

// Mod sets z to x mod y and returns it, or a DivideByZeroError.
func (z *Number) Mod(x, y *Number) (*Number, error) {
	var q Number
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

// singleDivMod divides x by the single digit n, walking digits from most
// to least significant with a one-digit running remainder. The remainder
// feeding each 2-by-1 step is always below the divisor, so the kernel
// precondition holds throughout.
func (z *Number) singleDivMod(x *Number, n Digit, rem *Number) {
	xs := x.digits
	qd := make([]Digit, len(xs))
	var r Digit
	for i := len(xs) - 1; i >= 0; i-- {
		qd[i], r = digit.DivRem2x1(r, xs[i], n)
	}
	z.digits = qd
	z.carry = false
	z.trim(0)
	rem.setDigit(r)
}

// knuthDivMod is Knuth's Algorithm D. It requires len(y) >= 2 and x > y,
// which the dispatcher guarantees.
func (z *Number) knuthDivMod(x, y *Number, rem *Number) {
	var u, w Number
	u.Set(x)
	w.Set(y)

	// D1: normalise so the divisor's top digit has its high bit set; the
	// 2-by-1 estimator is tight only then. The dividend shifts by the
	// same amount and the quotient is unaffected.
	d := digitBits - digit.BitLen(w.digits[len(w.digits)-1])
	u.Lsh(&u, d)
	w.Lsh(&w, d)

	if u.digits[len(u.digits)-1] >= w.digits[len(w.digits)-1] {
		u.digits = append(u.digits, 0)
	}
	usize := len(u.digits)
	u.digits = append(u.digits, 0) // guard digit read by the estimate

	n := len(w.digits)
	k := usize - n
	qd := make([]Digit, k+1)

	ud, wd := u.digits, w.digits
	wm1, wm2 := wd[n-1], wd[n-2]

	for j := k; j >= 0; j-- {
		// D3: estimate the quotient digit from the top two window digits
		// against the divisor's top digit, capped at the digit maximum.
		var qhat, rhat Digit
		overflowed := false
		if ud[j+n] == wm1 {
			qhat = ^Digit(0)
			var c Digit
			rhat, c = digit.AddCarry(wm1, ud[j+n-1], 0)
			overflowed = c != 0
		} else {
			qhat, rhat = digit.DivRem2x1(ud[j+n], ud[j+n-1], wm1)
		}
		if !overflowed {
			lo, hi := digit.MulWide(qhat, wm2)
			for hi > rhat || (hi == rhat && lo > ud[j+n-2]) {
				qhat--
				var c Digit
				rhat, c = digit.AddCarry(rhat, wm1, 0)
				if c != 0 {
					break
				}
				lo, hi = digit.MulWide(qhat, wm2)
			}
		}

		// D4: multiply and subtract qhat·w from the window u[j..j+n].
		var mulc, borrow Digit
		for i := 0; i < n; i++ {
			var plo Digit
			plo, mulc = digit.MulAdd(wd[i], qhat, 0, mulc)
			ud[j+i], borrow = digit.SubBorrow(ud[j+i], plo, borrow)
		}
		ud[j+n], borrow = digit.SubBorrow(ud[j+n], mulc, borrow)

		if borrow != 0 {
			// D6: the estimate was one too large; add the divisor back.
			// The add's carry out of the window cancels the borrow.
			qhat--
			var c Digit
			for i := 0; i < n; i++ {
				ud[j+i], c = digit.AddCarry(ud[j+i], wd[i], c)
			}
			ud[j+n], _ = digit.AddCarry(ud[j+n], 0, c)
		}
		qd[j] = qhat
	}

	// D8: the remainder is the low n digits of the worked dividend,
	// shifted back by the normalisation amount.
	u.digits = ud[:n]
	u.trim(0)
	rem.Rsh(&u, d)

	z.digits = qd
	z.carry = false
	z.trim(0)
}
