package biguint

import (
	"golang.org/x/sync/errgroup"

	"github.com/agbru/biguint/internal/digit"
	"github.com/agbru/biguint/metrics"
)

// Mul sets z to x · y and returns z. Zero and unit operands short-circuit;
// everything else goes through the Karatsuba dispatcher with the
// configured cutoff.
func (z *Number) Mul(x, y *Number) *Number {
	metrics.IncMul()
	if x.IsZero() || y.IsZero() {
		return z.setZero()
	}
	if x.isOne() {
		z.Set(y)
		z.carry = false
		return z
	}
	if y.isOne() {
		z.Set(x)
		z.carry = false
		return z
	}
	return z.karatsubaMult(x, y, KaratsubaCutoff())
}

// MulUint64 sets z to x · v and returns z.
func (z *Number) MulUint64(x *Number, v uint64) *Number {
	w := Number{}
	if v != 0 {
		w.digits = []Digit{v}
	}
	return z.Mul(x, &w)
}

// singleMult multiplies x by the single digit n through one muladd chain.
func (z *Number) singleMult(x *Number, n Digit) *Number {
	xs := x.digits
	tmp := make([]Digit, len(xs)+1)
	var c Digit
	for i, xv := range xs {
		tmp[i], c = digit.MulAdd(xv, n, 0, c)
	}
	tmp[len(xs)] = c
	z.digits = tmp
	z.carry = false
	z.trim(0)
	return z
}

// longMult is the schoolbook kernel. For each digit of the shorter
// operand it accumulates a muladd row into the output window, writing the
// final carry past the window. Operand views may carry trailing zero
// digits; zero rows are skipped and the result is shrunk to the last
// written position before trimming.
func (z *Number) longMult(x, y *Number) *Number {
	if len(x.digits) > len(y.digits) {
		x, y = y, x
	}
	if len(x.digits) == 1 {
		return z.singleMult(y, x.digits[0])
	}
	xs, ys := x.digits, y.digits
	tmp := make([]Digit, len(xs)+len(ys))
	last := 0
	for i, xv := range xs {
		if xv == 0 {
			continue
		}
		var c Digit
		j := 0
		for ; j < len(ys); j++ {
			tmp[i+j], c = digit.MulAdd(ys[j], xv, tmp[i+j], c)
		}
		end := i + j
		if c != 0 {
			tmp[end] = c
			end++
		}
		if end > last {
			last = end
		}
	}
	z.digits = tmp[:last]
	z.carry = false
	z.trim(0)
	return z
}

// karatsubaMult multiplies with recursive splitting above the cutoff.
//
//	              A      B
//	           x  C      D
//	 ---------------------
//	             AD     BD
//	   AC        BC
//	 ---------------------
//	   AC    AD + BC    BD
//
//	AD + BC = (A + B)(C + D) − AC − BD
//
// The split point is the middle of the larger operand. Recombination lays
// BD in the low 2k digits, AC from digit 2k, and adds the middle term in
// at offset k through longAdd's offset slot. When the smaller operand is
// at most half the larger, the lopsided path is used instead.
func (z *Number) karatsubaMult(x, y *Number, cutoff int) *Number {
	if len(x.digits) > len(y.digits) {
		x, y = y, x
	}
	lx, ly := len(x.digits), len(y.digits)

	if lx <= cutoff {
		return z.longMult(x, y)
	}
	if 2*lx <= ly {
		return z.lopsidedMult(x, y, cutoff)
	}

	k := ly >> 1
	a := Number{digits: x.digits[k:]} // hi
	b := Number{digits: x.digits[:k]} // lo
	c := Number{digits: y.digits[k:]} // hi
	d := Number{digits: y.digits[:k]} // lo

	var ab, cd Number
	ab.Add(&a, &b)
	cd.Add(&c, &d)

	var ac, bd, adbc Number
	if par := ParallelThreshold(); par > 0 && lx >= par && parallelSlots.TryAcquire(2) {
		g := new(errgroup.Group)
		g.Go(func() error { ac.karatsubaMult(&a, &c, cutoff); return nil })
		g.Go(func() error { bd.karatsubaMult(&b, &d, cutoff); return nil })
		adbc.karatsubaMult(&ab, &cd, cutoff)
		_ = g.Wait()
		parallelSlots.Release(2)
	} else {
		ac.karatsubaMult(&a, &c, cutoff)
		bd.karatsubaMult(&b, &d, cutoff)
		adbc.karatsubaMult(&ab, &cd, cutoff)
	}
	adbc.Sub(&adbc, &ac)
	adbc.Sub(&adbc, &bd)

	// Join AC and BD, which cannot overlap, into bd; then add the middle
	// term at offset k.
	bd.grow(2*k + len(ac.digits))
	bd.resize(2 * k)
	bd.digits = append(bd.digits, ac.digits...)
	bd.addOffset(&bd, &adbc, k, k, 0)

	z.digits = bd.digits
	z.carry = false
	z.trim(0)
	return z
}

// lopsidedMult multiplies a small operand by a much larger one. Viewing
// the larger operand as consecutive windows the size of the smaller one
// keeps the recursion balanced; each window product is accumulated at its
// shifted offset.
func (z *Number) lopsidedMult(x, y *Number, cutoff int) *Number {
	lx, ly := len(x.digits), len(y.digits)
	var acc Number
	shift := 0
	for pos := 0; pos < ly; {
		n := min(lx, ly-pos)
		window := Number{digits: y.digits[pos : pos+n]}
		var p Number
		p.karatsubaMult(x, &window, cutoff)
		acc.addOffset(&acc, &p, shift, shift, 0)
		shift += n
		pos += n
	}
	z.digits = acc.digits
	z.carry = false
	z.trim(0)
	return z
}
