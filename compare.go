package biguint

// Compare returns -1 if x < y, 0 if x == y and 1 if x > y. Digit counts
// are compared first; equal counts fall back to a most-significant-first
// digit walk. This is the sole ordering primitive; every relational
// operator dispatches to it.
func Compare(x, y *Number) int {
	xd, yd := x.digits, y.digits
	if len(xd) > len(yd) {
		return 1
	}
	if len(xd) < len(yd) {
		return -1
	}
	for i := len(xd) - 1; i >= 0; i-- {
		if xd[i] != yd[i] {
			if xd[i] > yd[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Cmp returns -1, 0 or 1 depending on whether x < y, x == y or x > y.
func (x *Number) Cmp(y *Number) int { return Compare(x, y) }

// Equal reports whether x == y.
func (x *Number) Equal(y *Number) bool { return Compare(x, y) == 0 }

// Less reports whether x < y.
func (x *Number) Less(y *Number) bool { return Compare(x, y) < 0 }

// LessEqual reports whether x <= y.
func (x *Number) LessEqual(y *Number) bool { return Compare(x, y) <= 0 }

// Greater reports whether x > y.
func (x *Number) Greater(y *Number) bool { return Compare(x, y) > 0 }

// GreaterEqual reports whether x >= y.
func (x *Number) GreaterEqual(y *Number) bool { return Compare(x, y) >= 0 }
