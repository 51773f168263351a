package biguint

import (
	"fmt"
	"io"
	"strings"
)

// Format implements fmt.Formatter. The numeric verbs select the base the
// way a stream's base flag would: %b binary, %o/%O octal, %d/%s/%v
// decimal, %x/%X hexadecimal. A width with the '0' flag left-pads with
// zeros, otherwise with spaces.
func (x *Number) Format(f fmt.State, verb rune) {
	var base int
	upper := false
	switch verb {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base = 16
	case 'X':
		base = 16
		upper = true
	default:
		fmt.Fprintf(f, "%%!%c(biguint.Number=%s)", verb, x.String())
		return
	}
	s, _ := x.Text(base)
	if upper {
		s = strings.ToUpper(s)
	}
	if w, ok := f.Width(); ok && len(s) < w {
		pad := " "
		if f.Flag('0') {
			pad = "0"
		}
		if f.Flag('-') {
			io.WriteString(f, s)
			io.WriteString(f, strings.Repeat(" ", w-len(s)))
			return
		}
		io.WriteString(f, strings.Repeat(pad, w-len(s)))
	}
	io.WriteString(f, s)
}
