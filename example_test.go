package biguint_test

import (
	"fmt"

	"github.com/agbru/biguint"
)

func ExampleParse() {
	n, _ := biguint.Parse("2216002924", 10)
	fmt.Println(n.Hex())
	// Output: 8415856c
}

func ExampleNumber_Text() {
	n := biguint.FromUint64(2216002924)
	bin, _ := n.Text(2)
	fmt.Println(bin)
	// Output: 10000100000101011000010101101100
}

func ExampleNumber_DivMod() {
	a := biguint.FromUint64(1000)
	b := biguint.FromUint64(7)
	var q, r biguint.Number
	if _, _, err := q.DivMod(a, b, &r); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q.String(), r.String())
	// Output: 142 6
}

func ExampleNumber_Mul() {
	a := biguint.FromUint64s(1, 0) // 2^64
	var z biguint.Number
	z.Mul(a, a)
	fmt.Println(z.Hex())
	// Output: 100000000000000000000000000000000
}

func ExampleNumber_Sub_underflow() {
	var z biguint.Number
	z.Sub(biguint.FromUint64(1), biguint.FromUint64(2))
	fmt.Println(z.Borrow())
	// Output: true
}

func ExampleNumber_TextPadded() {
	n := biguint.FromUint64(42)
	s, _ := n.TextPadded(16, 8)
	fmt.Println(s)
	// Output: 0000002a
}
