package biguint

import (
	"math/rand"
	"strconv"
	"testing"
)

func benchOperands(digits int) (*Number, *Number) {
	rng := rand.New(rand.NewSource(99))
	return randNumber(rng, digits), randNumber(rng, digits)
}

func BenchmarkMul(b *testing.B) {
	for _, digits := range []int{4, 16, 64, 256, 1024} {
		x, y := benchOperands(digits)
		b.Run(strconv.Itoa(digits), func(b *testing.B) {
			var z Number
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				z.Mul(x, y)
			}
		})
	}
}

func BenchmarkDivMod(b *testing.B) {
	for _, digits := range []int{4, 16, 64, 256} {
		x, _ := benchOperands(digits * 2)
		y, _ := benchOperands(digits)
		b.Run(strconv.Itoa(digits), func(b *testing.B) {
			var q, r Number
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := q.DivMod(x, y, &r); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTextDecimal(b *testing.B) {
	x, _ := benchOperands(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Text(10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTextHex(b *testing.B) {
	x, _ := benchOperands(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Text(16); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseDecimal(b *testing.B) {
	x, _ := benchOperands(64)
	s := x.String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s, 10); err != nil {
			b.Fatal(err)
		}
	}
}
