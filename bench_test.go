package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    Int
	BenchStringResult string
)

func benchOperands(digits int) (Int, Int) {
	rng := rand.New(rand.NewSource(int64(digits)))
	a := RandInt(rng, 1).Add(i64(1))
	for a.Len() < digits {
		a = a.Mul(i64(10)).Add(RandInt(rng, 1))
	}
	b := MustQuo(a, i64(7)).Add(RandInt(rng, 3))
	return a, b
}

var benchSizes = []int{10, 100, 1000}

func BenchmarkIntAdd(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = x.Add(y)
			}
		})
	}
}

func BenchmarkIntSub(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = y.Sub(x)
			}
		})
	}
}

func BenchmarkIntMul(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = x.Mul(y)
			}
		})
	}
}

func BenchmarkIntQuo(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		by := MustQuo(y, MustIntFromString("1"+fmt.Sprintf("%0*d", sz/2, 0)))
		b.Run(fmt.Sprintf("%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, _ = x.Quo(by)
			}
		})
	}
}

func BenchmarkIntCmpEqual(b *testing.B) {
	x, _ := benchOperands(100)
	y := MustIntFromString(x.String())
	for i := 0; i < b.N; i++ {
		BenchBoolResult = x.Equal(y)
	}
}

func BenchmarkIntFromString(b *testing.B) {
	for _, sz := range benchSizes {
		x, _ := benchOperands(sz)
		s := x.String()
		b.Run(fmt.Sprintf("%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, _ = IntFromString(s)
			}
		})
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Mul(bx, by)
			}
		})
	}
}

func BenchmarkBigIntQuo(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		by := MustQuo(y, MustIntFromString("1"+fmt.Sprintf("%0*d", sz/2, 0)))
		bx, bby := x.AsBigInt(), by.AsBigInt()
		b.Run(fmt.Sprintf("%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Quo(bx, bby)
			}
		})
	}
}

func BenchmarkBigIntString(b *testing.B) {
	x, _ := benchOperands(1000)
	bx := x.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchStringResult = bx.String()
	}
}
