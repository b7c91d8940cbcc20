package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func randMag(rng *rand.Rand, maxDigits int) string {
	return RandInt(rng, maxDigits).mag
}

func TestDigitBufMag(t *testing.T) {
	for idx, tc := range []struct {
		in  digitBuf
		out string
	}{
		{nil, "0"},
		{digitBuf{0}, "0"},
		{digitBuf{0, 0, 0}, "0"},
		{digitBuf{0, 0, 7}, "7"},
		{digitBuf{1, 0, 0}, "100"},
		{digitBuf{0, 9, 0, 1}, "901"},
	} {
		t.Run(fmt.Sprintf("%d/%v=%s", idx, tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.mag())
		})
	}
}

func TestCmpMag(t *testing.T) {
	for idx, tc := range []struct {
		a, b   string
		result int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"9", "10", -1},
		{"10", "9", 1},
		{"123", "124", -1},
		{"124", "123", 1},
		{"99999", "99999", 0},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, cmpMag(tc.a, tc.b))
		})
	}
}

func TestSubMag(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c string
	}{
		{"0", "0", "0"},
		{"9", "9", "0"},
		{"9", "4", "5"},
		{"10", "1", "9"},
		{"10", "10", "0"},
		{"100", "99", "1"},
		{"1000", "1", "999"},
		{"5005", "6", "4999"},
		{"392", "7", "385"},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, subMag(tc.a, tc.b))
		})
	}
}

func TestAppendDigit(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("7", appendDigit("0", '7'))
	tt.MustEqual("0", appendDigit("0", '0'))
	tt.MustEqual("10", appendDigit("1", '0'))
	tt.MustEqual("123", appendDigit("12", '3'))
}

// The digit-level routines are checked directly against math/big across a
// range of lengths; the signed wrappers in int.go are covered separately.
func TestMagArithRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 5000; i++ {
		a, b := randMag(rng, 50), randMag(rng, 50)
		if cmpMag(a, b) < 0 {
			a, b = b, a
		}
		ba, _ := new(big.Int).SetString(a, 10)
		bb, _ := new(big.Int).SetString(b, 10)

		tt.MustEqual(ba.Cmp(bb), cmpMag(a, b), "%s <=> %s", a, b)
		tt.MustEqual(new(big.Int).Add(ba, bb).String(), addMag(a, b), "%s + %s", a, b)
		tt.MustEqual(new(big.Int).Add(ba, bb).String(), addMag(b, a), "%s + %s", b, a)
		tt.MustEqual(new(big.Int).Sub(ba, bb).String(), subMag(a, b), "%s - %s", a, b)
		tt.MustEqual(new(big.Int).Mul(ba, bb).String(), mulMag(a, b), "%s * %s", a, b)
		if b != "0" {
			tt.MustEqual(new(big.Int).Quo(ba, bb).String(), quoMag(a, b), "%s / %s", a, b)
		}
	}
}

func TestQuoMagZeroRuns(t *testing.T) {
	// Dividends with long internal runs of zeros and divisors made of a
	// repeated digit, where the remainder hits zero part way through.
	tt := assert.WrapTB(t)

	for _, by := range []string{"2", "7", "11", "99", "1111", "3333333", "1000000007"} {
		for zeros := 0; zeros < 25; zeros++ {
			for _, head := range []string{"1", "7", "1111", "999999999"} {
				for _, tail := range []string{"", "1", "0", "123"} {
					a := head
					for z := 0; z < zeros; z++ {
						a += "0"
					}
					a += tail
					ba, _ := new(big.Int).SetString(a, 10)
					bb, _ := new(big.Int).SetString(by, 10)
					tt.MustEqual(new(big.Int).Quo(ba, bb).String(), quoMag(a, by), "%s / %s", a, by)
				}
			}
		}
	}
}
