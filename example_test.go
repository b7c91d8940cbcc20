package num_test

import (
	"errors"
	"fmt"

	num "github.com/shabbyrobe/go-bignum"
)

func ExampleIntFromString() {
	a, err := num.IntFromString("-000123")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)

	_, err = num.IntFromString("sa23bcd")
	fmt.Println(errors.Is(err, num.ErrInvalidDigit))
	// Output:
	// -123
	// true
}

func ExampleInt_Mul() {
	a := num.MustIntFromString("432134")
	b := num.MustIntFromString("842097")
	fmt.Println(a.Mul(b))
	// Output: 363898744998
}

func ExampleInt_Sub() {
	fmt.Println(num.MustIntFromString("7").Sub(num.MustIntFromString("392")))
	// Output: -385
}

func ExampleInt_Quo() {
	q, _ := num.IntFrom64(-7).Quo(num.IntFrom64(2))
	fmt.Println(q)

	_, err := num.IntFrom64(432134).Quo(num.IntFrom64(0))
	fmt.Println(err)
	// Output:
	// -3
	// num: division by zero
}
