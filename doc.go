/*
Package num provides an arbitrary-precision signed decimal integer (Int),
implementing the core of the big.Int API on top of plain decimal digit
arithmetic.

Int is a value type; all operations return new values and never modify their
operands, so an Int can be shared between goroutines without locking. The
zero value of Int is 0.

Simple example:

	a := MustIntFromString("432134")
	b := MustIntFromString("842097")
	fmt.Println(a.Mul(b))
	// Output: 363898744998

Int can be created from a variety of sources:

	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int
	IntFrom64(v int64) Int
	IntFromU64(v uint64) Int
	IntFromInt(v int) Int

Division truncates towards zero, like Go's integer division:

	q, err := MustIntFromString("-7").Quo(MustIntFromString("2"))
	// q == -3

Division by zero returns ErrDivideByZero rather than panicking. Strings that
are not an optional sign followed by decimal digits fail with an error
matching ErrInvalidDigit.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
