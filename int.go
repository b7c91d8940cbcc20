package num

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Int is an arbitrary-precision signed decimal integer.
//
// The magnitude is held as a canonical string of decimal digits, so Int is
// comparable and can be copied freely. Zero is never negative. The zero
// value of Int is 0.
type Int struct {
	neg bool
	mag string
}

var (
	// ErrInvalidDigit is matched by every error returned when parsing an Int
	// from text containing anything other than an optional leading sign and
	// decimal digits.
	ErrInvalidDigit = errors.New("num: invalid digit")

	// ErrDivideByZero is returned by Quo when the divisor is zero.
	ErrDivideByZero = errors.New("num: division by zero")
)

// ParseError describes a string that could not be parsed as an Int. Offset is
// the byte offset of the first offending character.
type ParseError struct {
	Input  string
	Offset int
}

func (e *ParseError) Error() string {
	if e.Offset >= len(e.Input) {
		return fmt.Sprintf("num: int string %q invalid: no digits", e.Input)
	}
	return fmt.Sprintf("num: int string %q invalid: unexpected %q at offset %d",
		e.Input, e.Input[e.Offset], e.Offset)
}

func (e *ParseError) Unwrap() error { return ErrInvalidDigit }

// newInt is the only way a result leaves this package; it keeps zero
// positive.
func newInt(neg bool, mag string) Int {
	if mag == magZero {
		neg = false
	}
	return Int{neg: neg, mag: mag}
}

// IntFromString creates an Int from a string of decimal digits with an
// optional leading '+' or '-'. Leading zeros are accepted and dropped. A sign
// with no digits after it is read as zero.
func IntFromString(s string) (out Int, err error) {
	if len(s) == 0 {
		return out, &ParseError{Input: s}
	}

	var neg bool
	start := 0
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		start++
	}
	for start < len(s) && s[start] == '0' {
		start++
	}
	if start == len(s) {
		return zeroInt, nil
	}

	for i := start; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return out, &ParseError{Input: s, Offset: i}
		}
	}
	return newInt(neg, s[start:]), nil
}

func IntFrom64(v int64) Int {
	if v < 0 {
		// -v would overflow for minInt64, so negate in uint64 space:
		return newInt(true, strconv.FormatUint(uint64(-(v+1))+1, 10))
	}
	return IntFromU64(uint64(v))
}

func IntFromU64(v uint64) Int { return Int{mag: strconv.FormatUint(v, 10)} }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }

// IntFromBigInt creates an Int from a big.Int. A nil big.Int is treated as 0.
func IntFromBigInt(v *big.Int) Int {
	if v == nil {
		return zeroInt
	}
	return MustIntFromString(v.String())
}

// digits returns the magnitude, treating the zero value as "0".
func (i Int) digits() string {
	if i.mag == "" {
		return magZero
	}
	return i.mag
}

func (i Int) IsZero() bool { return i.digits() == magZero }

// Len returns the number of decimal digits in the magnitude of i. Zero has
// one digit.
func (i Int) Len() int { return len(i.digits()) }

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

func (i Int) String() string {
	if i.neg {
		return "-" + i.mag
	}
	return i.digits()
}

// Format implements fmt.Formatter. The 'v', 's' and 'd' verbs are supported,
// along with the '+' and '-' flags and a width.
func (i Int) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's', 'd':
	default:
		fmt.Fprintf(s, "%%!%c(num.Int=%s)", c, i.String())
		return
	}

	str := i.String()
	if s.Flag('+') && !i.neg {
		str = "+" + str
	}
	if w, ok := s.Width(); ok && w > len(str) {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	_, _ = s.Write([]byte(str))
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	if _, ok := b.SetString(i.String(), 10); !ok {
		panic(fmt.Errorf("num: non-canonical int %q", i.String()))
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if i.neg {
		return cmpMag(i.mag, minInt64Mag) <= 0
	}
	return cmpMag(i.digits(), maxInt64Mag) <= 0
}

// AsInt64 converts i to an int64. Values outside the range of an int64 are
// clamped to the nearest bound; see IsInt64.
func (i Int) AsInt64() int64 {
	if !i.IsInt64() {
		if i.neg {
			return minInt64
		}
		return maxInt64
	}

	// Accumulate towards negative so that minInt64 does not overflow:
	var v int64
	for _, c := range []byte(i.digits()) {
		v = v*10 - int64(c-'0')
	}
	if !i.neg {
		v = -v
	}
	return v
}

// Neg returns -i. Negating zero yields zero.
func (i Int) Neg() Int {
	return newInt(!i.neg, i.digits())
}

func (i Int) Abs() Int {
	return Int{mag: i.digits()}
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(i.digits(), n.digits())
	if i.neg {
		return -c
	}
	return c
}

// Equal reports whether i and n hold the same value. Because both are kept
// in canonical form this is a straight comparison of sign and digits.
func (i Int) Equal(n Int) bool {
	return i.neg == n.neg && i.digits() == n.digits()
}

func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

func (i Int) Inc() Int { return i.Add(oneInt) }
func (i Int) Dec() Int { return i.Sub(oneInt) }

// Add returns the sum i+n.
func (i Int) Add(n Int) Int {
	if i.neg != n.neg {
		// i + n == i - (-n), which Sub handles as a same-sign subtraction:
		return i.Sub(n.Neg())
	}
	return newInt(i.neg, addMag(i.digits(), n.digits()))
}

// Sub returns the difference i-n.
func (i Int) Sub(n Int) Int {
	if i.Equal(n) {
		return zeroInt
	}

	if i.neg != n.neg {
		if !i.neg {
			return i.Add(n.Neg())
		}
		// -a - b == -(a + b):
		return n.Add(i.Neg()).Neg()
	}

	a, b := i.digits(), n.digits()
	if cmpMag(a, b) < 0 {
		return newInt(!i.neg, subMag(b, a))
	}
	return newInt(i.neg, subMag(a, b))
}

// Mul returns the product i*n.
func (i Int) Mul(n Int) Int {
	a, b := i.digits(), n.digits()
	if a == magZero || b == magZero {
		return zeroInt
	}

	neg := i.neg != n.neg
	if a == magOne {
		return newInt(neg, b)
	} else if b == magOne {
		return newInt(neg, a)
	}
	return newInt(neg, mulMag(a, b))
}

// Quo returns the quotient i/by. Quo implements truncated division (like
// Go): the result is rounded towards zero.
//
// If by is zero, ErrDivideByZero is returned.
func (i Int) Quo(by Int) (q Int, err error) {
	a, b := i.digits(), by.digits()
	if b == magZero {
		return zeroInt, ErrDivideByZero
	}

	neg := i.neg != by.neg
	switch cmp := cmpMag(a, b); {
	case cmp < 0:
		return zeroInt, nil
	case b == magOne:
		return newInt(neg, a), nil
	case cmp == 0:
		return newInt(neg, magOne), nil
	}
	return newInt(neg, quoMag(a, b)), nil
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number holding
// an integer. A JSON null leaves i untouched.
func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
