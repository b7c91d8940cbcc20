package difftest

import (
	"math/rand"
	"strings"
)

// DefaultMaxDigits bounds the length of generated operands when a Rando is
// created without an explicit bound.
const DefaultMaxDigits = 200

// Rando generates operand strings. It remembers what it generated since the
// last Clear so failures can be reported with their inputs.
//
// classic rando!
type Rando struct {
	MaxDigits int

	operands []string
	rng      *rand.Rand
}

func NewRando(rng *rand.Rand, maxDigits int) *Rando {
	if maxDigits < 1 {
		maxDigits = DefaultMaxDigits
	}
	return &Rando{MaxDigits: maxDigits, rng: rng}
}

func (r *Rando) Operands() []string { return r.operands }

func (r *Rando) Clear() {
	r.operands = r.operands[:0]
}

// samesies reports whether the second operand of a pair should be a copy of
// the first. The chance of two random operands being equal is otherwise far
// too low to exercise the equal-operand branches.
func (r *Rando) samesies() bool {
	const samesiesChance = 0.03
	return r.rng.Float64() < samesiesChance
}

func (r *Rando) length() int {
	// Half the time stick to short operands; they hit the single digit
	// and one-digit-divisor branches far more often.
	max := r.MaxDigits
	if r.rng.Intn(2) == 0 && max > 20 {
		max = 20
	}
	return 1 + r.rng.Intn(max)
}

// Digits returns an unsigned string of decimal digits. The first digit may be
// zero. Some patterns are over-represented because they stress borrow and
// long division edge cases: repeated digits, runs of nines, powers of ten and
// long internal runs of zeros.
func (r *Rando) Digits() string {
	n := r.length()
	buf := make([]byte, n)

	switch r.rng.Intn(8) {
	case 0: // repeated digit
		d := byte('1' + r.rng.Intn(9))
		for i := range buf {
			buf[i] = d
		}

	case 1: // all nines
		for i := range buf {
			buf[i] = '9'
		}

	case 2: // power of ten
		buf[0] = '1'
		for i := 1; i < n; i++ {
			buf[i] = '0'
		}

	case 3: // internal zero run
		for i := range buf {
			buf[i] = byte('0' + r.rng.Intn(10))
		}
		buf[0] = byte('1' + r.rng.Intn(9))
		if n > 2 {
			start := 1 + r.rng.Intn(n-1)
			end := start + r.rng.Intn(n-start)
			for i := start; i <= end && i < n; i++ {
				buf[i] = '0'
			}
		}

	default:
		for i := range buf {
			buf[i] = byte('0' + r.rng.Intn(10))
		}
	}

	return string(buf)
}

// Operand returns Digits with an optional sign and, occasionally, some
// padding zeros in front.
func (r *Rando) Operand() string {
	var sb strings.Builder
	switch r.rng.Intn(16) {
	case 0:
		sb.WriteByte('+')
	case 1, 2, 3, 4, 5, 6, 7:
		sb.WriteByte('-')
	}
	if r.rng.Intn(10) == 0 {
		sb.WriteString(strings.Repeat("0", 1+r.rng.Intn(5)))
	}
	sb.WriteString(r.Digits())

	s := sb.String()
	r.operands = append(r.operands, s)
	return s
}

// Pair returns two operands. Occasionally the second is a copy of the first,
// or zero.
func (r *Rando) Pair() (a, b string) {
	a = r.Operand()
	switch {
	case r.samesies():
		b = a
		r.operands = append(r.operands, b)
	case r.rng.Intn(50) == 0:
		b = "0"
		r.operands = append(r.operands, b)
	default:
		b = r.Operand()
	}
	return a, b
}
