package num

// The functions in this file operate on magnitudes: canonical strings of
// ASCII decimal digits, most significant digit first. A magnitude is never
// empty and never has a leading zero unless it is exactly "0".
//
// Intermediate results are built in a digitBuf and only converted back to a
// magnitude on the way out.

// digitBuf holds digit values (0-9, not ASCII), most significant first.
type digitBuf []byte

// mag strips leading zeros from d, stopping at a single digit, and returns the
// canonical magnitude.
func (d digitBuf) mag() string {
	if len(d) == 0 {
		return magZero
	}
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	d = d[i:]

	out := make([]byte, len(d))
	for j, v := range d {
		out[j] = v + '0'
	}
	return string(out)
}

// cmpMag compares two magnitudes and returns -1, 0 or +1. Since neither has
// leading zeros, the longer one is larger.
func cmpMag(a, b string) int {
	if len(a) > len(b) {
		return 1
	} else if len(a) < len(b) {
		return -1
	}
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

func addMag(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}

	// One extra position at the front absorbs the final carry:
	sum := make(digitBuf, len(a)+1)

	var carry byte
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		s := a[i] - '0' + carry
		if j >= 0 {
			s += b[j] - '0'
		}
		sum[i+1] = s % 10
		carry = s / 10
	}
	sum[0] = carry

	return sum.mag()
}

// subMag returns a - b. a must not be smaller than b.
func subMag(a, b string) string {
	if len(a) == 1 {
		return string(rune(a[0] - b[0] + '0'))
	}

	diff := make(digitBuf, len(a))

	var borrow int
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		d := int(a[i]-'0') - borrow
		if j >= 0 {
			d -= int(b[j] - '0')
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		diff[i] = byte(d)
	}

	return diff.mag()
}

// mulMag is schoolbook multiplication. The product of the digits at a[i] and
// b[j] lands at position i+j+1 and its carry is folded into i+j straight away.
func mulMag(a, b string) string {
	prod := make(digitBuf, len(a)+len(b))

	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			h := i + j
			l := h + 1
			p := int(a[i]-'0')*int(b[j]-'0') + int(prod[l])
			prod[l] = byte(p % 10)
			prod[h] += byte(p / 10)
		}
	}

	return prod.mag()
}

// quoMag returns the truncated quotient a / b. b must not be "0".
//
// Digits of a are brought down one at a time into the running remainder.
// Each time the remainder reaches b, the quotient digit is found by repeated
// subtraction; it can never exceed 9 because the remainder was below b before
// the last digit was brought down. Zero quotient digits are only emitted once
// the first nonzero quotient digit has been found.
func quoMag(a, b string) string {
	if cmpMag(a, b) < 0 {
		return magZero
	}

	quo := make(digitBuf, 0, len(a)-len(b)+1)
	rem := magZero

	for i := 0; i < len(a); i++ {
		rem = appendDigit(rem, a[i])
		if cmpMag(rem, b) < 0 {
			if len(quo) > 0 {
				quo = append(quo, 0)
			}
			continue
		}

		var c byte
		for cmpMag(rem, b) >= 0 {
			rem = subMag(rem, b)
			c++
		}
		quo = append(quo, c)
	}

	return quo.mag()
}

// appendDigit shifts the magnitude m left by one decimal place and adds the
// ASCII digit d.
func appendDigit(m string, d byte) string {
	if m == magZero {
		return string(rune(d))
	}
	return m + string(rune(d))
}
