package num

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random integer of between 1 and maxDigits
// decimal digits from an external source. Leading zeros drawn from the source
// are dropped, so the result may be shorter than the drawn length.
func RandInt(source RandSource, maxDigits int) Int {
	if maxDigits < 1 {
		maxDigits = 1
	}
	n := 1 + int(source.Uint64()%uint64(maxDigits))
	buf := make(digitBuf, n)
	for i := range buf {
		buf[i] = byte(source.Uint64() % 10)
	}
	return Int{mag: buf.mag()}
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerInt(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
