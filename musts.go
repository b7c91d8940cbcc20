package num

// MustIntFromString is like IntFromString but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// constants.
func MustIntFromString(s string) Int {
	i, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return i
}

// MustQuo is like Int.Quo but panics if by is zero.
func MustQuo(i, by Int) Int {
	q, err := i.Quo(by)
	if err != nil {
		panic(err)
	}
	return q
}
