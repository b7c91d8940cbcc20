package difftest

// SeedPairs are hand-picked operand pairs covering zero, one, leading zeros,
// mismatched lengths and malformed input. Run them through SignVariants to
// cover every sign combination.
var SeedPairs = [][2]string{
	{"0", "0"},
	{"0", "34291743"},
	{"1", "1"},
	{"1", "3247091"},
	{"7", "392"},
	{"000007", "392"},
	{"7", "00000392"},
	{"0007", "00000392"},
	{"0007", "sa23bcd"},
	{"---3427190", "sa23bcd"},
	{"++34721", "32147"},
	{"432134", "842097"},

	// Long division: internal zero runs, repeating divisors, exact quotients
	// followed by zeros.
	{"1000000000000000000000", "7"},
	{"100000000000000000000000000001", "99999"},
	{"12121212121212121212", "1212"},
	{"98765432100000000000123", "12345"},
	{"555555555555555555", "5555"},
	{"1000000007000000000", "1000000007"},
	{"99999999999999999999", "9999999999"},
	{"10000000000000000000", "3333333333"},
}

// SignVariants expands an operand pair into every sign combination. If a and
// b differ, each combination is also returned with the operands swapped.
func SignVariants(a, b string) [][2]string {
	out := [][2]string{
		{a, b},
		{a, "-" + b},
		{"-" + a, b},
		{"-" + a, "-" + b},
	}
	if a == b {
		return out
	}
	for i, n := 0, len(out); i < n; i++ {
		out = append(out, [2]string{out[i][1], out[i][0]})
	}
	return out
}
