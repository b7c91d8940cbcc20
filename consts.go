package num

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// Magnitudes of the int64 bounds, used by IsInt64/AsInt64:
	maxInt64Mag = "9223372036854775807"
	minInt64Mag = "9223372036854775808"

	magZero = "0"
	magOne  = "1"
)

var (
	zeroInt = Int{mag: magZero}
	oneInt  = Int{mag: magOne}
)
