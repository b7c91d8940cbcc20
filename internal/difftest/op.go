package difftest

import (
	"fmt"
	"strconv"

	num "github.com/shabbyrobe/go-bignum"
)

type Op string

// If you add a new op, search for the string 'NEWOP' in this package for all
// the places you need to update.
const (
	OpAbs    Op = "abs"
	OpAdd    Op = "add"
	OpCmp    Op = "cmp"
	OpEqual  Op = "equal"
	OpMul    Op = "mul"
	OpNeg    Op = "neg"
	OpQuo    Op = "quo"
	OpString Op = "string"
	OpSub    Op = "sub"
)

// AllOps is the default set of ops checked by the harness.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var AllOps = []Op{
	OpAbs,
	OpAdd,
	OpCmp,
	OpEqual,
	OpMul,
	OpNeg,
	OpQuo,
	OpString,
	OpSub,
}

// ParseOps converts names such as "add" or "quo" to Ops, failing on any name
// that is not in AllOps.
func ParseOps(names []string) ([]Op, error) {
	out := make([]Op, 0, len(names))
	for _, name := range names {
		op := Op(name)
		if op.Arity() == 0 {
			return nil, fmt.Errorf("difftest: unknown op %q", name)
		}
		out = append(out, op)
	}
	return out, nil
}

// Arity returns the number of operands op consumes, or 0 if op is unknown.
func (op Op) Arity() int {
	switch op {
	case OpAbs, OpNeg, OpString:
		return 1
	case OpAdd, OpCmp, OpEqual, OpMul, OpQuo, OpSub:
		return 2
	default:
		return 0
	}
}

// String returns a short representation of the op, as if the operands were
// in a sum.
func (op Op) String() string {
	// NEWOP: add a symbol for the op here.
	switch op {
	case OpAbs:
		return "|x|"
	case OpAdd:
		return "+"
	case OpCmp:
		return "<=>"
	case OpEqual:
		return "=="
	case OpMul:
		return "*"
	case OpNeg:
		return "-"
	case OpQuo:
		return "/"
	case OpString:
		return "string()"
	case OpSub:
		return "-"
	default:
		return string(op)
	}
}

// Print formats op applied to its operands for error reports, i.e. "2 + 2".
func (op Op) Print(a, b string) string {
	switch op {
	case OpAbs:
		return fmt.Sprintf("|%s|", a)
	case OpNeg:
		return fmt.Sprintf("-(%s)", a)
	case OpString:
		return fmt.Sprintf("string(%s)", a)
	default:
		return fmt.Sprintf("%s %s %s", a, op.String(), b)
	}
}

// Eval applies op to the textual operands using num.Int and renders the
// result as text. For unary ops b is ignored.
func Eval(op Op, a, b string) (string, error) {
	x, err := num.IntFromString(a)
	if err != nil {
		return "", err
	}

	// NEWOP: add the num.Int implementation here.
	switch op {
	case OpAbs:
		return x.Abs().String(), nil
	case OpNeg:
		return x.Neg().String(), nil
	case OpString:
		return x.String(), nil
	}

	y, err := num.IntFromString(b)
	if err != nil {
		return "", err
	}

	switch op {
	case OpAdd:
		return x.Add(y).String(), nil
	case OpCmp:
		return strconv.Itoa(x.Cmp(y)), nil
	case OpEqual:
		return strconv.FormatBool(x.Equal(y)), nil
	case OpMul:
		return x.Mul(y).String(), nil
	case OpQuo:
		q, err := x.Quo(y)
		if err != nil {
			return "", err
		}
		return q.String(), nil
	case OpSub:
		return x.Sub(y).String(), nil
	default:
		return "", fmt.Errorf("difftest: unsupported op %q", op)
	}
}
