package difftest

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/inf.v0"
)

// Reference is an independent, trusted arbitrary-precision implementation
// that num.Int results are checked against. Eval has the same contract as the
// package-level Eval: text in, text out, and an error wherever the operation
// is undefined (bad input text, division by zero).
type Reference interface {
	Name() string
	Eval(op Op, a, b string) (string, error)
}

// DefaultReferences returns every Reference known to this package.
func DefaultReferences() []Reference {
	return []Reference{
		BigReference{},
		APDReference{},
		InfReference{},
	}
}

func invalidOperand(ref Reference, s string) error {
	return fmt.Errorf("difftest: %s: invalid operand %q", ref.Name(), s)
}

func divideByZero(ref Reference) error {
	return fmt.Errorf("difftest: %s: division by zero", ref.Name())
}

func unsupportedOp(ref Reference, op Op) error {
	return fmt.Errorf("difftest: %s: unsupported op %q", ref.Name(), op)
}

// BigReference checks against math/big. big.Int.Quo truncates towards zero,
// which is the same rounding num.Int uses.
type BigReference struct{}

func (BigReference) Name() string { return "math/big" }

func (ref BigReference) Eval(op Op, a, b string) (string, error) {
	x, ok := new(big.Int).SetString(a, 10)
	if !ok {
		return "", invalidOperand(ref, a)
	}

	switch op {
	case OpAbs:
		return new(big.Int).Abs(x).String(), nil
	case OpNeg:
		return new(big.Int).Neg(x).String(), nil
	case OpString:
		return x.String(), nil
	}

	y, ok := new(big.Int).SetString(b, 10)
	if !ok {
		return "", invalidOperand(ref, b)
	}

	switch op {
	case OpAdd:
		return new(big.Int).Add(x, y).String(), nil
	case OpCmp:
		return strconv.Itoa(x.Cmp(y)), nil
	case OpEqual:
		return strconv.FormatBool(x.Cmp(y) == 0), nil
	case OpMul:
		return new(big.Int).Mul(x, y).String(), nil
	case OpQuo:
		if y.Sign() == 0 {
			return "", divideByZero(ref)
		}
		return new(big.Int).Quo(x, y).String(), nil
	case OpSub:
		return new(big.Int).Sub(x, y).String(), nil
	default:
		return "", unsupportedOp(ref, op)
	}
}

// APDReference checks against apd.BigInt from cockroachdb/apd, which keeps
// small values inline and only falls back to math/big for large ones, so it
// exercises a different code path for short operands.
type APDReference struct{}

func (APDReference) Name() string { return "apd" }

func (ref APDReference) Eval(op Op, a, b string) (string, error) {
	x, ok := new(apd.BigInt).SetString(a, 10)
	if !ok {
		return "", invalidOperand(ref, a)
	}

	switch op {
	case OpAbs:
		return new(apd.BigInt).Abs(x).String(), nil
	case OpNeg:
		return new(apd.BigInt).Neg(x).String(), nil
	case OpString:
		return x.String(), nil
	}

	y, ok := new(apd.BigInt).SetString(b, 10)
	if !ok {
		return "", invalidOperand(ref, b)
	}

	switch op {
	case OpAdd:
		return new(apd.BigInt).Add(x, y).String(), nil
	case OpCmp:
		return strconv.Itoa(x.Cmp(y)), nil
	case OpEqual:
		return strconv.FormatBool(x.Cmp(y) == 0), nil
	case OpMul:
		return new(apd.BigInt).Mul(x, y).String(), nil
	case OpQuo:
		if y.Sign() == 0 {
			return "", divideByZero(ref)
		}
		return new(apd.BigInt).Quo(x, y).String(), nil
	case OpSub:
		return new(apd.BigInt).Sub(x, y).String(), nil
	default:
		return "", unsupportedOp(ref, op)
	}
}

// InfReference checks against inf.Dec at scale 0. Division goes through
// QuoRound with inf.RoundDown, which rounds towards zero.
type InfReference struct{}

func (InfReference) Name() string { return "inf" }

func (ref InfReference) Eval(op Op, a, b string) (string, error) {
	x, ok := new(inf.Dec).SetString(a)
	if !ok || x.Scale() != 0 {
		return "", invalidOperand(ref, a)
	}

	switch op {
	case OpAbs:
		return new(inf.Dec).Abs(x).String(), nil
	case OpNeg:
		return new(inf.Dec).Neg(x).String(), nil
	case OpString:
		return x.String(), nil
	}

	y, ok := new(inf.Dec).SetString(b)
	if !ok || y.Scale() != 0 {
		return "", invalidOperand(ref, b)
	}

	switch op {
	case OpAdd:
		return new(inf.Dec).Add(x, y).String(), nil
	case OpCmp:
		return strconv.Itoa(x.Cmp(y)), nil
	case OpEqual:
		return strconv.FormatBool(x.Cmp(y) == 0), nil
	case OpMul:
		return new(inf.Dec).Mul(x, y).String(), nil
	case OpQuo:
		if y.Sign() == 0 {
			return "", divideByZero(ref)
		}
		return new(inf.Dec).QuoRound(x, y, 0, inf.RoundDown).String(), nil
	case OpSub:
		return new(inf.Dec).Sub(x, y).String(), nil
	default:
		return "", unsupportedOp(ref, op)
	}
}
