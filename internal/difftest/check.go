/*
Package difftest cross-checks num.Int against independent arbitrary-precision
implementations using random and hand-picked operands.

Every check runs an op on num.Int and on each Reference. When both sides fail
(an invalid operand, a zero divisor) the check passes; when only one side
fails, or both succeed with different text, the check fails with a
*Mismatch.
*/
package difftest

import (
	"fmt"
)

// Mismatch describes a single op where num.Int and a Reference disagree.
type Mismatch struct {
	Op        Op
	A, B      string
	Reference string

	Got    string
	GotErr error

	Expected    string
	ExpectedErr error
}

func (m *Mismatch) Error() string {
	got, exp := m.Got, m.Expected
	if m.GotErr != nil {
		got = "error(" + m.GotErr.Error() + ")"
	}
	if m.ExpectedErr != nil {
		exp = "error(" + m.ExpectedErr.Error() + ")"
	}
	return fmt.Sprintf("%s: num(%s) != %s(%s)", m.Op.Print(m.A, m.B), got, m.Reference, exp)
}

type Checker struct {
	References []Reference
}

// NewChecker creates a Checker for refs. If no refs are passed, the
// DefaultReferences are used.
func NewChecker(refs ...Reference) *Checker {
	if len(refs) == 0 {
		refs = DefaultReferences()
	}
	return &Checker{References: refs}
}

// Check evaluates op against num.Int and every Reference, returning a
// *Mismatch for the first Reference that disagrees.
func (c *Checker) Check(op Op, a, b string) error {
	if op.Arity() == 0 {
		return fmt.Errorf("difftest: unknown op %q", op)
	}

	got, gotErr := Eval(op, a, b)
	for _, ref := range c.References {
		exp, expErr := ref.Eval(op, a, b)
		if gotErr != nil && expErr != nil {
			continue
		}
		if gotErr != nil || expErr != nil || got != exp {
			return &Mismatch{
				Op: op, A: a, B: b,
				Reference:   ref.Name(),
				Got:         got,
				GotErr:      gotErr,
				Expected:    exp,
				ExpectedErr: expErr,
			}
		}
	}
	return nil
}

// CheckAll runs every op in ops against a and b, collecting all mismatches.
func (c *Checker) CheckAll(ops []Op, a, b string) (errs []error) {
	for _, op := range ops {
		if err := c.Check(op, a, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
