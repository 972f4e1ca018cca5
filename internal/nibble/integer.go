package nibble

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Integer is the fixed-width integer capability a Nibble provides.
type Integer[T any] interface {
	fmt.Stringer
	encoding.TextMarshaler
	json.Marshaler

	Get() uint8
	Compare(rhs T) int

	AddReportingOverflow(rhs T) (T, bool)
	SubReportingOverflow(rhs T) (T, bool)
	MulReportingOverflow(rhs T) (T, bool)
	DivReportingOverflow(rhs T) (T, bool)
	RemReportingOverflow(rhs T) (T, bool)

	And(rhs T) T
	Or(rhs T) T
	Xor(rhs T) T
	Not() T
}

var _ Integer[Nibble] = Nibble{}

// Op names one binary operation of the Integer capability.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
	OpRem Op = "rem"
	OpAnd Op = "and"
	OpOr  Op = "or"
	OpXor Op = "xor"
)

// ParseOp accepts an operation name in any case.
func ParseOp(raw string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(raw)))
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpRem, OpAnd, OpOr, OpXor:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, raw)
}

// Apply runs op on lhs and rhs. Bitwise operations never report overflow.
func Apply[T Integer[T]](op Op, lhs, rhs T) (T, bool, error) {
	switch op {
	case OpAdd:
		r, o := lhs.AddReportingOverflow(rhs)
		return r, o, nil
	case OpSub:
		r, o := lhs.SubReportingOverflow(rhs)
		return r, o, nil
	case OpMul:
		r, o := lhs.MulReportingOverflow(rhs)
		return r, o, nil
	case OpDiv:
		r, o := lhs.DivReportingOverflow(rhs)
		return r, o, nil
	case OpRem:
		r, o := lhs.RemReportingOverflow(rhs)
		return r, o, nil
	case OpAnd:
		return lhs.And(rhs), false, nil
	case OpOr:
		return lhs.Or(rhs), false, nil
	case OpXor:
		return lhs.Xor(rhs), false, nil
	}
	var zero T
	return zero, false, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
}
