package nibble

import "errors"

var (
	ErrOutOfRange     = errors.New("nibble: value out of range")
	ErrInvalidDigit   = errors.New("nibble: invalid hex digit")
	ErrDivisionByZero = errors.New("nibble: division by zero")
	ErrInvalidLength  = errors.New("nibble: invalid length")
	ErrUnknownOp      = errors.New("nibble: unknown operation")
)
