package requirement

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned (wrapped) whenever the input ends before a
// declared length has been fully consumed.
var ErrTruncated = errors.New("truncated requirement data")

// UnknownOpCodeError is returned when an expression opcode value outside
// the set defined by this package is encountered.
type UnknownOpCodeError struct {
	Op uint32
}

func (e *UnknownOpCodeError) Error() string {
	return fmt.Sprintf("unknown opcode: %d", e.Op)
}

// UnknownMatchError is returned when a match-type code outside the set
// defined by this package is encountered.
type UnknownMatchError struct {
	Code uint32
}

func (e *UnknownMatchError) Error() string {
	return fmt.Sprintf("unknown match code: %d", e.Code)
}

// MalformedError reports a structural violation that isn't an unknown tag:
// a UTF-8 violation in a field the wire format specifies as text, a blob
// header that fails validation (wrong magic, fewer than 8 bytes, or an
// inconsistent length), or connective nesting beyond maxRecursionDepth.
type MalformedError struct {
	Msg string
}

func (e *MalformedError) Error() string {
	return "malformed data: " + e.Msg
}

func truncated(need int, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, need, have)
}

func malformed(msg string) error {
	return &MalformedError{Msg: msg}
}

func unknownOpCode(op uint32) error {
	return &UnknownOpCodeError{Op: op}
}

func unknownMatch(code uint32) error {
	return &UnknownMatchError{Code: code}
}
