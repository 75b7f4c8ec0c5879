package target

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrTargetNotFound = errors.New("target not found")
	ErrNoMarkedBlock  = errors.New("no marked block")
	ErrBlockNotInFile = errors.New("marked block not in current file")
	ErrPattern        = errors.New("invalid regular expression")
	// ErrOutOfMemory is returned when a target or a needle outgrows the working
	// limits in Settings. Callers may retry with a smaller target.
	ErrOutOfMemory = errors.New("out of memory")
)

// OperandError is a malformed target. Text is the target as typed.
type OperandError struct {
	Text string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("Invalid operand: %s", e.Text)
}

func (e *OperandError) Unwrap() error {
	return ErrInvalidOperand
}

// PatternError is a regular expression that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("Error in regular expression '%s': %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrPattern, e.Err}
}
