package assembler

import (
	"errors"

	"github.com/ezrec/cheaps/isa"
)

// Kind classifies a Diagnostic.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_LABEL               = Kind(0) // label
	KIND_WORD                = Kind(1) // word
	KIND_UNKNOWN_INSTRUCTION = Kind(2) // unknown instruction
	KIND_LABEL_ARGUMENT      = Kind(3) // label argument
	KIND_ARGUMENT            = Kind(4) // argument
	KIND_REGISTER_RANGE      = Kind(5) // register out of range
	KIND_MALFORMED_OPERAND   = Kind(6) // malformed operand
	KIND_IMMEDIATE_RANGE     = Kind(7) // immediate out of range
	KIND_INPUT               = Kind(8) // input
)

// IsError returns true for the error kinds.
func (kind Kind) IsError() bool {
	return kind >= KIND_UNKNOWN_INSTRUCTION
}

// KindOf classifies an error.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, isa.ErrUnknownInstruction):
		return KIND_UNKNOWN_INSTRUCTION
	case errors.Is(err, ErrLabelArgument):
		return KIND_LABEL_ARGUMENT
	case errors.Is(err, isa.ErrRegisterRange):
		return KIND_REGISTER_RANGE
	case errors.Is(err, isa.ErrOperandMalformed):
		return KIND_MALFORMED_OPERAND
	case errors.Is(err, isa.ErrImmediateRange):
		return KIND_IMMEDIATE_RANGE
	}

	return KIND_ARGUMENT
}

// Policy selects what happens after an error.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_FAIL_FAST   = Policy(0) // fail-fast
	POLICY_COLLECT_ALL = Policy(1) // collect-all
)
