package isa

import (
	"errors"

	"github.com/ezrec/cheaps/translate"
)

var f = translate.From

var (
	// Encoding errors
	ErrArgument           = errors.New(f("invalid arguments"))
	ErrRegisterRange      = errors.New(f("register out of range (R0-R15)"))
	ErrOperandMalformed   = errors.New(f("malformed operand"))
	ErrImmediateRange     = errors.New(f("immediate out of range (0-65535)"))
	ErrUnknownInstruction = errors.New(f("unknown instruction"))
	ErrOpcodeRange        = errors.New(f("opcode out of range"))
	ErrOpcodeOverlap      = errors.New(f("operand overlaps opcode field"))
	ErrOpcodeUnknown      = errors.New(f("opcode unassigned"))
	ErrOperandReserved    = errors.New(f("reserved operand bits set"))

	// Registry construction errors
	ErrMnemonicEmpty     = errors.New(f("mnemonic empty"))
	ErrMnemonicDuplicate = errors.New(f("mnemonic duplicated"))
	ErrOpcodeDuplicate   = errors.New(f("opcode duplicated"))
	ErrAliasMissing      = errors.New(f("alias target missing"))
	ErrAliasChained      = errors.New(f("alias of an alias"))
	ErrGrammarInvalid    = errors.New(f("grammar invalid"))
)

// ErrOperand reports the operand token that failed to parse.
type ErrOperand struct {
	Token string
	Err   error
}

func (err ErrOperand) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err ErrOperand) Unwrap() error {
	return err.Err
}

// ErrInstruction is an unknown mnemonic.
type ErrInstruction string

func (err ErrInstruction) Error() string {
	return f("unknown instruction \"%v\"", string(err))
}

func (err ErrInstruction) Is(target error) bool {
	return target == ErrUnknownInstruction
}

// ErrRegistry reports a malformed registry table entry.
type ErrRegistry struct {
	Mnemonic string
	Err      error
}

func (err ErrRegistry) Error() string {
	return f("registry entry %v: %v", err.Mnemonic, err.Err)
}

func (err ErrRegistry) Unwrap() error {
	return err.Err
}
