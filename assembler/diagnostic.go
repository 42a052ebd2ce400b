package assembler

import (
	"github.com/ezrec/cheaps/isa"
)

// Diagnostic is the outcome of a single source line.
type Diagnostic struct {
	LineNo int    // 1-based source line number.
	Line   string // Source text.
	Kind   Kind

	Label string // Label name, for KIND_LABEL.

	Mnemonic string     // Instruction mnemonic, if any.
	Opcode   isa.Opcode // Instruction opcode, for KIND_WORD.
	Tokens   []string   // Operand tokens after equate substitution.
	Word     isa.Word   // Encoded word, for KIND_WORD.

	Err error // Failure, for the error kinds.
}

// Failed returns true if the diagnostic reports an error.
func (diag Diagnostic) Failed() bool {
	return diag.Kind.IsError()
}

// String renders the diagnostic as assembler output text.
func (diag Diagnostic) String() string {
	switch diag.Kind {
	case KIND_LABEL:
		return f("Label found: %v", diag.Label)
	case KIND_WORD:
		return f("Op code: %v, Arguments: %q\n  Encoded: %v", uint8(diag.Opcode), diag.Tokens, diag.Word)
	case KIND_LABEL_ARGUMENT:
		return f("Error on line %d: Label should not have arguments.", diag.LineNo)
	case KIND_UNKNOWN_INSTRUCTION:
		return f("Error on line %d: Unknown instruction \"%v\"", diag.LineNo, diag.Mnemonic)
	case KIND_INPUT:
		return f("Error on line %d: %v", diag.LineNo, diag.Err)
	}

	return f("Error on line %d: Invalid arguments for instruction \"%v\": %v", diag.LineNo, diag.Mnemonic, diag.Err)
}
