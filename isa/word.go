package isa

import (
	"fmt"
	"strings"
)

// Opcode is a 5-bit instruction code.
type Opcode uint8

// Word is a fully encoded 32-bit instruction.
type Word uint32

const (
	OPCODE_BITS  = 5
	OPCODE_COUNT = 1 << OPCODE_BITS
	OPCODE_SHIFT = 27

	OPCODE_MASK  = Word((OPCODE_COUNT - 1) << OPCODE_SHIFT)
	OPERAND_MASK = ^OPCODE_MASK
)

// Operand field offsets, from bit 0 of the full word.
const (
	REG_A_SHIFT = 23 // bits [26:23]
	REG_B_SHIFT = 19 // bits [22:19]
	REG_C_SHIFT = 15 // bits [18:15]
	REG_BITS    = 4

	IMM16_SHIFT = 7 // bits [22:7]
	IMM16_BITS  = 16

	ADD_CARRY_BIT  = 14
	ADD_UPDATE_BIT = 13
	UPDATE_BIT     = 14 // SUB, MUL and DIV
)

// Valid returns true if the opcode fits in the opcode field.
func (op Opcode) Valid() bool {
	return op < OPCODE_COUNT
}

// Compose places an opcode above a set of operand bits.
func Compose(op Opcode, operand uint32) (word Word, err error) {
	if !op.Valid() {
		err = ErrOpcodeRange
		return
	}

	if Word(operand)&OPCODE_MASK != 0 {
		err = ErrOpcodeOverlap
		return
	}

	word = (Word(op) << OPCODE_SHIFT) | Word(operand)
	return
}

// Opcode returns bits [31:27].
func (word Word) Opcode() Opcode {
	return Opcode(word >> OPCODE_SHIFT)
}

// Operand returns bits [26:0].
func (word Word) Operand() uint32 {
	return uint32(word & OPERAND_MASK)
}

// Field extracts width bits starting at shift.
func (word Word) Field(shift, width uint) uint32 {
	return (uint32(word) >> shift) & ((1 << width) - 1)
}

// Bit returns true if bit n is set.
func (word Word) Bit(n uint) bool {
	return word.Field(n, 1) == 1
}

// RegA returns the register in bits [26:23].
func (word Word) RegA() Register {
	return Register(word.Field(REG_A_SHIFT, REG_BITS))
}

// RegB returns the register in bits [22:19].
func (word Word) RegB() Register {
	return Register(word.Field(REG_B_SHIFT, REG_BITS))
}

// RegC returns the register in bits [18:15].
func (word Word) RegC() Register {
	return Register(word.Field(REG_C_SHIFT, REG_BITS))
}

// Immediate returns the 16-bit immediate in bits [22:7].
func (word Word) Immediate() uint16 {
	return uint16(word.Field(IMM16_SHIFT, IMM16_BITS))
}

// String returns the word as 32 binary digits.
func (word Word) String() string {
	return fmt.Sprintf("%032b", uint32(word))
}

// Grouped returns the word as binary digits in groups of four.
func (word Word) Grouped() string {
	str := word.String()
	groups := make([]string, 0, len(str)/4)
	for n := 0; n < len(str); n += 4 {
		groups = append(groups, str[n:n+4])
	}
	return strings.Join(groups, " ")
}
