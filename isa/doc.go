// Package isa implements the instruction registry and operand encoders for the
// cheaps 32-bit instruction set.
//
// Every instruction is a single 32-bit Word. Bits [31:27] hold the 5-bit
// Opcode; bits [26:0] hold operand fields whose layout is selected by the
// instruction's Grammar. Operand encoders only ever produce the [26:0]
// portion; Compose places the opcode.
//
// The Registry maps mnemonics to Descriptors. Several mnemonics borrow the
// grammar of another mnemonic through the Descriptor Alias field, so giving
// one of them a grammar of its own later touches a single table entry.
package isa
