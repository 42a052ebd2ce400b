// Package assembler implements the line driver of the cheaps assembler.
//
// Source text is line oriented. Blank lines and lines whose first non-blank
// character is '#' are ignored. A line that does not start with a tab is a
// label and must hold exactly one word. A line that starts with a tab is an
// instruction: a mnemonic followed by operand words.
//
// The Assembler yields one Diagnostic per label, instruction or error, in
// source order. Operand words may use equates, and $(...) Starlark
// expressions that evaluate to unsigned integers.
package assembler
