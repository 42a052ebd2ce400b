package isa

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeWord(t *testing.T, line string) Word {
	words := strings.Fields(line)
	desc, err := DefaultRegistry.Lookup(words[0])
	if err != nil {
		t.Fatal(err)
	}
	operand, err := desc.Grammar.Encode(words[1:])
	if err != nil {
		t.Fatalf("%v: %v", line, err)
	}
	word, err := Compose(desc.Opcode, operand)
	if err != nil {
		t.Fatal(err)
	}
	return word
}

func TestGrammarEncode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		word Word
	}{
		{"NOPE", 0},
		{"LET R1 BE 2000", 0b00001000100000111110100000000000},
		{"LET R15 BE 65535", (1 << 27) | (15 << 23) | (0xffff << 7)},
		{"ADD R1 TO R15 INTO R2", 0b01011000111110010000000000000000},
		{"ADD R1 TO R15 INTO R2 WITH CARRY", 0b01011000111110010100000000000000},
		{"ADD R1 TO R15 INTO R2 WITH UPDATE", 0b01011000111110010010000000000000},
		{"ADD R1 TO R15 INTO R2 WITH CARRY WITH UPDATE", 0b01011000111110010110000000000000},
		{"ADD R1 TO R15 INTO R2 WITH UPDATE WITH CARRY", 0b01011000111110010110000000000000},
		{"SUB R1 FROM R15 INTO R2", 0b01100000111110010000000000000000},
		{"SUB R1 FROM R15 INTO R2 WITH UPDATE", 0b01100000111110010100000000000000},
		{"MUL R1 WITH R15 INTO R2 WITH UPDATE", (13 << 27) | (1 << 23) | (15 << 19) | (2 << 15) | (1 << 14)},
		{"DIV R3 BY R4 INTO R5", (14 << 27) | (3 << 23) | (4 << 19) | (5 << 15)},
		{"LOG R9", (2 << 27) | (9 << 23)},
		{"JUMP R1 TO R2 INTO R3 WITH CARRY", (3 << 27) | (1 << 23) | (2 << 19) | (3 << 15) | (1 << 14)},
		{"COPY R1 BY R2 INTO R3 WITH UPDATE", (22 << 27) | (1 << 23) | (2 << 19) | (3 << 15) | (1 << 14)},
	}

	for _, entry := range table {
		word := encodeWord(t, entry.line)
		assert.Equal(entry.word.Grouped(), word.Grouped(), entry.line)
	}
}

func TestGrammarEncodeReject(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		grammar Grammar
		tokens  string
		err     error
	}{
		{GRAMMAR_NONE, "R1", ErrArgument},
		{GRAMMAR_LET, "R1 BE", ErrArgument},
		{GRAMMAR_LET, "R1 IS 5", ErrArgument},
		{GRAMMAR_LET, "R1 BE 5 6", ErrArgument},
		{GRAMMAR_LET, "R16 BE 5", ErrRegisterRange},
		{GRAMMAR_LET, "R1 BE five", ErrOperandMalformed},
		{GRAMMAR_LET, "R1 BE 70000", ErrImmediateRange},
		{GRAMMAR_ADD, "R1 TO R2", ErrArgument},
		{GRAMMAR_ADD, "R1 FROM R2 INTO R3", ErrArgument},
		{GRAMMAR_ADD, "R1 TO R2 ONTO R3", ErrArgument},
		{GRAMMAR_ADD, "R1 TO R2 INTO R3 WITH", ErrArgument},
		{GRAMMAR_ADD, "R1 TO R2 INTO R3 WITH ZERO", ErrArgument},
		{GRAMMAR_ADD, "R1 TO R2 INTO R3 AND CARRY", ErrArgument},
		{GRAMMAR_ADD, "R1 TO R2 INTO R3 WITH CARRY WITH CARRY", ErrArgument},
		{GRAMMAR_ADD, "R1 TO R2 INTO R17", ErrRegisterRange},
		{GRAMMAR_ADD, "R1 TO RX INTO R3", ErrOperandMalformed},
		{GRAMMAR_SUB, "R1 FROM R2 INTO R3 WITH CARRY", ErrArgument},
		{GRAMMAR_SUB, "R1 TO R2 INTO R3", ErrArgument},
		{GRAMMAR_MUL, "R1 BY R2 INTO R3", ErrArgument},
		{GRAMMAR_DIV, "R1 WITH R2 INTO R3", ErrArgument},
		{GRAMMAR_DIV, "R1 BY R2 INTO R3 WITH UPDATE WITH UPDATE", ErrArgument},
		{GRAMMAR_LOG, "", ErrArgument},
		{GRAMMAR_LOG, "R1 R2", ErrArgument},
		{GRAMMAR_LOG, "R20", ErrRegisterRange},
		{Grammar(99), "", ErrGrammarInvalid},
	}

	for _, entry := range table {
		what := fmt.Sprintf("%v %v", entry.grammar, entry.tokens)
		_, err := entry.grammar.Encode(strings.Fields(entry.tokens))
		assert.ErrorIs(err, entry.err, what)
	}
}

func TestGrammarUpdateBits(t *testing.T) {
	assert := assert.New(t)

	add := encodeWord(t, "ADD R1 TO R2 INTO R3 WITH UPDATE")
	for _, line := range []string{
		"SUB R1 FROM R2 INTO R3 WITH UPDATE",
		"MUL R1 WITH R2 INTO R3 WITH UPDATE",
		"DIV R1 BY R2 INTO R3 WITH UPDATE",
	} {
		word := encodeWord(t, line)
		assert.True(word.Bit(UPDATE_BIT), line)
		assert.False(word.Bit(ADD_UPDATE_BIT), line)
		assert.Equal(add.Operand()&^(1<<ADD_UPDATE_BIT), word.Operand()&^(1<<UPDATE_BIT), line)
		assert.NotEqual(add.Operand(), word.Operand(), line)
	}
	assert.True(add.Bit(ADD_UPDATE_BIT))
	assert.False(add.Bit(ADD_CARRY_BIT))
}

func TestGrammarLetRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for reg := range REGISTER_COUNT {
		for value := 0; value <= 0xffff; value += 257 {
			tokens := []string{fmt.Sprintf("R%d", reg), KW_BE, fmt.Sprintf("%d", value)}
			operand, err := GRAMMAR_LET.Encode(tokens)
			assert.NoError(err)
			word, err := Compose(1, operand)
			assert.NoError(err)
			assert.Equal(Register(reg), word.RegA())
			assert.Equal(uint16(value), word.Immediate())
			assert.Equal(Opcode(1), word.Opcode())
		}
	}
}

func FuzzGrammarLet(f *testing.F) {
	f.Add(uint8(1), uint16(2000))
	f.Add(uint8(15), uint16(0xffff))

	f.Fuzz(func(t *testing.T, reg uint8, value uint16) {
		reg &= REGISTER_COUNT - 1
		tokens := []string{Register(reg).String(), KW_BE, fmt.Sprintf("%d", value)}
		operand, err := GRAMMAR_LET.Encode(tokens)
		assert.NoError(t, err)
		word := Word(operand)
		assert.Equal(t, Register(reg), word.RegA())
		assert.Equal(t, value, word.Immediate())
		assert.Zero(t, word&OPCODE_MASK)
	})
}

func TestGrammarDecode(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{
		"NOPE",
		"LET R1 BE 2000",
		"LOG R7",
		"ADD R1 TO R15 INTO R2 WITH CARRY WITH UPDATE",
		"SUB R1 FROM R15 INTO R2 WITH UPDATE",
		"MUL R0 WITH R0 INTO R0",
		"DIV R3 BY R4 INTO R5",
		"RETURN R1 TO R2 INTO R3",
		"ROR R1 BY R2 INTO R3 WITH UPDATE",
	} {
		word := encodeWord(t, line)
		mnemonic, tokens, err := DefaultRegistry.Disassemble(word)
		assert.NoError(err, line)
		assert.Equal(line, strings.Join(append([]string{mnemonic}, tokens...), " "))
	}

	// Flags come back in canonical order.
	word := encodeWord(t, "ADD R1 TO R15 INTO R2 WITH UPDATE WITH CARRY")
	_, tokens, err := DefaultRegistry.Disassemble(word)
	assert.NoError(err)
	assert.Equal("R1 TO R15 INTO R2 WITH CARRY WITH UPDATE", strings.Join(tokens, " "))
}

func TestGrammarDecodeReject(t *testing.T) {
	assert := assert.New(t)

	_, _, err := DefaultRegistry.Disassemble(Word(31 << OPCODE_SHIFT))
	assert.ErrorIs(err, ErrOpcodeUnknown)

	// NOPE with stray operand bits
	_, _, err = DefaultRegistry.Disassemble(Word(1))
	assert.ErrorIs(err, ErrOperandReserved)

	// SUB with the ADD update bit
	word := encodeWord(t, "SUB R1 FROM R2 INTO R3") | (1 << ADD_UPDATE_BIT)
	_, _, err = DefaultRegistry.Disassemble(word)
	assert.ErrorIs(err, ErrOperandReserved)
}
