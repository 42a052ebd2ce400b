package assembler

import (
	"bytes"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cheaps/isa"
	"github.com/ezrec/cheaps/translate"
)

func TestDiagnosticString(t *testing.T) {
	assert := assert.New(t)

	translate.SetLanguage(translate.FALLBACK)

	asm := &Assembler{Policy: POLICY_COLLECT_ALL}
	program := []string{
		"start",
		"\tLET R1 BE 2000",
		"\tFOO R1",
		"bad label",
		"\tLET R16 BE 1",
	}

	var out []string
	for diag := range asm.Assemble(strings.Join(program, "\n")) {
		out = append(out, diag.String())
	}

	assert.Equal([]string{
		"Label found: start",
		"Op code: 1, Arguments: [\"R1\" \"BE\" \"2000\"]\n  Encoded: 00001000100000111110100000000000",
		"Error on line 3: Unknown instruction \"FOO\"",
		"Error on line 4: Label should not have arguments.",
		"Error on line 5: Invalid arguments for instruction \"LET\": 'R16' register out of range (R0-R15)",
	}, out)

	diag := Diagnostic{LineNo: 9, Kind: KIND_INPUT, Err: errors.New("boom")}
	assert.Equal("Error on line 9: boom", diag.String())
	assert.Equal("unknown instruction", KIND_UNKNOWN_INSTRUCTION.String())
}

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("\tNOPE\nhere\n\tLOG R1\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	var lines []int
	for lineno := range prog.Words() {
		lines = append(lines, lineno)
	}
	assert.Equal([]int{1, 3}, lines)

	buf := &bytes.Buffer{}
	err = prog.Emit(&Listing{Output: buf})
	assert.NoError(err)
	assert.Equal(
		"0000 00000000 0000 0000 0000 0000 0000 0000 0000 0000 ; line 1\n"+
			"0001 10800000 0001 0000 1000 0000 0000 0000 0000 0000 ; line 3\n",
		buf.String())

	// A Writer sees the words in source order.
	collected := &wordCollector{}
	assert.NoError(prog.Emit(collected))
	assert.Equal([]isa.Word{0, (2 << 27) | (1 << 23)}, collected.words)
}

type wordCollector struct {
	words []isa.Word
}

func (wc *wordCollector) WriteWords(words iter.Seq2[int, isa.Word]) error {
	for _, word := range words {
		wc.words = append(wc.words, word)
	}
	return nil
}
