package assembler

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/cheaps/isa"
)

// Label is a label found in the source. Labels are not bound to addresses.
type Label struct {
	LineNo int
	Name   string
}

// Opcode is an encoded line of source.
type Opcode struct {
	LineNo   int
	Mnemonic string
	Tokens   []string
	Word     isa.Word
}

// Program is the ordered result of an assembly pass.
type Program struct {
	Labels  []Label
	Opcodes []Opcode
}

// Writer persists an ordered sequence of encoded words, keyed by line number.
type Writer interface {
	WriteWords(words iter.Seq2[int, isa.Word]) error
}

// Add appends a label or word diagnostic. Other kinds are ignored.
func (prog *Program) Add(diag Diagnostic) {
	switch diag.Kind {
	case KIND_LABEL:
		prog.Labels = append(prog.Labels, Label{LineNo: diag.LineNo, Name: diag.Label})
	case KIND_WORD:
		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:   diag.LineNo,
			Mnemonic: diag.Mnemonic,
			Tokens:   diag.Tokens,
			Word:     diag.Word,
		})
	}
}

// Words iterates over the line numbers and words of the program.
func (prog *Program) Words() iter.Seq2[int, isa.Word] {
	return func(yield func(lineno int, word isa.Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.LineNo, op.Word) {
				return
			}
		}
	}
}

// Binary returns the words of the program.
func (prog *Program) Binary() (bins []uint32) {
	for _, word := range prog.Words() {
		bins = append(bins, uint32(word))
	}

	return
}

// Emit hands the program words to a Writer.
func (prog *Program) Emit(w Writer) error {
	return w.WriteWords(prog.Words())
}

// Listing is a Writer of one text line per word.
type Listing struct {
	Output io.Writer
}

var _ Writer = (*Listing)(nil)

// WriteWords writes the index, hex value, grouped binary and source line of
// each word.
func (ls *Listing) WriteWords(words iter.Seq2[int, isa.Word]) (err error) {
	index := 0
	for lineno, word := range words {
		_, err = fmt.Fprintf(ls.Output, "%04d %08x %v ; line %d\n", index, uint32(word), word.Grouped(), lineno)
		if err != nil {
			return
		}
		index++
	}

	return
}
