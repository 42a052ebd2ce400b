// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/cheaps/isa"
)

// COMMENT starts a comment line.
const COMMENT = "#"

// Assembler is a single pass line assembler for the cheaps instruction set.
type Assembler struct {
	Verbose  bool          // If set, verbosely logs the assembler actions.
	Policy   Policy        // Whether to stop at the first error.
	Workers  int           // Parallel line encoders, for POLICY_COLLECT_ALL.
	Registry *isa.Registry // Instruction set. If nil, isa.DefaultRegistry.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) registry() *isa.Registry {
	if asm.Registry == nil {
		return isa.DefaultRegistry
	}
	return asm.Registry
}

// Assemble iterates over the diagnostics of a source text. Every range over
// the returned sequence assembles the text again.
func (asm *Assembler) Assemble(source string) iter.Seq[Diagnostic] {
	return func(yield func(diag Diagnostic) bool) {
		asm.Scan(strings.NewReader(source))(yield)
	}
}

// Scan iterates over the diagnostics of an input stream. The stream is
// consumed, so the sequence can be ranged over once.
func (asm *Assembler) Scan(input io.Reader) iter.Seq[Diagnostic] {
	return func(yield func(diag Diagnostic) bool) {
		equ := asm.equates()

		if asm.Policy == POLICY_COLLECT_ALL && asm.Workers > 1 {
			asm.scanParallel(equ, input, yield)
			return
		}

		scanner := bufio.NewScanner(input)
		lineno := 0
		for scanner.Scan() {
			lineno += 1
			diag, ok := asm.evaluate(equ, scanner.Text(), lineno)
			if !ok {
				continue
			}
			if !yield(diag) {
				return
			}
			if diag.Failed() && asm.Policy == POLICY_FAIL_FAST {
				return
			}
		}

		err := scanner.Err()
		if err != nil {
			yield(Diagnostic{LineNo: lineno + 1, Kind: KIND_INPUT, Err: err})
		}
	}
}

// scanParallel encodes all lines concurrently, then yields in source order.
func (asm *Assembler) scanParallel(equ equates, input io.Reader, yield func(diag Diagnostic) bool) {
	var lines []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	diags := make([]Diagnostic, len(lines))
	present := make([]bool, len(lines))

	var group errgroup.Group
	group.SetLimit(asm.Workers)
	for n, text := range lines {
		group.Go(func() error {
			diags[n], present[n] = asm.evaluate(equ, text, n+1)
			return nil
		})
	}
	_ = group.Wait()

	for n := range lines {
		if !present[n] {
			continue
		}
		if !yield(diags[n]) {
			return
		}
	}

	err := scanner.Err()
	if err != nil {
		yield(Diagnostic{LineNo: len(lines) + 1, Kind: KIND_INPUT, Err: err})
	}
}

// evaluate classifies and encodes a single line. Blank and comment lines
// return ok == false.
func (asm *Assembler) evaluate(equ equates, text string, lineno int) (diag Diagnostic, ok bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 || strings.HasPrefix(trimmed, COMMENT) {
		return
	}

	ok = true
	diag = Diagnostic{LineNo: lineno, Line: text}

	if asm.Verbose {
		log.Printf("%v: %v\n", lineno, text)
	}

	fail := func(err error) {
		diag.Kind = KindOf(err)
		diag.Err = err
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, err)
		}
	}

	// Labels
	if !strings.HasPrefix(text, "\t") {
		diag.Label = trimmed
		if len(strings.Fields(trimmed)) > 1 {
			fail(ErrLabelArgument)
			return
		}
		diag.Kind = KIND_LABEL
		return
	}

	line := strings.TrimLeft(text, "\t")
	words := strings.Fields(line)
	diag.Mnemonic = words[0]

	line, err := equ.expand(line, lineno)
	if err != nil {
		diag.Tokens = words[1:]
		fail(err)
		return
	}

	words = strings.Fields(line)
	diag.Mnemonic = words[0]
	diag.Tokens = words[1:]
	asm.substitute(diag.Tokens)

	desc, err := asm.registry().Lookup(diag.Mnemonic)
	if err != nil {
		fail(err)
		return
	}

	operand, err := desc.Grammar.Encode(diag.Tokens)
	if err != nil {
		fail(err)
		return
	}

	word, err := isa.Compose(desc.Opcode, operand)
	if err != nil {
		fail(err)
		return
	}

	diag.Kind = KIND_WORD
	diag.Opcode = desc.Opcode
	diag.Word = word

	if asm.Verbose {
		log.Printf("%v: %v %v => %v\n", lineno, desc.Mnemonic, diag.Tokens, word)
	}

	return
}

// Parse assembles an input stream into a Program. Errors are returned as
// ErrSyntax values; under POLICY_COLLECT_ALL they are joined.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	var errs []error
	for diag := range asm.Scan(input) {
		if diag.Failed() {
			errs = append(errs, ErrSyntax{LineNo: diag.LineNo, Line: diag.Line, Err: diag.Err})
			continue
		}
		prog.Add(diag)
	}

	switch len(errs) {
	case 0:
	case 1:
		err = errs[0]
	default:
		err = errors.Join(errs...)
	}

	if err != nil {
		prog = nil
	}

	return
}
