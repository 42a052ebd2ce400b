package isa

import (
	"strconv"
)

// Grammar selects the operand syntax and bit layout of an instruction.
type Grammar int

//go:generate go tool stringer -linecomment -type=Grammar
const (
	GRAMMAR_NONE = Grammar(0) // none
	GRAMMAR_LET  = Grammar(1) // let
	GRAMMAR_ADD  = Grammar(2) // add
	GRAMMAR_SUB  = Grammar(3) // sub
	GRAMMAR_MUL  = Grammar(4) // mul
	GRAMMAR_DIV  = Grammar(5) // div
	GRAMMAR_LOG  = Grammar(6) // log
)

// Keywords
const (
	KW_BE     = "BE"
	KW_TO     = "TO"
	KW_FROM   = "FROM"
	KW_WITH   = "WITH"
	KW_INTO   = "INTO"
	KW_BY     = "BY"
	KW_CARRY  = "CARRY"
	KW_UPDATE = "UPDATE"
)

// flagBit is an optional `WITH <name>` clause.
type flagBit struct {
	name string
	bit  uint
}

// triple is the `<reg> link <reg> INTO <reg> [WITH flag]...` syntax.
type triple struct {
	link  string
	flags []flagBit
}

var (
	tripleAdd = triple{KW_TO, []flagBit{{KW_CARRY, ADD_CARRY_BIT}, {KW_UPDATE, ADD_UPDATE_BIT}}}
	tripleSub = triple{KW_FROM, []flagBit{{KW_UPDATE, UPDATE_BIT}}}
	tripleMul = triple{KW_WITH, []flagBit{{KW_UPDATE, UPDATE_BIT}}}
	tripleDiv = triple{KW_BY, []flagBit{{KW_UPDATE, UPDATE_BIT}}}
)

// Valid returns true for a known grammar.
func (g Grammar) Valid() bool {
	return g >= GRAMMAR_NONE && g <= GRAMMAR_LOG
}

func (g Grammar) triple() (syntax triple, ok bool) {
	ok = true
	switch g {
	case GRAMMAR_ADD:
		syntax = tripleAdd
	case GRAMMAR_SUB:
		syntax = tripleSub
	case GRAMMAR_MUL:
		syntax = tripleMul
	case GRAMMAR_DIV:
		syntax = tripleDiv
	default:
		ok = false
	}
	return
}

// Encode converts operand tokens into operand bits [26:0].
func (g Grammar) Encode(tokens []string) (operand uint32, err error) {
	if syntax, ok := g.triple(); ok {
		return syntax.encode(tokens)
	}

	switch g {
	case GRAMMAR_NONE:
		if len(tokens) != 0 {
			err = ErrArgument
		}
	case GRAMMAR_LET:
		if len(tokens) != 3 || tokens[1] != KW_BE {
			err = ErrArgument
			return
		}
		var reg Register
		reg, err = ParseRegister(tokens[0])
		if err != nil {
			return
		}
		var value uint16
		value, err = ParseImmediate(tokens[2])
		if err != nil {
			return
		}
		operand = (uint32(reg) << REG_A_SHIFT) | (uint32(value) << IMM16_SHIFT)
	case GRAMMAR_LOG:
		if len(tokens) != 1 {
			err = ErrArgument
			return
		}
		var reg Register
		reg, err = ParseRegister(tokens[0])
		if err != nil {
			return
		}
		operand = uint32(reg) << REG_A_SHIFT
	default:
		err = ErrGrammarInvalid
	}

	return
}

func (syntax triple) encode(tokens []string) (operand uint32, err error) {
	if len(tokens) < 5 || tokens[1] != syntax.link || tokens[3] != KW_INTO {
		err = ErrArgument
		return
	}

	clauses := tokens[5:]
	if len(clauses)%2 != 0 {
		err = ErrArgument
		return
	}

	var flags uint32
	for n := 0; n < len(clauses); n += 2 {
		if clauses[n] != KW_WITH {
			err = ErrArgument
			return
		}
		bit, ok := syntax.flag(clauses[n+1])
		if !ok || flags&(1<<bit) != 0 {
			err = ErrArgument
			return
		}
		flags |= 1 << bit
	}

	shifts := [3]uint{REG_A_SHIFT, REG_B_SHIFT, REG_C_SHIFT}
	for n, shift := range shifts {
		var reg Register
		reg, err = ParseRegister(tokens[n*2])
		if err != nil {
			return
		}
		operand |= uint32(reg) << shift
	}

	operand |= flags
	return
}

func (syntax triple) flag(name string) (bit uint, ok bool) {
	for _, fb := range syntax.flags {
		if fb.name == name {
			return fb.bit, true
		}
	}
	return
}

// Decode rebuilds canonical operand tokens from a word.
func (g Grammar) Decode(word Word) (tokens []string, err error) {
	if syntax, ok := g.triple(); ok {
		tokens = []string{word.RegA().String(), syntax.link, word.RegB().String(), KW_INTO, word.RegC().String()}
		for _, fb := range syntax.flags {
			if word.Bit(fb.bit) {
				tokens = append(tokens, KW_WITH, fb.name)
			}
		}
	} else {
		switch g {
		case GRAMMAR_NONE:
			tokens = []string{}
		case GRAMMAR_LET:
			tokens = []string{word.RegA().String(), KW_BE, strconv.Itoa(int(word.Immediate()))}
		case GRAMMAR_LOG:
			tokens = []string{word.RegA().String()}
		default:
			err = ErrGrammarInvalid
			return
		}
	}

	// Any bit outside the grammar's fields makes the word non-canonical.
	operand, err := g.Encode(tokens)
	if err != nil {
		return
	}
	if operand != word.Operand() {
		tokens = nil
		err = ErrOperandReserved
	}

	return
}
