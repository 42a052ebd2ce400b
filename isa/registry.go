package isa

import (
	"iter"
	"strconv"
)

// Descriptor binds a mnemonic to its opcode and operand grammar.
type Descriptor struct {
	Opcode   Opcode
	Mnemonic string
	Grammar  Grammar
	Alias    string // If set, the mnemonic whose grammar is used.
}

// Registry is an immutable mnemonic table.
type Registry struct {
	byName   map[string]Descriptor
	byOpcode [OPCODE_COUNT]*Descriptor
	list     []Descriptor
}

// defaultTable is the cheaps instruction set.
var defaultTable = []Descriptor{
	{Opcode: 0, Mnemonic: "NOPE", Grammar: GRAMMAR_NONE},
	{Opcode: 1, Mnemonic: "LET", Grammar: GRAMMAR_LET},
	{Opcode: 2, Mnemonic: "LOG", Grammar: GRAMMAR_LOG},
	// Control flow, pending dedicated grammars.
	{Opcode: 3, Mnemonic: "JUMP", Alias: "ADD"},
	{Opcode: 4, Mnemonic: "BRANCH", Alias: "ADD"},
	{Opcode: 5, Mnemonic: "CALL", Alias: "ADD"},
	{Opcode: 6, Mnemonic: "RETURN", Alias: "ADD"},
	{Opcode: 7, Mnemonic: "HALT", Alias: "ADD"},
	{Opcode: 8, Mnemonic: "AND", Alias: "DIV"},
	{Opcode: 9, Mnemonic: "OR", Alias: "DIV"},
	{Opcode: 10, Mnemonic: "XOR", Alias: "DIV"},
	{Opcode: 11, Mnemonic: "ADD", Grammar: GRAMMAR_ADD},
	{Opcode: 12, Mnemonic: "SUB", Grammar: GRAMMAR_SUB},
	{Opcode: 13, Mnemonic: "MUL", Grammar: GRAMMAR_MUL},
	{Opcode: 14, Mnemonic: "DIV", Grammar: GRAMMAR_DIV},
	{Opcode: 15, Mnemonic: "MOD", Alias: "DIV"},
	{Opcode: 16, Mnemonic: "SHL", Alias: "DIV"},
	{Opcode: 17, Mnemonic: "SHR", Alias: "DIV"},
	{Opcode: 18, Mnemonic: "ROL", Alias: "DIV"},
	{Opcode: 19, Mnemonic: "ROR", Alias: "DIV"},
	{Opcode: 20, Mnemonic: "LOAD", Alias: "DIV"},
	{Opcode: 21, Mnemonic: "STORE", Alias: "DIV"},
	{Opcode: 22, Mnemonic: "COPY", Alias: "DIV"},
}

// DefaultRegistry is the registry of the cheaps instruction set.
var DefaultRegistry = mustRegistry(defaultTable)

func mustRegistry(table []Descriptor) *Registry {
	reg, err := NewRegistry(table)
	if err != nil {
		panic(err)
	}
	return reg
}

// NewRegistry validates a descriptor table, resolves its aliases, and
// builds a Registry from it.
func NewRegistry(table []Descriptor) (reg *Registry, err error) {
	byName := make(map[string]Descriptor, len(table))
	for _, desc := range table {
		switch {
		case len(desc.Mnemonic) == 0:
			err = ErrMnemonicEmpty
		case !desc.Opcode.Valid():
			err = ErrOpcodeRange
		case len(desc.Alias) == 0 && !desc.Grammar.Valid():
			err = ErrGrammarInvalid
		}
		if err == nil {
			if _, ok := byName[desc.Mnemonic]; ok {
				err = ErrMnemonicDuplicate
			}
		}
		if err != nil {
			err = ErrRegistry{Mnemonic: desc.Mnemonic, Err: err}
			return
		}
		byName[desc.Mnemonic] = desc
	}

	reg = &Registry{
		byName: make(map[string]Descriptor, len(table)),
		list:   make([]Descriptor, 0, len(table)),
	}

	for _, desc := range table {
		if len(desc.Alias) != 0 {
			target, ok := byName[desc.Alias]
			switch {
			case !ok:
				err = ErrAliasMissing
			case len(target.Alias) != 0:
				err = ErrAliasChained
			}
			if err != nil {
				reg = nil
				err = ErrRegistry{Mnemonic: desc.Mnemonic, Err: err}
				return
			}
			desc.Grammar = target.Grammar
		}
		if reg.byOpcode[desc.Opcode] != nil {
			reg = nil
			err = ErrRegistry{Mnemonic: desc.Mnemonic, Err: ErrOpcodeDuplicate}
			return
		}
		reg.byName[desc.Mnemonic] = desc
		reg.byOpcode[desc.Opcode] = &desc
	}

	for _, desc := range reg.byOpcode {
		if desc != nil {
			reg.list = append(reg.list, *desc)
		}
	}

	return
}

// Lookup finds the descriptor of a mnemonic. Matching is case-sensitive.
func (reg *Registry) Lookup(mnemonic string) (desc Descriptor, err error) {
	desc, ok := reg.byName[mnemonic]
	if !ok {
		err = ErrInstruction(mnemonic)
	}
	return
}

// ByOpcode finds the descriptor assigned to an opcode.
func (reg *Registry) ByOpcode(op Opcode) (desc Descriptor, ok bool) {
	if !op.Valid() || reg.byOpcode[op] == nil {
		return
	}
	return *reg.byOpcode[op], true
}

// Len returns the number of descriptors.
func (reg *Registry) Len() int {
	return len(reg.list)
}

// All iterates over the descriptors in opcode order.
func (reg *Registry) All() iter.Seq[Descriptor] {
	return func(yield func(desc Descriptor) bool) {
		for _, desc := range reg.list {
			if !yield(desc) {
				return
			}
		}
	}
}

// Defines iterates over OP_<MNEMONIC> equates for every descriptor.
func (reg *Registry) Defines() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		for _, desc := range reg.list {
			if !yield("OP_"+desc.Mnemonic, strconv.Itoa(int(desc.Opcode))) {
				return
			}
		}
	}
}

// Disassemble rebuilds the mnemonic and operand tokens of a word.
func (reg *Registry) Disassemble(word Word) (mnemonic string, tokens []string, err error) {
	desc, ok := reg.ByOpcode(word.Opcode())
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	tokens, err = desc.Grammar.Decode(word)
	if err != nil {
		return
	}

	mnemonic = desc.Mnemonic
	return
}
