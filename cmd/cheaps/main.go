// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/cheaps/assembler"
	"github.com/ezrec/cheaps/isa"
	"github.com/ezrec/cheaps/translate"
)

const (
	ansiRed   = "\033[31m"
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

func main() {
	var collect bool
	var workers int
	var verbose bool
	var disasm bool
	var listing bool
	var color string
	var lang string
	defines := map[string]string{}

	flag.BoolVar(&collect, "k", false, "Keep going: report every error, not only the first")
	flag.IntVar(&workers, "j", 1, "Parallel line encoders (with -k)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&disasm, "d", false, "Disassemble each encoded word")
	flag.BoolVar(&listing, "l", false, "Print a word listing after the pass")
	flag.StringVar(&color, "color", "auto", "Coloured output: auto, always or never")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47 tag)")
	flag.Func("D", "Predefine an equate as NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%v: expected NAME=VALUE", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	log.SetFlags(0)

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	var input io.Reader = os.Stdin
	name := "<stdin>"
	if flag.NArg() == 1 && flag.Arg(0) != "-" {
		name = flag.Arg(0)
		inf, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		defer inf.Close()
		input = inf
	}

	var colored bool
	switch color {
	case "always":
		colored = true
	case "never":
		colored = false
	case "auto":
		colored = isTerminal(os.Stdout.Fd())
	default:
		log.Fatalf("%v: -color %v: expected auto, always or never", os.Args[0], color)
	}

	asm := &assembler.Assembler{
		Verbose: verbose,
		Workers: workers,
	}
	if collect {
		asm.Policy = assembler.POLICY_COLLECT_ALL
	}
	for equ, value := range defines {
		asm.Predefine(equ, value)
	}

	prog := &assembler.Program{}
	failed := false
	for diag := range asm.Scan(input) {
		text := diag.String()
		if diag.Failed() {
			failed = true
			if colored {
				text = ansiBold + name + ":" + ansiReset + " " + ansiRed + text + ansiReset
			} else {
				text = name + ": " + text
			}
		}
		fmt.Println(text)

		if disasm && diag.Kind == assembler.KIND_WORD {
			mnemonic, tokens, err := isa.DefaultRegistry.Disassemble(diag.Word)
			if err != nil {
				log.Printf("%v:%d: %v", name, diag.LineNo, err)
			} else {
				fmt.Printf("  Disassembly: %v\n", strings.Join(append([]string{mnemonic}, tokens...), " "))
			}
		}

		prog.Add(diag)
	}

	if listing && !failed {
		err := prog.Emit(&assembler.Listing{Output: os.Stdout})
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	}

	if failed {
		os.Exit(1)
	}
}
