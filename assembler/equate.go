package assembler

import (
	"maps"
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cheaps/internal"
)

// EQU_LINENO evaluates to the current source line number.
const EQU_LINENO = "LINENO"

// EXPR_MAX_STEPS bounds the Starlark steps spent on one $(...) expression.
const EXPR_MAX_STEPS = 100_000

var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// equates maps operand names to replacement text for a single pass.
type equates map[string]string

// equates collects the registry defines and the predefines. Predefines win.
func (asm *Assembler) equates() equates {
	return maps.Collect(internal.IterSeq2Concat(
		asm.registry().Defines(),
		maps.All(asm.predefine),
	))
}

// expand replaces $(...) expressions with their decimal value.
func (equ equates) expand(line string, lineno int) (out string, err error) {
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		if err != nil {
			return str
		}
		value, _err := equ.eval(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
			return str
		}
		return strconv.FormatUint(value, 10)
	})
	return
}

// substitute replaces predefined names in operand tokens. System equates
// are only visible inside $(...).
func (asm *Assembler) substitute(tokens []string) {
	for n, token := range tokens {
		value, ok := asm.predefine[token]
		if ok {
			tokens[n] = value
		}
	}
}

// eval does compile-time $(...) evaluations.
func (equ equates) eval(expr string, lineno int) (value uint64, err error) {
	defer func() {
		if err != nil {
			err = ErrExpression{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_MAX_STEPS)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		EQU_LINENO: starlark.MakeInt(lineno),
	}
	for key, str := range equ {
		v64, perr := strconv.ParseUint(str, 10, 64)
		if perr != nil {
			// Ignore non-integer equates. They may be registers.
			continue
		}
		pred[key] = starlark.MakeUint64(v64)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpressionValue
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrExpressionValue
	}
	return
}
