package assembler

import (
	"errors"

	"github.com/ezrec/cheaps/isa"
	"github.com/ezrec/cheaps/translate"
)

var f = translate.From

var (
	ErrLabelArgument   = errors.New(f("label should not have arguments"))
	ErrExpressionValue = errors.New(f("not an unsigned integer"))
)

// ErrSyntax indicates the location of an assembly error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrExpression is a $(...) expression that failed to evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

// Is reports a failed expression as a malformed operand.
func (err ErrExpression) Is(target error) bool {
	return target == isa.ErrOperandMalformed
}
