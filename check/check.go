// Package check evaluates register expectations written as Starlark
// expressions, such as "r0 == 20 and r2 < 0", against a machine state.
package check

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/iloc/translate"
)

var f = translate.From

var (
	ErrNotBool = errors.New(f("expectation is not a boolean"))
)

// ErrExpect wraps an expectation that could not be evaluated.
type ErrExpect struct {
	Expr string
	Err  error
}

func (err *ErrExpect) Error() string {
	return f("expect '%v': %v", err.Expr, err.Err)
}

func (err *ErrExpect) Unwrap() error {
	return err.Err
}

// Predeclared returns the Starlark globals for a register file: one int per
// register.
func Predeclared(registers map[string]int32) starlark.StringDict {
	pred := make(starlark.StringDict, len(registers))
	for name, value := range registers {
		pred[name] = starlark.MakeInt(int(value))
	}
	return pred
}

// Eval evaluates expr with every register bound by name.
func Eval(expr string, registers map[string]int32) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpect{Expr: expr, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: "expect"}
	opts := syntax.FileOptions{}

	value, err := starlark.EvalOptions(&opts, thread, "expect", expr, Predeclared(registers))
	if err != nil {
		return
	}

	result, is_bool := value.(starlark.Bool)
	if !is_bool {
		err = ErrNotBool
		return
	}

	ok = bool(result)
	return
}
