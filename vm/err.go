package vm

import (
	"errors"

	"github.com/ezrec/iloc/translate"
)

var f = translate.From

var (
	// Execution faults
	ErrDivideByZero   = errors.New(f("division by zero"))
	ErrShiftAmount    = errors.New(f("shift amount out of range"))
	ErrNotImplemented = errors.New(f("not implemented"))

	// Instruction decode errors
	ErrOpcodeMissing  = errors.New(f("opcode missing"))
	ErrOperandMissing = errors.New(f("operand missing"))
)

// ErrUnknownRegister is a read of a register that was never written.
type ErrUnknownRegister string

func (er ErrUnknownRegister) Error() string {
	return f("register %v unknown", string(er))
}

func (er ErrUnknownRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrUnknownRegister)
	return
}

// ErrParseNumber is an immediate operand that is not a valid integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) (ok bool) {
	_, ok = target.(ErrParseNumber)
	return
}

// ErrExecute locates a fatal fault in the program.
type ErrExecute struct {
	Pc          int
	Instruction string
	Err         error
}

func (err *ErrExecute) Error() string {
	return f("pc %v '%v' %v", err.Pc, err.Instruction, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
