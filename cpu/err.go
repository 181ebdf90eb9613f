package cpu

import (
	"errors"

	"github.com/ezrec/accsim/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOverflow     = errors.New(f("overflow"))
	ErrStackEmpty   = errors.New(f("stack empty"))
	ErrStackFull    = errors.New(f("stack full"))
	ErrHalted       = errors.New(f("halted"))
	ErrStepLimit    = errors.New(f("step limit reached"))
	ErrOpcodeDecode = errors.New(f("decode"))

	// Assembler errors
	ErrLabelFormat    = errors.New(f("label not followed by ':'"))
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrProgramTooLong = errors.New(f("no memory for line"))
)

// ErrAddress is a memory reference outside of the machine.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of range", int(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrOpcode annotates an execution error with the offending instruction.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad instruction %v", Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax is an assembler diagnostic for a single source line.
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

// ErrOperandUnresolved is an operand that is neither a label nor a number.
type ErrOperandUnresolved string

func (err ErrOperandUnresolved) Error() string {
	return f("'%v' is not a label or a number", string(err))
}
