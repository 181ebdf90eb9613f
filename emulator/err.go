package emulator

import (
	"errors"

	"github.com/ezrec/accsim/translate"
)

var f = translate.From

var (
	ErrNoProgram    = errors.New(f("no program to run"))
	ErrNotAssembled = errors.New(f("program did not assemble"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
