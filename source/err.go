package source

import (
	"errors"

	"github.com/ezrec/accsim/translate"
)

var f = translate.From

var (
	ErrEmpty      = errors.New(f("no source loaded"))
	ErrTooLong    = errors.New(f("source too long"))
	ErrLineRange  = errors.New(f("line number out of range"))
	ErrEditFormat = errors.New(f("edit is not of the form N=TEXT"))
)
