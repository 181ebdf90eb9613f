package check

import (
	"errors"
	"strings"

	"github.com/ezrec/accsim/translate"
)

var f = translate.From

var ErrExpectation = errors.New(f("expectation failed"))

// ErrCheck is returned when a check script fails to run, or when any of its
// expectations are not met.
type ErrCheck struct {
	Name     string   // Name of the check script.
	Failures []string // Messages of the failed expectations.
	Err      error    // Script error, if the script did not complete.
}

func (err *ErrCheck) Error() string {
	if err.Err != nil {
		return f("%v: %v", err.Name, err.Err)
	}
	return f("%v: %d failed: %v", err.Name, len(err.Failures), strings.Join(err.Failures, "; "))
}

func (err *ErrCheck) Unwrap() error {
	if err.Err != nil {
		return err.Err
	}
	return ErrExpectation
}
