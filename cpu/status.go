package cpu

import (
	"fmt"
)

const (
	MAX_INT = 127 // Largest accumulator value held in 8 bits, two's complement.
	MIN_INT = -(MAX_INT + 1)
)

// Status is the ZNV condition register. At most one flag is ever set.
type Status int

const (
	STATUS_NONE = Status(0b000)
	STATUS_V    = Status(0b001) // Overflow
	STATUS_N    = Status(0b010) // Negative
	STATUS_Z    = Status(0b100) // Zero
)

// FlagsOf computes the status register for a value.
//
// Zero is tested first, then negative, then the 8-bit range. A negative
// value below MIN_INT is therefore reported as negative, not overflow.
func FlagsOf(value int) Status {
	switch {
	case value == 0:
		return STATUS_Z
	case value < 0:
		return STATUS_N
	case value > MAX_INT || value < MIN_INT:
		return STATUS_V
	default:
		return STATUS_NONE
	}
}

func (st Status) Zero() bool {
	return st&STATUS_Z != 0
}

func (st Status) Negative() bool {
	return st&STATUS_N != 0
}

func (st Status) Overflow() bool {
	return st&STATUS_V != 0
}

// String returns the register as three binary digits, Z first.
func (st Status) String() string {
	return fmt.Sprintf("%03b", int(st)&0b111)
}
