package cpu

import (
	"errors"
)

// Program is the output of the assembler: the memory image, the labels it
// defined, and the diagnostics of every line that failed to assemble.
type Program struct {
	Source      []string    // Source lines; Source[0] is line 1.
	Memory      Memory      // Assembled memory image.
	Symbols     SymbolTable // Labels defined by the source.
	Diagnostics []ErrSyntax // Assembly failures, in line order per pass.
}

// OK returns true if the program assembled and may be executed.
func (prog *Program) OK() bool {
	return len(prog.Diagnostics) == 0 && prog.Memory[0].Opcode != OP_ERR
}

// Err joins all diagnostics, or returns nil if the program assembled.
func (prog *Program) Err() error {
	errs := make([]error, len(prog.Diagnostics))
	for n, diag := range prog.Diagnostics {
		errs[n] = diag
	}
	return errors.Join(errs...)
}

// Lines returns the number of source lines.
func (prog *Program) Lines() int {
	return len(prog.Source)
}

// Line returns the source text stored at an address, or "" for the entry
// point and for addresses past the end of the source.
func (prog *Program) Line(addr int) string {
	if addr < 1 || addr > len(prog.Source) {
		return ""
	}
	return prog.Source[addr-1]
}

// LineNo returns the source line number of an address. Address 0, the
// synthetic entry point, has no source line.
func (prog *Program) LineNo(addr int) int {
	if addr < 1 || addr > len(prog.Source) || !Valid(addr) {
		return 0
	}
	return addr
}

// Entry returns the address jumped to from address 0.
func (prog *Program) Entry() (addr int, ok bool) {
	if prog.Memory[0].Opcode != OP_JMP {
		return
	}
	addr = prog.Memory[0].OperandValue
	ok = addr != 0
	return
}
