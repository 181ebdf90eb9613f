// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/accsim/cpu"
)

// Tracer observes the machine state between instructions. Frame 0 is the
// state before the first fetch.
type Tracer interface {
	Frame(frame int, emu *Emulator)
}

// Emulator state. CPU + the program listing it runs.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	MaxSteps int    // If positive, the most instructions a run may execute.
	Tracer   Tracer // If set, called for every frame.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}
	emu.Cpu = cpu.NewCpu(&emu.Program.Memory)

	return
}

// Load installs an assembled program. Programs that failed to assemble, or
// that have no entry point, are refused.
func (emu *Emulator) Load(prog *cpu.Program) (err error) {
	if !prog.OK() {
		err = errors.Join(ErrNotAssembled, prog.Err())
		return
	}
	if _, ok := prog.Entry(); !ok {
		err = ErrNoProgram
		return
	}

	emu.Program = prog
	emu.Cpu.Memory = &prog.Memory
	emu.Reset()

	return
}

// Reset the CPU for a new run. Memory, including values stored by an
// earlier run, is kept.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.PC)
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.MaxSteps > 0 && emu.Cpu.Frames >= emu.MaxSteps {
		err = cpu.ErrStepLimit
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()
	if !done && emu.Tracer != nil {
		emu.Tracer.Frame(emu.Cpu.Frames, emu)
	}

	return
}

// Run executes the loaded program until it halts, returning the final
// registers. A run time error is returned along with the registers at the
// point of failure.
func (emu *Emulator) Run() (regs cpu.Registers, err error) {
	if emu.Tracer != nil {
		emu.Tracer.Frame(0, emu)
	}

	for done := emu.Cpu.Halted(); !done; {
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %v after %d frames", emu.Cpu.State, emu.Cpu.Frames)
	}

	regs = emu.Cpu.Registers
	return
}

// Execute assembles source lines and runs them to completion.
func Execute(lines []string) (emu *Emulator, regs cpu.Registers, err error) {
	asm := &cpu.Assembler{}
	prog := asm.Assemble(lines)

	emu = NewEmulator()
	err = emu.Load(prog)
	if err != nil {
		return
	}

	regs, err = emu.Run()
	return
}
