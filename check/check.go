// Package check evaluates Starlark expectation scripts against the state of
// a machine after a run.
//
// A script sees the registers as pc, acc, tos, err and status, the flags as
// the booleans z, n and v, and the memory image as the lists memory (operand
// values) and opcodes (mnemonics). Each call of expect(cond, msg) with a
// false cond records msg as a failure:
//
//	expect(acc == 15, "sum")
//	expect(memory[19] == acc, "stored")
package check

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/accsim/cpu"
)

// Checker runs check scripts.
type Checker struct {
	Verbose bool // If set, logs each expectation.
}

// predeclared builds the script environment for a machine.
func predeclared(c *cpu.Cpu) (pred starlark.StringDict) {
	values := make([]starlark.Value, cpu.HI_MEM)
	opcodes := make([]starlark.Value, cpu.HI_MEM)
	for addr, ins := range c.Memory {
		values[addr] = starlark.MakeInt(ins.OperandValue)
		opcodes[addr] = starlark.String(ins.Opcode.String())
	}

	memory := starlark.NewList(values)
	memory.Freeze()
	ops := starlark.NewList(opcodes)
	ops.Freeze()

	pred = starlark.StringDict{
		"pc":      starlark.MakeInt(c.PC),
		"acc":     starlark.MakeInt(c.ACC),
		"tos":     starlark.MakeInt(c.TOS),
		"err":     starlark.MakeInt(c.ERR),
		"status":  starlark.MakeInt(int(c.Status)),
		"z":       starlark.Bool(c.Status.Zero()),
		"n":       starlark.Bool(c.Status.Negative()),
		"v":       starlark.Bool(c.Status.Overflow()),
		"halted":  starlark.Bool(c.State == cpu.STATE_HALTED_NORMAL),
		"frames":  starlark.MakeInt(c.Frames),
		"memory":  memory,
		"opcodes": ops,
	}

	return
}

// Check runs script against the state of c.
func (chk *Checker) Check(name string, script string, c *cpu.Cpu) (err error) {
	var failures []string

	expect := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var cond starlark.Value
		var msg string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cond", &cond, "msg?", &msg); err != nil {
			return nil, err
		}
		if len(msg) == 0 {
			msg = f("line %d", thread.CallFrame(1).Pos.Line)
		}
		ok := bool(cond.Truth())
		if chk.Verbose {
			log.Printf("check: %v: %v: %v", name, msg, ok)
		}
		if !ok {
			failures = append(failures, msg)
		}
		return starlark.Bool(ok), nil
	}

	pred := predeclared(c)
	pred["expect"] = starlark.NewBuiltin("expect", expect)

	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, name, script, pred)
	if err != nil {
		err = &ErrCheck{Name: name, Failures: failures, Err: err}
		return
	}

	if len(failures) != 0 {
		err = &ErrCheck{Name: name, Failures: failures}
		return
	}

	return
}

// Check runs script against the state of c with a default Checker.
func Check(name string, script string, c *cpu.Cpu) error {
	chk := &Checker{}
	return chk.Check(name, script, c)
}
