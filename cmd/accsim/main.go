// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/accsim/check"
	"github.com/ezrec/accsim/cpu"
	"github.com/ezrec/accsim/display"
	"github.com/ezrec/accsim/emulator"
	"github.com/ezrec/accsim/source"
)

// edits collects repeated -e flags.
type edits []string

func (e *edits) String() string {
	return strings.Join(*e, ", ")
}

func (e *edits) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func main() {
	var compile string
	var output string
	var script string
	var symbols bool
	var list bool
	var trace bool
	var verbose bool
	var steps int
	var edit edits

	flag.StringVar(&compile, "c", "-", "Source file to assemble")
	flag.StringVar(&output, "o", "", "Save the source to this file")
	flag.StringVar(&script, "x", "", "Starlark check script to run after the program halts")
	flag.BoolVar(&symbols, "s", false, "Show the symbol table, do not execute")
	flag.BoolVar(&list, "l", false, "List the numbered source")
	flag.BoolVar(&trace, "t", false, "Show every frame")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Var(&edit, "e", "Replace or append a source line, as N=TEXT (repeatable)")
	flag.IntVar(&steps, "n", 10000, "Most instructions to execute; 0 for no limit")

	flag.Parse()

	if flag.NArg() != 0 {
		fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	buf := &source.Buffer{}

	// Load the source.
	if compile == "-" {
		err := buf.Load(os.Stdin)
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
	} else {
		inf, err := os.Open(compile)
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
		err = buf.Load(inf)
		inf.Close()
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
	}

	for _, e := range edit {
		err := buf.Apply(e)
		if err != nil {
			fatalf("%v: -e %q: %v", compile, e, err)
		}
	}

	if verbose {
		log.Printf("%v: %d lines", compile, buf.Count())
	}

	if list {
		_, err := buf.WriteTo(os.Stdout)
		if err != nil {
			fatalf("%v", err)
		}
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		err = buf.Save(ouf)
		if err != nil {
			fatalf("%v: %v", output, err)
		}
	}

	printer := display.NewPrinter(os.Stdout)

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := buf.Assemble(asm)
	if err != nil {
		if prog != nil {
			printer.Diagnostics(prog)
		}
		fatalf("%v: %v", compile, err)
	}

	if symbols {
		printer.Symbols(&prog.Symbols)
		printer.Memory(prog, &prog.Memory)
		atexit.Exit(0)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxSteps = steps
	if trace {
		emu.Tracer = printer
	}

	err = emu.Load(prog)
	if err != nil {
		fatalf("%v: %v", compile, err)
	}

	regs, err := emu.Run()
	if !trace {
		printer.State(emu.Program, emu.Cpu)
	}
	if err != nil {
		var rte *emulator.ErrRuntime
		if errors.As(err, &rte) && rte.LineNo > 0 {
			line, _ := buf.Line(rte.LineNo)
			fatalf("%v:%d: %v\n%v", compile, rte.LineNo, rte.Err, line)
		}
		fatalf("%v: %v", compile, err)
	}

	fmt.Println(regs.ACC)

	if len(script) != 0 {
		text, err := os.ReadFile(script)
		if err != nil {
			fatalf("%v: %v", script, err)
		}
		chk := &check.Checker{Verbose: verbose}
		err = chk.Check(script, string(text), emu.Cpu)
		if err != nil {
			fatalf("%v", err)
		}
	}

	atexit.Exit(0)
}
