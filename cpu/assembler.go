// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Source column layout.
const (
	COL_LABEL_END    = 5  // Label occupies [0,5).
	COL_COLON        = 5  // ':' follows a label.
	COL_OPCODE       = 7  // Mnemonic occupies [7,10).
	COL_OPCODE_END   = 10 // Immediate marker '#' may follow at 10.
	COL_OPERAND      = 12 // Operand runs from 12 to the comment marker.
	COMMENT_MARKER   = "*"
	IMMEDIATE_MARK   = '#'
	LINE_MIN_OPCODE  = COL_OPCODE_END
	LINE_MIN_OPERAND = COL_OPERAND + 1
)

// Assembler is a two pass assembler for the accumulator machine.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	prog *Program
}

// diagnose records an error against a source line.
func (asm *Assembler) diagnose(lineno int, line string, err error) {
	if asm.Verbose {
		log.Printf("asm: line %d: %v", lineno, err)
	}
	asm.prog.Diagnostics = append(asm.prog.Diagnostics, ErrSyntax{LineNo: lineno, Line: line, Err: err})
}

// extractLabel binds the label in the label columns, if any, to lineno.
func (asm *Assembler) extractLabel(line string, lineno int) {
	if len(line) == 0 {
		return
	}

	label := strings.TrimSpace(line[:min(len(line), COL_LABEL_END)])
	if len(label) == 0 {
		return
	}

	if len(line) <= COL_COLON || line[COL_COLON] != ':' {
		asm.diagnose(lineno, line, ErrLabelFormat)
		return
	}

	err := asm.prog.Symbols.Define(label, lineno)
	if err != nil {
		asm.diagnose(lineno, line, err)
	}
}

// extractOpcode decodes the mnemonic columns.
func (asm *Assembler) extractOpcode(line string, lineno int) {
	if len(line) < LINE_MIN_OPCODE {
		return
	}

	mnemonic := line[COL_OPCODE:COL_OPCODE_END]
	if len(line) > COL_OPCODE_END && line[COL_OPCODE_END] == IMMEDIATE_MARK {
		mnemonic += string(IMMEDIATE_MARK)
	}

	op, ok := ParseOpcode(mnemonic)
	if !ok {
		asm.diagnose(lineno, line, ErrOpcodeInvalid)
		return
	}

	asm.prog.Memory[lineno].Opcode = op
}

// extractOperand saves the operand token for the second pass.
func (asm *Assembler) extractOperand(line string, lineno int) {
	if len(line) < LINE_MIN_OPERAND {
		return
	}

	operand, _, _ := strings.Cut(line[COL_OPERAND:], COMMENT_MARKER)
	asm.prog.Memory[lineno].OperandText = strings.TrimSpace(operand)
}

// passOne extracts labels, opcodes, and operand tokens.
func (asm *Assembler) passOne() {
	for n, line := range asm.prog.Source {
		lineno := n + 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if !Valid(lineno) {
			asm.diagnose(lineno, line, ErrProgramTooLong)
			continue
		}

		asm.extractLabel(line, lineno)
		asm.extractOpcode(line, lineno)
		asm.extractOperand(line, lineno)
	}
}

// valueOf resolves an operand token to a label address or a decimal literal.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	addr, ok := asm.prog.Symbols.Lookup(word)
	if ok {
		value = addr
		return
	}

	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrOperandUnresolved(word)
		return
	}

	value = int(v64)
	return
}

// passTwo resolves operand tokens.
func (asm *Assembler) passTwo() {
	lines := min(len(asm.prog.Source), HI_MEM-1)
	for lineno := 1; lineno <= lines; lineno++ {
		ins := &asm.prog.Memory[lineno]
		if len(ins.OperandText) == 0 {
			continue
		}

		value, err := asm.valueOf(ins.OperandText)
		if err != nil {
			asm.diagnose(lineno, asm.prog.Source[lineno-1], err)
			continue
		}
		ins.OperandValue = value
	}
}

// Assemble translates source lines into a program. lines[0] is source line 1.
//
// Assembly always runs both passes. If any line failed, memory cell 0 holds
// OP_ERR and the diagnostics list every failure; otherwise cell 0 jumps to
// the START label, or to address 1 if there is no START label.
func (asm *Assembler) Assemble(lines []string) (prog *Program) {
	prog = &Program{
		Source: slices.Clone(lines),
	}
	asm.prog = prog
	defer func() { asm.prog = nil }()

	prog.Memory.Reset()

	asm.passOne()
	asm.passTwo()

	if len(prog.Diagnostics) != 0 {
		prog.Memory[0].Opcode = OP_ERR
		return
	}

	entry, ok := prog.Symbols.Lookup(START)
	if !ok {
		entry = 1
	}
	prog.Memory[0] = Instruction{Opcode: OP_JMP, OperandValue: entry}

	if asm.Verbose {
		log.Printf("asm: entry point %d", entry)
	}

	return
}

// Parse reads source text, one source line per text line, and assembles
// it. The program is returned even if assembly fails; err joins all of its
// diagnostics.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = asm.Assemble(lines)
	err = prog.Err()

	return
}
