// Package display renders the machine state as text tables, one frame per
// executed instruction.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/accsim/cpu"
	"github.com/ezrec/accsim/emulator"
	"github.com/ezrec/accsim/translate"
)

var f = translate.From

const (
	DELIMITER_WIDTH = 63
)

// Printer writes tables to an output.
type Printer struct {
	Output io.Writer
	Style  table.Style
	Width  int // If positive, the widest row rendered.
}

// NewPrinter creates a printer for output, choosing a coloured style when
// output is a terminal.
func NewPrinter(output io.Writer) (p *Printer) {
	p = &Printer{
		Output: output,
		Style:  table.StyleDefault,
	}

	if ok, width := Terminal(output); ok {
		p.Style = table.StyleColoredBright
		p.Width = width
	}

	return
}

func (p *Printer) newTable(title string) (tw table.Writer) {
	tw = table.NewWriter()
	tw.SetStyle(p.Style)
	if p.Width > 0 {
		tw.SetAllowedRowLength(p.Width)
	}
	if len(title) != 0 {
		tw.SetTitle(title)
	}
	return
}

func (p *Printer) render(tw table.Writer) {
	fmt.Fprintln(p.Output, tw.Render())
}

// Delimiter writes a frame separator. Negative frames close a frame.
func (p *Printer) Delimiter(frame int) {
	var line string
	if frame >= 0 {
		line = f("****** Frame %d ", frame)
	}
	line += strings.Repeat("*", max(DELIMITER_WIDTH-len(line), 0))
	fmt.Fprintln(p.Output, line)
}

// Memory writes the memory cells holding the program, beside their source.
func (p *Printer) Memory(prog *cpu.Program, mem *cpu.Memory) {
	tw := p.newTable(f("Memory"))
	tw.AppendHeader(table.Row{f("Location"), f("Op"), f("Operand"), f("Source")})

	last := min(max(prog.Lines(), 0), cpu.HI_MEM-1)
	for addr := 0; addr <= last; addr++ {
		ins := mem[addr]
		tw.AppendRow(table.Row{addr, ins.Opcode.String(), ins.OperandValue, prog.Line(addr)})
	}

	p.render(tw)
}

// Registers writes the register file and the ZNV status bits.
func (p *Printer) Registers(regs cpu.Registers) {
	tw := p.newTable("")
	tw.AppendHeader(table.Row{"PC", "ACC", "TOS", "ZNV", "ERR"})
	tw.AppendRow(table.Row{regs.PC, regs.ACC, regs.TOS, regs.Status.String(), regs.ERR})
	p.render(tw)
}

// Stack writes the stack contents, top first.
func (p *Printer) Stack(stack *cpu.Stack) {
	tw := p.newTable(f("Stack"))
	tw.AppendHeader(table.Row{f("Location"), f("Value")})
	for n, value := range stack.Values() {
		tw.AppendRow(table.Row{stack.Tos + n, value})
	}
	p.render(tw)
}

// State writes the memory, registers and, if not empty, the stack.
func (p *Printer) State(prog *cpu.Program, c *cpu.Cpu) {
	p.Memory(prog, c.Memory)
	p.Registers(c.Registers)
	if stack := c.Stack(); !stack.Empty() {
		p.Stack(stack)
	}
}

// Frame writes a complete frame. It makes a Printer an emulator.Tracer.
func (p *Printer) Frame(frame int, emu *emulator.Emulator) {
	p.Delimiter(frame)
	if frame > 0 {
		fmt.Fprintln(p.Output, f("Current instruction: %v", strings.TrimSpace(emu.IR.String())))
		fmt.Fprintln(p.Output, f("Next line: %d", emu.LineNo()))
	}
	p.State(emu.Program, emu.Cpu)
	p.Delimiter(-1)
}

// Symbols writes the symbol table in order of definition.
func (p *Printer) Symbols(st *cpu.SymbolTable) {
	tw := p.newTable(f("Symbols"))
	tw.AppendHeader(table.Row{f("Label"), f("Address")})
	for label, addr := range st.All() {
		tw.AppendRow(table.Row{label, addr})
	}
	p.render(tw)
}

// Diagnostics writes the assembly errors of a program.
func (p *Printer) Diagnostics(prog *cpu.Program) {
	tw := p.newTable(f("Assembly errors"))
	tw.AppendHeader(table.Row{f("Line"), f("Source"), f("Error")})
	for _, diag := range prog.Diagnostics {
		tw.AppendRow(table.Row{diag.LineNo, diag.Line, diag.Err.Error()})
	}
	p.render(tw)
}

var _ emulator.Tracer = (*Printer)(nil)
