package cpu

import (
	"errors"
	"fmt"
	"log"
)

// State is the execution state of the machine.
type State int

const (
	STATE_FETCHING      = State(0) // fetching
	STATE_DISPATCHING   = State(1) // dispatching
	STATE_HALTED_NORMAL = State(2) // halted
	STATE_HALTED_ERROR  = State(3) // error
)

var stateName = [...]string{
	STATE_FETCHING:      "fetching",
	STATE_DISPATCHING:   "dispatching",
	STATE_HALTED_NORMAL: "halted",
	STATE_HALTED_ERROR:  "error",
}

func (st State) String() string {
	if st < 0 || int(st) >= len(stateName) {
		return fmt.Sprintf("State(%d)", int(st))
	}
	return stateName[st]
}

// Halted returns true for the terminal states.
func (st State) Halted() bool {
	return st == STATE_HALTED_NORMAL || st == STATE_HALTED_ERROR
}

// Registers is the register file.
type Registers struct {
	PC     int    // Program counter.
	ACC    int    // Accumulator.
	Status Status // ZNV flags.
	TOS    int    // Top of stack; HI_MEM when the stack is empty.
	ERR    int    // Set to 1 by a fatal run time error.
}

// Cpu is the simulation context for the accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory *Memory // Memory image; shared with the program that loaded it.
	Registers
	IR    Instruction // Instruction register; the last instruction dispatched.
	State State

	Frames int // Instructions executed since reset.
}

// NewCpu creates a new CPU executing from a memory image. If mem is nil, an
// empty memory is allocated.
func NewCpu(mem *Memory) (cpu *Cpu) {
	if mem == nil {
		mem = &Memory{}
	}

	cpu = &Cpu{
		Memory: mem,
	}
	cpu.Reset()

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "acc", "status", "tos", "err", "state"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%d", cpu.PC)
		case "acc":
			strval = fmt.Sprintf("%d", cpu.ACC)
		case "status":
			strval = fmt.Sprintf("ZNV %v", cpu.Status)
		case "tos":
			strval = fmt.Sprintf("%d", cpu.TOS)
		case "err":
			strval = fmt.Sprintf("%d", cpu.ERR)
		case "state":
			strval = cpu.State.String()
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Program counter to the entry point at address 0.
// - Accumulator, status and error flag cleared.
// - Stack emptied.
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers = Registers{
		TOS: HI_MEM,
	}
	cpu.IR = Instruction{}
	cpu.State = STATE_FETCHING
	cpu.Frames = 0
}

// Stack returns the stack at the current top of stack.
func (cpu *Cpu) Stack() *Stack {
	return &Stack{Memory: cpu.Memory, Tos: cpu.TOS}
}

// Halted returns true once the CPU has stopped.
func (cpu *Cpu) Halted() bool {
	return cpu.State.Halted()
}

// FetchCode fetches the instruction at the program counter.
func (cpu *Cpu) FetchCode() (ins Instruction, err error) {
	if !Valid(cpu.PC) {
		err = ErrAddress(cpu.PC)
		return
	}

	ins = cpu.Memory[cpu.PC]
	if !ins.Opcode.Runnable() {
		err = errors.Join(ErrOpcode(ins), ErrOpcodeDecode)
		return
	}

	return
}

// fault stops the CPU on a run time error.
func (cpu *Cpu) fault(err error) {
	if cpu.Verbose {
		log.Printf("cpu: run time error: %v", err)
	}
	cpu.ERR = 1
	cpu.State = STATE_HALTED_ERROR
}

// Tick executes a single fetch and dispatch cycle. Fetching HLT halts the
// CPU with the program counter left on the HLT instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted() {
		err = ErrHalted
		return
	}

	cpu.State = STATE_FETCHING
	ins, err := cpu.FetchCode()
	if err != nil {
		cpu.fault(err)
		return
	}

	if ins.Opcode == OP_HLT {
		if cpu.Verbose {
			log.Printf("cpu: %02d: halt", cpu.PC)
		}
		cpu.State = STATE_HALTED_NORMAL
		return
	}

	cpu.PC++
	err = cpu.Execute(ins)

	return
}

// Execute executes a single decoded instruction. The program counter must
// already address the following instruction.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(ins), err)
			cpu.fault(err)
		} else if !cpu.Halted() {
			cpu.State = STATE_FETCHING
		}
	}()

	if cpu.Verbose {
		log.Printf("%02d: %v", cpu.PC-1, ins)
	}

	cpu.State = STATE_DISPATCHING
	cpu.IR = ins
	cpu.Frames++

	operand := ins.OperandValue

	switch ins.Opcode {
	case OP_NONE, OP_SKP:
		// no-op
	case OP_LDA:
		var value int
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			return
		}
		cpu.ACC = value
		cpu.Status = FlagsOf(cpu.ACC)
	case OP_STA:
		err = cpu.Memory.Write(operand, cpu.ACC)
	case OP_LDA_IMM:
		cpu.ACC = operand
		cpu.Status = FlagsOf(cpu.ACC)
	case OP_ADD, OP_SUB:
		var value int
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			return
		}
		if ins.Opcode == OP_SUB {
			value = -value
		}
		cpu.ACC += value
		cpu.Status = FlagsOf(cpu.ACC)
		if cpu.Status == STATUS_V {
			err = ErrOverflow
		}
	case OP_CMP_IMM:
		cpu.Status = FlagsOf(cpu.ACC - operand)
	case OP_JMP:
		if !Valid(operand) {
			err = ErrAddress(operand)
			return
		}
		cpu.PC = operand
	case OP_BEQ:
		if cpu.Status.Zero() {
			if !Valid(operand) {
				err = ErrAddress(operand)
				return
			}
			cpu.PC = operand
		}
	case OP_JSR:
		if !Valid(operand) {
			err = ErrAddress(operand)
			return
		}
		stack := cpu.Stack()
		err = stack.Push(cpu.PC)
		if err != nil {
			return
		}
		cpu.TOS = stack.Tos
		cpu.PC = operand
	case OP_RTN:
		stack := cpu.Stack()
		var addr int
		addr, err = stack.Peek()
		if err != nil {
			return
		}
		if !Valid(addr) {
			err = ErrAddress(addr)
			return
		}
		stack.Pop()
		cpu.TOS = stack.Tos
		cpu.PC = addr
	case OP_HLT:
		cpu.State = STATE_HALTED_NORMAL
	default:
		// OP_ERR, or an opcode out of range.
		err = ErrOpcodeDecode
	}

	return
}

// Run ticks the CPU until it halts, or until limit instructions have been
// executed if limit is positive.
func (cpu *Cpu) Run(limit int) (err error) {
	for !cpu.Halted() {
		if limit > 0 && cpu.Frames >= limit {
			err = ErrStepLimit
			return
		}
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}
