package cpu

const (
	HI_MEM = 20 // Number of memory cells.
)

// Memory is the complete store of the machine. Program, data and the stack
// all live in the same cells.
type Memory [HI_MEM]Instruction

// Reset clears every cell.
func (mem *Memory) Reset() {
	clear(mem[:])
}

// Valid returns true if addr names a memory cell.
func Valid(addr int) bool {
	return addr >= 0 && addr < HI_MEM
}

// Read returns the operand value of a cell.
func (mem *Memory) Read(addr int) (value int, err error) {
	if !Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	value = mem[addr].OperandValue
	return
}

// Write sets the operand value of a cell.
func (mem *Memory) Write(addr int, value int) (err error) {
	if !Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	mem[addr].OperandValue = value
	return
}
