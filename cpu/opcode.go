package cpu

import (
	"fmt"
)

// Opcode is the operation held in a memory cell.
type Opcode int

const (
	OP_NONE    = Opcode(0)  // (blank)
	OP_LDA     = Opcode(1)  // LDA
	OP_STA     = Opcode(2)  // STA
	OP_LDA_IMM = Opcode(3)  // LDA#
	OP_ADD     = Opcode(4)  // ADD
	OP_JMP     = Opcode(5)  // JMP
	OP_SUB     = Opcode(6)  // SUB
	OP_CMP_IMM = Opcode(7)  // CMP#
	OP_BEQ     = Opcode(8)  // BEQ
	OP_SKP     = Opcode(9)  // SKP
	OP_JSR     = Opcode(10) // JSR
	OP_RTN     = Opcode(11) // RTN
	OP_HLT     = Opcode(12) // HLT
	OP_ERR     = Opcode(13) // ERR
)

var opcodeName = [...]string{
	OP_NONE:    "",
	OP_LDA:     "LDA",
	OP_STA:     "STA",
	OP_LDA_IMM: "LDA#",
	OP_ADD:     "ADD",
	OP_JMP:     "JMP",
	OP_SUB:     "SUB",
	OP_CMP_IMM: "CMP#",
	OP_BEQ:     "BEQ",
	OP_SKP:     "SKP",
	OP_JSR:     "JSR",
	OP_RTN:     "RTN",
	OP_HLT:     "HLT",
	OP_ERR:     "ERR",
}

// mnemonicMap maps source mnemonics to opcodes. The blank mnemonic is a
// line with no instruction, such as a data cell.
var mnemonicMap = map[string]Opcode{
	"   ":  OP_NONE,
	"LDA":  OP_LDA,
	"STA":  OP_STA,
	"LDA#": OP_LDA_IMM,
	"ADD":  OP_ADD,
	"JMP":  OP_JMP,
	"SUB":  OP_SUB,
	"CMP#": OP_CMP_IMM,
	"BEQ":  OP_BEQ,
	"SKP":  OP_SKP,
	"JSR":  OP_JSR,
	"RTN":  OP_RTN,
	"HLT":  OP_HLT,
}

// ParseOpcode returns the opcode for a mnemonic as it appears in the
// opcode columns of a source line.
func ParseOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[mnemonic]
	return
}

// Valid returns true if the opcode is a member of the instruction set,
// including the assembly failure marker.
func (op Opcode) Valid() bool {
	return op >= OP_NONE && op <= OP_ERR
}

// Runnable returns true if the opcode may be dispatched.
func (op Opcode) Runnable() bool {
	return op >= OP_NONE && op < OP_ERR
}

// Immediate returns true if the operand is a literal rather than an address.
func (op Opcode) Immediate() bool {
	return op == OP_LDA_IMM || op == OP_CMP_IMM
}

// Addressed returns true if the operand value is a memory address.
func (op Opcode) Addressed() bool {
	switch op {
	case OP_LDA, OP_STA, OP_ADD, OP_SUB, OP_JMP, OP_BEQ, OP_JSR:
		return true
	}
	return false
}

func (op Opcode) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeName[op]
}

// Instruction is the content of a single memory cell.
type Instruction struct {
	Opcode       Opcode // Operation.
	OperandText  string // Operand token from the source; assembly only.
	OperandValue int    // Resolved operand, or data written at run time.
}

// String returns the cell as shown in a memory listing.
func (ins Instruction) String() string {
	return fmt.Sprintf("%-5v%-5d", ins.Opcode, ins.OperandValue)
}
