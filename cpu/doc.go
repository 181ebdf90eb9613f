// Package cpu implements the accumulator machine and its assembler.
//
// The machine has twenty memory cells, each holding an opcode and an
// operand value. The register file is a program counter, a single
// accumulator, a three bit ZNV status register, a top of stack pointer that
// grows down from the end of memory, and an error flag.
//
// The assembler translates fixed column source text in two passes: the
// first pass collects labels, opcodes and operand tokens, the second
// resolves operand tokens against the symbol table. Address 0 is always
// rewritten into the jump to the program entry point.
package cpu
