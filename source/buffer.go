// Package source holds the program text edited by the user and handed to
// the assembler.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/accsim/cpu"
)

const (
	MAX_LINES = cpu.HI_MEM - 1 // Address 0 is the entry point, not source.
)

// Buffer is an ordered set of source lines, numbered from 1.
type Buffer struct {
	lines []string
}

// Reset discards all lines.
func (buf *Buffer) Reset() {
	buf.lines = buf.lines[:0]
}

// Empty returns true if no source is loaded.
func (buf *Buffer) Empty() bool {
	return len(buf.lines) == 0
}

// Count returns the number of lines.
func (buf *Buffer) Count() int {
	return len(buf.lines)
}

// Line returns line n, counting from 1.
func (buf *Buffer) Line(n int) (line string, err error) {
	if n < 1 || n > len(buf.lines) {
		err = ErrLineRange
		return
	}

	line = buf.lines[n-1]
	return
}

// Lines returns a copy of lines 1 to Count(), ready for the assembler.
func (buf *Buffer) Lines() []string {
	return slices.Clone(buf.lines)
}

// Edit replaces line n. Line Count()+1 may be written to extend the source.
func (buf *Buffer) Edit(n int, text string) (err error) {
	switch {
	case n >= 1 && n <= len(buf.lines):
		buf.lines[n-1] = text
	case n == len(buf.lines)+1 && n <= MAX_LINES:
		buf.lines = append(buf.lines, text)
	default:
		err = ErrLineRange
	}

	return
}

// Apply performs an edit written as "N=TEXT", replacing line N with TEXT.
func (buf *Buffer) Apply(edit string) (err error) {
	num, text, ok := strings.Cut(edit, "=")
	if !ok {
		err = ErrEditFormat
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		err = errors.Join(ErrEditFormat, err)
		return
	}

	err = buf.Edit(n, text)
	return
}

// Load replaces the buffer with text read from input, one line per line.
// If the input is longer than memory, the lines that fit are kept and
// ErrTooLong is returned.
func (buf *Buffer) Load(input io.Reader) (err error) {
	buf.Reset()

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		if len(buf.lines) == MAX_LINES {
			err = ErrTooLong
			return
		}
		buf.lines = append(buf.lines, strings.TrimRight(scanner.Text(), "\r"))
	}

	err = scanner.Err()
	return
}

// Save writes the lines to output.
func (buf *Buffer) Save(output io.Writer) (err error) {
	w := bufio.NewWriter(output)
	for _, line := range buf.lines {
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}

// WriteTo writes a numbered listing. Line 0 shows the line count.
func (buf *Buffer) WriteTo(output io.Writer) (n int64, err error) {
	var wrote int
	wrote, err = fmt.Fprintf(output, "%2d %-40s\n", 0, fmt.Sprint(len(buf.lines)))
	n += int64(wrote)
	if err != nil {
		return
	}

	for lineno, line := range buf.lines {
		wrote, err = fmt.Fprintf(output, "%2d %-40s\n", lineno+1, line)
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	return
}

// Assemble assembles the buffer. An empty buffer cannot be assembled.
func (buf *Buffer) Assemble(asm *cpu.Assembler) (prog *cpu.Program, err error) {
	if buf.Empty() {
		err = ErrEmpty
		return
	}

	prog = asm.Assemble(buf.lines)
	err = prog.Err()
	return
}
