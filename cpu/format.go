package cpu

import (
	"fmt"
	"strings"
)

// FormatLine lays out a source line in the assembler's fixed columns.
// An empty mnemonic leaves the opcode columns blank. A non-empty comment is
// appended after the comment marker.
func FormatLine(label, mnemonic, operand, comment string) (line string) {
	colon := " "
	if len(label) != 0 {
		colon = ":"
	}

	line = fmt.Sprintf("%-5s%s %-4s %s", label, colon, mnemonic, operand)
	if len(comment) != 0 {
		// The marker must not fall inside the opcode columns.
		line += " " + COMMENT_MARKER + " " + comment
		return
	}

	return strings.TrimRight(line, " ")
}
