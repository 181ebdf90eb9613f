//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package display

import (
	"io"
)

// Terminal reports whether output is a terminal, and if so its width.
func Terminal(output io.Writer) (ok bool, width int) {
	return
}
