//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package display

import (
	"io"

	"golang.org/x/sys/unix"
)

type fder interface {
	Fd() uintptr
}

// Terminal reports whether output is a terminal, and if so its width.
func Terminal(output io.Writer) (ok bool, width int) {
	file, is := output.(fder)
	if !is {
		return
	}

	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return
	}

	ok = true
	width = int(ws.Col)
	return
}
