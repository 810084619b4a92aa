package main

import (
	"os"

	"golang.org/x/term"
)

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Warn("cannot read terminal size, using 80x24", "error", err)
		return 80, 24
	}
	return w, h
}
