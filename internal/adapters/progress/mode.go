// Package progress reports the progress of a population pass on the terminal.
package progress

import (
	"os"

	"golang.org/x/term"
)

// Mode selects how progress is drawn.
type Mode int

const (
	// ModeBar redraws a single bar line in place.
	ModeBar Mode = iota
	// ModeLinear prints one line per step, suitable for logs and CI.
	ModeLinear
)

// DetectMode returns ModeBar when f is a terminal outside CI, and ModeLinear otherwise.
func DetectMode(f *os.File) Mode {
	isTTY := term.IsTerminal(int(f.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeBar
}
