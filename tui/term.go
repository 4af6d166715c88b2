package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DEFAULT_WIDTH  = 80
	DEFAULT_HEIGHT = 24

	escAltScreen  = "\x1b[?1049h\x1b[?25l" // Alternate screen, cursor hidden.
	escMainScreen = "\x1b[?25h\x1b[?1049l"
	escHome       = "\x1b[H"
)

// Terminal is a raw mode console.
type Terminal struct {
	In  *os.File
	Out *os.File

	oldState *term.State
}

// NewTerminal returns the process console.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// Open switches the console into raw mode and onto the alternate screen.
func (tm *Terminal) Open() (err error) {
	fd := int(tm.In.Fd())
	if !term.IsTerminal(fd) {
		err = fmt.Errorf("%v: %v", tm.In.Name(), f("not a terminal"))
		return
	}

	tm.oldState, err = term.MakeRaw(fd)
	if err != nil {
		return
	}

	_, err = fmt.Fprint(tm.Out, escAltScreen)
	return
}

// Close restores the console. It is safe to call more than once.
func (tm *Terminal) Close() (err error) {
	if tm.oldState == nil {
		return
	}

	fmt.Fprint(tm.Out, escMainScreen)
	err = term.Restore(int(tm.In.Fd()), tm.oldState)
	tm.oldState = nil

	return
}

// Size returns the console size in cells, or a 80x24 default.
func (tm *Terminal) Size() (width, height int) {
	width, height, err := term.GetSize(int(tm.Out.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DEFAULT_WIDTH, DEFAULT_HEIGHT
	}
	return
}
