package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ezrec/iloc/emulator"
	"github.com/ezrec/iloc/internal"
	"github.com/ezrec/iloc/vm"
)

const (
	ROW_SIZE  = 8 // Bytes per memory dump row.
	HALF_SIZE = 4 // Bytes per memory dump half row.

	PROGRAM_PERCENT = 40 // Share of the width given to the program listing.

	styleHighlight = "\x1b[33;44m" // Yellow on blue.
	styleReset     = "\x1b[0m"
)

// Line is a line of panel text.
type Line struct {
	Text      string
	Highlight bool
}

// ProgramLines returns the program listing with the instruction at pc
// highlighted.
func ProgramLines(program []string, pc int) (lines []Line) {
	for n, inst := range program {
		lines = append(lines, Line{Text: inst, Highlight: n == pc})
	}
	return
}

// RegisterLines returns one "name: value" line per register, sorted by name.
func RegisterLines(regs vm.Registers) (lines []Line) {
	for _, name := range regs.Names() {
		lines = append(lines, Line{Text: fmt.Sprintf("%v: %v", name, regs[name])})
	}
	return
}

// isGraphic is true for printable, non-space ASCII.
func isGraphic(b byte) bool {
	return b >= 0x21 && b <= 0x7e
}

// MemoryDump formats memory as hex and ASCII, ROW_SIZE bytes per row in two
// halves:
//
//	0x0000: 00 00 00 00  00 00 00 00  |....  ....|
func MemoryDump(mem []byte) (lines []string) {
	for offset, row := range internal.Rows(mem, ROW_SIZE) {
		split := min(HALF_SIZE, len(row))
		halves := [2][]byte{row[:split], row[split:]}

		var hex strings.Builder
		var ascii [2]string
		for h, half := range halves {
			for j, b := range half {
				hex.WriteString(fmt.Sprintf("%02X", b))
				if j == HALF_SIZE-1 {
					hex.WriteString("  ")
				} else {
					hex.WriteString(" ")
				}
			}
			text := make([]byte, len(half))
			for j, b := range half {
				text[j] = '.'
				if isGraphic(b) {
					text[j] = b
				}
			}
			ascii[h] = string(text)
		}

		line := fmt.Sprintf("0x%04X: %v|%v|", offset, hex.String(), strings.Join(ascii[:], "  "))
		lines = append(lines, line)
	}
	return
}

// Box draws a titled, bordered panel of exactly width x height cells.
// Content that does not fit is cut off; first is the index of the first
// content line shown.
func Box(title string, content []Line, first, width, height int) (lines []string) {
	if width < 2 || height < 2 {
		return
	}
	inner := width - 2

	head := runewidth.Truncate("─ "+title+" ", inner, "")
	lines = append(lines, "┌"+head+strings.Repeat("─", inner-runewidth.StringWidth(head))+"┐")

	for row := range height - 2 {
		n := first + row
		var text string
		var highlight bool
		if n >= 0 && n < len(content) {
			text = content[n].Text
			highlight = content[n].Highlight
		}
		text = runewidth.FillRight(runewidth.Truncate(text, inner, ""), inner)
		if highlight {
			text = styleHighlight + text + styleReset
		}
		lines = append(lines, "│"+text+"│")
	}

	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")
	return
}

// scroll returns the first line to show so that line pc is visible in a
// panel with rows lines of content.
func scroll(pc, rows int) int {
	if rows <= 0 || pc < rows {
		return 0
	}
	return pc - rows + 1
}

// Frame renders a full screen of width x height cells: the program on the
// left, registers and memory on the right, and a status line at the bottom.
func Frame(snap emulator.Snapshot, width, height int, status string) string {
	body := height - 1
	left := width * PROGRAM_PERCENT / 100
	right := width - left
	top := body / 2

	program := Box(f("Program"), ProgramLines(snap.Program, snap.Pc), scroll(snap.Pc, body-2), left, body)
	registers := Box(f("Registers"), RegisterLines(snap.Registers), 0, right, top)

	var memory []Line
	for _, text := range MemoryDump(snap.Memory) {
		memory = append(memory, Line{Text: text})
	}
	side := append(registers, Box(f("Memory"), memory, 0, right, body-top)...)

	var out strings.Builder
	for n := range body {
		if n < len(program) {
			out.WriteString(program[n])
		}
		if n < len(side) {
			out.WriteString(side[n])
		}
		out.WriteString("\r\n")
	}
	out.WriteString(runewidth.FillRight(runewidth.Truncate(status, width, ""), width))

	return out.String()
}
