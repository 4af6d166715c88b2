// Package tui is a live terminal visualizer for the ILOC machine.
//
// The screen is split into the program listing, with the next instruction
// highlighted, the register file and a hex dump of memory. The keys 's'
// single step, 'r' toggle free running and 'q' quit.
package tui

import (
	"github.com/ezrec/iloc/translate"
)

var f = translate.From
