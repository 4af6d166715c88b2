package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/iloc/emulator"
	"github.com/ezrec/iloc/internal"
	"github.com/ezrec/iloc/translate"
	"github.com/ezrec/iloc/tui"
)

var f = translate.From

// report writes the final machine state: a register table, the program
// counter and every memory row holding a non-zero byte.
func report(w io.Writer, snap *emulator.Snapshot) (err error) {
	regTable := table.NewWriter()
	regTable.SetStyle(table.StyleLight)
	regTable.AppendHeader(table.Row{f("Register"), f("Value")})
	for _, name := range snap.Registers.Names() {
		regTable.AppendRow(table.Row{name, snap.Registers[name]})
	}

	_, err = fmt.Fprintln(w, regTable.Render())
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w, f("pc: %v/%v", snap.Pc, len(snap.Program)))
	if err != nil {
		return
	}

	dump := tui.MemoryDump(snap.Memory)
	for offset := range internal.NonZero(internal.Rows(snap.Memory, tui.ROW_SIZE)) {
		_, err = fmt.Fprintln(w, dump[offset/tui.ROW_SIZE])
		if err != nil {
			return
		}
	}

	return
}
