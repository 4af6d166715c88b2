package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/iloc/emulator"
	"github.com/ezrec/iloc/listing"
)

func TestReport(t *testing.T) {
	assert := assert.New(t)

	lst, err := listing.Parse(strings.NewReader(`
		loadI 72 => r1      // 'H'
		loadI 16 => r0
		storeAI r1 => r0, 4
		loadI -3 => r2
	`))
	assert.NoError(err)

	emu := emulator.NewEmulator(64)
	emu.Load(lst)
	assert.NoError(emu.Run(context.Background()))

	snap := emu.Snapshot()
	var out bytes.Buffer
	assert.NoError(report(&out, &snap))

	text := out.String()
	assert.Contains(text, "r0")
	assert.Contains(text, "16")
	assert.Contains(text, "-3")
	assert.Contains(text, "pc: 4/4")
	assert.Contains(text, "0x0010: 00 00 00 00  48 00 00 00  |....  H...|")
	assert.NotContains(text, "0x0000:")
	assert.NotContains(text, "0x0018:")

	// Registers are listed in name order.
	assert.Less(strings.Index(text, "r0"), strings.Index(text, "r1"))
	assert.Less(strings.Index(text, "r1"), strings.Index(text, "r2"))
}
