package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/iloc/emulator"
	"github.com/ezrec/iloc/vm"
)

func TestMemoryDump(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mem   []byte
		lines []string
	}){
		{nil, nil},
		{
			[]byte{0x41, 0x42, 0x00, 0x00, 0x20, 0x7e, 0xff, 0x31},
			[]string{"0x0000: 41 42 00 00  20 7E FF 31  |AB..  .~.1|"},
		},
		{
			[]byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3},
			[]string{
				"0x0000: 00 00 00 00  00 00 00 00  |....  ....|",
				"0x0008: 01 02 03 |...  |",
			},
		},
	}

	for _, entry := range table {
		assert.Equal(entry.lines, MemoryDump(entry.mem), "%v", entry.mem)
	}

	lines := MemoryDump(make([]byte, vm.MEMORY_SIZE))
	assert.Len(lines, vm.MEMORY_SIZE/ROW_SIZE)
	assert.True(strings.HasPrefix(lines[len(lines)-1], "0x03F8: "))
}

func TestRegisterLines(t *testing.T) {
	assert := assert.New(t)

	lines := RegisterLines(vm.Registers{"r2": -5, "r10": 3, "r1": 7})
	assert.Equal([]Line{
		{Text: "r1: 7"},
		{Text: "r10: 3"},
		{Text: "r2: -5"},
	}, lines)
}

func TestProgramLines(t *testing.T) {
	assert := assert.New(t)

	lines := ProgramLines([]string{"nop", "loadI 1 => r1"}, 1)
	assert.Equal([]Line{
		{Text: "nop"},
		{Text: "loadI 1 => r1", Highlight: true},
	}, lines)

	lines = ProgramLines([]string{"nop"}, 1)
	assert.False(lines[0].Highlight)
}

func TestBox(t *testing.T) {
	assert := assert.New(t)

	lines := Box("T", []Line{{Text: "a"}, {Text: "b", Highlight: true}, {Text: "toolong"}}, 0, 6, 5)
	assert.Equal([]string{
		"┌─ T ┐",
		"│a   │",
		"│" + styleHighlight + "b   " + styleReset + "│",
		"│tool│",
		"└────┘",
	}, lines)

	lines = Box("T", []Line{{Text: "a"}, {Text: "b"}}, 1, 6, 4)
	assert.Equal("│b   │", lines[1])
	assert.Equal("│    │", lines[2])

	assert.Nil(Box("T", nil, 0, 1, 4))
}

func TestScroll(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		pc, rows, first int
	}){
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{25, 10, 16},
		{3, 0, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.first, scroll(entry.pc, entry.rows), "%v", entry)
	}
}

func TestFrame(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator(16)
	emu.LoadLines([]string{"loadI 65 => r1", "loadI 0 => r0", "store r1 => r0"})
	for range 3 {
		_, err := emu.Tick()
		assert.NoError(err)
	}
	snap := emu.Snapshot()

	out := Frame(snap, 80, 24, "status")
	assert.Equal(23, strings.Count(out, "\r\n"))
	assert.Contains(out, "Program")
	assert.Contains(out, "Registers")
	assert.Contains(out, "Memory")
	assert.Contains(out, "r0: 0")
	assert.Contains(out, "r1: 65")
	assert.Contains(out, "0x0000: 41 00 00 00  00 00 00 00  |A...  ....|")
	assert.True(strings.HasPrefix(out[strings.LastIndex(out, "\r\n")+2:], "status"))

	// Finished: the highlight is past the end of the listing.
	assert.NotContains(out, styleHighlight)

	emu = emulator.NewEmulator(16)
	emu.LoadLines([]string{"nop", "nop"})
	out = Frame(emu.Snapshot(), 80, 24, "")
	assert.Contains(out, styleHighlight+"nop")
}
