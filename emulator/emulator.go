// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator shares a single ILOC machine between the goroutine that
// steps it and the observers that display it.
package emulator

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/ezrec/iloc/listing"
	"github.com/ezrec/iloc/vm"
)

// Snapshot is a consistent copy of the machine state.
type Snapshot struct {
	Registers vm.Registers // Register file.
	Memory    []byte       // Data memory.
	Pc        int          // Index of the next instruction.
	Program   []string     // Loaded instructions.
	Fault     error        // Fault that halted the machine, if any.
}

// Done is true when no more instructions will execute.
func (snap *Snapshot) Done() bool {
	return snap.Fault != nil || snap.Pc >= len(snap.Program)
}

// Emulator state. A single lock guards the whole machine; every method
// holds it for its full duration.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	mutex   sync.Mutex
	vm      *vm.VM
	listing *listing.Listing
}

// NewEmulator creates a new emulator with memorySize bytes of memory.
func NewEmulator(memorySize int) (emu *Emulator) {
	emu = &Emulator{
		vm:      vm.NewVM(memorySize),
		listing: &listing.Listing{},
	}

	return
}

// Load loads a normalized listing into the machine.
func (emu *Emulator) Load(lst *listing.Listing) {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	emu.listing = lst
	emu.vm.Verbose = emu.Verbose
	emu.vm.Load(lst.Lines)
}

// LoadLines loads instruction lines with no source line information.
func (emu *Emulator) LoadLines(lines []string) {
	emu.Load(&listing.Listing{Lines: slices.Clone(lines)})
}

// lineNo returns the source line of an instruction index, or 0 if unknown.
func (emu *Emulator) lineNo(pc int) int {
	if pc < 0 || pc >= len(emu.listing.Source) {
		return 0
	}
	return emu.listing.Source[pc]
}

// LineNo returns the source line number of the instruction at the program
// counter, or 0 when it is not known.
func (emu *Emulator) LineNo() int {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	return emu.lineNo(emu.vm.Pc())
}

// tick performs a single step. Caller holds the lock.
func (emu *Emulator) tick() (done bool, err error) {
	emu.vm.Verbose = emu.Verbose

	pc := emu.vm.Pc()
	ok, err := emu.vm.Step()
	if err != nil {
		err = &ErrRuntime{LineNo: emu.lineNo(pc), Err: err}
		if emu.Verbose {
			log.Printf("emulator: %v", err)
		}
	}
	done = !ok

	return
}

// Tick performs a single step of the machine. done is set once the program
// has ended or faulted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	return emu.tick()
}

// Run steps the machine until the program ends, faults, or ctx is done.
// The lock is released between steps so observers can take snapshots, and
// ctx is only checked between steps.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}

// Snapshot returns a consistent copy of the machine state.
func (emu *Emulator) Snapshot() (snap Snapshot) {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	snap.Registers, snap.Memory, snap.Pc = emu.vm.State()
	snap.Program = emu.vm.Program()
	snap.Fault = emu.vm.Fault()

	return
}

// Source returns the source line numbers of the loaded listing.
func (emu *Emulator) Source() []int {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	return slices.Clone(emu.listing.Source)
}
