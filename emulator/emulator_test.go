package emulator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/iloc/listing"
	"github.com/ezrec/iloc/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(vm.MEMORY_SIZE)

	assert.False(emu.Verbose)

	snap := emu.Snapshot()
	assert.Equal(0, len(snap.Registers))
	assert.Equal(vm.MEMORY_SIZE, len(snap.Memory))
	assert.Equal(0, snap.Pc)
	assert.Equal(0, len(snap.Program))
	assert.NoError(snap.Fault)
	assert.True(snap.Done())

	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
}

func doLoad(emu *Emulator, program []string, t *testing.T) *listing.Listing {
	lst, err := listing.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	emu.Load(lst)
	return lst
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(vm.MEMORY_SIZE)

	program := []string{
		"# compute 10 + 10",
		"loadI 10 => r0",
		"",
		"add r0, r0 => r0 // double it",
	}
	lst := doLoad(emu, program, t)

	for n, lineno := range lst.Source {
		assert.Equal(lineno, emu.LineNo())
		done, err := emu.Tick()
		assert.NoError(err, program[lineno-1])
		assert.False(done, program[lineno-1])
		assert.Equal(n+1, emu.Snapshot().Pc)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, emu.LineNo())

	snap := emu.Snapshot()
	assert.Equal(vm.Registers{"r0": 20}, snap.Registers)
	assert.Equal([]string{"loadI 10 => r0", "add r0,r0 => r0"}, snap.Program)
	assert.Equal([]int{2, 4}, emu.Source())
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(vm.MEMORY_SIZE)

	program := []string{
		"loadI 10 => r0",
		"loadI 0 => r1",
		"/* boom */",
		"div r0, r1 => r2",
		"loadI 1 => r3",
	}
	doLoad(emu, program, t)

	err := emu.Run(context.Background())
	assert.True(errors.Is(err, vm.ErrDivideByZero))

	var re *ErrRuntime
	if assert.True(errors.As(err, &re)) {
		assert.Equal(4, re.LineNo)
	}

	snap := emu.Snapshot()
	assert.Equal(2, snap.Pc)
	assert.Equal(vm.Registers{"r0": 10, "r1": 0}, snap.Registers)
	assert.True(errors.Is(snap.Fault, vm.ErrDivideByZero))
	assert.True(snap.Done())

	done, err := emu.Tick()
	assert.True(done)
	assert.True(errors.Is(err, vm.ErrDivideByZero))
}

func TestEmulatorLoadLines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(16)
	emu.LoadLines([]string{"loadI 0 => r0", "loadI 10 => r1", "div r0,r1 => r2"})

	assert.Equal(0, emu.LineNo())
	assert.NoError(emu.Run(context.Background()))
	assert.Equal(vm.Registers{"r0": 0, "r1": 10, "r2": 0}, emu.Snapshot().Registers)
}

func TestEmulatorCancel(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(vm.MEMORY_SIZE)
	emu.LoadLines([]string{"loadI 1 => r0", "loadI 2 => r1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx)
	assert.True(errors.Is(err, context.Canceled))
	assert.Equal(0, emu.Snapshot().Pc)
}

func TestEmulatorConcurrentSnapshot(t *testing.T) {
	assert := assert.New(t)

	const count = 500

	var program []string
	program = append(program, "loadI 0 => r0", "loadI 0 => r1")
	for range count {
		program = append(program, "addI r0,1 => r0", "store r0 => r1")
	}

	emu := NewEmulator(vm.MEMORY_SIZE)
	emu.LoadLines(program)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(emu.Run(context.Background()))
	}()

	// Every snapshot is consistent: memory trails r0 by at most one store.
	for {
		snap := emu.Snapshot()
		r0 := snap.Registers["r0"]
		stored := int32(snap.Memory[0]) | int32(snap.Memory[1])<<8
		assert.True(r0 == stored || r0 == stored+1, fmt.Sprintf("r0=%v stored=%v", r0, stored))
		if snap.Done() {
			break
		}
	}

	wg.Wait()
	assert.Equal(int32(count), emu.Snapshot().Registers["r0"])
}
