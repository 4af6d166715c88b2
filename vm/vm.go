// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"log"
	"slices"
)

// VM is the simulation context for an ILOC machine.
type VM struct {
	Verbose bool // Set to enable verbose logging.

	registers Registers // Register file.
	memory    Memory    // Data memory.
	program   []string  // Loaded instruction lines.
	pc        int       // Index of the next instruction.
	fault     error     // Fatal fault that halted the machine.
}

// NewVM creates a new machine with memorySize bytes of memory.
func NewVM(memorySize int) (vm *VM) {
	vm = &VM{
		registers: Registers{},
		memory:    NewMemory(memorySize),
	}

	return
}

// Load replaces the program. Registers, memory and the program counter are
// left as they are; instructions are not checked until they execute.
func (vm *VM) Load(program []string) {
	vm.program = slices.Clone(program)

	if vm.Verbose {
		log.Printf("vm: loaded %v instructions", len(vm.program))
	}
}

// Done is true when the program counter is past the last instruction.
func (vm *VM) Done() bool {
	return vm.pc >= len(vm.program)
}

// Step executes the instruction at the program counter.
// ok is false when the program has ended or the machine is halted by a
// fault, in which case err is the fault.
func (vm *VM) Step() (ok bool, err error) {
	if vm.fault != nil {
		err = vm.fault
		return
	}

	if vm.Done() {
		return
	}

	line := vm.program[vm.pc]
	if vm.Verbose {
		log.Printf("%04d: %v", vm.pc, line)
	}

	inst, err := Decode(line)
	if err == nil {
		err = vm.execute(inst)
	}
	if err != nil {
		err = &ErrExecute{Pc: vm.pc, Instruction: line, Err: err}
		vm.fault = err
		if vm.Verbose {
			log.Printf("vm: halted: %v", err)
		}
		return
	}

	vm.pc++
	ok = true

	return
}

// Run steps until the program ends or faults.
func (vm *VM) Run() (err error) {
	for ok := true; ok; {
		ok, err = vm.Step()
	}

	return
}

// State returns copies of the registers and memory, and the program counter.
func (vm *VM) State() (registers Registers, memory []byte, pc int) {
	return vm.registers.Clone(), vm.memory.Clone(), vm.pc
}

// Program returns a copy of the loaded program.
func (vm *VM) Program() []string {
	return slices.Clone(vm.program)
}

// Pc returns the program counter.
func (vm *VM) Pc() int {
	return vm.pc
}

// Fault returns the fault that halted the machine, if any.
func (vm *VM) Fault() error {
	return vm.fault
}
