package vm

import (
	"maps"
	"slices"
)

// Registers is the register file. Registers come into existence on their
// first write.
type Registers map[string]int32

// Get reads a register.
func (regs Registers) Get(name string) (value int32, err error) {
	value, ok := regs[name]
	if !ok {
		err = ErrUnknownRegister(name)
	}
	return
}

// Set writes a register, creating it if needed.
func (regs Registers) Set(name string, value int32) {
	regs[name] = value
}

// Names returns the register names in sorted order.
func (regs Registers) Names() []string {
	return slices.Sorted(maps.Keys(regs))
}

// Clone returns an independent copy of the register file.
func (regs Registers) Clone() Registers {
	clone := make(Registers, len(regs))
	maps.Copy(clone, regs)
	return clone
}
