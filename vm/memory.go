package vm

import (
	"encoding/binary"
	"slices"
)

const (
	MEMORY_SIZE = 1024 // Default memory size, in bytes.
	WORD_SIZE   = 4    // Bytes moved by a load or store.
)

// Memory is the byte addressable data memory of the machine.
// Words are stored little-endian with no alignment requirement.
type Memory []byte

// NewMemory creates a zeroed memory of size bytes.
func NewMemory(size int) Memory {
	return make(Memory, size)
}

// Contains returns true if a full word at address lies inside the memory.
func (mem Memory) Contains(address int64) bool {
	return address >= 0 && address+WORD_SIZE-1 < int64(len(mem))
}

// Read4 loads the word at address. If the word is out of range, ok is false
// and nothing is read.
func (mem Memory) Read4(address int64) (value int32, ok bool) {
	if !mem.Contains(address) {
		return
	}

	value = int32(binary.LittleEndian.Uint32(mem[address:]))
	ok = true
	return
}

// Write4 stores the word at address. If the word is out of range, ok is
// false and memory is unchanged.
func (mem Memory) Write4(address int64, value int32) (ok bool) {
	if !mem.Contains(address) {
		return
	}

	binary.LittleEndian.PutUint32(mem[address:], uint32(value))
	ok = true
	return
}

// Clone returns an independent copy of the memory.
func (mem Memory) Clone() Memory {
	return slices.Clone(mem)
}
