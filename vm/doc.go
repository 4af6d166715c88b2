// Package vm implements the ILOC virtual machine.
//
// The machine holds a sparse register file of named 32-bit signed registers,
// a zero-initialized byte-addressable memory, a program of normalized ILOC
// instruction lines and a program counter. Each Step fetches the instruction
// at the program counter, decodes it from its text, applies it and advances
// the program counter by one. There are no branches.
//
// Arithmetic wraps in two's complement. Out of range memory accesses are
// silently ignored. Division by zero, reads of unassigned registers,
// malformed instructions and shift amounts outside [0, 31] are fatal: the
// machine halts and every later Step reports the same fault.
package vm
