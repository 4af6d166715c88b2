package vm

import (
	"log"
)

// execute applies a single decoded instruction. All operands are read and
// checked before any state changes, so a faulting instruction has no effect.
func (vm *VM) execute(inst Instruction) (err error) {
	op := inst.Op

	values := make([]int32, len(inst.Src))
	for n, name := range inst.Src {
		values[n], err = vm.registers.Get(name)
		if err != nil {
			return
		}
	}

	switch op {
	case OP_UNKNOWN:
		if vm.Verbose {
			log.Printf("vm: skipping unknown opcode %v", inst.Name)
		}
	case OP_NOP:
		// nothing
	case OP_LOADI:
		vm.registers.Set(inst.Dst, inst.Imm)
	case OP_LOAD, OP_CLOAD:
		vm.load(int64(values[0]), inst.Dst)
	case OP_LOADAI:
		vm.load(int64(values[0])+int64(inst.Imm), inst.Dst)
	case OP_LOADAO:
		vm.load(int64(values[0])+int64(values[1]), inst.Dst)
	case OP_STORE:
		vm.store(int64(values[1]), values[0])
	case OP_STOREAI:
		vm.store(int64(values[1])+int64(inst.Imm), values[0])
	case OP_STOREAO:
		vm.store(int64(values[1])+int64(values[2]), values[0])
	case OP_CLOADAI, OP_CLOADAO:
		err = ErrNotImplemented
	default:
		a := values[0]
		var b int32
		if op.Form() == FORM_RC_R {
			b = inst.Imm
		} else {
			b = values[1]
		}
		if op.Reversed() {
			a, b = b, a
		}
		var result int32
		result, err = doAlu(op.Alu(), a, b)
		if err != nil {
			return
		}
		vm.registers.Set(inst.Dst, result)
	}

	return
}

// load reads a word into a register. Out of range reads leave the register
// untouched.
func (vm *VM) load(address int64, dst string) {
	value, ok := vm.memory.Read4(address)
	if !ok {
		if vm.Verbose {
			log.Printf("vm: load from %v out of range", address)
		}
		return
	}
	vm.registers.Set(dst, value)
}

// store writes a word. Out of range writes are dropped.
func (vm *VM) store(address int64, value int32) {
	ok := vm.memory.Write4(address, value)
	if !ok && vm.Verbose {
		log.Printf("vm: store to %v out of range", address)
	}
}

// doAlu performs the requested ALU action in 32-bit two's complement.
func doAlu(op AluOp, a, b int32) (result int32, err error) {
	switch op {
	case ALU_OP_ADD:
		result = a + b
	case ALU_OP_SUB:
		result = a - b
	case ALU_OP_MULT:
		result = a * b
	case ALU_OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		// MinInt32 / -1 wraps to MinInt32.
		result = a / b
	case ALU_OP_SHL:
		if b < 0 || b > 31 {
			err = ErrShiftAmount
			return
		}
		result = a << b
	case ALU_OP_SHR:
		if b < 0 || b > 31 {
			err = ErrShiftAmount
			return
		}
		result = a >> b
	case ALU_OP_AND:
		result = a & b
	case ALU_OP_OR:
		result = a | b
	case ALU_OP_XOR:
		result = a ^ b
	default:
		panic("unknown ALU op")
	}

	return
}
