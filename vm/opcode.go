package vm

// Opcode is an ILOC operation.
type Opcode int

const (
	OP_UNKNOWN = Opcode(iota) // Skipped without effect.
	OP_NOP
	OP_ADD
	OP_SUB
	OP_MULT
	OP_DIV
	OP_ADDI
	OP_SUBI
	OP_RSUBI
	OP_MULTI
	OP_DIVI
	OP_RDIVI
	OP_LSHIFT
	OP_LSHIFTI
	OP_RSHIFT
	OP_RSHIFTI
	OP_AND
	OP_ANDI
	OP_OR
	OP_ORI
	OP_XOR
	OP_XORI
	OP_LOADI
	OP_LOAD
	OP_LOADAI
	OP_LOADAO
	OP_CLOAD
	OP_CLOADAI
	OP_CLOADAO
	OP_STORE
	OP_STOREAI
	OP_STOREAO
)

// Form is the operand layout of an opcode.
type Form int

const (
	FORM_NONE  = Form(0) // nop
	FORM_RR_R  = Form(1) // op r1,r2 => r3
	FORM_RC_R  = Form(2) // op r1,c2 => r3
	FORM_C_R   = Form(3) // op c1 => r2
	FORM_R_R   = Form(4) // op r1 => r2
	FORM_R_RC  = Form(5) // op r1 => r2,c3
	FORM_R_RR  = Form(6) // op r1 => r2,r3
	FORM_FAULT = Form(7) // reserved, faults when executed
)

// AluOp is the arithmetic or logical function of an opcode.
type AluOp int

const (
	ALU_OP_NONE = AluOp(iota)
	ALU_OP_ADD
	ALU_OP_SUB
	ALU_OP_MULT
	ALU_OP_DIV
	ALU_OP_SHL
	ALU_OP_SHR
	ALU_OP_AND
	ALU_OP_OR
	ALU_OP_XOR
)

type opcodeInfo struct {
	name    string
	form    Form
	alu     AluOp
	reverse bool // Immediate is the left operand.
}

var opcodeTable = [...]opcodeInfo{
	OP_UNKNOWN: {"?", FORM_NONE, ALU_OP_NONE, false},
	OP_NOP:     {"nop", FORM_NONE, ALU_OP_NONE, false},
	OP_ADD:     {"add", FORM_RR_R, ALU_OP_ADD, false},
	OP_SUB:     {"sub", FORM_RR_R, ALU_OP_SUB, false},
	OP_MULT:    {"mult", FORM_RR_R, ALU_OP_MULT, false},
	OP_DIV:     {"div", FORM_RR_R, ALU_OP_DIV, false},
	OP_ADDI:    {"addI", FORM_RC_R, ALU_OP_ADD, false},
	OP_SUBI:    {"subI", FORM_RC_R, ALU_OP_SUB, false},
	OP_RSUBI:   {"rsubI", FORM_RC_R, ALU_OP_SUB, true},
	OP_MULTI:   {"multI", FORM_RC_R, ALU_OP_MULT, false},
	OP_DIVI:    {"divI", FORM_RC_R, ALU_OP_DIV, false},
	OP_RDIVI:   {"rdivI", FORM_RC_R, ALU_OP_DIV, true},
	OP_LSHIFT:  {"lshift", FORM_RR_R, ALU_OP_SHL, false},
	OP_LSHIFTI: {"lshiftI", FORM_RC_R, ALU_OP_SHL, false},
	OP_RSHIFT:  {"rshift", FORM_RR_R, ALU_OP_SHR, false},
	OP_RSHIFTI: {"rshiftI", FORM_RC_R, ALU_OP_SHR, false},
	OP_AND:     {"and", FORM_RR_R, ALU_OP_AND, false},
	OP_ANDI:    {"andI", FORM_RC_R, ALU_OP_AND, false},
	OP_OR:      {"or", FORM_RR_R, ALU_OP_OR, false},
	OP_ORI:     {"orI", FORM_RC_R, ALU_OP_OR, false},
	OP_XOR:     {"xor", FORM_RR_R, ALU_OP_XOR, false},
	OP_XORI:    {"xorI", FORM_RC_R, ALU_OP_XOR, false},
	OP_LOADI:   {"loadI", FORM_C_R, ALU_OP_NONE, false},
	OP_LOAD:    {"load", FORM_R_R, ALU_OP_NONE, false},
	OP_LOADAI:  {"loadAI", FORM_RC_R, ALU_OP_NONE, false},
	OP_LOADAO:  {"loadAO", FORM_RR_R, ALU_OP_NONE, false},
	OP_CLOAD:   {"cload", FORM_R_R, ALU_OP_NONE, false},
	OP_CLOADAI: {"cloadAI", FORM_FAULT, ALU_OP_NONE, false},
	OP_CLOADAO: {"cloadAO", FORM_FAULT, ALU_OP_NONE, false},
	OP_STORE:   {"store", FORM_R_R, ALU_OP_NONE, false},
	OP_STOREAI: {"storeAI", FORM_R_RC, ALU_OP_NONE, false},
	OP_STOREAO: {"storeAO", FORM_R_RR, ALU_OP_NONE, false},
}

// opcodeMap maps mnemonics to opcodes. Mnemonics are case sensitive.
var opcodeMap = func() map[string]Opcode {
	ops := make(map[string]Opcode, len(opcodeTable))
	for op, info := range opcodeTable {
		if Opcode(op) == OP_UNKNOWN {
			continue
		}
		ops[info.name] = Opcode(op)
	}
	return ops
}()

// LookupOpcode finds the opcode for a mnemonic.
func LookupOpcode(name string) (op Opcode, ok bool) {
	op, ok = opcodeMap[name]
	return
}

func (op Opcode) info() opcodeInfo {
	if op < 0 || int(op) >= len(opcodeTable) {
		return opcodeTable[OP_UNKNOWN]
	}
	return opcodeTable[op]
}

// Form returns the operand layout.
func (op Opcode) Form() Form {
	return op.info().form
}

// Alu returns the arithmetic or logical function, if any.
func (op Opcode) Alu() AluOp {
	return op.info().alu
}

// Reversed is true when the immediate is the left hand operand.
func (op Opcode) Reversed() bool {
	return op.info().reverse
}

func (op Opcode) String() string {
	return op.info().name
}

// IsStore is true for opcodes whose target operands address memory rather
// than name a destination register.
func (op Opcode) IsStore() bool {
	switch op {
	case OP_STORE, OP_STOREAI, OP_STOREAO:
		return true
	}
	return false
}
