package vm

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is a decoded ILOC instruction line.
type Instruction struct {
	Op   Opcode   // Operation. OP_UNKNOWN for unrecognized mnemonics.
	Name string   // Mnemonic as written.
	Src  []string // Registers read, in operand order.
	Imm  int32    // Immediate operand, for forms that carry one.
	Dst  string   // Register written, empty for stores.
}

// word returns the n'th word of an instruction.
func word(words []string, n int) (w string, err error) {
	if n >= len(words) {
		err = ErrOperandMissing
		return
	}
	w = words[n]
	return
}

// pair splits the n'th word of an instruction on its comma.
func pair(words []string, n int) (a, b string, err error) {
	w, err := word(words, n)
	if err != nil {
		return
	}

	parts := strings.Split(w, ",")
	if len(parts) != 2 {
		err = ErrOperandMissing
		return
	}

	a, b = parts[0], parts[1]
	return
}

// immediate parses a 32-bit immediate operand.
func immediate(text string) (value int32, err error) {
	v64, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	value = int32(v64)
	return
}

// constant parses a loadI constant, truncating it to 32 bits.
func constant(text string) (value int32, err error) {
	v64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	value = int32(v64)
	return
}

// Decode decodes one normalized instruction line. Operand positions are
// fixed by the opcode; words past the expected operands are ignored.
func Decode(line string) (inst Instruction, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	inst.Name = words[0]

	op, ok := LookupOpcode(words[0])
	if !ok {
		inst.Op = OP_UNKNOWN
		return
	}
	inst.Op = op

	var a, b, c string

	switch op.Form() {
	case FORM_NONE:
		// no operands
	case FORM_FAULT:
		err = ErrNotImplemented
	case FORM_RR_R:
		if a, b, err = pair(words, 1); err != nil {
			return
		}
		if inst.Dst, err = word(words, 3); err != nil {
			return
		}
		inst.Src = []string{a, b}
	case FORM_RC_R:
		if a, c, err = pair(words, 1); err != nil {
			return
		}
		if inst.Dst, err = word(words, 3); err != nil {
			return
		}
		if inst.Imm, err = immediate(c); err != nil {
			return
		}
		inst.Src = []string{a}
	case FORM_C_R:
		if c, err = word(words, 1); err != nil {
			return
		}
		if inst.Dst, err = word(words, 3); err != nil {
			return
		}
		if inst.Imm, err = constant(c); err != nil {
			return
		}
	case FORM_R_R:
		if a, err = word(words, 1); err != nil {
			return
		}
		if b, err = word(words, 3); err != nil {
			return
		}
		if op.IsStore() {
			inst.Src = []string{a, b}
		} else {
			inst.Src = []string{a}
			inst.Dst = b
		}
	case FORM_R_RC:
		var v string
		if v, err = word(words, 1); err != nil {
			return
		}
		if a, c, err = pair(words, 3); err != nil {
			return
		}
		if inst.Imm, err = immediate(c); err != nil {
			return
		}
		inst.Src = []string{v, a}
	case FORM_R_RR:
		var v string
		if v, err = word(words, 1); err != nil {
			return
		}
		if a, b, err = pair(words, 3); err != nil {
			return
		}
		inst.Src = []string{v, a, b}
	default:
		panic(fmt.Sprintf("opcode %v: unknown form %v", op, op.Form()))
	}

	return
}

// String returns the canonical text of the instruction.
func (inst Instruction) String() (text string) {
	switch inst.Op.Form() {
	case FORM_RR_R:
		text = fmt.Sprintf("%v %v,%v => %v", inst.Op, inst.Src[0], inst.Src[1], inst.Dst)
	case FORM_RC_R:
		text = fmt.Sprintf("%v %v,%v => %v", inst.Op, inst.Src[0], inst.Imm, inst.Dst)
	case FORM_C_R:
		text = fmt.Sprintf("%v %v => %v", inst.Op, inst.Imm, inst.Dst)
	case FORM_R_R:
		if inst.Op.IsStore() {
			text = fmt.Sprintf("%v %v => %v", inst.Op, inst.Src[0], inst.Src[1])
		} else {
			text = fmt.Sprintf("%v %v => %v", inst.Op, inst.Src[0], inst.Dst)
		}
	case FORM_R_RC:
		text = fmt.Sprintf("%v %v => %v,%v", inst.Op, inst.Src[0], inst.Src[1], inst.Imm)
	case FORM_R_RR:
		text = fmt.Sprintf("%v %v => %v,%v", inst.Op, inst.Src[0], inst.Src[1], inst.Src[2])
	default:
		text = inst.Name
	}

	return
}
