package cell

import (
	"fmt"
)

// Opcode is the 4-bit operation selector in the top nibble of a Code.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR     = Opcode(0)  // br
	OP_ADD    = Opcode(1)  // add
	OP_LD     = Opcode(2)  // ld
	OP_ST     = Opcode(3)  // st
	OP_JSR    = Opcode(4)  // jsr
	OP_AND    = Opcode(5)  // and
	OP_LDR    = Opcode(6)  // ldr
	OP_STR    = Opcode(7)  // str
	OP_LOOK   = Opcode(8)  // look
	OP_NOT    = Opcode(9)  // not
	OP_LDI    = Opcode(10) // ldi
	OP_STI    = Opcode(11) // sti
	OP_JMP    = Opcode(12) // jmp
	OP_SETBC  = Opcode(13) // setbc
	OP_LEA    = Opcode(14) // lea
	OP_SNDACC = Opcode(15) // sndacc
)

// OPCODE_COUNT is the size of the opcode space.
const OPCODE_COUNT = 16

// Reserved returns true for the opcodes set aside for inter-cell
// operations (lookup, broadcast-set, send/accept).
func (op Opcode) Reserved() bool {
	switch op {
	case OP_LOOK, OP_SETBC, OP_SNDACC:
		return true
	}
	return false
}

// SetsSign returns true if the opcode writes a destination register
// and therefore updates the condition flag.
func (op Opcode) SetsSign() bool {
	switch op {
	case OP_ADD, OP_AND, OP_NOT, OP_LD, OP_LDR, OP_LDI, OP_LEA:
		return true
	}
	return false
}

// CodeReg is a 3-bit register index.
type CodeReg uint8

func (reg CodeReg) String() string {
	return fmt.Sprintf("r%d", uint8(reg)&7)
}

// CodeCond is the 3-bit N/Z/P enable mask of a branch.
type CodeCond uint8

const (
	COND_P   = CodeCond(1 << 0) // Branch on positive.
	COND_Z   = CodeCond(1 << 1) // Branch on zero.
	COND_N   = CodeCond(1 << 2) // Branch on negative.
	COND_NZP = COND_N | COND_Z | COND_P
)

// Match returns true if any enabled condition bit matches sign.
func (cond CodeCond) Match(sign Sign) bool {
	switch sign {
	case SIGN_NEGATIVE:
		return cond&COND_N != 0
	case SIGN_ZERO:
		return cond&COND_Z != 0
	case SIGN_POSITIVE:
		return cond&COND_P != 0
	}
	return false
}

func (cond CodeCond) String() (text string) {
	for _, bit := range []struct {
		cond CodeCond
		name string
	}{{COND_N, "n"}, {COND_Z, "z"}, {COND_P, "p"}} {
		if cond&bit.cond != 0 {
			text += bit.name
		}
	}
	if len(text) == 0 {
		text = "-"
	}
	return
}

// Field masks. None of the literal fields are sign extended.
const (
	MASK_REG      = 0x7
	MASK_VAL5     = 0x001f
	MASK_OFFSET6  = 0x003f
	MASK_OFFSET9  = 0x01ff
	MASK_OFFSET11 = 0x07ff
	MASK_PAYLOAD  = 0x0fff
)

// Code is a single 16-bit instruction word.
//
//	15..12  opcode
//	11..9   destination/source register, or branch N/Z/P mask
//	11      jsr mode flag
//	8..6    source 1 / base field
//	5       immediate mode flag
//	4..0    5-bit literal
//	2..0    source 2 register
//	5..0    6-bit offset
//	8..0    9-bit offset
//	10..0   11-bit offset
type Code uint16

// Opcode returns the operation selector of the instruction word.
func (code Code) Opcode() Opcode {
	return Opcode((uint16(code) >> 12) & 0xf)
}

// Payload returns the 12 bits below the opcode, for reserved opcodes.
func (code Code) Payload() uint16 {
	return uint16(code) & MASK_PAYLOAD
}

// BranchDecode decodes the condition mask and 9-bit offset of a BR.
func (code Code) BranchDecode() (cond CodeCond, offset uint16) {
	word := uint16(code)
	cond = CodeCond((word >> 9) & 0x7)
	offset = word & MASK_OFFSET9
	return
}

// AluDecode decodes the operands of ADD and AND. When immediate is set,
// value holds the unsigned 5-bit literal and src2 is meaningless.
func (code Code) AluDecode() (dst, src1 CodeReg, immediate bool, src2 CodeReg, value uint16) {
	word := uint16(code)
	dst = CodeReg((word >> 9) & MASK_REG)
	src1 = CodeReg((word >> 6) & MASK_REG)
	immediate = ((word >> 5) & 1) == 1
	src2 = CodeReg(word & MASK_REG)
	value = word & MASK_VAL5
	return
}

// PcRelDecode decodes the register and 9-bit pc offset of LD, ST, LDI,
// STI and LEA.
func (code Code) PcRelDecode() (reg CodeReg, offset uint16) {
	word := uint16(code)
	reg = CodeReg((word >> 9) & MASK_REG)
	offset = word & MASK_OFFSET9
	return
}

// JsrDecode decodes a JSR. With relative set, offset is the 11-bit pc
// offset; otherwise base is the 3-bit base field.
func (code Code) JsrDecode() (relative bool, offset uint16, base uint16) {
	word := uint16(code)
	relative = ((word >> 11) & 1) == 1
	offset = word & MASK_OFFSET11
	base = (word >> 6) & MASK_REG
	return
}

// BaseDecode decodes the register, base field and 6-bit offset of LDR
// and STR.
func (code Code) BaseDecode() (reg CodeReg, base uint16, offset uint16) {
	word := uint16(code)
	reg = CodeReg((word >> 9) & MASK_REG)
	base = (word >> 6) & MASK_REG
	offset = word & MASK_OFFSET6
	return
}

// NotDecode decodes the destination and source of a NOT.
func (code Code) NotDecode() (dst, src CodeReg) {
	word := uint16(code)
	dst = CodeReg((word >> 9) & MASK_REG)
	src = CodeReg((word >> 6) & MASK_REG)
	return
}

// JmpDecode decodes the base field of a JMP.
func (code Code) JmpDecode() (base uint16) {
	return (uint16(code) >> 6) & MASK_REG
}

func makeCode(op Opcode, fields uint16) Code {
	return Code((uint16(op&0xf) << 12) | (fields & MASK_PAYLOAD))
}

// MakeCodeBranch creates a BR instruction.
func MakeCodeBranch(cond CodeCond, offset uint16) Code {
	return makeCode(OP_BR, (uint16(cond&0x7)<<9)|(offset&MASK_OFFSET9))
}

// MakeCodeAlu creates a register-register ADD or AND instruction.
func MakeCodeAlu(op Opcode, dst, src1, src2 CodeReg) Code {
	return makeCode(op, (uint16(dst&MASK_REG)<<9)|(uint16(src1&MASK_REG)<<6)|uint16(src2&MASK_REG))
}

// MakeCodeAluImm creates a register-immediate ADD or AND instruction.
func MakeCodeAluImm(op Opcode, dst, src1 CodeReg, value uint16) Code {
	return makeCode(op, (uint16(dst&MASK_REG)<<9)|(uint16(src1&MASK_REG)<<6)|(1<<5)|(value&MASK_VAL5))
}

// MakeCodePcRel creates an LD, ST, LDI, STI or LEA instruction.
func MakeCodePcRel(op Opcode, reg CodeReg, offset uint16) Code {
	return makeCode(op, (uint16(reg&MASK_REG)<<9)|(offset&MASK_OFFSET9))
}

// MakeCodeJsr creates a pc-relative JSR instruction.
func MakeCodeJsr(offset uint16) Code {
	return makeCode(OP_JSR, (1<<11)|(offset&MASK_OFFSET11))
}

// MakeCodeJsrBase creates a base-field JSR instruction.
func MakeCodeJsrBase(base uint16) Code {
	return makeCode(OP_JSR, (base&MASK_REG)<<6)
}

// MakeCodeBase creates an LDR or STR instruction.
func MakeCodeBase(op Opcode, reg CodeReg, base uint16, offset uint16) Code {
	return makeCode(op, (uint16(reg&MASK_REG)<<9)|((base&MASK_REG)<<6)|(offset&MASK_OFFSET6))
}

// MakeCodeNot creates a NOT instruction.
func MakeCodeNot(dst, src CodeReg) Code {
	return makeCode(OP_NOT, (uint16(dst&MASK_REG)<<9)|(uint16(src&MASK_REG)<<6)|MASK_OFFSET6)
}

// MakeCodeJmp creates a JMP instruction.
func MakeCodeJmp(base uint16) Code {
	return makeCode(OP_JMP, (base&MASK_REG)<<6)
}

// MakeCodeReserved creates a LOOK, SETBC or SNDACC instruction.
func MakeCodeReserved(op Opcode, payload uint16) Code {
	return makeCode(op, payload)
}

// String returns a one line mnemonic of the instruction word.
func (code Code) String() (out string) {
	op := code.Opcode()

	var str string

	switch op {
	case OP_BR:
		cond, offset := code.BranchDecode()
		str = fmt.Sprintf("%v.%d", cond, offset)
	case OP_ADD, OP_AND:
		dst, src1, immediate, src2, value := code.AluDecode()
		if immediate {
			str = fmt.Sprintf("%v.%v.#%d", dst, src1, value)
		} else {
			str = fmt.Sprintf("%v.%v.%v", dst, src1, src2)
		}
	case OP_LD, OP_ST, OP_LDI, OP_STI, OP_LEA:
		reg, offset := code.PcRelDecode()
		str = fmt.Sprintf("%v.%d", reg, offset)
	case OP_JSR:
		relative, offset, base := code.JsrDecode()
		if relative {
			str = fmt.Sprintf("%d", offset)
		} else {
			str = fmt.Sprintf("@%d", base)
		}
	case OP_LDR, OP_STR:
		reg, base, offset := code.BaseDecode()
		str = fmt.Sprintf("%v.@%d.%d", reg, base, offset)
	case OP_NOT:
		dst, src := code.NotDecode()
		str = fmt.Sprintf("%v.%v", dst, src)
	case OP_JMP:
		str = fmt.Sprintf("@%d", code.JmpDecode())
	case OP_LOOK, OP_SETBC, OP_SNDACC:
		str = fmt.Sprintf("0x%03x", code.Payload())
	}

	out = fmt.Sprintf("%v.%v", op.String(), str)

	return
}
