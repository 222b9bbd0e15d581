package cell

import (
	"errors"
	"log"
)

// RunInstruction fetches the word at addr (modulo MEMORY_SIZE) and
// executes it.
//
// The core opcodes never fail. A non-nil error can only come from a
// handler installed with SetHandler.
func (cell *Cell) RunInstruction(addr uint16) (err error) {
	code := Code(cell.Read(addr))

	err = cell.Execute(code)

	return
}

// Execute executes a single instruction word against the cell state.
func (cell *Cell) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), ErrHandler, err)
		}
	}()
	if cell.Verbose {
		log.Printf("%02x: %v", cell.Pc, code)
	}

	cell.Ticks++

	switch code.Opcode() {
	case OP_BR:
		cell.branch(code)
	case OP_ADD:
		cell.alu(code, func(a, b uint16) uint16 { return a + b })
	case OP_LD:
		cell.load(code)
	case OP_ST:
		cell.store(code)
	case OP_JSR:
		cell.jumpSubroutine(code)
	case OP_AND:
		cell.alu(code, func(a, b uint16) uint16 { return a & b })
	case OP_LDR:
		cell.loadRegister(code)
	case OP_STR:
		cell.storeRegister(code)
	case OP_NOT:
		cell.not(code)
	case OP_LDI:
		cell.loadIndirect(code)
	case OP_STI:
		cell.storeIndirect(code)
	case OP_JMP:
		cell.jump(code)
	case OP_LEA:
		cell.loadEffectiveAddress(code)
	case OP_LOOK, OP_SETBC, OP_SNDACC:
		err = cell.reserved(code)
	default:
		// Opcode() is four bits wide; every value is listed above.
		panic("unknown opcode")
	}

	return
}

// branch adds the 9-bit offset to pc when any enabled condition matches.
func (cell *Cell) branch(code Code) {
	cond, offset := code.BranchDecode()
	if cond.Match(cell.LastSign) {
		cell.SetPc(cell.Pc + offset)
	}
}

// alu performs ADD or AND with either a register or an unsigned 5-bit
// literal as the second operand.
func (cell *Cell) alu(code Code, op func(a, b uint16) uint16) {
	dst, src1, immediate, src2, value := code.AluDecode()
	if !immediate {
		value = cell.Reg(src2)
	}
	cell.SetReg(dst, op(cell.Reg(src1), value))
	cell.updateSign(dst)
}

func (cell *Cell) load(code Code) {
	dst, offset := code.PcRelDecode()
	cell.SetReg(dst, cell.Read(cell.pcOffset(offset)))
	cell.updateSign(dst)
}

func (cell *Cell) store(code Code) {
	src, offset := code.PcRelDecode()
	cell.Write(cell.pcOffset(offset), cell.Reg(src))
}

// jumpSubroutine saves pc in REG_LINK before changing it. In base mode
// the 3-bit base field is itself the target address.
func (cell *Cell) jumpSubroutine(code Code) {
	cell.SetReg(REG_LINK, cell.Pc)

	relative, offset, base := code.JsrDecode()
	if relative {
		cell.SetPc(cell.Pc + offset)
	} else {
		cell.SetPc(base)
	}
}

// loadRegister reads memory at base field + 6-bit offset.
func (cell *Cell) loadRegister(code Code) {
	dst, base, offset := code.BaseDecode()
	cell.SetReg(dst, cell.Read(base+offset))
	cell.updateSign(dst)
}

// storeRegister writes memory at base field + 6-bit offset.
func (cell *Cell) storeRegister(code Code) {
	src, base, offset := code.BaseDecode()
	cell.Write(base+offset, cell.Reg(src))
}

func (cell *Cell) not(code Code) {
	dst, src := code.NotDecode()
	cell.SetReg(dst, ^cell.Reg(src))
	cell.updateSign(dst)
}

func (cell *Cell) loadIndirect(code Code) {
	dst, offset := code.PcRelDecode()
	addr := cell.Read(cell.pcOffset(offset))
	cell.SetReg(dst, cell.Read(addr))
	cell.updateSign(dst)
}

func (cell *Cell) storeIndirect(code Code) {
	src, offset := code.PcRelDecode()
	addr := cell.Read(cell.pcOffset(offset))
	cell.Write(addr, cell.Reg(src))
}

// jump sets pc to the 3-bit base field.
func (cell *Cell) jump(code Code) {
	cell.SetPc(code.JmpDecode())
}

func (cell *Cell) loadEffectiveAddress(code Code) {
	dst, offset := code.PcRelDecode()
	cell.SetReg(dst, cell.pcOffset(offset))
	cell.updateSign(dst)
}
